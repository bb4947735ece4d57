// Package amm implements swap.Router as an in-process constant-product pool
// in the style of a UniswapV2 router with fee-on-transfer support. Pools are
// token/native pairs with a 0.3% swap fee. Pair addresses are derived with
// CREATE2 from the factory address so they are stable across runs.
package amm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/swap"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

const (
	feeNumerator   = 997
	feeDenominator = 1000
)

// MinimumLiquidity is locked forever in every pool on the first mint.
var MinimumLiquidity = domain.NewAmount(1000) //nolint: gochecknoglobals

var (
	ErrLocked                    = errors.New("LOCKED")
	ErrPairExists                = errors.New("PAIR_EXISTS")
	ErrPairNotFound              = errors.New("PAIR_NOT_FOUND")
	ErrInsufficientInputAmount   = errors.New("INSUFFICIENT_INPUT_AMOUNT")
	ErrInsufficientOutputAmount  = errors.New("INSUFFICIENT_OUTPUT_AMOUNT")
	ErrInsufficientLiquidity     = errors.New("INSUFFICIENT_LIQUIDITY")
	ErrInsufficientLiquidityMint = errors.New("INSUFFICIENT_LIQUIDITY_MINTED")
	ErrOverflow                  = errors.New("OVERFLOW")
)

// Options configures a Router. Zero addresses are replaced by deterministic
// defaults derived from fixed labels.
type Options struct {
	Address common.Address
	Factory common.Address
}

// Router is safe for concurrent use; the pool state it works on belongs to
// the caller's storage transaction.
type Router struct {
	address      common.Address
	factory      common.Address
	initCodeHash common.Hash

	mu     sync.Mutex
	locked map[common.Address]bool
}

func labelAddress(label string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(label)))
}

// New creates a Router.
func New(opts Options) *Router {
	if opts.Address == (common.Address{}) {
		opts.Address = labelAddress("taxtoken.amm.router")
	}
	if opts.Factory == (common.Address{}) {
		opts.Factory = labelAddress("taxtoken.amm.factory")
	}

	return &Router{
		address:      opts.Address,
		factory:      opts.Factory,
		initCodeHash: crypto.Keccak256Hash([]byte("taxtoken.amm.pair")),
		locked:       map[common.Address]bool{},
	}
}

func (r *Router) Address() common.Address { return r.address }

func (r *Router) PairFor(token common.Address) common.Address {
	return crypto.CreateAddress2(r.factory, crypto.Keccak256Hash(token.Bytes()), r.initCodeHash.Bytes())
}

// lock marks pair as mid-swap. Nested use of the same pair fails with
// ErrLocked until the returned release runs.
func (r *Router) lock(pair common.Address) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.locked[pair] {
		return nil, ErrLocked
	}
	r.locked[pair] = true

	return func() {
		r.mu.Lock()
		delete(r.locked, pair)
		r.mu.Unlock()
	}, nil
}

func (r *Router) CreatePair(ctx context.Context, st swap.State, token common.Address) (common.Address, error) {
	pair := r.PairFor(token)
	existing, err := st.Pool(ctx, pair)
	if err != nil {
		return common.Address{}, fmt.Errorf("could not get pool: %w", err)
	}
	if existing != nil {
		return common.Address{}, ErrPairExists
	}

	if err := st.SavePool(ctx, domain.Pool{Address: pair, Token: token}); err != nil {
		return common.Address{}, fmt.Errorf("could not save pool: %w", err)
	}

	return pair, nil
}

func (r *Router) pool(ctx context.Context, st swap.State, token common.Address) (*domain.Pool, error) {
	p, err := st.Pool(ctx, r.PairFor(token))
	if err != nil {
		return nil, fmt.Errorf("could not get pool: %w", err)
	}
	if p == nil {
		return nil, ErrPairNotFound
	}

	return p, nil
}

func (r *Router) QuoteBuy(ctx context.Context,
	st swap.State,
	token common.Address,
	nativeIn domain.Amount) (domain.Amount, error) {
	p, err := r.pool(ctx, st, token)
	if err != nil {
		return domain.Zero, err
	}

	return AmountOut(nativeIn, p.ReserveNative, p.ReserveToken)
}

func (r *Router) SwapExactNativeForTokens(ctx context.Context,
	st swap.State,
	tok swap.Token,
	caller common.Address,
	nativeIn domain.Amount,
	minOut domain.Amount,
	to common.Address) (domain.Amount, error) {
	p, err := r.pool(ctx, st, tok.Address())
	if err != nil {
		return domain.Zero, err
	}

	if err := swap.MoveNative(ctx, st, caller, p.Address, nativeIn); err != nil {
		return domain.Zero, err
	}

	release, err := r.lock(p.Address)
	if err != nil {
		return domain.Zero, err
	}
	defer release()

	out, err := AmountOut(nativeIn, p.ReserveNative, p.ReserveToken)
	if err != nil {
		return domain.Zero, err
	}

	before, err := tok.BalanceOf(ctx, to)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get balance: %w", err)
	}
	if err := tok.Transfer(ctx, p.Address, to, out); err != nil {
		return domain.Zero, fmt.Errorf("could not transfer tokens out of pair: %w", err)
	}
	after, err := tok.BalanceOf(ctx, to)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get balance: %w", err)
	}

	if err := r.sync(ctx, st, tok, p); err != nil {
		return domain.Zero, err
	}

	received := after.MustSub(before)
	if received.Lt(minOut) {
		return domain.Zero, ErrInsufficientOutputAmount
	}

	return received, nil
}

func (r *Router) SwapExactTokensForNative(ctx context.Context,
	st swap.State,
	tok swap.Token,
	caller common.Address,
	amountIn domain.Amount,
	minOut domain.Amount,
	to common.Address) (domain.Amount, error) {
	pair := r.PairFor(tok.Address())
	if err := tok.TransferFrom(ctx, r.address, caller, pair, amountIn); err != nil {
		return domain.Zero, fmt.Errorf("could not transfer tokens into pair: %w", err)
	}

	release, err := r.lock(pair)
	if err != nil {
		return domain.Zero, err
	}
	defer release()

	// reload, the transfer above may have traded against this pool
	p, err := r.pool(ctx, st, tok.Address())
	if err != nil {
		return domain.Zero, err
	}

	balance, err := tok.BalanceOf(ctx, pair)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get pair balance: %w", err)
	}
	actualIn, underflow := balance.Sub(p.ReserveToken)
	if underflow || actualIn.IsZero() {
		return domain.Zero, ErrInsufficientInputAmount
	}

	out, err := AmountOut(actualIn, p.ReserveToken, p.ReserveNative)
	if err != nil {
		return domain.Zero, err
	}
	if out.Lt(minOut) {
		return domain.Zero, ErrInsufficientOutputAmount
	}

	if err := swap.MoveNative(ctx, st, pair, to, out); err != nil {
		return domain.Zero, err
	}
	if err := r.sync(ctx, st, tok, p); err != nil {
		return domain.Zero, err
	}

	return out, nil
}

func (r *Router) AddLiquidityNative(ctx context.Context,
	st swap.State,
	tok swap.Token,
	caller common.Address,
	tokenDesired domain.Amount,
	nativeIn domain.Amount,
	to common.Address) (swap.Liquidity, error) {
	p, err := r.pool(ctx, st, tok.Address())
	if err != nil {
		return swap.Liquidity{}, err
	}

	tokenAmount, nativeAmount, err := optimalAmounts(p, tokenDesired, nativeIn)
	if err != nil {
		return swap.Liquidity{}, err
	}

	if err := tok.TransferFrom(ctx, r.address, caller, p.Address, tokenAmount); err != nil {
		return swap.Liquidity{}, fmt.Errorf("could not transfer tokens into pair: %w", err)
	}
	if err := swap.MoveNative(ctx, st, caller, p.Address, nativeAmount); err != nil {
		return swap.Liquidity{}, err
	}

	release, err := r.lock(p.Address)
	if err != nil {
		return swap.Liquidity{}, err
	}
	defer release()

	minted, err := r.mint(ctx, st, tok, p.Address, to)
	if err != nil {
		return swap.Liquidity{}, err
	}

	return swap.Liquidity{Token: tokenAmount, Native: nativeAmount, Liquidity: minted}, nil
}

// mint issues LP shares for whatever the pair holds above its reserves.
func (r *Router) mint(ctx context.Context,
	st swap.State,
	tok swap.Token,
	pair common.Address,
	to common.Address) (domain.Amount, error) {
	p, err := r.pool(ctx, st, tok.Address())
	if err != nil {
		return domain.Zero, err
	}

	tokenBalance, err := tok.BalanceOf(ctx, pair)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get pair balance: %w", err)
	}
	nativeBalance, err := st.NativeBalance(ctx, pair)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get pair native balance: %w", err)
	}

	tokenIn, u1 := tokenBalance.Sub(p.ReserveToken)
	nativeIn, u2 := nativeBalance.Sub(p.ReserveNative)
	if u1 || u2 {
		return domain.Zero, ErrInsufficientInputAmount
	}

	var liquidity domain.Amount
	if p.LiquiditySupply.IsZero() {
		product, err := tokenIn.MulDiv(nativeIn, domain.NewAmount(1))
		if err != nil {
			return domain.Zero, ErrOverflow
		}
		root := product.Sqrt()
		var underflow bool
		liquidity, underflow = root.Sub(MinimumLiquidity)
		if underflow {
			return domain.Zero, ErrInsufficientLiquidityMint
		}
		if err := r.creditLP(ctx, st, p, domain.ZeroAddress, MinimumLiquidity); err != nil {
			return domain.Zero, err
		}
	} else {
		byToken, err := tokenIn.MulDiv(p.LiquiditySupply, p.ReserveToken)
		if err != nil {
			return domain.Zero, ErrOverflow
		}
		byNative, err := nativeIn.MulDiv(p.LiquiditySupply, p.ReserveNative)
		if err != nil {
			return domain.Zero, ErrOverflow
		}
		liquidity = domain.Min(byToken, byNative)
	}
	if liquidity.IsZero() {
		return domain.Zero, ErrInsufficientLiquidityMint
	}

	if err := r.creditLP(ctx, st, p, to, liquidity); err != nil {
		return domain.Zero, err
	}

	p.ReserveToken = tokenBalance
	p.ReserveNative = nativeBalance
	if err := st.SavePool(ctx, *p); err != nil {
		return domain.Zero, fmt.Errorf("could not save pool: %w", err)
	}

	return liquidity, nil
}

func (r *Router) creditLP(ctx context.Context,
	st swap.State,
	p *domain.Pool,
	holder common.Address,
	amount domain.Amount) error {
	bal, err := st.LiquidityBalance(ctx, p.Address, holder)
	if err != nil {
		return fmt.Errorf("could not get LP balance: %w", err)
	}
	if err := st.SetLiquidityBalance(ctx, p.Address, holder, bal.Add(amount)); err != nil {
		return fmt.Errorf("could not set LP balance: %w", err)
	}
	p.LiquiditySupply = p.LiquiditySupply.Add(amount)

	return nil
}

// sync sets the reserves to the pair's current balances.
func (r *Router) sync(ctx context.Context, st swap.State, tok swap.Token, p *domain.Pool) error {
	tokenBalance, err := tok.BalanceOf(ctx, p.Address)
	if err != nil {
		return fmt.Errorf("could not get pair balance: %w", err)
	}
	nativeBalance, err := st.NativeBalance(ctx, p.Address)
	if err != nil {
		return fmt.Errorf("could not get pair native balance: %w", err)
	}

	// the pool may have been saved by a nested call, keep its LP supply
	current, err := st.Pool(ctx, p.Address)
	if err != nil {
		return fmt.Errorf("could not get pool: %w", err)
	}
	if current != nil {
		p.LiquiditySupply = current.LiquiditySupply
	}

	p.ReserveToken = tokenBalance
	p.ReserveNative = nativeBalance
	if err := st.SavePool(ctx, *p); err != nil {
		return fmt.Errorf("could not save pool: %w", err)
	}

	return nil
}

// AmountOut returns the output of a swap of amountIn against the given
// reserves after the 0.3% fee.
func AmountOut(amountIn, reserveIn, reserveOut domain.Amount) (domain.Amount, error) {
	if amountIn.IsZero() {
		return domain.Zero, ErrInsufficientInputAmount
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return domain.Zero, ErrInsufficientLiquidity
	}

	inWithFee, overflow := new(uint256.Int).MulOverflow(amountIn.Uint256(), uint256.NewInt(feeNumerator))
	if overflow {
		return domain.Zero, ErrOverflow
	}
	numerator, overflow := new(uint256.Int).MulOverflow(inWithFee, reserveOut.Uint256())
	if overflow {
		return domain.Zero, ErrOverflow
	}
	denominator, overflow := new(uint256.Int).MulOverflow(reserveIn.Uint256(), uint256.NewInt(feeDenominator))
	if overflow {
		return domain.Zero, ErrOverflow
	}
	if _, overflow := denominator.AddOverflow(denominator, inWithFee); overflow {
		return domain.Zero, ErrOverflow
	}

	return domain.AmountFromUint256(numerator.Div(numerator, denominator)), nil
}

// optimalAmounts picks deposit amounts that keep the pool ratio, never
// exceeding what the caller offered.
func optimalAmounts(p *domain.Pool, tokenDesired, nativeDesired domain.Amount) (domain.Amount, domain.Amount, error) {
	if tokenDesired.IsZero() || nativeDesired.IsZero() {
		return domain.Zero, domain.Zero, ErrInsufficientInputAmount
	}
	if p.ReserveToken.IsZero() && p.ReserveNative.IsZero() {
		return tokenDesired, nativeDesired, nil
	}

	tokenOptimal, err := nativeDesired.MulDiv(p.ReserveToken, p.ReserveNative)
	if err != nil {
		return domain.Zero, domain.Zero, ErrInsufficientLiquidity
	}
	if !tokenDesired.Lt(tokenOptimal) {
		return tokenOptimal, nativeDesired, nil
	}

	nativeOptimal, err := tokenDesired.MulDiv(p.ReserveNative, p.ReserveToken)
	if err != nil {
		return domain.Zero, domain.Zero, ErrInsufficientLiquidity
	}

	return tokenDesired, nativeOptimal, nil
}

var _ swap.Router = (*Router)(nil)
