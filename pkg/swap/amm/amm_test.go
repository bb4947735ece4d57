package amm_test

import (
	"context"
	"errors"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage/memory"
	"taxtoken/pkg/swap"
	"taxtoken/pkg/swap/amm"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	tokenAddr = common.HexToAddress("0x1000000000000000000000000000000000000001") //nolint: gochecknoglobals
	lpOwner   = common.HexToAddress("0x2000000000000000000000000000000000000002") //nolint: gochecknoglobals
	trader    = common.HexToAddress("0x3000000000000000000000000000000000000003") //nolint: gochecknoglobals
)

// plainToken is a fee-less ledger over the memory storage. feePercent makes it
// burn a cut of every transfer, like a fee-on-transfer token.
type plainToken struct {
	st         *memory.Memory
	feePercent uint8
	onTransfer func(ctx context.Context) error
}

func (p *plainToken) Address() common.Address { return tokenAddr }

func (p *plainToken) BalanceOf(ctx context.Context, owner common.Address) (domain.Amount, error) {
	return p.st.Balance(ctx, owner)
}

func (p *plainToken) Transfer(ctx context.Context, from, to common.Address, amount domain.Amount) error {
	if p.onTransfer != nil {
		if err := p.onTransfer(ctx); err != nil {
			return err
		}
	}

	fromBal, err := p.st.Balance(ctx, from)
	if err != nil {
		return err
	}
	rest, underflow := fromBal.Sub(amount)
	if underflow {
		return serrors.With(serrors.ErrInsufficientBalance, "insufficient balance")
	}
	if err := p.st.SetBalance(ctx, from, rest); err != nil {
		return err
	}

	net := amount.MustSub(amount.PercentOf(p.feePercent))
	toBal, err := p.st.Balance(ctx, to)
	if err != nil {
		return err
	}

	return p.st.SetBalance(ctx, to, toBal.Add(net))
}

func (p *plainToken) TransferFrom(ctx context.Context, _, from, to common.Address, amount domain.Amount) error {
	return p.Transfer(ctx, from, to, amount)
}

func units(s string) domain.Amount {
	a, err := domain.ParseUnits(s, 18)
	if err != nil {
		panic(err)
	}

	return a
}

func seededPool(t *testing.T, feePercent uint8) (*amm.Router, *memory.Memory, *plainToken, common.Address) {
	t.Helper()
	ctx := context.Background()

	st := memory.New()
	tok := &plainToken{st: st, feePercent: feePercent}
	r := amm.New(amm.Options{})

	pair, err := r.CreatePair(ctx, st, tokenAddr)
	require.NoError(t, err)
	require.Equal(t, r.PairFor(tokenAddr), pair)

	require.NoError(t, st.SetBalance(ctx, lpOwner, units("100000")))
	require.NoError(t, st.SetNativeBalance(ctx, lpOwner, units("100")))

	// seed without fees so reserves are round numbers
	tok.feePercent = 0
	res, err := r.AddLiquidityNative(ctx, st, tok, lpOwner, units("100000"), units("100"), lpOwner)
	require.NoError(t, err)
	tok.feePercent = feePercent

	// sqrt(1e23 * 1e20) = sqrt(1e43) floored, minus the locked minimum
	require.Equal(t, units("100000"), res.Token)
	require.Equal(t, units("100"), res.Native)
	locked, err := st.LiquidityBalance(ctx, pair, domain.ZeroAddress)
	require.NoError(t, err)
	require.Equal(t, amm.MinimumLiquidity, locked)

	return r, st, tok, pair
}

func TestRouter_PairForIsDeterministic(t *testing.T) {
	a := amm.New(amm.Options{})
	b := amm.New(amm.Options{})
	require.Equal(t, a.PairFor(tokenAddr), b.PairFor(tokenAddr))
	require.Equal(t, a.Address(), b.Address())
	require.NotEqual(t, a.PairFor(tokenAddr), a.PairFor(lpOwner))
}

func TestRouter_CreatePairTwice(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	r := amm.New(amm.Options{})

	_, err := r.CreatePair(ctx, st, tokenAddr)
	require.NoError(t, err)
	_, err = r.CreatePair(ctx, st, tokenAddr)
	require.ErrorIs(t, err, amm.ErrPairExists)
}

func TestRouter_FirstMint(t *testing.T) {
	_, st, _, pair := seededPool(t, 0)
	ctx := context.Background()

	p, err := st.Pool(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, units("100000"), p.ReserveToken)
	require.Equal(t, units("100"), p.ReserveNative)

	product, err := units("100000").MulDiv(units("100"), domain.NewAmount(1))
	require.NoError(t, err)
	require.Equal(t, product.Sqrt(), p.LiquiditySupply)

	owned, err := st.LiquidityBalance(ctx, pair, lpOwner)
	require.NoError(t, err)
	require.Equal(t, p.LiquiditySupply.MustSub(amm.MinimumLiquidity), owned)
}

func TestRouter_BuyMatchesQuote(t *testing.T) {
	r, st, tok, pair := seededPool(t, 0)
	ctx := context.Background()

	require.NoError(t, st.SetNativeBalance(ctx, trader, units("1")))

	quote, err := r.QuoteBuy(ctx, st, tokenAddr, units("0.1"))
	require.NoError(t, err)
	expected, err := amm.AmountOut(units("0.1"), units("100"), units("100000"))
	require.NoError(t, err)
	require.Equal(t, expected, quote)

	got, err := r.SwapExactNativeForTokens(ctx, st, tok, trader, units("0.1"), domain.Zero, trader)
	require.NoError(t, err)
	require.Equal(t, quote, got)

	native, err := st.NativeBalance(ctx, trader)
	require.NoError(t, err)
	require.Equal(t, units("0.9"), native)

	p, err := st.Pool(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, units("100.1"), p.ReserveNative)
	require.Equal(t, units("100000").MustSub(quote), p.ReserveToken)
}

func TestRouter_BuyMinOut(t *testing.T) {
	r, st, tok, _ := seededPool(t, 0)
	ctx := context.Background()
	require.NoError(t, st.SetNativeBalance(ctx, trader, units("1")))

	_, err := r.SwapExactNativeForTokens(ctx, st, tok, trader, units("0.1"), units("1000"), trader)
	require.ErrorIs(t, err, amm.ErrInsufficientOutputAmount)
}

func TestRouter_BuyWithoutNative(t *testing.T) {
	r, st, tok, _ := seededPool(t, 0)

	_, err := r.SwapExactNativeForTokens(context.Background(), st, tok, trader, units("0.1"), domain.Zero, trader)
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)
}

func TestRouter_SellUsesAmountActuallyReceived(t *testing.T) {
	r, st, tok, pair := seededPool(t, 10)
	ctx := context.Background()

	require.NoError(t, st.SetBalance(ctx, trader, units("1000")))

	out, err := r.SwapExactTokensForNative(ctx, st, tok, trader, units("1000"), domain.Zero, trader)
	require.NoError(t, err)

	// the pair only received 900 tokens after the transfer fee
	expected, err := amm.AmountOut(units("900"), units("100000"), units("100"))
	require.NoError(t, err)
	require.Equal(t, expected, out)

	native, err := st.NativeBalance(ctx, trader)
	require.NoError(t, err)
	require.Equal(t, expected, native)

	p, err := st.Pool(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, units("100900"), p.ReserveToken)
	require.Equal(t, units("100").MustSub(expected), p.ReserveNative)
}

func TestRouter_NestedSwapOnLockedPair(t *testing.T) {
	r, st, tok, _ := seededPool(t, 0)
	ctx := context.Background()
	require.NoError(t, st.SetNativeBalance(ctx, trader, units("1")))
	require.NoError(t, st.SetBalance(ctx, trader, units("10")))

	var nestedErr error
	tok.onTransfer = func(ctx context.Context) error {
		tok.onTransfer = nil
		_, nestedErr = r.SwapExactTokensForNative(ctx, st, tok, trader, units("10"), domain.Zero, trader)

		return nestedErr
	}

	_, err := r.SwapExactNativeForTokens(ctx, st, tok, trader, units("0.1"), domain.Zero, trader)
	require.ErrorIs(t, err, amm.ErrLocked)
	require.True(t, errors.Is(nestedErr, amm.ErrLocked))

	// the lock is released once the outer call returns
	_, err = r.SwapExactNativeForTokens(ctx, st, tok, trader, units("0.1"), domain.Zero, trader)
	require.NoError(t, err)
}

func TestRouter_AddLiquidityKeepsRatio(t *testing.T) {
	r, st, tok, pair := seededPool(t, 0)
	ctx := context.Background()

	require.NoError(t, st.SetBalance(ctx, trader, units("5000")))
	require.NoError(t, st.SetNativeBalance(ctx, trader, units("10")))

	before, err := st.Pool(ctx, pair)
	require.NoError(t, err)

	res, err := r.AddLiquidityNative(ctx, st, tok, trader, units("5000"), units("10"), trader)
	require.NoError(t, err)
	require.Equal(t, units("5000"), res.Token)
	require.Equal(t, units("5"), res.Native)

	// liquidity = 5000/100000 of the supply
	want, err := units("5000").MulDiv(before.LiquiditySupply, units("100000"))
	require.NoError(t, err)
	require.Equal(t, want, res.Liquidity)

	native, err := st.NativeBalance(ctx, trader)
	require.NoError(t, err)
	require.Equal(t, units("5"), native)
}

func TestAmountOut(t *testing.T) {
	out, err := amm.AmountOut(domain.NewAmount(1000), domain.NewAmount(1_000_000), domain.NewAmount(1_000_000))
	require.NoError(t, err)
	// 997000 * 1e6 / (1e9 + 997000)
	require.Equal(t, domain.NewAmount(996), out)

	_, err = amm.AmountOut(domain.Zero, domain.NewAmount(1), domain.NewAmount(1))
	require.ErrorIs(t, err, amm.ErrInsufficientInputAmount)

	_, err = amm.AmountOut(domain.NewAmount(1), domain.Zero, domain.NewAmount(1))
	require.ErrorIs(t, err, amm.ErrInsufficientLiquidity)
}

var _ swap.Token = (*plainToken)(nil)
