// Package swap defines the swap/liquidity collaborator the token trades
// through. A Router never owns ledger state: pools and native balances live in
// the caller's storage transaction and token movements go back through the
// Token handle, so a failed router call rolls back with the call it served.
//
//go:generate mockgen -package mockswap -source=interface.go -destination=mock/mockswap.go *
package swap

import (
	"context"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/storage"

	"github.com/ethereum/go-ethereum/common"
)

// State is the slice of storage a router reads and writes.
type State interface {
	storage.NativeStorage
	storage.PoolStorage
}

// Token is the token being traded, as seen from inside an in-flight call.
// Transfers made through it run the full transfer pipeline (classification,
// tax and distribution).
type Token interface {
	Address() common.Address
	BalanceOf(ctx context.Context, owner common.Address) (domain.Amount, error)
	// Transfer moves amount from from to to on behalf of from.
	Transfer(ctx context.Context, from, to common.Address, amount domain.Amount) error
	// TransferFrom moves amount from from to to, spending spender's allowance.
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount domain.Amount) error
}

// Liquidity is the outcome of adding liquidity.
type Liquidity struct {
	Token     domain.Amount
	Native    domain.Amount
	Liquidity domain.Amount
}

// Router converts between the token and native currency and provides
// liquidity. Every method either completes or returns an error; partial
// effects are the caller's to discard.
type Router interface {
	// Address is the account the router spends allowances as.
	Address() common.Address
	// PairFor returns the deterministic pair address for token.
	PairFor(token common.Address) common.Address
	// CreatePair registers an empty token/native pool and returns its address.
	CreatePair(ctx context.Context, st State, token common.Address) (common.Address, error)
	// QuoteBuy returns how many tokens nativeIn buys before tax.
	QuoteBuy(ctx context.Context, st State, token common.Address, nativeIn domain.Amount) (domain.Amount, error)
	// SwapExactNativeForTokens spends caller's native currency and delivers
	// tokens to to. It returns the amount to actually received.
	SwapExactNativeForTokens(ctx context.Context,
		st State,
		tok Token,
		caller common.Address,
		nativeIn domain.Amount,
		minOut domain.Amount,
		to common.Address) (domain.Amount, error)
	// SwapExactTokensForNative pulls amountIn tokens from caller using the
	// router's allowance and pays native currency to to.
	SwapExactTokensForNative(ctx context.Context,
		st State,
		tok Token,
		caller common.Address,
		amountIn domain.Amount,
		minOut domain.Amount,
		to common.Address) (domain.Amount, error)
	// AddLiquidityNative deposits up to tokenDesired tokens and nativeIn native
	// currency from caller at the pool ratio and mints LP shares to to.
	AddLiquidityNative(ctx context.Context,
		st State,
		tok Token,
		caller common.Address,
		tokenDesired domain.Amount,
		nativeIn domain.Amount,
		to common.Address) (Liquidity, error)
}
