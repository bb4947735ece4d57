package storage

import (
	"context"
	"taxtoken/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// NativeStorage keeps balances of the network's native currency. Pools and
// the token's own account hold native balances too.
type NativeStorage interface {
	NativeBalance(ctx context.Context, addr common.Address) (domain.Amount, error)
	SetNativeBalance(ctx context.Context, addr common.Address, amount domain.Amount) error
}

// PoolStorage keeps constant-product pools and their LP share balances.
type PoolStorage interface {
	// Pool returns nil when addr is not a known pool.
	Pool(ctx context.Context, addr common.Address) (*domain.Pool, error)
	SavePool(ctx context.Context, pool domain.Pool) error
	LiquidityBalance(ctx context.Context, pool, holder common.Address) (domain.Amount, error)
	SetLiquidityBalance(ctx context.Context, pool, holder common.Address, amount domain.Amount) error
}

// ForeignStorage keeps balances of other tokens held by ledger accounts. It
// backs the recovery of tokens sent to the token's own address by mistake.
type ForeignStorage interface {
	ForeignBalance(ctx context.Context, token, holder common.Address) (domain.Amount, error)
	SetForeignBalance(ctx context.Context, token, holder common.Address, amount domain.Amount) error
}
