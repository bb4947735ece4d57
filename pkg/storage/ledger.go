package storage

import (
	"context"
	"taxtoken/pkg/domain"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// LedgerStorage keeps token balances and allowances. Missing entries read as
// zero; writing a zero amount removes the entry.
type LedgerStorage interface {
	Balance(ctx context.Context, addr common.Address) (domain.Amount, error)
	SetBalance(ctx context.Context, addr common.Address, amount domain.Amount) error
	Allowance(ctx context.Context, owner, spender common.Address) (domain.Amount, error)
	SetAllowance(ctx context.Context, owner, spender common.Address, amount domain.Amount) error
	// TotalBalances sums every balance, the token's own account included.
	TotalBalances(ctx context.Context) (domain.Amount, error)
}

// StateStorage persists the single TokenState row of a deployment.
type StateStorage interface {
	// State returns nil when no token has been deployed yet.
	State(ctx context.Context) (*domain.TokenState, error)
	SaveState(ctx context.Context, state domain.TokenState) error
}

// RegistryStorage keeps the exemption and pair sets.
type RegistryStorage interface {
	IsExempt(ctx context.Context, addr common.Address) (bool, error)
	SetExempt(ctx context.Context, addr common.Address, exempt bool) error
	IsPair(ctx context.Context, addr common.Address) (bool, error)
	SetPair(ctx context.Context, addr common.Address, pair bool) error
	// Pairs lists registered pools ordered by address.
	Pairs(ctx context.Context) ([]common.Address, error)
}

// ClockStorage keeps the receipt clock of the decay variant.
type ClockStorage interface {
	// LastReceived returns the zero time for untracked addresses.
	LastReceived(ctx context.Context, addr common.Address) (time.Time, error)
	SetLastReceived(ctx context.Context, addr common.Address, at time.Time) error
}
