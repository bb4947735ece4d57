package token

import (
	"context"
	"taxtoken/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// Receipt describes the outcome of a committed call.
type Receipt struct {
	// Events are the events the call emitted, in emission order, with the IDs
	// they were stored under.
	Events []domain.Event
	// Amount is the quantity the call produced: tokens received by a buy,
	// native currency received by a sell, LP shares minted by AddLiquidity.
	Amount domain.Amount
}

//go:generate mockgen -package mocktoken -source=interface.go -destination=mock/mocktoken.go *
type Token interface {
	Deploy(ctx context.Context, params DeployParams) (*domain.TokenState, error)

	Info(ctx context.Context) (*domain.TokenState, error)
	Account(ctx context.Context, addr common.Address) (*domain.Account, error)
	BalanceOf(ctx context.Context, owner common.Address) (domain.Amount, error)
	Allowance(ctx context.Context, owner, spender common.Address) (domain.Amount, error)
	Events(ctx context.Context, kind domain.EventKind, afterID int64, limit uint) ([]domain.Event, error)
	QuoteBuy(ctx context.Context, nativeIn domain.Amount) (domain.Amount, error)

	Transfer(ctx context.Context, caller, to common.Address, amount domain.Amount) (*Receipt, error)
	TransferFrom(ctx context.Context, caller, from, to common.Address, amount domain.Amount) (*Receipt, error)
	Approve(ctx context.Context, caller, spender common.Address, amount domain.Amount) (*Receipt, error)
	IncreaseAllowance(ctx context.Context, caller, spender common.Address, added domain.Amount) (*Receipt, error)
	DecreaseAllowance(ctx context.Context, caller, spender common.Address, subtracted domain.Amount) (*Receipt, error)
	Burn(ctx context.Context, caller common.Address, amount domain.Amount) (*Receipt, error)
	BurnFrom(ctx context.Context, caller, from common.Address, amount domain.Amount) (*Receipt, error)
	Mint(ctx context.Context, caller common.Address, amount domain.Amount) (*Receipt, error)

	Buy(ctx context.Context, caller common.Address, nativeIn, minOut domain.Amount) (*Receipt, error)
	Sell(ctx context.Context, caller common.Address, amountIn, minOut domain.Amount) (*Receipt, error)
	AddLiquidity(ctx context.Context, caller common.Address, tokenAmount, nativeAmount domain.Amount) (*Receipt, error)
	SendNative(ctx context.Context, caller, to common.Address, amount domain.Amount) (*Receipt, error)

	SetExempt(ctx context.Context, caller, addr common.Address, exempt bool) (*Receipt, error)
	SetPair(ctx context.Context, caller, addr common.Address, pair bool) (*Receipt, error)
	SetBeneficiary(ctx context.Context, caller common.Address, role domain.Role, addr common.Address) (*Receipt, error)
	SetThreshold(ctx context.Context, caller common.Address, threshold domain.Amount) (*Receipt, error)
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) (*Receipt, error)
	RenounceOwnership(ctx context.Context, caller common.Address) (*Receipt, error)

	RecoverToken(ctx context.Context, caller, foreign common.Address) (*Receipt, error)
	RecoverNative(ctx context.Context, caller common.Address) (*Receipt, error)
}
