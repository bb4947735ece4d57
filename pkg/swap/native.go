package swap

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage"

	"github.com/ethereum/go-ethereum/common"
)

// MoveNative moves native currency between two accounts of st.
func MoveNative(ctx context.Context, st storage.NativeStorage, from, to common.Address, amount domain.Amount) error {
	if amount.IsZero() || from == to {
		return nil
	}

	fromBalance, err := st.NativeBalance(ctx, from)
	if err != nil {
		return fmt.Errorf("could not get native balance: %w", err)
	}
	rest, underflow := fromBalance.Sub(amount)
	if underflow {
		return serrors.With(serrors.ErrInsufficientBalance, "insufficient native balance: has %s, needs %s",
			fromBalance, amount)
	}
	if err := st.SetNativeBalance(ctx, from, rest); err != nil {
		return fmt.Errorf("could not set native balance: %w", err)
	}

	toBalance, err := st.NativeBalance(ctx, to)
	if err != nil {
		return fmt.Errorf("could not get native balance: %w", err)
	}
	if err := st.SetNativeBalance(ctx, to, toBalance.Add(amount)); err != nil {
		return fmt.Errorf("could not set native balance: %w", err)
	}

	return nil
}
