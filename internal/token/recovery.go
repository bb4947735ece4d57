package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/swap"

	"github.com/ethereum/go-ethereum/common"
)

// RecoverToken sends the whole balance of a foreign token held by the token's
// account to the recovery destination. Anyone may trigger it.
func (t *token) RecoverToken(ctx context.Context, _, foreign common.Address) (*Receipt, error) {
	return t.exec(ctx, "recover token", func(ctx context.Context, c *call) error {
		self := c.state.Address
		if foreign == self {
			return serrors.With(serrors.ErrSelfRecovery, "cannot recover the token's own balance")
		}

		bal, err := c.st.ForeignBalance(ctx, foreign, self)
		if err != nil {
			return fmt.Errorf("could not get foreign balance: %w", err)
		}
		if bal.IsZero() {
			return serrors.With(serrors.ErrNothingToRecover, "no %s tokens to recover", foreign.Hex())
		}

		dest := c.state.RecoveryDestination()
		destBal, err := c.st.ForeignBalance(ctx, foreign, dest)
		if err != nil {
			return fmt.Errorf("could not get foreign balance: %w", err)
		}
		if err := c.st.SetForeignBalance(ctx, foreign, self, domain.Zero); err != nil {
			return fmt.Errorf("could not set foreign balance: %w", err)
		}
		if err := c.st.SetForeignBalance(ctx, foreign, dest, destBal.Add(bal)); err != nil {
			return fmt.Errorf("could not set foreign balance: %w", err)
		}

		c.amount = bal
		c.emit(domain.EventRecovered,
			"asset", foreign.Hex(),
			"to", dest.Hex(),
			"value", bal.String())

		return nil
	})
}

// RecoverNative sends native currency held by the token's account to the
// recovery destination. Anyone may trigger it.
func (t *token) RecoverNative(ctx context.Context, _ common.Address) (*Receipt, error) {
	return t.exec(ctx, "recover native", func(ctx context.Context, c *call) error {
		self := c.state.Address
		bal, err := c.st.NativeBalance(ctx, self)
		if err != nil {
			return fmt.Errorf("could not get native balance: %w", err)
		}
		if bal.IsZero() {
			return serrors.With(serrors.ErrNothingToRecover, "no native currency to recover")
		}

		dest := c.state.RecoveryDestination()
		if err := swap.MoveNative(ctx, c.st, self, dest, bal); err != nil {
			return err
		}

		c.amount = bal
		c.emit(domain.EventRecovered,
			"asset", "native",
			"to", dest.Hex(),
			"value", bal.String())

		return nil
	})
}
