package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// InDecayWindow reports whether a send at now falls inside the window that
// started at last. An address that never received tokens is outside.
func InDecayWindow(last, now time.Time, window time.Duration) bool {
	if last.IsZero() {
		return false
	}

	return now.Sub(last) < window
}

// decayFee returns the tax owed by from on a send of amount.
func (c *call) decayFee(ctx context.Context, from common.Address, amount domain.Amount) (domain.Amount, error) {
	exempt, err := c.st.IsExempt(ctx, from)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not check exemption: %w", err)
	}
	if exempt {
		return domain.Zero, nil
	}

	last, err := c.st.LastReceived(ctx, from)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get receipt clock: %w", err)
	}
	if !InDecayWindow(last, c.now, c.state.DecayWindow) {
		return domain.Zero, nil
	}

	return amount.PercentOf(c.state.DecayPercent), nil
}

// recordReceipt restarts the decay clock of a non-exempt recipient.
func (c *call) recordReceipt(ctx context.Context, to common.Address) error {
	if c.state.Variant != domain.VariantDecay {
		return nil
	}

	exempt, err := c.st.IsExempt(ctx, to)
	if err != nil {
		return fmt.Errorf("could not check exemption: %w", err)
	}
	if exempt {
		return nil
	}

	if err := c.st.SetLastReceived(ctx, to, c.now); err != nil {
		return fmt.Errorf("could not set receipt clock: %w", err)
	}

	return nil
}
