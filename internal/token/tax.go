package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// ComputeCuts splits amount into the tier cuts for cls. Exempt transfers and
// normal wallet transfers pass through untaxed. Each cut is floored on its
// own, so Net absorbs the rounding and the cuts always sum back to amount.
func ComputeCuts(cls domain.Classification,
	amount domain.Amount,
	exempt bool,
	buy domain.TaxTiers,
	sell domain.TaxTiers) domain.Cuts {
	if exempt || cls == domain.Normal {
		return domain.Cuts{Net: amount}
	}

	tiers := buy
	if cls == domain.Sell {
		tiers = sell
	}

	cuts := domain.Cuts{
		Marketing: amount.PercentOf(tiers.Marketing),
		Liquidity: amount.PercentOf(tiers.Liquidity),
		Stake:     amount.PercentOf(tiers.Stake),
	}
	cuts.Net = amount.MustSub(cuts.Marketing).MustSub(cuts.Liquidity).MustSub(cuts.Stake)

	return cuts
}

// tieredCuts classifies a transfer and computes its cuts. Transfers made
// while a distribution holds the swap lock are never taxed.
func (c *call) tieredCuts(ctx context.Context,
	from, to common.Address,
	amount domain.Amount) (domain.Classification, domain.Cuts, error) {
	fromPair, err := c.st.IsPair(ctx, from)
	if err != nil {
		return domain.Normal, domain.Cuts{}, fmt.Errorf("could not check pair: %w", err)
	}
	toPair, err := c.st.IsPair(ctx, to)
	if err != nil {
		return domain.Normal, domain.Cuts{}, fmt.Errorf("could not check pair: %w", err)
	}
	cls := Classify(fromPair, toPair)

	if c.t.lock.isHeld() {
		return cls, domain.Cuts{Net: amount}, nil
	}

	fromExempt, err := c.st.IsExempt(ctx, from)
	if err != nil {
		return cls, domain.Cuts{}, fmt.Errorf("could not check exemption: %w", err)
	}
	toExempt, err := c.st.IsExempt(ctx, to)
	if err != nil {
		return cls, domain.Cuts{}, fmt.Errorf("could not check exemption: %w", err)
	}

	return cls, ComputeCuts(cls, amount, fromExempt || toExempt, c.state.BuyTaxes, c.state.SellTaxes), nil
}

// settle credits the stake cut to the vault and accrues the marketing and
// liquidity cuts on the token's own account.
func (c *call) settle(ctx context.Context, from common.Address, cls domain.Classification, cuts domain.Cuts) error {
	if !cuts.Taxed() {
		return nil
	}

	if !cuts.Stake.IsZero() {
		if err := c.credit(ctx, c.state.Vault, cuts.Stake); err != nil {
			return err
		}
		c.emit(domain.EventTransfer,
			"from", from.Hex(),
			"to", c.state.Vault.Hex(),
			"value", cuts.Stake.String())
	}

	accrued := cuts.Marketing.Add(cuts.Liquidity)
	if !accrued.IsZero() {
		if err := c.credit(ctx, c.state.Address, accrued); err != nil {
			return err
		}
		c.state.Accrued.Marketing = c.state.Accrued.Marketing.Add(cuts.Marketing)
		c.state.Accrued.Liquidity = c.state.Accrued.Liquidity.Add(cuts.Liquidity)
		c.emit(domain.EventTransfer,
			"from", from.Hex(),
			"to", c.state.Address.Hex(),
			"value", accrued.String())
	}

	c.emit(domain.EventTaxCollected,
		"from", from.Hex(),
		"direction", cls.String(),
		"marketing", cuts.Marketing.String(),
		"liquidity", cuts.Liquidity.String(),
		"stake", cuts.Stake.String())
	c.taxes = append(c.taxes,
		taxRecord{direction: cls.String(), category: "marketing", amount: cuts.Marketing},
		taxRecord{direction: cls.String(), category: "liquidity", amount: cuts.Liquidity},
		taxRecord{direction: cls.String(), category: "stake", amount: cuts.Stake})

	return nil
}

// settleDecay pays a decay tax straight to the dev wallet.
func (c *call) settleDecay(ctx context.Context, from common.Address, fee domain.Amount) error {
	if fee.IsZero() {
		return nil
	}

	if err := c.credit(ctx, c.state.Dev, fee); err != nil {
		return err
	}
	c.emit(domain.EventTransfer,
		"from", from.Hex(),
		"to", c.state.Dev.Hex(),
		"value", fee.String())
	c.emit(domain.EventTaxCollected,
		"from", from.Hex(),
		"direction", "decay",
		"dev", fee.String())
	c.taxes = append(c.taxes, taxRecord{direction: "decay", category: "dev", amount: fee})

	return nil
}
