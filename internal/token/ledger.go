package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"

	"github.com/ethereum/go-ethereum/common"
)

func (c *call) debit(ctx context.Context, addr common.Address, amount domain.Amount) error {
	bal, err := c.st.Balance(ctx, addr)
	if err != nil {
		return fmt.Errorf("could not get balance: %w", err)
	}

	rest, underflow := bal.Sub(amount)
	if underflow {
		return serrors.With(serrors.ErrInsufficientBalance, "insufficient balance: %s has %s, needs %s",
			addr.Hex(), bal, amount)
	}
	if err := c.st.SetBalance(ctx, addr, rest); err != nil {
		return fmt.Errorf("could not set balance: %w", err)
	}

	return nil
}

func (c *call) credit(ctx context.Context, addr common.Address, amount domain.Amount) error {
	if amount.IsZero() {
		return nil
	}

	bal, err := c.st.Balance(ctx, addr)
	if err != nil {
		return fmt.Errorf("could not get balance: %w", err)
	}
	if err := c.st.SetBalance(ctx, addr, bal.Add(amount)); err != nil {
		return fmt.Errorf("could not set balance: %w", err)
	}

	return nil
}

func (c *call) spendAllowance(ctx context.Context, owner, spender common.Address, amount domain.Amount) error {
	current, err := c.st.Allowance(ctx, owner, spender)
	if err != nil {
		return fmt.Errorf("could not get allowance: %w", err)
	}
	if current == domain.MaxAmount {
		return nil
	}

	rest, underflow := current.Sub(amount)
	if underflow {
		return serrors.With(serrors.ErrInsufficientAllowance, "insufficient allowance: has %s, needs %s",
			current, amount)
	}
	if err := c.st.SetAllowance(ctx, owner, spender, rest); err != nil {
		return fmt.Errorf("could not set allowance: %w", err)
	}

	return nil
}

func (c *call) approve(ctx context.Context, owner, spender common.Address, amount domain.Amount) error {
	if owner == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "approve from the zero address")
	}
	if spender == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "approve to the zero address")
	}

	if err := c.st.SetAllowance(ctx, owner, spender, amount); err != nil {
		return fmt.Errorf("could not set allowance: %w", err)
	}
	c.emit(domain.EventApproval,
		"owner", owner.Hex(),
		"spender", spender.Hex(),
		"value", amount.String())

	return nil
}

// transfer moves amount from from to to through the tax pipeline. The
// recipient is credited last: a distribution triggered by this transfer
// must not see the recipient's incoming tokens, in particular when the
// recipient is the pair the distribution sells into.
func (c *call) transfer(ctx context.Context, from, to common.Address, amount domain.Amount) error {
	if from == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "transfer from the zero address")
	}
	if to == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "transfer to the zero address")
	}

	if err := c.debit(ctx, from, amount); err != nil {
		return err
	}

	net := amount
	switch c.state.Variant {
	case domain.VariantDecay:
		fee, err := c.decayFee(ctx, from, amount)
		if err != nil {
			return err
		}
		if err := c.settleDecay(ctx, from, fee); err != nil {
			return err
		}
		net = amount.MustSub(fee)
	default:
		cls, cuts, err := c.tieredCuts(ctx, from, to, amount)
		if err != nil {
			return err
		}
		if err := c.settle(ctx, from, cls, cuts); err != nil {
			return err
		}
		net = cuts.Net

		ok, err := c.shouldDistribute(ctx, from)
		if err != nil {
			return err
		}
		if ok {
			if err := c.distribute(ctx); err != nil {
				return err
			}
		}
	}

	if err := c.credit(ctx, to, net); err != nil {
		return err
	}
	if err := c.recordReceipt(ctx, to); err != nil {
		return err
	}
	c.emit(domain.EventTransfer,
		"from", from.Hex(),
		"to", to.Hex(),
		"value", net.String())

	return nil
}

func (c *call) mint(ctx context.Context, to common.Address, amount domain.Amount) error {
	if to == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "mint to the zero address")
	}

	supply, overflow := c.state.TotalSupply.AddChecked(amount)
	if overflow {
		return serrors.With(serrors.ErrBadRequest, "total supply overflow")
	}
	c.state.TotalSupply = supply

	if err := c.credit(ctx, to, amount); err != nil {
		return err
	}
	if err := c.recordReceipt(ctx, to); err != nil {
		return err
	}
	c.emit(domain.EventTransfer,
		"from", domain.ZeroAddress.Hex(),
		"to", to.Hex(),
		"value", amount.String())

	return nil
}

func (c *call) burn(ctx context.Context, from common.Address, amount domain.Amount) error {
	if from == domain.ZeroAddress {
		return serrors.With(serrors.ErrInvalidAddress, "burn from the zero address")
	}

	if err := c.debit(ctx, from, amount); err != nil {
		return err
	}
	c.state.TotalSupply = c.state.TotalSupply.MustSub(amount)
	c.emit(domain.EventTransfer,
		"from", from.Hex(),
		"to", domain.ZeroAddress.Hex(),
		"value", amount.String())

	return nil
}

func (t *token) Transfer(ctx context.Context, caller, to common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "transfer", func(ctx context.Context, c *call) error {
		return c.transfer(ctx, caller, to, amount)
	})
}

// TransferFrom moves tokens on behalf of from, spending the allowance from
// granted to caller.
func (t *token) TransferFrom(ctx context.Context,
	caller, from, to common.Address,
	amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "transfer from", func(ctx context.Context, c *call) error {
		return c.TransferFrom(ctx, caller, from, to, amount)
	})
}

func (t *token) Approve(ctx context.Context, caller, spender common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "approve", func(ctx context.Context, c *call) error {
		return c.approve(ctx, caller, spender, amount)
	})
}

func (t *token) IncreaseAllowance(ctx context.Context,
	caller, spender common.Address,
	added domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "increase allowance", func(ctx context.Context, c *call) error {
		current, err := c.st.Allowance(ctx, caller, spender)
		if err != nil {
			return fmt.Errorf("could not get allowance: %w", err)
		}
		sum, overflow := current.AddChecked(added)
		if overflow {
			return serrors.With(serrors.ErrBadRequest, "allowance overflow")
		}

		return c.approve(ctx, caller, spender, sum)
	})
}

func (t *token) DecreaseAllowance(ctx context.Context,
	caller, spender common.Address,
	subtracted domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "decrease allowance", func(ctx context.Context, c *call) error {
		current, err := c.st.Allowance(ctx, caller, spender)
		if err != nil {
			return fmt.Errorf("could not get allowance: %w", err)
		}
		rest, underflow := current.Sub(subtracted)
		if underflow {
			return serrors.With(serrors.ErrInsufficientAllowance, "decreased allowance below zero")
		}

		return c.approve(ctx, caller, spender, rest)
	})
}

func (t *token) Burn(ctx context.Context, caller common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "burn", func(ctx context.Context, c *call) error {
		return c.burn(ctx, caller, amount)
	})
}

// BurnFrom destroys tokens of from. The allowance is checked before any
// balance is touched.
func (t *token) BurnFrom(ctx context.Context, caller, from common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "burn from", func(ctx context.Context, c *call) error {
		if err := c.spendAllowance(ctx, from, caller, amount); err != nil {
			return err
		}

		return c.burn(ctx, from, amount)
	})
}

// Mint creates amount new tokens for the minter.
func (t *token) Mint(ctx context.Context, caller common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "mint", func(ctx context.Context, c *call) error {
		if caller == domain.ZeroAddress || caller != c.state.Minter {
			return serrors.With(serrors.ErrUnauthorized, "caller is not the minter")
		}

		return c.mint(ctx, caller, amount)
	})
}
