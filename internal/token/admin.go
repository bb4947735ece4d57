package token

import (
	"context"
	"fmt"
	"strconv"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"

	"github.com/ethereum/go-ethereum/common"
)

func (c *call) onlyOwner(caller common.Address) error {
	if caller == domain.ZeroAddress || caller != c.state.Owner {
		return serrors.With(serrors.ErrUnauthorized, "caller is not the owner")
	}

	return nil
}

func (t *token) SetExempt(ctx context.Context, caller, addr common.Address, exempt bool) (*Receipt, error) {
	return t.exec(ctx, "set exemption", func(ctx context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}
		if addr == domain.ZeroAddress {
			return serrors.With(serrors.ErrInvalidAddress, "cannot exempt the zero address")
		}

		if err := c.st.SetExempt(ctx, addr, exempt); err != nil {
			return fmt.Errorf("could not set exemption: %w", err)
		}
		c.emit(domain.EventExemptionUpdated,
			"account", addr.Hex(),
			"exempt", strconv.FormatBool(exempt))

		return nil
	})
}

// SetPair registers or unregisters a trading pool. The pool created at
// deployment cannot be unregistered.
func (t *token) SetPair(ctx context.Context, caller, addr common.Address, pair bool) (*Receipt, error) {
	return t.exec(ctx, "set pair", func(ctx context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}
		if addr == domain.ZeroAddress {
			return serrors.With(serrors.ErrInvalidAddress, "pair cannot be the zero address")
		}
		if !pair && addr == c.state.MainPair {
			return serrors.With(serrors.ErrBadRequest, "the main pair cannot be unregistered")
		}

		if err := c.st.SetPair(ctx, addr, pair); err != nil {
			return fmt.Errorf("could not set pair: %w", err)
		}
		c.emit(domain.EventPairUpdated,
			"pair", addr.Hex(),
			"registered", strconv.FormatBool(pair))

		return nil
	})
}

func (t *token) SetBeneficiary(ctx context.Context,
	caller common.Address,
	role domain.Role,
	addr common.Address) (*Receipt, error) {
	return t.exec(ctx, "set beneficiary", func(_ context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}
		if !role.Valid() {
			return serrors.With(serrors.ErrBadRequest, "unknown role %q", role)
		}
		if addr == domain.ZeroAddress {
			return serrors.With(serrors.ErrInvalidAddress, "%s cannot be the zero address", role)
		}

		previous := c.state.Beneficiary(role)
		c.state.SetBeneficiary(role, addr)
		c.emit(domain.EventBeneficiaryUpdated,
			"role", string(role),
			"previous", previous.Hex(),
			"account", addr.Hex())

		return nil
	})
}

func (t *token) SetThreshold(ctx context.Context, caller common.Address, threshold domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "set threshold", func(_ context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}

		previous := c.state.Threshold
		c.state.Threshold = threshold
		c.emit(domain.EventThresholdUpdated,
			"previous", previous.String(),
			"threshold", threshold.String())

		return nil
	})
}

func (t *token) TransferOwnership(ctx context.Context, caller, newOwner common.Address) (*Receipt, error) {
	return t.exec(ctx, "transfer ownership", func(_ context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}
		if newOwner == domain.ZeroAddress {
			return serrors.With(serrors.ErrInvalidAddress, "new owner is the zero address")
		}

		c.setOwner(newOwner)

		return nil
	})
}

// RenounceOwnership leaves the token without an owner. Owner-only operations
// are unavailable afterwards.
func (t *token) RenounceOwnership(ctx context.Context, caller common.Address) (*Receipt, error) {
	return t.exec(ctx, "renounce ownership", func(_ context.Context, c *call) error {
		if err := c.onlyOwner(caller); err != nil {
			return err
		}

		c.setOwner(domain.ZeroAddress)

		return nil
	})
}

func (c *call) setOwner(owner common.Address) {
	previous := c.state.Owner
	c.state.Owner = owner
	c.emit(domain.EventOwnershipTransferred,
		"previous", previous.Hex(),
		"owner", owner.Hex())
}
