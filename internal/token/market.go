package token

import (
	"context"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/swap"

	"github.com/ethereum/go-ethereum/common"
)

// routerError gives router failures without a kind a client-facing one.
func routerError(err error, msg string) error {
	if serrors.KindOf(err) != nil {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
}

func (t *token) QuoteBuy(ctx context.Context, nativeIn domain.Amount) (domain.Amount, error) {
	state, err := t.read(ctx)
	if err != nil {
		return domain.Zero, err
	}

	out, err := t.router.QuoteBuy(ctx, t.storage, state.Address, nativeIn)
	if err != nil {
		return domain.Zero, routerError(err, "could not quote buy")
	}

	return out, nil
}

// Buy spends nativeIn of caller's native currency on tokens through the main
// pair. The receipt amount is what caller received after tax.
func (t *token) Buy(ctx context.Context, caller common.Address, nativeIn, minOut domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "buy", func(ctx context.Context, c *call) error {
		out, err := t.router.SwapExactNativeForTokens(ctx, c.st, c, caller, nativeIn, minOut, caller)
		if err != nil {
			return routerError(err, "swap failed")
		}
		c.amount = out

		return nil
	})
}

// Sell swaps amountIn of caller's tokens for native currency. caller must
// have approved the router.
func (t *token) Sell(ctx context.Context, caller common.Address, amountIn, minOut domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "sell", func(ctx context.Context, c *call) error {
		out, err := t.router.SwapExactTokensForNative(ctx, c.st, c, caller, amountIn, minOut, caller)
		if err != nil {
			return routerError(err, "swap failed")
		}
		c.amount = out

		return nil
	})
}

// AddLiquidity deposits tokens and native currency into the main pair at the
// current ratio. caller must have approved the router.
func (t *token) AddLiquidity(ctx context.Context,
	caller common.Address,
	tokenAmount, nativeAmount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "add liquidity", func(ctx context.Context, c *call) error {
		added, err := t.router.AddLiquidityNative(ctx, c.st, c, caller, tokenAmount, nativeAmount, caller)
		if err != nil {
			return routerError(err, "could not add liquidity")
		}
		c.amount = added.Liquidity

		return nil
	})
}

// SendNative moves native currency between accounts, e.g. to fund a wallet or
// to send some to the token's account by mistake.
func (t *token) SendNative(ctx context.Context, caller, to common.Address, amount domain.Amount) (*Receipt, error) {
	return t.exec(ctx, "send native", func(ctx context.Context, c *call) error {
		if to == domain.ZeroAddress {
			return serrors.With(serrors.ErrInvalidAddress, "cannot send to the zero address")
		}
		c.amount = amount

		return swap.MoveNative(ctx, c.st, caller, to, amount)
	})
}
