package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/swap"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// shouldDistribute reports whether a transfer sent by from may run a
// distribution cycle. Transfers out of a pair never do: the pair is in the
// middle of a swap and cannot be traded against.
func (c *call) shouldDistribute(ctx context.Context, from common.Address) (bool, error) {
	if c.state.Variant != domain.VariantTiered || c.t.lock.isHeld() {
		return false, nil
	}

	accrued := c.state.Accrued.Total()
	if accrued.IsZero() || accrued.Lt(c.state.Threshold) {
		return false, nil
	}

	fromPair, err := c.st.IsPair(ctx, from)
	if err != nil {
		return false, fmt.Errorf("could not check pair: %w", err)
	}

	return !fromPair, nil
}

// distribute converts accrued fees. Half of the liquidity-designated tokens
// are kept, the other half is sold together with the marketing-designated
// tokens. The native proceeds attributable to liquidity are paired with the
// kept half and added to the pool for the liquidity vault; the rest goes to
// the marketing wallet. Tokens the router does not take when adding
// liquidity stay accrued for liquidity and go out with the next cycle.
func (c *call) distribute(ctx context.Context) error {
	release, ok := c.t.lock.acquire()
	if !ok {
		return nil
	}
	defer release()

	accrued := c.state.Accrued
	self := c.state.Address
	router := c.t.router.Address()

	half := accrued.Liquidity.Div(2)
	swapLiquidity := accrued.Liquidity.MustSub(half)
	toSwap := swapLiquidity.Add(accrued.Marketing)

	proceeds := domain.Zero
	if !toSwap.IsZero() {
		if err := c.approve(ctx, self, router, toSwap); err != nil {
			return c.failDistribution(ctx, err, "could not approve router")
		}

		var err error
		proceeds, err = c.t.router.SwapExactTokensForNative(ctx, c.st, c, self, toSwap, domain.Zero, self)
		if err != nil {
			return c.failDistribution(ctx, err, "could not swap accrued fees")
		}
	}

	nativeForLiquidity := domain.Zero
	if !proceeds.IsZero() && !swapLiquidity.IsZero() {
		var err error
		nativeForLiquidity, err = proceeds.MulDiv(swapLiquidity, toSwap)
		if err != nil {
			return c.failDistribution(ctx, err, "could not split proceeds")
		}
	}

	var added swap.Liquidity
	if !half.IsZero() && !nativeForLiquidity.IsZero() {
		if err := c.approve(ctx, self, router, half); err != nil {
			return c.failDistribution(ctx, err, "could not approve router")
		}

		var err error
		added, err = c.t.router.AddLiquidityNative(ctx, c.st, c, self, half, nativeForLiquidity, c.state.LiquidityVault)
		if err != nil {
			return c.failDistribution(ctx, err, "could not add liquidity")
		}
	}

	carried := domain.Zero
	if rest, underflow := half.Sub(added.Token); !underflow {
		carried = rest
	}

	marketingNative := proceeds.MustSub(added.Native)
	if err := swap.MoveNative(ctx, c.st, self, c.state.Marketing, marketingNative); err != nil {
		return c.failDistribution(ctx, err, "could not pay marketing wallet")
	}

	c.state.Distributed.Marketing = c.state.Distributed.Marketing.Add(accrued.Marketing)
	c.state.Distributed.Liquidity = c.state.Distributed.Liquidity.Add(accrued.Liquidity.MustSub(carried))
	c.state.Accrued = domain.Fees{Liquidity: carried}
	c.distributions++

	c.emit(domain.EventDistributionCompleted,
		"marketingTokens", accrued.Marketing.String(),
		"liquidityTokens", accrued.Liquidity.String(),
		"tokensSwapped", toSwap.String(),
		"nativeProceeds", proceeds.String(),
		"marketingNative", marketingNative.String(),
		"liquidityTokensAdded", added.Token.String(),
		"liquidityNativeAdded", added.Native.String(),
		"liquidityMinted", added.Liquidity.String(),
		"liquidityCarried", carried.String())
	logger.Info(ctx, "distribution completed",
		zap.Stringer("tokensSwapped", toSwap),
		zap.Stringer("nativeProceeds", proceeds),
		zap.Stringer("marketingNative", marketingNative),
		zap.Stringer("liquidityMinted", added.Liquidity))

	return nil
}

func (c *call) failDistribution(ctx context.Context, err error, msg string) error {
	c.t.metrics.addDistribution(ctx, false)

	return serrors.Wrap(serrors.ErrDistributionFailure, err, "%s", msg)
}
