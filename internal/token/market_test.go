package token_test

import (
	"taxtoken/internal/token"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/swap/amm"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuy_TaxesBuyTiers(t *testing.T) {
	f := newMarket(t)

	quote, err := f.tk.QuoteBuy(f.ctx, units("0.1"))
	require.NoError(t, err)

	receipt, err := f.tk.Buy(f.ctx, alice, units("0.1"), domain.Zero)
	require.NoError(t, err)

	cuts := token.ComputeCuts(domain.Buy, quote, false, buyTiers, sellTiers)
	require.Equal(t, cuts.Net, receipt.Amount)
	require.Equal(t, cuts.Net, f.balance(t, alice))
	require.Equal(t, units("9.9"), f.native(t, alice))

	// net is 97% of the quote up to rounding
	ideal, err := quote.MulDiv(domain.NewAmount(97), domain.NewAmount(100))
	require.NoError(t, err)
	diff, underflow := cuts.Net.Sub(ideal)
	require.False(t, underflow)
	require.True(t, diff.Lt(domain.NewAmount(1000)))

	state := f.info(t)
	require.Equal(t, quote.PercentOf(1), state.Accrued.Marketing)
	require.Equal(t, state.Accrued.Marketing, state.Accrued.Liquidity)
	require.Equal(t, quote.PercentOf(1), f.balance(t, vault))
	require.True(t, hasEvent(receipt.Events, domain.EventTaxCollected))

	// accrued fees are above the threshold, but a buy never distributes
	require.False(t, state.Accrued.Total().Lt(state.Threshold))
	require.False(t, hasEvent(receipt.Events, domain.EventDistributionCompleted))
	f.requireConserved(t)
}

func TestBuy_ExemptBuyerIsUntaxed(t *testing.T) {
	f := newMarket(t)

	_, err := f.tk.SetExempt(f.ctx, owner, alice, true)
	require.NoError(t, err)

	quote, err := f.tk.QuoteBuy(f.ctx, units("0.1"))
	require.NoError(t, err)
	receipt, err := f.tk.Buy(f.ctx, alice, units("0.1"), domain.Zero)
	require.NoError(t, err)

	require.Equal(t, quote, receipt.Amount)
	require.True(t, f.info(t).Accrued.Total().IsZero())
	require.True(t, f.balance(t, vault).IsZero())
}

func TestBuy_MinOutAppliesAfterTax(t *testing.T) {
	f := newMarket(t)

	quote, err := f.tk.QuoteBuy(f.ctx, units("0.1"))
	require.NoError(t, err)

	_, err = f.tk.Buy(f.ctx, alice, units("0.1"), quote)
	require.ErrorIs(t, err, amm.ErrInsufficientOutputAmount)
	require.Equal(t, units("10"), f.native(t, alice))
	require.True(t, f.info(t).Accrued.Total().IsZero())
}

func TestSell_TaxesSellTiers(t *testing.T) {
	f := newMarket(t)

	_, err := f.tk.Transfer(f.ctx, owner, alice, units("10000"))
	require.NoError(t, err)
	_, err = f.tk.Approve(f.ctx, alice, f.router.Address(), domain.MaxAmount)
	require.NoError(t, err)

	pool, err := f.st.Pool(f.ctx, f.state.MainPair)
	require.NoError(t, err)

	receipt, err := f.tk.Sell(f.ctx, alice, units("1000"), domain.Zero)
	require.NoError(t, err)

	// 2% marketing, 1% liquidity and 3% stake leave 940 for the pair
	expected, err := amm.AmountOut(units("940"), pool.ReserveToken, pool.ReserveNative)
	require.NoError(t, err)
	require.Equal(t, expected, receipt.Amount)
	require.Equal(t, units("10").Add(expected), f.native(t, alice))
	require.Equal(t, units("9000"), f.balance(t, alice))
	require.Equal(t, units("30"), f.balance(t, vault))

	state := f.info(t)
	require.Equal(t, units("20"), state.Accrued.Marketing)
	require.Equal(t, units("10"), state.Accrued.Liquidity)
	f.requireConserved(t)
}

func TestTransfer_PairToPairIsSell(t *testing.T) {
	f := newMarket(t)

	_, err := f.tk.SetPair(f.ctx, owner, bob, true)
	require.NoError(t, err)

	_, err = f.tk.Transfer(f.ctx, f.state.MainPair, bob, units("100"))
	require.NoError(t, err)

	require.Equal(t, units("94"), f.balance(t, bob))
	require.Equal(t, units("2"), f.info(t).Accrued.Marketing)
}

func TestDistribution_NextTransferAfterThreshold(t *testing.T) {
	f := newMarket(t)

	poolBefore, err := f.st.Pool(f.ctx, f.state.MainPair)
	require.NoError(t, err)

	_, err = f.tk.Buy(f.ctx, alice, units("0.1"), domain.Zero)
	require.NoError(t, err)
	accrued := f.info(t).Accrued
	require.False(t, accrued.Total().Lt(units("100")))
	require.True(t, f.native(t, marketing).IsZero())

	// a transfer of any size triggers the cycle
	receipt, err := f.tk.Transfer(f.ctx, alice, bob, domain.Zero)
	require.NoError(t, err)
	require.True(t, hasEvent(receipt.Events, domain.EventDistributionCompleted))

	// liquidity tokens the pool price did not take stay accrued on the token account
	state := f.info(t)
	require.True(t, state.Accrued.Marketing.IsZero())
	require.True(t, state.Accrued.Liquidity.Lt(accrued.Liquidity.Div(2)))
	require.Equal(t, accrued.Marketing, state.Distributed.Marketing)
	require.Equal(t, accrued.Liquidity, state.Distributed.Liquidity.Add(state.Accrued.Liquidity))
	require.Equal(t, state.Accrued.Total(), f.balance(t, state.Address))

	poolAfter, err := f.st.Pool(f.ctx, f.state.MainPair)
	require.NoError(t, err)
	require.True(t, poolBefore.LiquiditySupply.Lt(poolAfter.LiquiditySupply))
	require.Equal(t, f.balance(t, f.state.MainPair), poolAfter.ReserveToken)

	lp, err := f.st.LiquidityBalance(f.ctx, f.state.MainPair, lpVault)
	require.NoError(t, err)
	require.False(t, lp.IsZero())
	require.False(t, f.native(t, marketing).IsZero())
	require.True(t, f.native(t, state.Address).IsZero())
	f.requireConserved(t)

	// the next transfer has nothing left to distribute
	receipt, err = f.tk.Transfer(f.ctx, alice, bob, domain.Zero)
	require.NoError(t, err)
	require.False(t, hasEvent(receipt.Events, domain.EventDistributionCompleted))
}

func TestDistribution_BelowThresholdDoesNotFire(t *testing.T) {
	f := newMarket(t)

	_, err := f.tk.SetThreshold(f.ctx, owner, units("1000000"))
	require.NoError(t, err)

	_, err = f.tk.Buy(f.ctx, alice, units("0.1"), domain.Zero)
	require.NoError(t, err)
	accrued := f.info(t).Accrued

	receipt, err := f.tk.Transfer(f.ctx, alice, bob, units("1"))
	require.NoError(t, err)
	require.False(t, hasEvent(receipt.Events, domain.EventDistributionCompleted))
	require.Equal(t, accrued, f.info(t).Accrued)
	require.True(t, f.info(t).Distributed.Total().IsZero())
}

func TestDistribution_InsideSell(t *testing.T) {
	f := newMarket(t)

	_, err := f.tk.SetThreshold(f.ctx, owner, units("10"))
	require.NoError(t, err)
	_, err = f.tk.Transfer(f.ctx, owner, alice, units("10000"))
	require.NoError(t, err)
	_, err = f.tk.Approve(f.ctx, alice, f.router.Address(), domain.MaxAmount)
	require.NoError(t, err)

	receipt, err := f.tk.Sell(f.ctx, alice, units("1000"), domain.Zero)
	require.NoError(t, err)
	require.True(t, hasEvent(receipt.Events, domain.EventDistributionCompleted))
	require.False(t, receipt.Amount.IsZero())
	require.Equal(t, units("10").Add(receipt.Amount), f.native(t, alice))

	state := f.info(t)
	require.True(t, state.Accrued.Marketing.IsZero())
	require.Equal(t, units("20"), state.Distributed.Marketing)
	require.Equal(t, units("10"), state.Distributed.Liquidity.Add(state.Accrued.Liquidity))
	require.Equal(t, state.Accrued.Total(), f.balance(t, state.Address))
	require.False(t, f.native(t, marketing).IsZero())

	pool, err := f.st.Pool(f.ctx, f.state.MainPair)
	require.NoError(t, err)
	require.Equal(t, f.balance(t, f.state.MainPair), pool.ReserveToken)
	f.requireConserved(t)
}

func TestAddLiquidity_ReturnsMintedShares(t *testing.T) {
	f := newMarket(t)

	receipt, err := f.tk.AddLiquidity(f.ctx, owner, units("1000000"), units("1"))
	require.NoError(t, err)
	require.False(t, receipt.Amount.IsZero())

	_, err = f.tk.AddLiquidity(f.ctx, alice, units("1"), units("1"))
	require.Error(t, err)
}
