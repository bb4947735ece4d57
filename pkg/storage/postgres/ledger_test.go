package postgres_test

import (
	"context"
	"taxtoken/pkg/domain"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Ledger(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	spender := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	big := domain.MustParseAmount("1000000000000000000000000000")

	require.NoError(t, pg.SetBalance(ctx, holder, big))
	require.NoError(t, pg.SetBalance(ctx, spender, domain.NewAmount(5)))
	bal, err := pg.Balance(ctx, holder)
	require.NoError(t, err)
	require.Equal(t, big, bal)

	total, err := pg.TotalBalances(ctx)
	require.NoError(t, err)
	require.Equal(t, big.Add(domain.NewAmount(5)), total)

	require.NoError(t, pg.SetBalance(ctx, spender, domain.Zero))
	total, err = pg.TotalBalances(ctx)
	require.NoError(t, err)
	require.Equal(t, big, total)

	require.NoError(t, pg.SetAllowance(ctx, holder, spender, domain.NewAmount(3)))
	require.NoError(t, pg.SetAllowance(ctx, holder, spender, domain.NewAmount(4)))
	allowance, err := pg.Allowance(ctx, holder, spender)
	require.NoError(t, err)
	require.Equal(t, domain.NewAmount(4), allowance)

	allowance, err = pg.Allowance(ctx, spender, holder)
	require.NoError(t, err)
	require.True(t, allowance.IsZero())
}

func TestPgSQL_StateRoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	st, err := pg.State(ctx)
	require.NoError(t, err)
	require.Nil(t, st)

	want := domain.TokenState{
		Name:        "Stink",
		Symbol:      "STINK",
		Decimals:    18,
		Variant:     domain.VariantTiered,
		Address:     common.HexToAddress("0x1000000000000000000000000000000000000001"),
		Owner:       holder,
		Marketing:   common.HexToAddress("0x2000000000000000000000000000000000000002"),
		BuyTaxes:    domain.TaxTiers{Marketing: 1, Liquidity: 1, Stake: 1},
		SellTaxes:   domain.TaxTiers{Marketing: 2, Liquidity: 1, Stake: 3},
		Threshold:   domain.MustParseAmount("100000000000000000000"),
		TotalSupply: domain.MustParseAmount("1000000000000000000000000000"),
		Accrued:     domain.Fees{Marketing: domain.NewAmount(11), Liquidity: domain.NewAmount(12)},
		DecayWindow: 72 * time.Hour,
	}
	require.NoError(t, pg.SaveState(ctx, want))

	want.Accrued = domain.Fees{}
	want.Distributed = domain.Fees{Marketing: domain.NewAmount(11), Liquidity: domain.NewAmount(12)}
	require.NoError(t, pg.SaveState(ctx, want))

	got, err := pg.State(ctx)
	require.NoError(t, err)
	require.Equal(t, want, *got)
}

func TestPgSQL_RegistriesAndClock(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	pair := common.HexToAddress("0x3000000000000000000000000000000000000003")

	require.NoError(t, pg.SetExempt(ctx, holder, true))
	require.NoError(t, pg.SetExempt(ctx, holder, true))
	exempt, err := pg.IsExempt(ctx, holder)
	require.NoError(t, err)
	require.True(t, exempt)

	require.NoError(t, pg.SetPair(ctx, pair, true))
	pairs, err := pg.Pairs(ctx)
	require.NoError(t, err)
	require.Equal(t, []common.Address{pair}, pairs)

	require.NoError(t, pg.SetPair(ctx, pair, false))
	isPair, err := pg.IsPair(ctx, pair)
	require.NoError(t, err)
	require.False(t, isPair)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, pg.SetLastReceived(ctx, holder, at))
	got, err := pg.LastReceived(ctx, holder)
	require.NoError(t, err)
	require.True(t, at.Equal(got))
}

func TestPgSQL_PoolsAndEvents(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	pair := common.HexToAddress("0x3000000000000000000000000000000000000003")

	pool := domain.Pool{
		Address:         pair,
		Token:           holder,
		ReserveToken:    domain.NewAmount(1000),
		ReserveNative:   domain.NewAmount(10),
		LiquiditySupply: domain.NewAmount(100),
	}
	require.NoError(t, pg.SavePool(ctx, pool))
	pool.ReserveToken = domain.NewAmount(900)
	require.NoError(t, pg.SavePool(ctx, pool))

	got, err := pg.Pool(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, pool, *got)

	require.NoError(t, pg.SetLiquidityBalance(ctx, pair, holder, domain.NewAmount(100)))
	lp, err := pg.LiquidityBalance(ctx, pair, holder)
	require.NoError(t, err)
	require.Equal(t, domain.NewAmount(100), lp)

	require.NoError(t, pg.SetNativeBalance(ctx, pair, domain.NewAmount(10)))
	native, err := pg.NativeBalance(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, domain.NewAmount(10), native)

	stored, err := pg.StoreEvents(ctx,
		domain.NewEvent(domain.EventTransfer, "from", holder.Hex(), "amount", "5"),
		domain.NewEvent(domain.EventThresholdUpdated, "threshold", "7"),
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Less(t, stored[0].ID, stored[1].ID)

	events, err := pg.Events(ctx, domain.EventThresholdUpdated, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "7", events[0].Attributes["threshold"])

	byIDs, err := pg.EventsByIDs(ctx, []int64{stored[0].ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	require.Equal(t, "5", byIDs[0].Attributes["amount"])
}
