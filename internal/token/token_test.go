package token_test

import (
	"context"
	"taxtoken/internal/token"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage/memory"
	"taxtoken/pkg/swap"
	"taxtoken/pkg/swap/amm"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	owner     = common.HexToAddress("0x1000000000000000000000000000000000000001") //nolint: gochecknoglobals
	minter    = common.HexToAddress("0x1000000000000000000000000000000000000002") //nolint: gochecknoglobals
	marketing = common.HexToAddress("0x1000000000000000000000000000000000000003") //nolint: gochecknoglobals
	vault     = common.HexToAddress("0x1000000000000000000000000000000000000004") //nolint: gochecknoglobals
	lpVault   = common.HexToAddress("0x1000000000000000000000000000000000000005") //nolint: gochecknoglobals
	dev       = common.HexToAddress("0x1000000000000000000000000000000000000006") //nolint: gochecknoglobals
	alice     = common.HexToAddress("0x00000000000000000000000000000000000a11ce") //nolint: gochecknoglobals
	bob       = common.HexToAddress("0x0000000000000000000000000000000000000b0b") //nolint: gochecknoglobals

	buyTiers  = domain.TaxTiers{Marketing: 1, Liquidity: 1, Stake: 1} //nolint: gochecknoglobals
	sellTiers = domain.TaxTiers{Marketing: 2, Liquidity: 1, Stake: 3} //nolint: gochecknoglobals

	t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals
)

func units(s string) domain.Amount {
	a, err := domain.ParseUnits(s, 18)
	if err != nil {
		panic(err)
	}

	return a
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

type fixture struct {
	ctx    context.Context
	st     *memory.Memory
	router swap.Router
	clock  *clock
	tk     token.Token
	state  *domain.TokenState
}

func tieredParams() token.DeployParams {
	return token.DeployParams{
		Name:           "Taxed Token",
		Symbol:         "TAX",
		Decimals:       18,
		Variant:        domain.VariantTiered,
		Supply:         units("1000000000"),
		Owner:          owner,
		Minter:         minter,
		Marketing:      marketing,
		Vault:          vault,
		LiquidityVault: lpVault,
		BuyTaxes:       buyTiers,
		SellTaxes:      sellTiers,
		Threshold:      units("100"),
		Funding: map[common.Address]domain.Amount{
			owner: units("1000"),
			alice: units("10"),
		},
	}
}

func decayParams() token.DeployParams {
	return token.DeployParams{
		Name:         "Decay Token",
		Symbol:       "DCY",
		Decimals:     18,
		Variant:      domain.VariantDecay,
		Supply:       units("1000000000"),
		Owner:        owner,
		Dev:          dev,
		DecayWindow:  72 * time.Hour,
		DecayPercent: 20,
	}
}

func newFixtureWithRouter(t *testing.T, router swap.Router, params token.DeployParams, opts token.Options) *fixture {
	t.Helper()

	f := &fixture{
		ctx:    context.Background(),
		st:     memory.New(),
		router: router,
		clock:  &clock{now: t0},
	}
	opts.Now = f.clock.Now

	tk, err := token.New(f.st, router, opts)
	require.NoError(t, err)
	f.tk = tk

	f.state, err = tk.Deploy(f.ctx, params)
	require.NoError(t, err)

	return f
}

func newFixture(t *testing.T, params token.DeployParams) *fixture {
	t.Helper()

	return newFixtureWithRouter(t, amm.New(amm.Options{}), params, token.Options{})
}

// newMarket deploys a tiered token and seeds its pair with 100M tokens and
// 100 native from the exempt owner.
func newMarket(t *testing.T) *fixture {
	t.Helper()

	f := newFixture(t, tieredParams())
	_, err := f.tk.Approve(f.ctx, owner, f.router.Address(), domain.MaxAmount)
	require.NoError(t, err)
	_, err = f.tk.AddLiquidity(f.ctx, owner, units("100000000"), units("100"))
	require.NoError(t, err)

	return f
}

func (f *fixture) balance(t *testing.T, addr common.Address) domain.Amount {
	t.Helper()
	bal, err := f.tk.BalanceOf(f.ctx, addr)
	require.NoError(t, err)

	return bal
}

func (f *fixture) native(t *testing.T, addr common.Address) domain.Amount {
	t.Helper()
	acc, err := f.tk.Account(f.ctx, addr)
	require.NoError(t, err)

	return acc.Native
}

func (f *fixture) info(t *testing.T) *domain.TokenState {
	t.Helper()
	state, err := f.tk.Info(f.ctx)
	require.NoError(t, err)

	return state
}

func (f *fixture) events(t *testing.T, kind domain.EventKind) []domain.Event {
	t.Helper()
	events, err := f.tk.Events(f.ctx, kind, 0, 10_000)
	require.NoError(t, err)

	return events
}

// requireConserved checks that balances add up to the supply and that the
// accrued fees are backed by the token's own balance.
func (f *fixture) requireConserved(t *testing.T) {
	t.Helper()

	state := f.info(t)
	total, err := f.st.TotalBalances(f.ctx)
	require.NoError(t, err)
	require.Equal(t, state.TotalSupply, total)
	require.False(t, f.balance(t, state.Address).Lt(state.Accrued.Total()))
}

func hasEvent(events []domain.Event, kind domain.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}

	return false
}

func TestDeploy_MintsSupplyAndRegistersPair(t *testing.T) {
	f := newFixture(t, tieredParams())

	require.Equal(t, crypto.CreateAddress(owner, 0), f.state.Address)
	require.Equal(t, f.router.PairFor(f.state.Address), f.state.MainPair)
	require.Equal(t, units("1000000000"), f.state.TotalSupply)
	require.Equal(t, units("1000000000"), f.balance(t, owner))
	require.Equal(t, units("10"), f.native(t, alice))

	for _, addr := range []common.Address{owner, f.state.Address} {
		acc, err := f.tk.Account(f.ctx, addr)
		require.NoError(t, err)
		require.True(t, acc.Exempt)
	}
	acc, err := f.tk.Account(f.ctx, f.state.MainPair)
	require.NoError(t, err)
	require.True(t, acc.Pair)

	mints := f.events(t, domain.EventTransfer)
	require.Len(t, mints, 1)
	require.Equal(t, domain.ZeroAddress.Hex(), mints[0].Attributes["from"])
	require.Equal(t, t0, mints[0].CreatedAt)
	f.requireConserved(t)

	_, err = f.tk.Deploy(f.ctx, tieredParams())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestDeploy_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *token.DeployParams)
		kind   serrors.Kind
	}{
		{
			name:   "missing marketing",
			mutate: func(p *token.DeployParams) { p.Marketing = domain.ZeroAddress },
			kind:   serrors.ErrInvalidAddress,
		},
		{
			name:   "missing owner",
			mutate: func(p *token.DeployParams) { p.Owner = domain.ZeroAddress },
			kind:   serrors.ErrInvalidAddress,
		},
		{
			name:   "tiers above 100",
			mutate: func(p *token.DeployParams) { p.SellTaxes = domain.TaxTiers{Marketing: 50, Liquidity: 50, Stake: 1} },
			kind:   serrors.ErrBadRequest,
		},
		{
			name:   "unknown variant",
			mutate: func(p *token.DeployParams) { p.Variant = "flat" },
			kind:   serrors.ErrBadRequest,
		},
		{
			name:   "missing symbol",
			mutate: func(p *token.DeployParams) { p.Symbol = "" },
			kind:   serrors.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := token.New(memory.New(), amm.New(amm.Options{}), token.Options{})
			require.NoError(t, err)

			params := tieredParams()
			tt.mutate(&params)
			_, err = tk.Deploy(context.Background(), params)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestDeploy_DecayNeedsDev(t *testing.T) {
	tk, err := token.New(memory.New(), amm.New(amm.Options{}), token.Options{})
	require.NoError(t, err)

	params := decayParams()
	params.Dev = domain.ZeroAddress
	_, err = tk.Deploy(context.Background(), params)
	require.ErrorIs(t, err, serrors.ErrInvalidAddress)
}

func TestToken_NotDeployed(t *testing.T) {
	tk, err := token.New(memory.New(), amm.New(amm.Options{}), token.Options{})
	require.NoError(t, err)

	_, err = tk.Info(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = tk.Transfer(context.Background(), alice, bob, domain.NewAmount(1))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTransfer_WalletToWalletIsUntaxed(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Transfer(f.ctx, owner, alice, units("1000"))
	require.NoError(t, err)

	receipt, err := f.tk.Transfer(f.ctx, alice, bob, units("100"))
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, domain.EventTransfer, receipt.Events[0].Kind)
	require.Equal(t, units("100").String(), receipt.Events[0].Attributes["value"])
	require.NotZero(t, receipt.Events[0].ID)

	require.Equal(t, units("900"), f.balance(t, alice))
	require.Equal(t, units("100"), f.balance(t, bob))
	require.True(t, f.info(t).Accrued.Total().IsZero())
	f.requireConserved(t)
}

func TestTransfer_Failures(t *testing.T) {
	f := newFixture(t, tieredParams())
	before := len(f.events(t, ""))

	_, err := f.tk.Transfer(f.ctx, alice, bob, domain.NewAmount(1))
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)

	_, err = f.tk.Transfer(f.ctx, owner, domain.ZeroAddress, domain.NewAmount(1))
	require.ErrorIs(t, err, serrors.ErrInvalidAddress)

	require.Len(t, f.events(t, ""), before)
	require.Equal(t, units("1000000000"), f.balance(t, owner))
}

func TestTransferFrom_SpendsAllowance(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Approve(f.ctx, owner, alice, units("50"))
	require.NoError(t, err)

	_, err = f.tk.TransferFrom(f.ctx, alice, owner, bob, units("30"))
	require.NoError(t, err)
	require.Equal(t, units("30"), f.balance(t, bob))

	allowance, err := f.tk.Allowance(f.ctx, owner, alice)
	require.NoError(t, err)
	require.Equal(t, units("20"), allowance)

	_, err = f.tk.TransferFrom(f.ctx, alice, owner, bob, units("21"))
	require.ErrorIs(t, err, serrors.ErrInsufficientAllowance)
	require.Equal(t, units("30"), f.balance(t, bob))
}

func TestTransferFrom_UnlimitedAllowanceIsNotSpent(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Approve(f.ctx, owner, alice, domain.MaxAmount)
	require.NoError(t, err)
	_, err = f.tk.TransferFrom(f.ctx, alice, owner, bob, units("30"))
	require.NoError(t, err)

	allowance, err := f.tk.Allowance(f.ctx, owner, alice)
	require.NoError(t, err)
	require.Equal(t, domain.MaxAmount, allowance)
}

func TestAllowance_IncreaseDecrease(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.IncreaseAllowance(f.ctx, alice, bob, units("5"))
	require.NoError(t, err)
	receipt, err := f.tk.IncreaseAllowance(f.ctx, alice, bob, units("5"))
	require.NoError(t, err)
	require.Equal(t, domain.EventApproval, receipt.Events[0].Kind)
	require.Equal(t, units("10").String(), receipt.Events[0].Attributes["value"])

	_, err = f.tk.DecreaseAllowance(f.ctx, alice, bob, units("4"))
	require.NoError(t, err)
	allowance, err := f.tk.Allowance(f.ctx, alice, bob)
	require.NoError(t, err)
	require.Equal(t, units("6"), allowance)

	_, err = f.tk.DecreaseAllowance(f.ctx, alice, bob, units("7"))
	require.ErrorIs(t, err, serrors.ErrInsufficientAllowance)

	_, err = f.tk.IncreaseAllowance(f.ctx, alice, bob, domain.MaxAmount)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = f.tk.Approve(f.ctx, alice, domain.ZeroAddress, units("1"))
	require.ErrorIs(t, err, serrors.ErrInvalidAddress)
}

func TestBurn_ReducesSupply(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Burn(f.ctx, owner, units("1000"))
	require.NoError(t, err)
	require.Equal(t, units("999999000"), f.info(t).TotalSupply)
	f.requireConserved(t)

	_, err = f.tk.Burn(f.ctx, alice, units("1"))
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)
}

func TestBurnFrom_InsufficientAllowanceTouchesNothing(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Approve(f.ctx, owner, alice, units("10"))
	require.NoError(t, err)

	_, err = f.tk.BurnFrom(f.ctx, alice, owner, units("11"))
	require.ErrorIs(t, err, serrors.ErrInsufficientAllowance)
	require.Equal(t, units("1000000000"), f.balance(t, owner))
	require.Equal(t, units("1000000000"), f.info(t).TotalSupply)

	_, err = f.tk.BurnFrom(f.ctx, alice, owner, units("10"))
	require.NoError(t, err)
	require.Equal(t, units("999999990"), f.info(t).TotalSupply)
	allowance, err := f.tk.Allowance(f.ctx, owner, alice)
	require.NoError(t, err)
	require.True(t, allowance.IsZero())
	f.requireConserved(t)
}

func TestMint_OnlyMinter(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.Mint(f.ctx, owner, units("1"))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = f.tk.Mint(f.ctx, minter, units("5"))
	require.NoError(t, err)
	require.Equal(t, units("5"), f.balance(t, minter))
	require.Equal(t, units("1000000005"), f.info(t).TotalSupply)
	f.requireConserved(t)
}

func TestSendNative(t *testing.T) {
	f := newFixture(t, tieredParams())

	_, err := f.tk.SendNative(f.ctx, alice, bob, units("4"))
	require.NoError(t, err)
	require.Equal(t, units("6"), f.native(t, alice))
	require.Equal(t, units("4"), f.native(t, bob))

	_, err = f.tk.SendNative(f.ctx, bob, alice, units("5"))
	require.ErrorIs(t, err, serrors.ErrInsufficientBalance)
}

func TestPublishEvents_EnqueuesJobWithCall(t *testing.T) {
	f := newFixtureWithRouter(t, amm.New(amm.Options{}), tieredParams(), token.Options{
		PublishEvents: true,
		MaxAttempts:   5,
	})
	deployJobs := len(f.st.Jobs())
	require.Equal(t, 1, deployJobs)

	receipt, err := f.tk.Transfer(f.ctx, owner, alice, units("1"))
	require.NoError(t, err)

	jobs := f.st.Jobs()
	require.Len(t, jobs, 2)
	args, ok := jobs[1].Args.(token.PublishEventsArgs)
	require.True(t, ok)
	require.Equal(t, []int64{receipt.Events[0].ID}, args.EventIDs)
	require.Equal(t, 5, args.InsertOpts().MaxAttempts)

	_, err = f.tk.Transfer(f.ctx, alice, bob, units("2"))
	require.Error(t, err)
	require.Len(t, f.st.Jobs(), 2)
}
