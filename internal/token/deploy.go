package token

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"taxtoken/internal/config"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DeployParams describe a token to deploy.
type DeployParams struct {
	Name     string         `validate:"required"`
	Symbol   string         `validate:"required"`
	Decimals uint8          `validate:"lte=36"`
	Variant  domain.Variant `validate:"oneof=tiered decay"`
	// Supply is minted to Owner, in base units.
	Supply domain.Amount
	// Address is the token's own account. When zero it is derived from Owner
	// like a contract created by Owner's first transaction.
	Address common.Address

	Owner          common.Address
	Minter         common.Address
	Marketing      common.Address
	Vault          common.Address
	LiquidityVault common.Address
	Dev            common.Address

	BuyTaxes  domain.TaxTiers
	SellTaxes domain.TaxTiers
	Threshold domain.Amount

	DecayWindow  time.Duration
	DecayPercent uint8 `validate:"lte=100"`

	// Funding credits native currency to accounts at deployment.
	Funding map[common.Address]domain.Amount
}

func parseAddress(field, s string) (common.Address, error) {
	if s == "" {
		return domain.ZeroAddress, nil
	}
	if !common.IsHexAddress(s) {
		return domain.ZeroAddress, fmt.Errorf("invalid %s address %q", field, s)
	}

	return common.HexToAddress(s), nil
}

// NewDeployParams constructs DeployParams from the token section of the
// application config. Quantities in the config are in human units.
func NewDeployParams(cfg *config.Config) (DeployParams, error) {
	tc := cfg.Token
	params := DeployParams{
		Name:         tc.Name,
		Symbol:       tc.Symbol,
		Decimals:     tc.Decimals,
		Variant:      domain.Variant(tc.Variant),
		BuyTaxes:     domain.TaxTiers(tc.BuyTaxes),
		SellTaxes:    domain.TaxTiers(tc.SellTaxes),
		DecayWindow:  tc.DecayWindow,
		DecayPercent: tc.DecayPercent,
		Funding:      map[common.Address]domain.Amount{},
	}

	var err error
	if params.Supply, err = domain.ParseUnits(tc.Supply, tc.Decimals); err != nil {
		return DeployParams{}, fmt.Errorf("invalid supply: %w", err)
	}
	if params.Threshold, err = domain.ParseUnits(tc.Threshold, tc.Decimals); err != nil {
		return DeployParams{}, fmt.Errorf("invalid threshold: %w", err)
	}

	addresses := []struct {
		field string
		value string
		dst   *common.Address
	}{
		{"token", tc.Address, &params.Address},
		{"owner", tc.Owner, &params.Owner},
		{"minter", tc.Minter, &params.Minter},
		{"marketing", tc.Marketing, &params.Marketing},
		{"vault", tc.Vault, &params.Vault},
		{"liquidity vault", tc.LiquidityVault, &params.LiquidityVault},
		{"dev", tc.Dev, &params.Dev},
	}
	for _, a := range addresses {
		if *a.dst, err = parseAddress(a.field, a.value); err != nil {
			return DeployParams{}, err
		}
	}

	for account, quantity := range tc.Funding {
		addr, err := parseAddress("funded", account)
		if err != nil {
			return DeployParams{}, err
		}
		amount, err := domain.ParseUnits(quantity, 18)
		if err != nil {
			return DeployParams{}, fmt.Errorf("invalid funding for %s: %w", account, err)
		}
		params.Funding[addr] = amount
	}

	return params, nil
}

func (p *DeployParams) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(p); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid deploy parameters")
	}
	if p.BuyTaxes.Total() > 100 || p.SellTaxes.Total() > 100 {
		return serrors.With(serrors.ErrBadRequest, "tax tiers cannot exceed 100%% in total")
	}

	required := map[string]common.Address{"owner": p.Owner}
	switch p.Variant {
	case domain.VariantDecay:
		required["dev"] = p.Dev
	default:
		required["marketing"] = p.Marketing
		required["vault"] = p.Vault
		required["liquidity vault"] = p.LiquidityVault
	}

	var missing []string
	for role, addr := range required {
		if addr == domain.ZeroAddress {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return serrors.With(serrors.ErrInvalidAddress, "zero address for %s", strings.Join(missing, ", "))
	}

	return nil
}

// Deploy creates the token: it mints the initial supply to the owner,
// exempts the owner and the token's own account and registers the main pair
// with the router.
func (t *token) Deploy(ctx context.Context, params DeployParams) (*domain.TokenState, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	address := params.Address
	if address == domain.ZeroAddress {
		address = crypto.CreateAddress(params.Owner, 0)
	}

	state := domain.TokenState{
		Name:           params.Name,
		Symbol:         params.Symbol,
		Decimals:       params.Decimals,
		Variant:        params.Variant,
		Address:        address,
		Router:         t.router.Address(),
		Owner:          params.Owner,
		Minter:         params.Minter,
		Marketing:      params.Marketing,
		Vault:          params.Vault,
		LiquidityVault: params.LiquidityVault,
		Dev:            params.Dev,
		BuyTaxes:       params.BuyTaxes,
		SellTaxes:      params.SellTaxes,
		Threshold:      params.Threshold,
		DecayWindow:    params.DecayWindow,
		DecayPercent:   params.DecayPercent,
	}

	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.State(ctx)
		if err != nil {
			return fmt.Errorf("could not get token state: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "token is already deployed at %s", existing.Address.Hex())
		}

		c := t.newCall(tx, &state)
		c.setOwner(params.Owner)

		for _, addr := range []common.Address{params.Owner, address} {
			if err := tx.SetExempt(ctx, addr, true); err != nil {
				return fmt.Errorf("could not set exemption: %w", err)
			}
			c.emit(domain.EventExemptionUpdated, "account", addr.Hex(), "exempt", "true")
		}

		pair, err := t.router.CreatePair(ctx, tx, address)
		if err != nil {
			return routerError(err, "could not create pair")
		}
		if err := tx.SetPair(ctx, pair, true); err != nil {
			return fmt.Errorf("could not set pair: %w", err)
		}
		state.MainPair = pair
		c.emit(domain.EventPairUpdated, "pair", pair.Hex(), "registered", "true")

		if err := c.mint(ctx, params.Owner, params.Supply); err != nil {
			return err
		}

		for _, addr := range slices.SortedFunc(maps.Keys(params.Funding), func(a, b common.Address) int {
			return a.Cmp(b)
		}) {
			bal, err := tx.NativeBalance(ctx, addr)
			if err != nil {
				return fmt.Errorf("could not get native balance: %w", err)
			}
			if err := tx.SetNativeBalance(ctx, addr, bal.Add(params.Funding[addr])); err != nil {
				return fmt.Errorf("could not set native balance: %w", err)
			}
		}

		return c.commit(ctx)
	}); err != nil {
		return nil, fmt.Errorf("could not deploy token: %w", err)
	}

	logger.Info(ctx, "token deployed",
		zap.String("symbol", state.Symbol),
		zap.String("variant", string(state.Variant)),
		zap.String("address", state.Address.Hex()),
		zap.String("pair", state.MainPair.Hex()))

	return &state, nil
}
