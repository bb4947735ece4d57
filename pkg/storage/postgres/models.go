package postgres

import (
	"encoding/json"
	"fmt"
	"taxtoken/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/ethereum/go-ethereum/common"
)

const stateID = 1

type PgState struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Symbol   string `db:"symbol"`
	Decimals uint8  `db:"decimals"`
	Variant  string `db:"variant"`

	Address        string `db:"address"`
	Router         string `db:"router"`
	MainPair       string `db:"main_pair"`
	Owner          string `db:"owner"`
	Minter         string `db:"minter"`
	Marketing      string `db:"marketing"`
	Vault          string `db:"vault"`
	LiquidityVault string `db:"liquidity_vault"`
	Dev            string `db:"dev"`

	BuyTaxes  json.RawMessage `db:"buy_taxes"`
	SellTaxes json.RawMessage `db:"sell_taxes"`

	Threshold            string `db:"threshold"`
	TotalSupply          string `db:"total_supply"`
	AccruedMarketing     string `db:"accrued_marketing"`
	AccruedLiquidity     string `db:"accrued_liquidity"`
	DistributedMarketing string `db:"distributed_marketing"`
	DistributedLiquidity string `db:"distributed_liquidity"`

	DecayWindowSeconds int64 `db:"decay_window_seconds"`
	DecayPercent       uint8 `db:"decay_percent"`

	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgState) ToDomain() (*domain.TokenState, error) {
	var buy, sell domain.TaxTiers
	if err := json.Unmarshal(p.BuyTaxes, &buy); err != nil {
		return nil, fmt.Errorf("could not unmarshal buy taxes: %w", err)
	}
	if err := json.Unmarshal(p.SellTaxes, &sell); err != nil {
		return nil, fmt.Errorf("could not unmarshal sell taxes: %w", err)
	}

	amounts, err := parseAmounts(p.Threshold, p.TotalSupply,
		p.AccruedMarketing, p.AccruedLiquidity,
		p.DistributedMarketing, p.DistributedLiquidity)
	if err != nil {
		return nil, err
	}

	return &domain.TokenState{
		Name:           p.Name,
		Symbol:         p.Symbol,
		Decimals:       p.Decimals,
		Variant:        domain.Variant(p.Variant),
		Address:        common.HexToAddress(p.Address),
		Router:         common.HexToAddress(p.Router),
		MainPair:       common.HexToAddress(p.MainPair),
		Owner:          common.HexToAddress(p.Owner),
		Minter:         common.HexToAddress(p.Minter),
		Marketing:      common.HexToAddress(p.Marketing),
		Vault:          common.HexToAddress(p.Vault),
		LiquidityVault: common.HexToAddress(p.LiquidityVault),
		Dev:            common.HexToAddress(p.Dev),
		BuyTaxes:       buy,
		SellTaxes:      sell,
		Threshold:      amounts[0],
		TotalSupply:    amounts[1],
		Accrued:        domain.Fees{Marketing: amounts[2], Liquidity: amounts[3]},
		Distributed:    domain.Fees{Marketing: amounts[4], Liquidity: amounts[5]},
		DecayWindow:    time.Duration(p.DecayWindowSeconds) * time.Second,
		DecayPercent:   p.DecayPercent,
	}, nil
}

func (p *PgState) FromDomain(s domain.TokenState) error {
	buy, err := json.Marshal(s.BuyTaxes)
	if err != nil {
		return fmt.Errorf("could not marshal buy taxes: %w", err)
	}
	sell, err := json.Marshal(s.SellTaxes)
	if err != nil {
		return fmt.Errorf("could not marshal sell taxes: %w", err)
	}

	*p = PgState{
		ID:                   stateID,
		Name:                 s.Name,
		Symbol:               s.Symbol,
		Decimals:             s.Decimals,
		Variant:              string(s.Variant),
		Address:              s.Address.Hex(),
		Router:               s.Router.Hex(),
		MainPair:             s.MainPair.Hex(),
		Owner:                s.Owner.Hex(),
		Minter:               s.Minter.Hex(),
		Marketing:            s.Marketing.Hex(),
		Vault:                s.Vault.Hex(),
		LiquidityVault:       s.LiquidityVault.Hex(),
		Dev:                  s.Dev.Hex(),
		BuyTaxes:             buy,
		SellTaxes:            sell,
		Threshold:            s.Threshold.String(),
		TotalSupply:          s.TotalSupply.String(),
		AccruedMarketing:     s.Accrued.Marketing.String(),
		AccruedLiquidity:     s.Accrued.Liquidity.String(),
		DistributedMarketing: s.Distributed.Marketing.String(),
		DistributedLiquidity: s.Distributed.Liquidity.String(),
		DecayWindowSeconds:   int64(s.DecayWindow / time.Second),
		DecayPercent:         s.DecayPercent,
	}

	return nil
}

// record returns every column except the primary key, for upserts.
func (p *PgState) record() goqu.Record {
	return goqu.Record{
		"name":                  p.Name,
		"symbol":                p.Symbol,
		"decimals":              p.Decimals,
		"variant":               p.Variant,
		"address":               p.Address,
		"router":                p.Router,
		"main_pair":             p.MainPair,
		"owner":                 p.Owner,
		"minter":                p.Minter,
		"marketing":             p.Marketing,
		"vault":                 p.Vault,
		"liquidity_vault":       p.LiquidityVault,
		"dev":                   p.Dev,
		"buy_taxes":             p.BuyTaxes,
		"sell_taxes":            p.SellTaxes,
		"threshold":             p.Threshold,
		"total_supply":          p.TotalSupply,
		"accrued_marketing":     p.AccruedMarketing,
		"accrued_liquidity":     p.AccruedLiquidity,
		"distributed_marketing": p.DistributedMarketing,
		"distributed_liquidity": p.DistributedLiquidity,
		"decay_window_seconds":  p.DecayWindowSeconds,
		"decay_percent":         p.DecayPercent,
		"updated_at":            goqu.L("CURRENT_TIMESTAMP"),
	}
}

type PgPool struct {
	Address         string `db:"address"`
	Token           string `db:"token"`
	ReserveToken    string `db:"reserve_token"`
	ReserveNative   string `db:"reserve_native"`
	LiquiditySupply string `db:"liquidity_supply"`
}

func (p *PgPool) ToDomain() (*domain.Pool, error) {
	amounts, err := parseAmounts(p.ReserveToken, p.ReserveNative, p.LiquiditySupply)
	if err != nil {
		return nil, err
	}

	return &domain.Pool{
		Address:         common.HexToAddress(p.Address),
		Token:           common.HexToAddress(p.Token),
		ReserveToken:    amounts[0],
		ReserveNative:   amounts[1],
		LiquiditySupply: amounts[2],
	}, nil
}

func (p *PgPool) FromDomain(pool domain.Pool) {
	*p = PgPool{
		Address:         pool.Address.Hex(),
		Token:           pool.Token.Hex(),
		ReserveToken:    pool.ReserveToken.String(),
		ReserveNative:   pool.ReserveNative.String(),
		LiquiditySupply: pool.LiquiditySupply.String(),
	}
}

type PgEvent struct {
	ID         int64           `db:"id"         goqu:"skipinsert"`
	Kind       string          `db:"kind"`
	Attributes json.RawMessage `db:"attributes"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (p *PgEvent) ToDomain() (*domain.Event, error) {
	attrs := map[string]string{}
	if len(p.Attributes) > 0 {
		if err := json.Unmarshal(p.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("could not unmarshal event attributes: %w", err)
		}
	}

	return &domain.Event{
		ID:         p.ID,
		Kind:       domain.EventKind(p.Kind),
		Attributes: attrs,
		CreatedAt:  p.CreatedAt.UTC(),
	}, nil
}

func (p *PgEvent) FromDomain(ev domain.Event) error {
	attrs := ev.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("could not marshal event attributes: %w", err)
	}

	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	*p = PgEvent{
		ID:         ev.ID,
		Kind:       string(ev.Kind),
		Attributes: b,
		CreatedAt:  createdAt.UTC(),
	}

	return nil
}

func pgEventsToDomain(events []PgEvent) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		d, err := ev.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func parseAmounts(values ...string) ([]domain.Amount, error) {
	out := make([]domain.Amount, len(values))
	for i, v := range values {
		a, err := domain.ParseAmount(v)
		if err != nil {
			return nil, fmt.Errorf("could not parse stored amount: %w", err)
		}
		out[i] = a
	}

	return out, nil
}
