package postgres

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/ethereum/go-ethereum/common"
)

const (
	balancesTable       = "balances"
	allowancesTable     = "allowances"
	stateTable          = "token_state"
	exemptionsTable     = "exemptions"
	pairsTable          = "pairs"
	clocksTable         = "receipt_clocks"
	nativeBalancesTable = "native_balances"
	poolsTable          = "pools"
	liquidityTable      = "liquidity_balances"
	foreignTable        = "foreign_balances"
	eventsTable         = "events"
)

// amount reads the amount column of the row matching key; a missing row is zero.
func (p *PgSQL) amount(ctx context.Context, table string, key goqu.Ex) (domain.Amount, error) {
	var v string
	found, err := p.Builder.From(table).
		Select(goqu.L("amount::TEXT")).
		Where(key).
		Executor().ScanValContext(ctx, &v)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not read %s from pg: %w", table, err)
	}
	if !found {
		return domain.Zero, nil
	}

	return domain.ParseAmount(v)
}

// setAmount upserts the amount of the row matching key, or deletes the row
// when amount is zero.
func (p *PgSQL) setAmount(ctx context.Context, table, conflict string, key goqu.Ex, amount domain.Amount) error {
	if amount.IsZero() {
		if _, err := p.Builder.Delete(table).Where(key).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete from %s in pg: %w", table, err)
		}

		return nil
	}

	rec := goqu.Record{"amount": amount.String()}
	for k, v := range key {
		rec[k] = v
	}

	_, err := p.Builder.Insert(table).
		Rows(rec).
		OnConflict(goqu.DoUpdate(conflict, goqu.Record{"amount": goqu.L("EXCLUDED.amount")})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert %s in pg: %w", table, err)
	}

	return nil
}

func (p *PgSQL) Balance(ctx context.Context, addr common.Address) (domain.Amount, error) {
	return p.amount(ctx, balancesTable, goqu.Ex{"address": addr.Hex()})
}

func (p *PgSQL) SetBalance(ctx context.Context, addr common.Address, amount domain.Amount) error {
	return p.setAmount(ctx, balancesTable, "address", goqu.Ex{"address": addr.Hex()}, amount)
}

func (p *PgSQL) Allowance(ctx context.Context, owner, spender common.Address) (domain.Amount, error) {
	return p.amount(ctx, allowancesTable, goqu.Ex{"owner": owner.Hex(), "spender": spender.Hex()})
}

func (p *PgSQL) SetAllowance(ctx context.Context, owner, spender common.Address, amount domain.Amount) error {
	return p.setAmount(ctx, allowancesTable, "owner, spender",
		goqu.Ex{"owner": owner.Hex(), "spender": spender.Hex()}, amount)
}

// TotalBalances sums the balances table in the database.
func (p *PgSQL) TotalBalances(ctx context.Context) (domain.Amount, error) {
	var v string
	_, err := p.Builder.From(balancesTable).
		Select(goqu.L("COALESCE(SUM(amount), 0)::TEXT")).
		Executor().ScanValContext(ctx, &v)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not sum balances in pg: %w", err)
	}

	return domain.ParseAmount(v)
}

func (p *PgSQL) State(ctx context.Context) (*domain.TokenState, error) {
	var row PgState
	found, err := p.Builder.From(stateTable).
		Where(goqu.I("id").Eq(stateID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get token state from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) SaveState(ctx context.Context, state domain.TokenState) error {
	var row PgState
	if err := row.FromDomain(state); err != nil {
		return err
	}

	rec := row.record()
	rec["id"] = stateID
	_, err := p.Builder.Insert(stateTable).
		Rows(rec).
		OnConflict(goqu.DoUpdate("id", row.record())).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save token state in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) member(ctx context.Context, table string, addr common.Address) (bool, error) {
	var n int64
	_, err := p.Builder.From(table).
		Select(goqu.COUNT("*")).
		Where(goqu.I("address").Eq(addr.Hex())).
		Executor().ScanValContext(ctx, &n)
	if err != nil {
		return false, fmt.Errorf("could not read %s from pg: %w", table, err)
	}

	return n > 0, nil
}

func (p *PgSQL) setMember(ctx context.Context, table string, addr common.Address, member bool) error {
	var err error
	if member {
		_, err = p.Builder.Insert(table).
			Rows(goqu.Record{"address": addr.Hex()}).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx)
	} else {
		_, err = p.Builder.Delete(table).
			Where(goqu.I("address").Eq(addr.Hex())).
			Executor().ExecContext(ctx)
	}
	if err != nil {
		return fmt.Errorf("could not update %s in pg: %w", table, err)
	}

	return nil
}

func (p *PgSQL) IsExempt(ctx context.Context, addr common.Address) (bool, error) {
	return p.member(ctx, exemptionsTable, addr)
}

func (p *PgSQL) SetExempt(ctx context.Context, addr common.Address, exempt bool) error {
	return p.setMember(ctx, exemptionsTable, addr, exempt)
}

func (p *PgSQL) IsPair(ctx context.Context, addr common.Address) (bool, error) {
	return p.member(ctx, pairsTable, addr)
}

func (p *PgSQL) SetPair(ctx context.Context, addr common.Address, pair bool) error {
	return p.setMember(ctx, pairsTable, addr, pair)
}

func (p *PgSQL) Pairs(ctx context.Context) ([]common.Address, error) {
	var rows []string
	if err := p.Builder.From(pairsTable).
		Select("address").
		Executor().ScanValsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list pairs from pg: %w", err)
	}

	out := make([]common.Address, 0, len(rows))
	for _, r := range rows {
		out = append(out, common.HexToAddress(r))
	}
	sortAddresses(out)

	return out, nil
}

func (p *PgSQL) LastReceived(ctx context.Context, addr common.Address) (time.Time, error) {
	var at time.Time
	found, err := p.Builder.From(clocksTable).
		Select("received_at").
		Where(goqu.I("address").Eq(addr.Hex())).
		Executor().ScanValContext(ctx, &at)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not read receipt clock from pg: %w", err)
	}
	if !found {
		return time.Time{}, nil
	}

	return at.UTC(), nil
}

func (p *PgSQL) SetLastReceived(ctx context.Context, addr common.Address, at time.Time) error {
	_, err := p.Builder.Insert(clocksTable).
		Rows(goqu.Record{"address": addr.Hex(), "received_at": at.UTC()}).
		OnConflict(goqu.DoUpdate("address", goqu.Record{"received_at": goqu.L("EXCLUDED.received_at")})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert receipt clock in pg: %w", err)
	}

	return nil
}
