package postgres

import (
	"context"
	"fmt"
	"sort"
	"taxtoken/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/ethereum/go-ethereum/common"
)

func sortAddresses(addrs []common.Address) {
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Cmp(addrs[j]) < 0 })
}

func (p *PgSQL) NativeBalance(ctx context.Context, addr common.Address) (domain.Amount, error) {
	return p.amount(ctx, nativeBalancesTable, goqu.Ex{"address": addr.Hex()})
}

func (p *PgSQL) SetNativeBalance(ctx context.Context, addr common.Address, amount domain.Amount) error {
	return p.setAmount(ctx, nativeBalancesTable, "address", goqu.Ex{"address": addr.Hex()}, amount)
}

func (p *PgSQL) Pool(ctx context.Context, addr common.Address) (*domain.Pool, error) {
	var row PgPool
	found, err := p.Builder.From(poolsTable).
		Select(
			"address",
			"token",
			goqu.L("reserve_token::TEXT").As("reserve_token"),
			goqu.L("reserve_native::TEXT").As("reserve_native"),
			goqu.L("liquidity_supply::TEXT").As("liquidity_supply"),
		).
		Where(goqu.I("address").Eq(addr.Hex())).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get pool from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) SavePool(ctx context.Context, pool domain.Pool) error {
	var row PgPool
	row.FromDomain(pool)

	_, err := p.Builder.Insert(poolsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("address", goqu.Record{
			"reserve_token":    goqu.L("EXCLUDED.reserve_token"),
			"reserve_native":   goqu.L("EXCLUDED.reserve_native"),
			"liquidity_supply": goqu.L("EXCLUDED.liquidity_supply"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save pool in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) LiquidityBalance(ctx context.Context, pool, holder common.Address) (domain.Amount, error) {
	return p.amount(ctx, liquidityTable, goqu.Ex{"pool": pool.Hex(), "holder": holder.Hex()})
}

func (p *PgSQL) SetLiquidityBalance(ctx context.Context, pool, holder common.Address, amount domain.Amount) error {
	return p.setAmount(ctx, liquidityTable, "pool, holder",
		goqu.Ex{"pool": pool.Hex(), "holder": holder.Hex()}, amount)
}

func (p *PgSQL) ForeignBalance(ctx context.Context, token, holder common.Address) (domain.Amount, error) {
	return p.amount(ctx, foreignTable, goqu.Ex{"token": token.Hex(), "holder": holder.Hex()})
}

func (p *PgSQL) SetForeignBalance(ctx context.Context, token, holder common.Address, amount domain.Amount) error {
	return p.setAmount(ctx, foreignTable, "token, holder",
		goqu.Ex{"token": token.Hex(), "holder": holder.Hex()}, amount)
}
