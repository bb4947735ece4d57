package postgres

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) StoreEvents(ctx context.Context, events ...domain.Event) ([]domain.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}

	rows := make([]PgEvent, len(events))
	for i := range events {
		if err := rows[i].FromDomain(events[i]); err != nil {
			return nil, err
		}
	}

	var result []PgEvent
	if err := p.Builder.Insert(eventsTable).
		Rows(rows).
		Returning(&PgEvent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store events into pg: %w", err)
	}

	return pgEventsToDomain(result)
}

func (p *PgSQL) Events(ctx context.Context, kind domain.EventKind, afterID int64, limit uint) ([]domain.Event, error) {
	w := []goqu.Expression{goqu.I("id").Gt(afterID)}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}

	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list events from pg: %w", err)
	}

	return pgEventsToDomain(rows)
}

func (p *PgSQL) EventsByIDs(ctx context.Context, ids []int64) ([]domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Where(goqu.I("id").In(ids)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get events by ids from pg: %w", err)
	}

	return pgEventsToDomain(rows)
}
