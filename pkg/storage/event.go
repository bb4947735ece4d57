package storage

import (
	"context"
	"taxtoken/pkg/domain"
)

// EventStorage is the append-only log of events emitted by committed calls.
type EventStorage interface {
	// StoreEvents appends events and returns them with their assigned IDs.
	StoreEvents(ctx context.Context, events ...domain.Event) ([]domain.Event, error)
	// Events returns up to limit events with an ID greater than afterID, in
	// ascending ID order. An empty kind matches every kind.
	Events(ctx context.Context, kind domain.EventKind, afterID int64, limit uint) ([]domain.Event, error)
	// EventsByIDs returns the events with the given IDs in ascending ID order.
	// Unknown IDs are skipped.
	EventsByIDs(ctx context.Context, ids []int64) ([]domain.Event, error)
}
