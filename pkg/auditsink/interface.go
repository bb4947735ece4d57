// Package auditsink defines the external destination committed token events
// are published to, such as an indexer or an audit log service.
package auditsink

import (
	"context"
	"taxtoken/pkg/domain"
	"time"
)

// RateLimitStatus describes the rate-limit window reported by the sink.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets. Zero when the sink did not report one.
}

// Client publishes batches of events. Publishing the same batch twice must be
// safe: receivers deduplicate by event ID.
//
//go:generate mockgen -package mockauditsink -source=interface.go -destination=mock/mockauditsink.go *
type Client interface {
	// Publish delivers events and returns the sink's current rate-limit
	// status. A sink that rejects the payload yields ErrBadRequest, a sink
	// that throttles yields ErrRateLimited.
	Publish(ctx context.Context, events []domain.Event) (RateLimitStatus, error)
}
