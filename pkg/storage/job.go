package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a transactional handle
// the job becomes visible only if the transaction commits, which makes the
// event log usable as an outbox.
//
// Example:
//
//	added, err := tx.AddJob(ctx, token.PublishEventsArgs{EventIDs: ids}, nil)
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// river skipped the insert as a unique duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
