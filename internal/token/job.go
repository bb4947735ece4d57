package token

import "github.com/riverqueue/river"

// PublishEventsArgs contains the arguments of a job that forwards the events
// of one committed call to the audit sink. It is enqueued inside the call's
// transaction, so a rolled back call never publishes anything.
type PublishEventsArgs struct {
	// EventIDs are the stored IDs of the call's events, in emission order.
	EventIDs []int64 `json:"eventIDs"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the publish worker.
func (args PublishEventsArgs) Kind() string { return "PublishEventsJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args PublishEventsArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
