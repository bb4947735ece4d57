package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"taxtoken/internal/token"
	"taxtoken/pkg/auditsink"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PublishEventsWorker is a River worker that forwards the events of committed
// calls to an auditsink.Client. Like any client of a throttled API it limits
// itself cooperatively so concurrent jobs never exceed the sink's budget.
//
// # Rate limiting overview
//
// The worker tracks the last known rate-limit status of the sink (lastRLStatus)
// and the number of requests in flight. Before publishing, reserveRL reserves a
// slot from the budget:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A request may start if remaining - inFlightRequests > 0; otherwise reserveRL
// waits until ResetAt or until another request finishes.
//
// Bootstrap behavior: before the sink has answered, lastRLStatus allows exactly
// one probe request. A sink that accepts a publish without rate-limit headers
// is treated as unlimited from then on. A failed probe without headers leaves
// the worker probing.
//
// Error handling: a rejected payload (ErrBadRequest) cancels the job since
// retrying cannot help. A throttled publish is snoozed until ResetAt. Other
// errors are returned so River retries with backoff.
type PublishEventsWorker struct {
	river.WorkerDefaults[token.PublishEventsArgs]

	events  storage.EventStorage
	sink    auditsink.Client
	timeout time.Duration

	// mu protects all fields below it.
	mu               sync.Mutex
	inFlightRequests int
	lastRLStatus     *auditsink.RateLimitStatus
	// probing is true while the bootstrap status is in place.
	probing bool
	// requestFinishedChan wakes up one goroutine waiting in reserveRL.
	requestFinishedChan chan struct{}
}

// NewPublishEventsWorker constructs a worker reading events from events and
// publishing them to sink.
func NewPublishEventsWorker(events storage.EventStorage, sink auditsink.Client) *PublishEventsWorker {
	return &PublishEventsWorker{
		events:              events,
		sink:                sink,
		requestFinishedChan: make(chan struct{}),
	}
}

// Timeout bounds a single attempt.
func (u *PublishEventsWorker) Timeout(*river.Job[token.PublishEventsArgs]) time.Duration {
	return u.timeout
}

// Work loads the job's events and publishes them.
func (u *PublishEventsWorker) Work(ctx context.Context, job *river.Job[token.PublishEventsArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("events", len(job.Args.EventIDs)))

	events, err := u.events.EventsByIDs(ctx, job.Args.EventIDs)
	if err != nil {
		return fmt.Errorf("could not load events: %w", err)
	}
	if len(events) == 0 {
		logger.Warn(ctx, "no events found for job")

		return nil
	}

	if err := u.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	RLStatus, err := u.sink.Publish(ctx, events)
	u.requestFinished(ctx, RLStatus, err == nil)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Error(ctx, "sink rejected events", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in publishing events", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(RLStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not publish events: %w", err)
	}

	logger.Info(ctx, "events published")

	return nil
}

// requestFinished releases the in-flight slot, wakes up one waiter and merges
// the sink's status: a new ResetAt is always adopted, otherwise the lower
// Remaining wins. published reports whether the sink accepted the request.
func (u *PublishEventsWorker) requestFinished(ctx context.Context,
	newRLStatus auditsink.RateLimitStatus,
	published bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.inFlightRequests > 0 {
		u.inFlightRequests--
	}

	select {
	case u.requestFinishedChan <- struct{}{}:
	default:
	}

	if newRLStatus.ResetAt.IsZero() {
		if u.probing && published {
			u.probing = false
			u.lastRLStatus = &auditsink.RateLimitStatus{
				Limit:     math.MaxInt32,
				Remaining: math.MaxInt32,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
			logger.Debug(ctx, "sink reports no rate limit")
		}

		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", u.inFlightRequests))
	}

	if u.lastRLStatus == nil || u.probing || !u.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		u.probing = false
		u.lastRLStatus = &newRLStatus
		log()

		return
	}

	if newRLStatus.Remaining < u.lastRLStatus.Remaining {
		u.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit of the budget or blocks until one is
// available. It returns an error if ctx is canceled while waiting.
func (u *PublishEventsWorker) reserveRL(ctx context.Context) error {
	for {
		u.mu.Lock()

		if u.lastRLStatus == nil {
			u.probing = true
			u.lastRLStatus = &auditsink.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := u.lastRLStatus.Remaining
		if time.Now().UTC().After(u.lastRLStatus.ResetAt) {
			remaining = u.lastRLStatus.Limit
		}

		if remaining-u.inFlightRequests > 0 {
			u.inFlightRequests++
			u.mu.Unlock()

			return nil
		}

		resetAt := u.lastRLStatus.ResetAt
		inFlight := u.inFlightRequests
		u.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-u.requestFinishedChan:
			continue
		case <-time.After(time.Until(resetAt)):
			continue
		}
	}
}
