// Package token implements the taxed token ledger: balances and allowances,
// transfer classification against the pair registry, tiered and time-decay
// taxation, fee accrual with threshold-triggered distribution, administration
// and stray-asset recovery.
//
// Every state-changing call runs under one process-wide mutex inside a single
// storage transaction. Router callbacks re-enter the transfer pipeline through
// the same transaction, so a call either commits every effect or none.
package token

import (
	"context"
	"fmt"
	"sync"
	"taxtoken/internal/config"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/logger"
	"taxtoken/pkg/serrors"
	"taxtoken/pkg/storage"
	"taxtoken/pkg/swap"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options configure the runtime behavior of the engine.
type Options struct {
	// Now returns the current time. The decay clock and event timestamps use
	// it. Defaults to time.Now.
	Now func() time.Time
	// Meter records tax and distribution metrics. Defaults to a no-op meter.
	Meter metric.Meter
	// PublishEvents enqueues a PublishEventsArgs job with every committed call
	// so the audit worker can forward its events.
	PublishEvents bool
	// MaxAttempts is the maximum number of attempts of a publish job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PublishEvents: cfg.Worker.PublishEvents,
		MaxAttempts:   cfg.Worker.MaxAttempts,
	}
}

// token is the concrete implementation of the Token interface.
type token struct {
	// mu serializes state-changing calls.
	mu      sync.Mutex
	lock    swapLock
	options Options
	storage storage.Storage
	router  swap.Router
	metrics *instruments
}

// New creates a Token backed by the provided storage that trades through
// router.
func New(storage storage.Storage, router swap.Router, options Options) (Token, error) {
	if options.Now == nil {
		options.Now = time.Now
	}

	instr, err := newInstruments(options.Meter)
	if err != nil {
		return nil, err
	}

	return &token{
		options: options,
		storage: storage,
		router:  router,
		metrics: instr,
	}, nil
}

// exec runs fn as one atomic call. The token state is loaded once, handed to
// fn through the call and saved together with the emitted events.
func (t *token) exec(ctx context.Context, op string, fn func(ctx context.Context, c *call) error) (*Receipt, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := time.Now()
	var c *call
	err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		state, err := tx.State(ctx)
		if err != nil {
			return fmt.Errorf("could not get token state: %w", err)
		}
		if state == nil {
			return serrors.With(serrors.ErrNotFound, "token is not deployed")
		}

		c = t.newCall(tx, state)
		if err := fn(ctx, c); err != nil {
			return err
		}

		return c.commit(ctx)
	})
	t.metrics.observeCall(ctx, op, time.Since(start), err)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrDistributionFailure {
			logger.Warn(ctx, "call rolled back by a failed distribution", zap.String("op", op), zap.Error(err))
		} else {
			logger.Debug(ctx, "call rolled back", zap.String("op", op), zap.Error(err))
		}

		return nil, fmt.Errorf("could not %s: %w", op, err)
	}

	c.report(ctx)

	return &Receipt{Events: c.stored, Amount: c.amount}, nil
}

// read loads the committed token state for a read-only query.
func (t *token) read(ctx context.Context) (*domain.TokenState, error) {
	state, err := t.storage.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get token state: %w", err)
	}
	if state == nil {
		return nil, serrors.With(serrors.ErrNotFound, "token is not deployed")
	}

	return state, nil
}

func (t *token) Info(ctx context.Context) (*domain.TokenState, error) {
	return t.read(ctx)
}

func (t *token) Account(ctx context.Context, addr common.Address) (*domain.Account, error) {
	if _, err := t.read(ctx); err != nil {
		return nil, err
	}

	acc := &domain.Account{Address: addr}
	var err error
	if acc.Balance, err = t.storage.Balance(ctx, addr); err != nil {
		return nil, fmt.Errorf("could not get balance: %w", err)
	}
	if acc.Native, err = t.storage.NativeBalance(ctx, addr); err != nil {
		return nil, fmt.Errorf("could not get native balance: %w", err)
	}
	if acc.Exempt, err = t.storage.IsExempt(ctx, addr); err != nil {
		return nil, fmt.Errorf("could not check exemption: %w", err)
	}
	if acc.Pair, err = t.storage.IsPair(ctx, addr); err != nil {
		return nil, fmt.Errorf("could not check pair: %w", err)
	}
	if acc.LastReceived, err = t.storage.LastReceived(ctx, addr); err != nil {
		return nil, fmt.Errorf("could not get receipt clock: %w", err)
	}

	return acc, nil
}

func (t *token) BalanceOf(ctx context.Context, owner common.Address) (domain.Amount, error) {
	bal, err := t.storage.Balance(ctx, owner)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get balance: %w", err)
	}

	return bal, nil
}

func (t *token) Allowance(ctx context.Context, owner, spender common.Address) (domain.Amount, error) {
	allowance, err := t.storage.Allowance(ctx, owner, spender)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get allowance: %w", err)
	}

	return allowance, nil
}

// Events returns a page of committed events of kind (all kinds when empty)
// with IDs greater than afterID.
func (t *token) Events(ctx context.Context,
	kind domain.EventKind,
	afterID int64,
	limit uint) ([]domain.Event, error) {
	events, err := t.storage.Events(ctx, kind, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get events: %w", err)
	}

	return events, nil
}
