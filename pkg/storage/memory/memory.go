// Package memory provides an in-process storage.Storage. A transaction works
// on a private copy of the committed data and swaps it in on Commit, so a
// rolled back call leaves no trace. It backs local runs and engine tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/storage"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/riverqueue/river"
)

type pairKey struct {
	a common.Address
	b common.Address
}

// Job is a job recorded by AddJob.
type Job struct {
	Args river.JobArgs
	Opts *river.InsertOpts
}

type data struct {
	balances   map[common.Address]domain.Amount
	allowances map[pairKey]domain.Amount
	state      *domain.TokenState
	exempt     map[common.Address]bool
	pairs      map[common.Address]bool
	clocks     map[common.Address]time.Time
	native     map[common.Address]domain.Amount
	pools      map[common.Address]domain.Pool
	lp         map[pairKey]domain.Amount
	foreign    map[pairKey]domain.Amount
	events     []domain.Event
	jobs       []Job
	lastID     int64
}

func newData() *data {
	return &data{
		balances:   map[common.Address]domain.Amount{},
		allowances: map[pairKey]domain.Amount{},
		exempt:     map[common.Address]bool{},
		pairs:      map[common.Address]bool{},
		clocks:     map[common.Address]time.Time{},
		native:     map[common.Address]domain.Amount{},
		pools:      map[common.Address]domain.Pool{},
		lp:         map[pairKey]domain.Amount{},
		foreign:    map[pairKey]domain.Amount{},
	}
}

func (d *data) clone() *data {
	c := &data{
		balances:   maps.Clone(d.balances),
		allowances: maps.Clone(d.allowances),
		exempt:     maps.Clone(d.exempt),
		pairs:      maps.Clone(d.pairs),
		clocks:     maps.Clone(d.clocks),
		native:     maps.Clone(d.native),
		pools:      maps.Clone(d.pools),
		lp:         maps.Clone(d.lp),
		foreign:    maps.Clone(d.foreign),
		events:     append([]domain.Event(nil), d.events...),
		jobs:       append([]Job(nil), d.jobs...),
		lastID:     d.lastID,
	}
	if d.state != nil {
		st := *d.state
		c.state = &st
	}

	return c
}

type shared struct {
	mu        sync.RWMutex
	committed *data
}

// Memory implements storage.Storage and storage.TxStorage. The root handle
// reads and writes committed data under a lock; a transactional handle owns
// its copy and must not be shared between goroutines.
type Memory struct {
	shared *shared
	// tx is the private copy of a transactional handle, nil on the root.
	tx   *data
	done bool
}

// New returns an empty storage.
func New() *Memory {
	return &Memory{shared: &shared{committed: newData()}}
}

// view runs fn against the data visible to this handle.
func (m *Memory) view(fn func(d *data) error) error {
	if m.tx != nil {
		if m.done {
			return fmt.Errorf("transaction already finished")
		}

		return fn(m.tx)
	}

	m.shared.mu.Lock()
	defer m.shared.mu.Unlock()

	return fn(m.shared.committed)
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Begin snapshots the committed data into a new transactional handle.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.tx != nil {
		return nil, storage.ErrAlreadyInTx
	}

	m.shared.mu.RLock()
	snapshot := m.shared.committed.clone()
	m.shared.mu.RUnlock()

	return &Memory{shared: m.shared, tx: snapshot}, nil
}

// Commit replaces the committed data with the transaction's copy.
func (m *Memory) Commit() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return fmt.Errorf("could not commit tx: already finished")
	}

	m.shared.mu.Lock()
	m.shared.committed = m.tx
	m.shared.mu.Unlock()
	m.done = true

	return nil
}

// Rollback discards the transaction's copy.
func (m *Memory) Rollback() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return fmt.Errorf("could not rollback tx: already finished")
	}

	m.done = true
	m.tx = newData()

	return nil
}

// WithTx begins a transaction, runs cb and commits when cb succeeds.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Jobs returns the jobs recorded by committed calls.
func (m *Memory) Jobs() []Job {
	var out []Job
	_ = m.view(func(d *data) error {
		out = append(out, d.jobs...)

		return nil
	})

	return out
}

func setAmount[K comparable](dst map[K]domain.Amount, k K, v domain.Amount) {
	if v.IsZero() {
		delete(dst, k)

		return
	}
	dst[k] = v
}

func (m *Memory) Balance(_ context.Context, addr common.Address) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		out = d.balances[addr]

		return nil
	})

	return out, err
}

func (m *Memory) SetBalance(_ context.Context, addr common.Address, amount domain.Amount) error {
	return m.view(func(d *data) error {
		setAmount(d.balances, addr, amount)

		return nil
	})
}

func (m *Memory) Allowance(_ context.Context, owner, spender common.Address) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		out = d.allowances[pairKey{owner, spender}]

		return nil
	})

	return out, err
}

func (m *Memory) SetAllowance(_ context.Context, owner, spender common.Address, amount domain.Amount) error {
	return m.view(func(d *data) error {
		setAmount(d.allowances, pairKey{owner, spender}, amount)

		return nil
	})
}

func (m *Memory) TotalBalances(_ context.Context) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		for _, b := range d.balances {
			sum, overflow := out.AddChecked(b)
			if overflow {
				return fmt.Errorf("balance sum overflows")
			}
			out = sum
		}

		return nil
	})

	return out, err
}

func (m *Memory) State(_ context.Context) (*domain.TokenState, error) {
	var out *domain.TokenState
	err := m.view(func(d *data) error {
		if d.state != nil {
			st := *d.state
			out = &st
		}

		return nil
	})

	return out, err
}

func (m *Memory) SaveState(_ context.Context, state domain.TokenState) error {
	return m.view(func(d *data) error {
		d.state = &state

		return nil
	})
}

func (m *Memory) IsExempt(_ context.Context, addr common.Address) (bool, error) {
	var out bool
	err := m.view(func(d *data) error {
		out = d.exempt[addr]

		return nil
	})

	return out, err
}

func (m *Memory) SetExempt(_ context.Context, addr common.Address, exempt bool) error {
	return m.view(func(d *data) error {
		if exempt {
			d.exempt[addr] = true
		} else {
			delete(d.exempt, addr)
		}

		return nil
	})
}

func (m *Memory) IsPair(_ context.Context, addr common.Address) (bool, error) {
	var out bool
	err := m.view(func(d *data) error {
		out = d.pairs[addr]

		return nil
	})

	return out, err
}

func (m *Memory) SetPair(_ context.Context, addr common.Address, pair bool) error {
	return m.view(func(d *data) error {
		if pair {
			d.pairs[addr] = true
		} else {
			delete(d.pairs, addr)
		}

		return nil
	})
}

func (m *Memory) Pairs(_ context.Context) ([]common.Address, error) {
	var out []common.Address
	err := m.view(func(d *data) error {
		for addr := range d.pairs {
			out = append(out, addr)
		}

		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })

	return out, err
}

func (m *Memory) LastReceived(_ context.Context, addr common.Address) (time.Time, error) {
	var out time.Time
	err := m.view(func(d *data) error {
		out = d.clocks[addr]

		return nil
	})

	return out, err
}

func (m *Memory) SetLastReceived(_ context.Context, addr common.Address, at time.Time) error {
	return m.view(func(d *data) error {
		d.clocks[addr] = at

		return nil
	})
}

func (m *Memory) NativeBalance(_ context.Context, addr common.Address) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		out = d.native[addr]

		return nil
	})

	return out, err
}

func (m *Memory) SetNativeBalance(_ context.Context, addr common.Address, amount domain.Amount) error {
	return m.view(func(d *data) error {
		setAmount(d.native, addr, amount)

		return nil
	})
}

func (m *Memory) Pool(_ context.Context, addr common.Address) (*domain.Pool, error) {
	var out *domain.Pool
	err := m.view(func(d *data) error {
		if p, ok := d.pools[addr]; ok {
			out = &p
		}

		return nil
	})

	return out, err
}

func (m *Memory) SavePool(_ context.Context, pool domain.Pool) error {
	return m.view(func(d *data) error {
		d.pools[pool.Address] = pool

		return nil
	})
}

func (m *Memory) LiquidityBalance(_ context.Context, pool, holder common.Address) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		out = d.lp[pairKey{pool, holder}]

		return nil
	})

	return out, err
}

func (m *Memory) SetLiquidityBalance(_ context.Context, pool, holder common.Address, amount domain.Amount) error {
	return m.view(func(d *data) error {
		setAmount(d.lp, pairKey{pool, holder}, amount)

		return nil
	})
}

func (m *Memory) ForeignBalance(_ context.Context, token, holder common.Address) (domain.Amount, error) {
	var out domain.Amount
	err := m.view(func(d *data) error {
		out = d.foreign[pairKey{token, holder}]

		return nil
	})

	return out, err
}

func (m *Memory) SetForeignBalance(_ context.Context, token, holder common.Address, amount domain.Amount) error {
	return m.view(func(d *data) error {
		setAmount(d.foreign, pairKey{token, holder}, amount)

		return nil
	})
}

func (m *Memory) StoreEvents(_ context.Context, events ...domain.Event) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(events))
	err := m.view(func(d *data) error {
		for _, ev := range events {
			d.lastID++
			ev.ID = d.lastID
			ev.Attributes = maps.Clone(ev.Attributes)
			d.events = append(d.events, ev)
			out = append(out, ev)
		}

		return nil
	})

	return out, err
}

func (m *Memory) Events(_ context.Context, kind domain.EventKind, afterID int64, limit uint) ([]domain.Event, error) {
	var out []domain.Event
	err := m.view(func(d *data) error {
		for _, ev := range d.events {
			if uint(len(out)) >= limit {
				break
			}
			if ev.ID <= afterID || (kind != "" && ev.Kind != kind) {
				continue
			}
			out = append(out, ev)
		}

		return nil
	})

	return out, err
}

func (m *Memory) EventsByIDs(_ context.Context, ids []int64) ([]domain.Event, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []domain.Event
	err := m.view(func(d *data) error {
		for _, ev := range d.events {
			if want[ev.ID] {
				out = append(out, ev)
			}
		}

		return nil
	})

	return out, err
}

func (m *Memory) AddJob(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	return true, m.view(func(d *data) error {
		d.jobs = append(d.jobs, Job{Args: args, Opts: opts})

		return nil
	})
}

var _ storage.Storage = (*Memory)(nil)
var _ storage.TxStorage = (*Memory)(nil)
