package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/storage"
	"taxtoken/pkg/swap"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// taxRecord is a tax levied during a call, reported once the call commits.
type taxRecord struct {
	direction string
	category  string
	amount    domain.Amount
}

// call is one in-flight state-changing operation. It is handed to the router
// as the swap.Token, so token movements made by the router run through the
// same pipeline and the same transaction.
type call struct {
	t     *token
	st    storage.AllStorage
	state *domain.TokenState
	now   time.Time

	events []domain.Event
	stored []domain.Event
	amount domain.Amount

	taxes         []taxRecord
	distributions int
}

func (t *token) newCall(st storage.AllStorage, state *domain.TokenState) *call {
	return &call{
		t:     t,
		st:    st,
		state: state,
		now:   t.options.Now().UTC(),
	}
}

func (c *call) emit(kind domain.EventKind, kv ...string) {
	c.events = append(c.events, domain.NewEvent(kind, kv...))
}

// commit persists the token state and the emitted events, and enqueues the
// publish job in the same transaction.
func (c *call) commit(ctx context.Context) error {
	if err := c.st.SaveState(ctx, *c.state); err != nil {
		return fmt.Errorf("could not save token state: %w", err)
	}

	if len(c.events) == 0 {
		return nil
	}

	for i := range c.events {
		c.events[i].CreatedAt = c.now
	}
	stored, err := c.st.StoreEvents(ctx, c.events...)
	if err != nil {
		return fmt.Errorf("could not store events: %w", err)
	}
	c.stored = stored

	if !c.t.options.PublishEvents {
		return nil
	}

	ids := make([]int64, 0, len(stored))
	for _, ev := range stored {
		ids = append(ids, ev.ID)
	}
	if _, err := c.st.AddJob(ctx, PublishEventsArgs{EventIDs: ids, maxAttempts: c.t.options.MaxAttempts}, nil); err != nil {
		return fmt.Errorf("could not add job: %w", err)
	}

	return nil
}

// report records the metrics of a committed call.
func (c *call) report(ctx context.Context) {
	for _, tax := range c.taxes {
		c.t.metrics.addTax(ctx, tax, c.state.Decimals)
	}
	for range c.distributions {
		c.t.metrics.addDistribution(ctx, true)
	}
}

func (c *call) Address() common.Address {
	return c.state.Address
}

func (c *call) BalanceOf(ctx context.Context, owner common.Address) (domain.Amount, error) {
	bal, err := c.st.Balance(ctx, owner)
	if err != nil {
		return domain.Zero, fmt.Errorf("could not get balance: %w", err)
	}

	return bal, nil
}

func (c *call) Transfer(ctx context.Context, from, to common.Address, amount domain.Amount) error {
	return c.transfer(ctx, from, to, amount)
}

func (c *call) TransferFrom(ctx context.Context, spender, from, to common.Address, amount domain.Amount) error {
	if err := c.spendAllowance(ctx, from, spender, amount); err != nil {
		return err
	}

	return c.transfer(ctx, from, to, amount)
}

var _ swap.Token = (*call)(nil)
