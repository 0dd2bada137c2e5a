package events

import "context"

// TransactionalBus buffers events published during a database
// transaction. Flush hands them to the underlying bus after a
// successful commit; Discard drops them on rollback, so subscribers
// never observe a submission that was not persisted.
type TransactionalBus struct {
	bus     *Bus
	pending []Event
}

// NewTransactionalBus creates a transactional wrapper around a bus
func NewTransactionalBus(bus *Bus) *TransactionalBus {
	return &TransactionalBus{bus: bus}
}

// Publish buffers an event until the transaction commits
func (t *TransactionalBus) Publish(event Event) {
	t.pending = append(t.pending, event)
}

// Flush dispatches all buffered events
func (t *TransactionalBus) Flush(ctx context.Context) {
	for _, event := range t.pending {
		t.bus.Publish(ctx, event)
	}
	t.pending = nil
}

// Discard drops all buffered events
func (t *TransactionalBus) Discard() {
	t.pending = nil
}
