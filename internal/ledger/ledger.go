// Package ledger is the transaction system of record. It keeps the current
// collection in memory as an immutable snapshot, rewrites the backing store
// whole on every mutation, and notifies subscribers after each successful
// change. Memory and storage never diverge: a failed save rolls the
// in-memory snapshot back before the error is returned.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/report"
	"fintrack/internal/storage"
)

// ErrNotFound signals an edit or remove against an unknown transaction id.
var ErrNotFound = errors.New("transaction not found")

// Op names the mutation carried by an Event.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpRemove Op = "remove"
)

// Event describes one successful mutation. For removals Transaction holds
// the record as it was before deletion.
type Event struct {
	Op          Op
	Transaction core.Transaction
	Version     uint64
}

// Ledger coordinates the snapshot, the store, and the observers. Safe for
// concurrent use.
type Ledger struct {
	mu        sync.Mutex
	store     storage.TransactionStore
	seed      func() []core.Transaction
	newID     func() string
	txs       []core.Transaction
	version   uint64
	observers []func(Event)
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithIDGenerator overrides the default UUID generator. Used by tests that
// need deterministic ids.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) { l.newID = gen }
}

// WithSeed sets the dataset used to populate an empty store on first load.
// Without it an empty store stays empty.
func WithSeed(seed func() []core.Transaction) Option {
	return func(l *Ledger) { l.seed = seed }
}

func New(store storage.TransactionStore, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the persisted collection into memory. When the store is empty
// and a seed is configured, the seed dataset is persisted immediately so
// the first snapshot on disk matches what callers see.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	txs, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if len(txs) == 0 && l.seed != nil {
		txs = l.seed()
		if err := l.store.Save(ctx, txs); err != nil {
			return fmt.Errorf("persist seed data: %w", err)
		}
		slog.InfoContext(ctx, "Seeded empty store",
			log.FieldComponent, log.ComponentLedger,
			log.FieldOperation, log.OpSeed,
			"transactions", len(txs))
	}
	l.txs = txs
	return nil
}

// Add validates the input, assigns a fresh id, and prepends the new record
// to the collection. On validation failure the store is never touched.
func (l *Ledger) Add(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	if err := in.Validate(); err != nil {
		return core.Transaction{}, err
	}

	l.mu.Lock()
	tx := core.Transaction{
		ID:          l.newID(),
		Type:        in.Type,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Description: in.Description,
	}

	next := make([]core.Transaction, 0, len(l.txs)+1)
	next = append(next, tx)
	next = append(next, l.txs...)

	if err := l.commit(ctx, next); err != nil {
		l.mu.Unlock()
		return core.Transaction{}, err
	}
	ev := Event{Op: OpAdd, Transaction: tx, Version: l.version}
	l.mu.Unlock()

	slog.InfoContext(ctx, "Transaction added", log.NewFields().
		WithComponent(log.ComponentLedger).
		WithOperation(log.OpAdd).
		WithTransaction(tx.ID, string(tx.Type), string(tx.Category), tx.Amount.Cents).
		ToSlice()...)

	l.notify(ev)
	return tx, nil
}

// Edit merges the patch onto the identified record and re-validates the
// result. An empty patch succeeds without changing the record.
func (l *Ledger) Edit(ctx context.Context, id string, patch core.TransactionPatch) (core.Transaction, error) {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return core.Transaction{}, ErrNotFound
	}

	updated := patch.Apply(l.txs[idx])
	if err := updated.Validate(); err != nil {
		l.mu.Unlock()
		return core.Transaction{}, err
	}

	next := make([]core.Transaction, len(l.txs))
	copy(next, l.txs)
	next[idx] = updated

	if err := l.commit(ctx, next); err != nil {
		l.mu.Unlock()
		return core.Transaction{}, err
	}
	ev := Event{Op: OpEdit, Transaction: updated, Version: l.version}
	l.mu.Unlock()

	slog.InfoContext(ctx, "Transaction updated",
		log.FieldComponent, log.ComponentLedger,
		log.FieldOperation, log.OpEdit,
		log.FieldTxID, updated.ID,
		log.FieldVersion, ev.Version)

	l.notify(ev)
	return updated, nil
}

// Remove deletes the identified record. Unknown ids yield ErrNotFound;
// callers that want idempotent deletes treat that as benign.
func (l *Ledger) Remove(ctx context.Context, id string) (core.Transaction, error) {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return core.Transaction{}, ErrNotFound
	}

	removed := l.txs[idx]
	next := make([]core.Transaction, 0, len(l.txs)-1)
	next = append(next, l.txs[:idx]...)
	next = append(next, l.txs[idx+1:]...)

	if err := l.commit(ctx, next); err != nil {
		l.mu.Unlock()
		return core.Transaction{}, err
	}
	ev := Event{Op: OpRemove, Transaction: removed, Version: l.version}
	l.mu.Unlock()

	slog.InfoContext(ctx, "Transaction removed",
		log.FieldComponent, log.ComponentLedger,
		log.FieldOperation, log.OpRemove,
		log.FieldTxID, removed.ID,
		log.FieldVersion, ev.Version)

	l.notify(ev)
	return removed, nil
}

// commit persists the candidate snapshot and swaps it in. Must be called
// with the mutex held. The in-memory state is untouched when Save fails.
func (l *Ledger) commit(ctx context.Context, next []core.Transaction) error {
	if err := l.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	l.txs = next
	l.version++
	return nil
}

// Transactions returns a copy of the current snapshot, newest first.
func (l *Ledger) Transactions() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Get looks up a single transaction by id.
func (l *Ledger) Get(id string) (core.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx := l.indexOf(id); idx >= 0 {
		return l.txs[idx], true
	}
	return core.Transaction{}, false
}

// Version increments on every successful mutation. Derived views can use
// it as a cache key: equal versions mean an identical snapshot.
func (l *Ledger) Version() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version
}

// Totals computes overall income, expenses, and balance.
func (l *Ledger) Totals() report.Totals {
	return report.Sum(l.Transactions())
}

// ByCategory computes the per-category distribution for the given type.
func (l *Ledger) ByCategory(tt core.TransactionType) map[core.Category]core.Money {
	return report.ByCategory(l.Transactions(), tt)
}

// ByMonth computes the monthly cash-flow view, most recent limit buckets.
func (l *Ledger) ByMonth(limit int) []report.MonthFlow {
	return report.ByMonth(l.Transactions(), limit)
}

// Subscribe registers an observer called after every successful mutation.
// Observers run synchronously on the mutating goroutine, outside the lock.
func (l *Ledger) Subscribe(fn func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, fn)
}

func (l *Ledger) notify(ev Event) {
	l.mu.Lock()
	obs := make([]func(Event), len(l.observers))
	copy(obs, l.observers)
	l.mu.Unlock()
	for _, fn := range obs {
		fn(ev)
	}
}

func (l *Ledger) indexOf(id string) int {
	for i, t := range l.txs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
