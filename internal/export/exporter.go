// Package export defines the snapshot exporter port used by the worker.
package export

import (
	"context"
	"sync"

	"fintrack/internal/core"
)

// Exporter receives the full transaction snapshot after each mutation (and
// on the periodic fallback tick).
type Exporter interface {
	Export(ctx context.Context, txs []core.Transaction) error
}

// Memory records exported snapshots for tests.
type Memory struct {
	mu        sync.Mutex
	snapshots [][]core.Transaction
	err       error
}

func NewMemory() *Memory {
	return &Memory{}
}

// Fail makes subsequent Export calls return err.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) Export(_ context.Context, txs []core.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	snap := make([]core.Transaction, len(txs))
	copy(snap, txs)
	m.snapshots = append(m.snapshots, snap)
	return nil
}

// Snapshots returns every exported snapshot in order.
func (m *Memory) Snapshots() [][]core.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]core.Transaction, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}
