// Package memory provides in-process snapshot stores for tests and the
// memory backend.
package memory

import (
	"context"
	"sync"

	"fintrack/internal/core"
)

// TransactionStore keeps the snapshot in memory.
type TransactionStore struct {
	mu  sync.Mutex
	txs []core.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

func (s *TransactionStore) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

func (s *TransactionStore) Save(_ context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = make([]core.Transaction, len(txs))
	copy(s.txs, txs)
	return nil
}

// UserStore keeps the user record in memory.
type UserStore struct {
	mu   sync.Mutex
	user *core.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Load(_ context.Context) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *UserStore) Save(_ context.Context, u core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return nil
}

func (s *UserStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

// FailingTransactionStore wraps a TransactionStore and fails Save with a
// fixed error once armed. Test double for persistence-failure paths.
type FailingTransactionStore struct {
	Inner   *TransactionStore
	SaveErr error
}

func (s *FailingTransactionStore) Load(ctx context.Context) ([]core.Transaction, error) {
	return s.Inner.Load(ctx)
}

func (s *FailingTransactionStore) Save(ctx context.Context, txs []core.Transaction) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	return s.Inner.Save(ctx, txs)
}
