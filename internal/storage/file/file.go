// Package file persists snapshots as JSON documents under a data directory.
// It is the server-side analogue of the original app's browser storage:
// transactions.json and user.json are rewritten whole on every save.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fintrack/internal/core"
)

const (
	transactionsFile = "transactions.json"
	userFile         = "user.json"
)

// TransactionStore stores the collection in transactions.json.
type TransactionStore struct {
	mu   sync.Mutex
	path string
}

// NewTransactionStore creates the data directory if needed.
func NewTransactionStore(dir string) (*TransactionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &TransactionStore{path: filepath.Join(dir, transactionsFile)}, nil
}

func (s *TransactionStore) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []core.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var txs []core.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return txs, nil
}

func (s *TransactionStore) Save(_ context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	return writeAtomic(s.path, data)
}

// UserStore stores the user record in user.json.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(dir string) (*UserStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &UserStore{path: filepath.Join(dir, userFile)}, nil
}

func (s *UserStore) Load(_ context.Context) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var u core.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return &u, nil
}

func (s *UserStore) Save(_ context.Context, u core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return writeAtomic(s.path, data)
}

func (s *UserStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory and renames it
// into place so readers never observe a partial document.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
