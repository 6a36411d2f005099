// Package backend selects and wires the persistence stores for a
// deployment: memory, file, or sqlite.
package backend

import (
	"fmt"
	"log/slog"

	"fintrack/internal/config"
	"fintrack/internal/storage"
	filestore "fintrack/internal/storage/file"
	"fintrack/internal/storage/memory"
	"fintrack/internal/storage/sqlite"
)

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Stores bundles the persistence ports a deployment runs on.
type Stores struct {
	Transactions storage.TransactionStore
	Users        storage.UserStore
	Cleanup      CleanupFunc
}

// BackendType represents the type of backend
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// New creates the stores named by cfg.DataBackend.
func New(cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bt := BackendType(cfg.DataBackend)
	if !bt.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch bt {
	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Stores{
			Transactions: memory.NewTransactionStore(),
			Users:        memory.NewUserStore(),
			Cleanup:      nil,
		}, nil

	case FileBackend:
		txStore, err := filestore.NewTransactionStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file transaction store: %w", err)
		}
		userStore, err := filestore.NewUserStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file user store: %w", err)
		}
		logger.Info("Initialized file backend", "data_dir", cfg.DataDir)
		return &Stores{
			Transactions: txStore,
			Users:        userStore,
			Cleanup:      nil,
		}, nil

	case SQLiteBackend:
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Stores{
			Transactions: store,
			Users:        sqlite.UserStore{Store: store},
			Cleanup:      store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", bt)
	}
}
