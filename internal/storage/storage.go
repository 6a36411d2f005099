// Package storage defines the persistence ports for the transaction ledger
// and the user record. Implementations rewrite whole snapshots: the full
// collection is the unit of persistence.
package storage

import (
	"context"

	"fintrack/internal/core"
)

// TransactionStore persists the transaction collection as one snapshot.
// Load returns an empty slice when nothing has been saved yet; absence of
// data is not an error.
type TransactionStore interface {
	Load(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, txs []core.Transaction) error
}

// UserStore persists the single user record of the demo session. Load
// returns (nil, nil) when no user is stored.
type UserStore interface {
	Load(ctx context.Context) (*core.User, error)
	Save(ctx context.Context, u core.User) error
	Clear(ctx context.Context) error
}
