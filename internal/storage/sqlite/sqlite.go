// Package sqlite persists snapshots in a SQLite database. The transaction
// table mirrors the snapshot model: Save replaces the whole collection in
// one SQL transaction, with a position column preserving list order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// Store implements storage.TransactionStore and storage.UserStore over a
// single database file.
type Store struct {
	db *sql.DB
}

// New opens (and creates if needed) the database at dbPath and applies
// embedded migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount_cents, date, category, description
		 FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		var (
			t    core.Transaction
			date string
		)
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount.Cents, &date, &t.Category, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, err)
		}
		t.Date = d
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) Save(ctx context.Context, txs []core.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (id, position, type, amount_cents, date, category, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range txs {
		if _, err := stmt.ExecContext(ctx, t.ID, i, string(t.Type), t.Amount.Cents,
			t.Date.String(), string(t.Category), t.Description); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (s *Store) LoadUser(ctx context.Context) (*core.User, error) {
	var u core.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, avatar_url, currency FROM users WHERE slot = 1`).
		Scan(&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.Currency)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *Store) SaveUser(ctx context.Context, u core.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (slot, id, name, email, avatar_url, currency)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT (slot) DO UPDATE SET
		   id = excluded.id,
		   name = excluded.name,
		   email = excluded.email,
		   avatar_url = excluded.avatar_url,
		   currency = excluded.currency`,
		u.ID, u.Name, u.Email, u.AvatarURL, string(u.Currency))
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *Store) ClearUser(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE slot = 1`); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}

// UserStore adapts Store to the storage.UserStore interface.
type UserStore struct {
	*Store
}

func (s UserStore) Load(ctx context.Context) (*core.User, error) { return s.LoadUser(ctx) }
func (s UserStore) Save(ctx context.Context, u core.User) error  { return s.SaveUser(ctx, u) }
func (s UserStore) Clear(ctx context.Context) error              { return s.ClearUser(ctx) }
