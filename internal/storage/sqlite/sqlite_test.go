package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/seed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "fintrack.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadEmpty(t *testing.T) {
	store := newTestStore(t)
	txs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty collection, got %d", len(txs))
	}
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	store := newTestStore(t)
	want := seed.Transactions()

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("order not preserved at %d: %s != %s", i, got[i].ID, want[i].ID)
		}
		if got[i].Amount != want[i].Amount || got[i].Type != want[i].Type ||
			got[i].Category != want[i].Category || got[i].Description != want[i].Description {
			t.Fatalf("record %d mismatch: %+v != %+v", i, got[i], want[i])
		}
		if !got[i].Date.Equal(want[i].Date.Time) {
			t.Fatalf("record %d date mismatch: %v != %v", i, got[i].Date, want[i].Date)
		}
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(context.Background(), seed.Transactions()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(context.Background(), seed.Transactions()[:3]); err != nil {
		t.Fatalf("save smaller: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("old rows survived rewrite: %d", len(got))
	}
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	users := UserStore{Store: store}

	u, err := users.Load(context.Background())
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}

	want := core.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", AvatarURL: "https://example.com/a.png", Currency: core.INR}
	if err := users.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saving again overwrites the single slot.
	want.Currency = core.GBP
	if err := users.Save(context.Background(), want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := users.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := users.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := users.Load(context.Background()); got != nil {
		t.Fatalf("user survived clear: %+v", got)
	}
}
