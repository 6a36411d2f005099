package seed

import (
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

func TestTransactionsAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, tx := range Transactions() {
		if err := tx.Validate(); err != nil {
			t.Fatalf("seed transaction %s invalid: %v", tx.ID, err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate seed id %s", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	txs := Transactions()
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.After(txs[i-1].Date.Time) {
			t.Fatalf("seed not newest first: %s after %s", txs[i].ID, txs[i-1].ID)
		}
	}
}

func TestSeedTotals(t *testing.T) {
	got := report.Sum(Transactions())
	if got.Income.Cents != 250000 {
		t.Fatalf("income = %d, want 250000", got.Income.Cents)
	}
	if got.Expenses.Cents != 210000 {
		t.Fatalf("expenses = %d, want 210000", got.Expenses.Cents)
	}
	if got.Balance.Cents != 40000 {
		t.Fatalf("balance = %d, want 40000", got.Balance.Cents)
	}
}

func TestDemoUser(t *testing.T) {
	u := DemoUser()
	if err := u.Validate(); err != nil {
		t.Fatalf("demo user invalid: %v", err)
	}
	if u.Currency != core.USD {
		t.Fatalf("demo currency = %s, want USD", u.Currency)
	}
}
