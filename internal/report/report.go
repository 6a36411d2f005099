// Package report computes derived views over a transaction collection:
// overall totals, per-category distribution, and monthly cash flow. All
// functions are pure; callers pass a snapshot and get values back.
package report

import (
	"sort"
	"time"

	"fintrack/internal/core"
)

// DefaultMonthLimit bounds the monthly view to the most recent buckets.
const DefaultMonthLimit = 6

type (
	// Totals summarizes a collection. Balance is income minus expenses and
	// may be negative.
	Totals struct {
		Income   core.Money `json:"income"`
		Expenses core.Money `json:"expenses"`
		Balance  core.Money `json:"balance"`
	}

	// MonthFlow is one (year, month) bucket of the monthly cash-flow view.
	MonthFlow struct {
		Year    int        `json:"year"`
		Month   time.Month `json:"month"`
		Label   string     `json:"label"`
		Income  core.Money `json:"income"`
		Expense core.Money `json:"expense"`
	}
)

// Sum computes the overall totals for a collection. Empty input yields all
// zeros.
func Sum(txs []core.Transaction) Totals {
	var income, expenses int64
	for _, t := range txs {
		switch t.Type {
		case core.Income:
			income += t.Amount.Cents
		case core.Expense:
			expenses += t.Amount.Cents
		}
	}
	return Totals{
		Income:   core.Money{Cents: income},
		Expenses: core.Money{Cents: expenses},
		Balance:  core.Money{Cents: income - expenses},
	}
}

// ByCategory sums amounts per category for transactions of the given type.
// Returns an empty (non-nil) map when nothing matches.
func ByCategory(txs []core.Transaction, tt core.TransactionType) map[core.Category]core.Money {
	out := make(map[core.Category]core.Money)
	for _, t := range txs {
		if t.Type != tt {
			continue
		}
		m := out[t.Category]
		m.Cents += t.Amount.Cents
		out[t.Category] = m
	}
	return out
}

// ByMonth buckets transactions by calendar (year, month) and returns the
// buckets in ascending chronological order, truncated to the most recent
// limit entries. A limit <= 0 falls back to DefaultMonthLimit. Months with
// no transactions produce no bucket.
func ByMonth(txs []core.Transaction, limit int) []MonthFlow {
	if limit <= 0 {
		limit = DefaultMonthLimit
	}

	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthFlow)
	for _, t := range txs {
		k := key{year: t.Date.Year(), month: t.Date.Time.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthFlow{
				Year:  k.year,
				Month: k.month,
				Label: k.month.String()[:3],
			}
			buckets[k] = b
		}
		switch t.Type {
		case core.Income:
			b.Income.Cents += t.Amount.Cents
		case core.Expense:
			b.Expense.Cents += t.Amount.Cents
		}
	}

	out := make([]MonthFlow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
