package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/report"
)

type totalsResponse struct {
	Income   core.Money      `json:"income"`
	Expenses core.Money      `json:"expenses"`
	Balance  core.Money      `json:"balance"`
	Display  totalsFormatted `json:"display"`
}

type totalsFormatted struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

type categoryEntry struct {
	Category core.Category `json:"category"`
	Amount   core.Money    `json:"amount"`
}

// currencySymbol returns the signed-in user's currency symbol, defaulting
// to dollars when nobody is signed in.
func (s *Server) currencySymbol() string {
	if u, ok := s.session.Current(); ok {
		return u.Currency.Symbol()
	}
	return core.USD.Symbol()
}

func (s *Server) handleTotals(w http.ResponseWriter, _ *http.Request) {
	symbol := s.currencySymbol()
	key := fmt.Sprintf("v%d:%s", s.ledger.Version(), symbol)

	if cached, ok := s.totalsCache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	t := s.ledger.Totals()
	resp := totalsResponse{
		Income:   t.Income,
		Expenses: t.Expenses,
		Balance:  t.Balance,
		Display: totalsFormatted{
			Income:   t.Income.Format(symbol),
			Expenses: t.Expenses.Format(symbol),
			Balance:  t.Balance.Format(symbol),
		},
	}
	s.totalsCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	tt := core.Expense
	if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
		tt = core.TransactionType(v)
		if !tt.Valid() {
			writeError(w, http.StatusUnprocessableEntity, core.ErrInvalidType.Error())
			return
		}
	}

	key := fmt.Sprintf("v%d:%s", s.ledger.Version(), tt)
	if cached, ok := s.categoryCache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	dist := s.ledger.ByCategory(tt)
	entries := make([]categoryEntry, 0, len(dist))
	for cat, amount := range dist {
		entries = append(entries, categoryEntry{Category: cat, Amount: amount})
	}
	// Largest first; ties broken by name so the order is stable.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount.Cents != entries[j].Amount.Cents {
			return entries[i].Amount.Cents > entries[j].Amount.Cents
		}
		return entries[i].Category < entries[j].Category
	})

	s.categoryCache.Set(key, entries)
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	limit := report.DefaultMonthLimit
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusUnprocessableEntity, "invalid limit: must be a positive number")
			return
		}
		limit = n
	}

	key := fmt.Sprintf("v%d:%d", s.ledger.Version(), limit)
	if cached, ok := s.monthlyCache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	flows := s.ledger.ByMonth(limit)
	if flows == nil {
		flows = []report.MonthFlow{}
	}
	s.monthlyCache.Set(key, flows)
	writeJSON(w, http.StatusOK, flows)
}
