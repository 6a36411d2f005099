package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-17")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2025 || d.Month() != 5 || d.Day() != 17 {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("17/05/2025"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 5, 17)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-05-17"` {
		t.Fatalf("unexpected encoding %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestTransactionInputValidate(t *testing.T) {
	good := TransactionInput{
		Type:        Expense,
		Amount:      Money{Cents: 43000},
		Date:        NewDate(2025, 5, 17),
		Category:    CategoryShopping,
		Description: "Shopping",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(*TransactionInput)
		want error
	}{
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, ErrInvalidType},
		{"zero amount", func(in *TransactionInput) { in.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(in *TransactionInput) { in.Amount = Money{Cents: -100} }, ErrInvalidAmount},
		{"zero date", func(in *TransactionInput) { in.Date = Date{} }, ErrInvalidDate},
		{"bad category", func(in *TransactionInput) { in.Category = "rent" }, ErrInvalidCategory},
		{"blank description", func(in *TransactionInput) { in.Description = "  " }, ErrEmptyDescription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := good
			tc.mut(&in)
			if err := in.Validate(); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTransactionPatchApply(t *testing.T) {
	tx := Transaction{
		ID:          "1",
		Type:        Expense,
		Amount:      Money{Cents: 43000},
		Date:        NewDate(2025, 5, 17),
		Category:    CategoryShopping,
		Description: "Shopping",
	}

	// Empty patch leaves the record observably unchanged.
	if got := (TransactionPatch{}).Apply(tx); got != tx {
		t.Fatalf("empty patch changed record: %+v", got)
	}

	amount := Money{Cents: 50000}
	desc := "Bigger shopping"
	got := TransactionPatch{Amount: &amount, Description: &desc}.Apply(tx)
	if got.ID != "1" || got.Amount.Cents != 50000 || got.Description != desc {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Type != Expense || got.Category != CategoryShopping {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestCurrencySymbol(t *testing.T) {
	cases := []struct {
		c    Currency
		want string
	}{
		{USD, "$"}, {INR, "₹"}, {EUR, "€"}, {GBP, "£"},
	}
	for _, tc := range cases {
		if got := tc.c.Symbol(); got != tc.want {
			t.Fatalf("%s symbol = %q, want %q", tc.c, got, tc.want)
		}
	}
	if Currency("JPY").Valid() {
		t.Fatalf("JPY should not be a valid currency")
	}
}

func TestUserValidate(t *testing.T) {
	u := User{ID: "1", Name: "Mike William", Email: "mike.william@example.com", Currency: USD}
	if err := u.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	u.Currency = "XYZ"
	if err := u.Validate(); err != ErrInvalidCurrency {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}
