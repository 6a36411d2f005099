package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"integer", "430", 43000, false},
		{"dot separator", "12.34", 1234, false},
		{"comma separator", "12,34", 1234, false},
		{"single decimal", "12.3", 1230, false},
		{"rounds half up", "12.345", 1235, false},
		{"rounds down", "12.344", 1234, false},
		{"leading dot", ".50", 50, false},
		{"whitespace", "  99.99  ", 9999, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"zero decimal", "0.00", 0, true},
		{"negative", "-12.34", 0, true},
		{"explicit plus", "+12.34", 0, true},
		{"letters", "12a.34", 0, true},
		{"two dots", "1.2.3", 0, true},
		{"overflow", "999999999999999999999", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{43000, "430.00"},
		{50, "0.50"},
		{1235, "12.35"},
		{-1250, "-12.50"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		cents  int64
		symbol string
		want   string
	}{
		{250000, "$", "$2,500.00"},
		{123456789, "₹", "₹1,234,567.89"},
		{999, "€", "€9.99"},
		{-43000, "$", "-$430.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Format(tc.symbol); got != tc.want {
			t.Fatalf("Format(%d, %q) = %q, want %q", tc.cents, tc.symbol, got, tc.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 43000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"430.00"` {
		t.Fatalf("unexpected encoding %s", b)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"12,34"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.Cents != 1234 {
		t.Fatalf("got %d cents, want 1234", fromString.Cents)
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`430`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.Cents != 43000 {
		t.Fatalf("got %d cents, want 43000", fromNumber.Cents)
	}

	var bad Money
	if err := json.Unmarshal([]byte(`"-5"`), &bad); err == nil {
		t.Fatalf("expected error for negative amount")
	}
	if err := json.Unmarshal([]byte(`null`), &bad); err == nil {
		t.Fatalf("expected error for null amount")
	}
}
