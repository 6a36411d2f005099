package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

const (
	CategoryShopping      Category = "shopping"
	CategoryTravel        Category = "travel"
	CategoryUtilities     Category = "utilities"
	CategoryGroceries     Category = "groceries"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
	CategoryIncome        Category = "income"
)

const (
	USD Currency = "USD"
	INR Currency = "INR"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

type (
	TransactionType string

	Category string

	Currency string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single recorded income or expense event.
	Transaction struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      Money           `json:"amount"`
		Date        Date            `json:"date"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
	}

	// TransactionInput carries the user-supplied fields of a new transaction.
	TransactionInput struct {
		Type        TransactionType `json:"type"`
		Amount      Money           `json:"amount"`
		Date        Date            `json:"date"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
	}

	// TransactionPatch is a partial edit; nil fields are left unchanged.
	TransactionPatch struct {
		Type        *TransactionType `json:"type"`
		Amount      *Money           `json:"amount"`
		Date        *Date            `json:"date"`
		Category    *Category        `json:"category"`
		Description *string          `json:"description"`
	}

	// User is the single active account of the demo session flow.
	User struct {
		ID        string   `json:"id"`
		Name      string   `json:"name"`
		Email     string   `json:"email"`
		AvatarURL string   `json:"avatarUrl,omitempty"`
		Currency  Currency `json:"currency"`
	}

	// UserPatch is a partial profile update; nil fields are left unchanged.
	UserPatch struct {
		Name      *string   `json:"name"`
		Email     *string   `json:"email"`
		AvatarURL *string   `json:"avatarUrl"`
		Currency  *Currency `json:"currency"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrEmptyName          = errors.New("empty user name")
	ErrEmptyEmail         = errors.New("empty email")
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryShopping,
		CategoryTravel,
		CategoryUtilities,
		CategoryGroceries,
		CategoryEntertainment,
		CategoryOther,
		CategoryIncome,
	}
}

func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

func (c Category) Valid() bool {
	switch c {
	case CategoryShopping, CategoryTravel, CategoryUtilities, CategoryGroceries,
		CategoryEntertainment, CategoryOther, CategoryIncome:
		return true
	}
	return false
}

func (c Currency) Valid() bool {
	switch c {
	case USD, INR, EUR, GBP:
		return true
	}
	return false
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case INR:
		return "₹"
	case EUR:
		return "€"
	case GBP:
		return "£"
	default:
		return "$"
	}
}

// NewDate creates a Date from year, month, day. Time of day is not tracked.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the calendar month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	if err := in.Amount.Validate(); err != nil {
		return err
	}
	if err := in.Date.Validate(); err != nil {
		return err
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	if len(strings.TrimSpace(in.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(in.Description) > 200 {
		return ErrDescriptionTooLong
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("missing transaction id")
	}
	return TransactionInput{
		Type:        t.Type,
		Amount:      t.Amount,
		Date:        t.Date,
		Category:    t.Category,
		Description: t.Description,
	}.Validate()
}

// Apply merges the patch onto the transaction, keeping the ID fixed.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

// Apply merges the patch onto the user, keeping the ID fixed.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Currency != nil {
		u.Currency = *p.Currency
	}
	return u
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !u.Currency.Valid() {
		return ErrInvalidCurrency
	}
	return nil
}
