package fintrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind tells whether a transaction brings money in or takes it out.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses "income" or "expense", ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, nil
	case "":
		return "", fmt.Errorf("transaction type is missing")
	default:
		return "", fmt.Errorf("unknown transaction type %q, want %q or %q", s, Income, Expense)
	}
}

// Sign returns "+" for income and "-" for expense.
func (k Kind) Sign() string {
	if k == Income {
		return "+"
	}
	return "-"
}

func (k Kind) String() string { return string(k) }

// Transaction is one recorded income or expense entry.
//
// Transactions are only created by [Store.Add] and never modified afterwards.
type Transaction struct {
	ID          string          // ID is unique within a store.
	Description string          // Description is trimmed and never empty.
	Amount      decimal.Decimal // Amount is strictly positive, the Kind gives the direction.
	Category    Category
	Kind        Kind
	CreatedAt   time.Time // CreatedAt is in UTC.
}

// Signed returns the amount with its direction applied: negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Equal reports whether both transactions have the same field values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Kind == o.Kind &&
		t.CreatedAt.Equal(o.CreatedAt)
}

// Validate checks that a decoded transaction satisfies the ledger invariants.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction has no id")
	}
	if strings.TrimSpace(t.Description) == "" {
		return &ValidationError{Field: FieldDescription, Message: "must not be empty"}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: FieldAmount, Message: fmt.Sprintf("must be positive, got %s", t.Amount)}
	}
	if strings.TrimSpace(string(t.Category)) == "" {
		return &ValidationError{Field: FieldCategory, Message: "must not be empty"}
	}
	if t.Kind != Income && t.Kind != Expense {
		return &ValidationError{Field: FieldKind, Message: fmt.Sprintf("unknown type %q", t.Kind)}
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("transaction %s has no creation time", t.ID)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s%s %s (%s)", t.CreatedAt.Format(time.DateOnly), t.Kind.Sign(), t.Amount, t.Description, t.Category)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("type", t.Kind)
	w.Append("createdAt", t.CreatedAt.UTC().Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Category    Category        `json:"category"`
		Kind        Kind            `json:"type"`
		CreatedAt   time.Time       `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:          temp.ID,
		Description: temp.Description,
		Amount:      temp.Amount,
		Category:    temp.Category,
		Kind:        temp.Kind,
		CreatedAt:   temp.CreatedAt.UTC(),
	}
	return nil
}
