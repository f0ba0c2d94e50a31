package fintrack

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Input holds the raw values of a transaction to add, as typed by a user.
type Input struct {
	Description string
	Amount      string // a decimal number, e.g. "4.50"
	Category    string
	Kind        string // "income" or "expense"
}

// NewInput creates an Input from typed values.
func NewInput(description string, amount decimal.Decimal, category Category, kind Kind) Input {
	return Input{
		Description: description,
		Amount:      amount.String(),
		Category:    string(category),
		Kind:        string(kind),
	}
}

// draft is a validated Input, still missing its id and creation time.
type draft struct {
	description string
	amount      decimal.Decimal
	category    Category
	kind        Kind
}

// validate checks the input fields in order and returns the first failure.
func (in Input) validate() (draft, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return draft{}, &ValidationError{Field: FieldDescription, Message: "please enter a description"}
	}

	raw := strings.TrimSpace(in.Amount)
	if raw == "" {
		return draft{}, &ValidationError{Field: FieldAmount, Message: "please enter an amount"}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return draft{}, &ValidationError{Field: FieldAmount, Message: fmt.Sprintf("%q is not a number", raw)}
	}
	if !amount.IsPositive() {
		return draft{}, &ValidationError{Field: FieldAmount, Message: fmt.Sprintf("must be positive, got %s", amount)}
	}

	category := ParseCategory(in.Category)
	if category == "" {
		return draft{}, &ValidationError{Field: FieldCategory, Message: "please select a category"}
	}

	kind, err := ParseKind(in.Kind)
	if err != nil {
		return draft{}, &ValidationError{Field: FieldKind, Message: err.Error()}
	}

	return draft{description: description, amount: amount, category: category, kind: kind}, nil
}
