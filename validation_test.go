package fintrack

import (
	"errors"
	"testing"
)

func TestInput_Validate(t *testing.T) {
	d, err := Input{Description: " Groceries ", Amount: " 45.10 ", Category: "shopping", Kind: "EXPENSE"}.validate()
	if err != nil {
		t.Fatalf("validate() error: %v", err)
	}
	if d.description != "Groceries" || !d.amount.Equal(D("45.1")) || d.category != Shopping || d.kind != Expense {
		t.Errorf("validate() = %+v, want normalized values", d)
	}
}

func TestNewInput(t *testing.T) {
	in := NewInput("Rent", D("800.00"), Bills, Expense)
	d, err := in.validate()
	if err != nil {
		t.Fatalf("validate() error: %v", err)
	}
	if !d.amount.Equal(D("800")) || d.category != Bills {
		t.Errorf("validate() = %+v", d)
	}

	_, err = NewInput("Rent", D("-1"), Bills, Expense).validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldAmount {
		t.Errorf("validate() error = %v, want an amount error", err)
	}
	if got := verr.Error(); got != "invalid amount: must be positive, got -1" {
		t.Errorf("Error() = %q", got)
	}
}
