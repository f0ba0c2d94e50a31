package renderer

import "github.com/etnz/fintrack"

// Summary is the view of the ledger totals.
type Summary struct {
	Title   string
	Income  fintrack.Money
	Expense fintrack.Money
	Balance fintrack.Money
	Count   int
}

// NewSummary prepares s for rendering in currency.
func NewSummary(title string, s fintrack.Summary, currency string) *Summary {
	return &Summary{
		Title:   title,
		Income:  fintrack.M(s.Income, currency),
		Expense: fintrack.M(s.Expense, currency),
		Balance: fintrack.M(s.Balance, currency),
		Count:   s.Count,
	}
}

// Deficit reports whether expenses exceed income. A zero balance is a surplus.
func (s *Summary) Deficit() bool { return s.Balance.IsNegative() }
