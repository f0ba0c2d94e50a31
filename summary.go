package fintrack

import "github.com/shopspring/decimal"

// Summary holds the aggregates of a list of transactions.
type Summary struct {
	Income  decimal.Decimal // sum of income amounts
	Expense decimal.Decimal // sum of expense amounts
	Balance decimal.Decimal // Income - Expense
	Count   int
}

// Summarize computes the aggregates of txs.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Kind {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	s.Count = len(txs)
	return s
}

// InDeficit reports whether expenses exceed income.
func (s Summary) InDeficit() bool { return s.Balance.IsNegative() }
