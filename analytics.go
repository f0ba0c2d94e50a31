package fintrack

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// MonthTotal is the expense total of a calendar month.
type MonthTotal struct {
	Month   date.Range
	Expense decimal.Decimal
}

// CategoryTotal is the expense total of a category.
type CategoryTotal struct {
	Category Category
	Expense  decimal.Decimal
	Share    decimal.Decimal // fraction of all expenses, in [0, 1]
}

// DayTotal is the income and expense of a single day.
type DayTotal struct {
	Day     date.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySpending returns the expense total of every month having expenses,
// oldest month first. Months are evaluated in loc.
func MonthlySpending(txs []Transaction, loc *time.Location) []MonthTotal {
	totals := make(map[date.Range]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != Expense {
			continue
		}
		month := date.NewRange(date.Of(tx.CreatedAt.In(loc)), date.Monthly)
		totals[month] = totals[month].Add(tx.Amount)
	}

	months := slices.SortedFunc(maps.Keys(totals), func(a, b date.Range) int {
		switch {
		case a.From.Before(b.From):
			return -1
		case a.From.After(b.From):
			return 1
		default:
			return 0
		}
	})
	result := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		result = append(result, MonthTotal{Month: m, Expense: totals[m]})
	}
	return result
}

// CategorySpending returns the expense total of every category having expenses,
// largest first, ties broken by category name.
func CategorySpending(txs []Transaction) []CategoryTotal {
	totals := make(map[Category]decimal.Decimal)
	var all decimal.Decimal
	for _, tx := range txs {
		if tx.Kind != Expense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		all = all.Add(tx.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for c, v := range totals {
		result = append(result, CategoryTotal{Category: c, Expense: v, Share: v.Div(all)})
	}
	slices.SortFunc(result, func(a, b CategoryTotal) int {
		if c := b.Expense.Cmp(a.Expense); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return result
}

// SpendingTrend returns, for each of the last days days up to today included,
// the income and expense of that day, oldest first. Days without transactions
// are reported with zero totals. Days are evaluated in today's location.
func SpendingTrend(txs []Transaction, days int, today time.Time) []DayTotal {
	window := date.LastDays(date.Of(today), days)

	byDay := make(map[date.Date]*DayTotal)
	var result []DayTotal
	for d := range window.Days() {
		result = append(result, DayTotal{Day: d})
	}
	for i := range result {
		byDay[result[i].Day] = &result[i]
	}

	for _, tx := range txs {
		total, ok := byDay[date.Of(tx.CreatedAt.In(today.Location()))]
		if !ok {
			continue
		}
		switch tx.Kind {
		case Income:
			total.Income = total.Income.Add(tx.Amount)
		case Expense:
			total.Expense = total.Expense.Add(tx.Amount)
		}
	}
	return result
}
