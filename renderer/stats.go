package renderer

import (
	"time"

	"github.com/etnz/fintrack"
)

// Stats is the view of the spending analytics.
type Stats struct {
	Title      string
	Months     []MonthRow
	Categories []CategoryRow
	Trend      []DayRow
}

type MonthRow struct {
	Month   string // e.g. 2025-08
	Expense fintrack.Money
}

type CategoryRow struct {
	Category fintrack.Category
	Emoji    string
	Expense  fintrack.Money
	Share    string // e.g. 42.5%
}

type DayRow struct {
	Day     string
	Income  fintrack.Money
	Expense fintrack.Money
}

// NewStats computes the analytics of txs, in currency, with a trend over the
// last days days up to today. Months and days are evaluated in today's location.
func NewStats(title string, txs []fintrack.Transaction, currency string, days int, today time.Time) *Stats {
	s := &Stats{Title: title}
	for _, m := range fintrack.MonthlySpending(txs, today.Location()) {
		s.Months = append(s.Months, MonthRow{Month: m.Month.Identifier(), Expense: fintrack.M(m.Expense, currency)})
	}
	for _, c := range fintrack.CategorySpending(txs) {
		s.Categories = append(s.Categories, CategoryRow{
			Category: c.Category,
			Emoji:    c.Category.Emoji(),
			Expense:  fintrack.M(c.Expense, currency),
			Share:    c.Share.Shift(2).StringFixed(1) + "%",
		})
	}
	for _, d := range fintrack.SpendingTrend(txs, days, today) {
		s.Trend = append(s.Trend, DayRow{
			Day:     d.Day.Format("Mon 2 Jan"),
			Income:  fintrack.M(d.Income, currency),
			Expense: fintrack.M(d.Expense, currency),
		})
	}
	return s
}
