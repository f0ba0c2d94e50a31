package fintrack

import (
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
)

func TestBetween(t *testing.T) {
	week := date.NewRange(date.New(2025, time.August, 4), date.Weekly) // Mon 4 to Sun 10
	tokyo := time.FixedZone("JST", 9*60*60)

	testCases := []struct {
		at   time.Time
		loc  *time.Location
		want bool
	}{
		{time.Date(2025, time.August, 4, 0, 0, 0, 0, time.UTC), time.UTC, true},
		{time.Date(2025, time.August, 10, 23, 59, 0, 0, time.UTC), time.UTC, true},
		{time.Date(2025, time.August, 3, 23, 59, 0, 0, time.UTC), time.UTC, false},
		// Sunday night in UTC is already Monday in Tokyo.
		{time.Date(2025, time.August, 3, 20, 0, 0, 0, time.UTC), tokyo, true},
		{time.Date(2025, time.August, 10, 20, 0, 0, 0, time.UTC), tokyo, false},
	}
	for _, tc := range testCases {
		got := Between(week, tc.loc)(Transaction{CreatedAt: tc.at})
		if got != tc.want {
			t.Errorf("Between(%s, %s)(%v) = %v, want %v", week, tc.loc, tc.at, got, tc.want)
		}
	}
}

func TestCriteria_Filters(t *testing.T) {
	coffee := Transaction{Category: Food, Kind: Expense}
	refund := Transaction{Category: Food, Kind: Income}

	if got := len(Criteria{}.Filters()); got != 0 {
		t.Errorf("Criteria{}.Filters() has %d filters, want none", got)
	}
	f := Criteria{Category: Food, Kind: Expense}.Filters()
	if !match(coffee, f) || match(refund, f) {
		t.Errorf("Filters() does not combine category and kind")
	}
	if !match(refund, []Filter{AcceptAll}) {
		t.Errorf("AcceptAll rejected a transaction")
	}
}
