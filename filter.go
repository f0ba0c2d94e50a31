package fintrack

import (
	"time"

	"github.com/etnz/fintrack/date"
)

// Filter is a predicate on transactions.
type Filter func(Transaction) bool

// Criteria selects transactions by category and kind. A zero field matches anything.
type Criteria struct {
	Category Category
	Kind     Kind
}

// Filters converts the criteria into predicates.
func (c Criteria) Filters() []Filter {
	var filters []Filter
	if c.Category != "" {
		filters = append(filters, ByCategory(c.Category))
	}
	if c.Kind != "" {
		filters = append(filters, ByKind(c.Kind))
	}
	return filters
}

// AcceptAll is a Filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(c Category) Filter {
	return func(tx Transaction) bool { return tx.Category == c }
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(k Kind) Filter {
	return func(tx Transaction) bool { return tx.Kind == k }
}

// Since returns a predicate accepting transactions created at or after t.
func Since(t time.Time) Filter {
	return func(tx Transaction) bool { return !tx.CreatedAt.Before(t) }
}

// Between returns a predicate accepting transactions created on a day of r,
// days being evaluated in loc.
func Between(r date.Range, loc *time.Location) Filter {
	return func(tx Transaction) bool { return r.ContainsTime(tx.CreatedAt.In(loc)) }
}

// match reports whether tx is accepted by all filters.
func match(tx Transaction, filters []Filter) bool {
	for _, f := range filters {
		if !f(tx) {
			return false
		}
	}
	return true
}
