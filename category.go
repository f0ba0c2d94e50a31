package fintrack

import "strings"

// Category labels a transaction. The set is open: any non-empty label is a valid
// category, the well-known ones below only carry presentation metadata.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Shopping      Category = "Shopping"
	Bills         Category = "Bills"
	Healthcare    Category = "Healthcare"
	Education     Category = "Education"
	Salary        Category = "Salary"
	Business      Category = "Business"
	Investment    Category = "Investment"
	Gift          Category = "Gift"
	Other         Category = "Other"
)

type categoryInfo struct {
	emoji string
	kind  Kind // the kind this category is usually recorded with
}

var wellKnown = map[Category]categoryInfo{
	Food:          {"🍔", Expense},
	Transport:     {"🚗", Expense},
	Entertainment: {"🎬", Expense},
	Shopping:      {"🛒", Expense},
	Bills:         {"💡", Expense},
	Healthcare:    {"🏥", Expense},
	Education:     {"📚", Expense},
	Salary:        {"💰", Income},
	Business:      {"💼", Income},
	Investment:    {"📈", Income},
	Gift:          {"🎁", Income},
	Other:         {"📝", ""},
}

// Categories returns the well-known categories in display order.
func Categories() []Category {
	return []Category{
		Food, Transport, Entertainment, Shopping, Bills, Healthcare, Education,
		Salary, Business, Investment, Gift, Other,
	}
}

// ParseCategory trims s and matches it case-insensitively against the well-known
// categories. Unknown labels are kept as typed.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Category(s)
}

// Known reports whether c is one of the well-known categories.
func (c Category) Known() bool {
	_, ok := wellKnown[c]
	return ok
}

// Emoji returns the icon of the category, unknown categories share Other's.
func (c Category) Emoji() string {
	if info, ok := wellKnown[c]; ok {
		return info.emoji
	}
	return wellKnown[Other].emoji
}

// UsualKind returns the kind this category is typically used with, if any.
func (c Category) UsualKind() (Kind, bool) {
	info, ok := wellKnown[c]
	return info.kind, ok && info.kind != ""
}

func (c Category) String() string { return string(c) }
