package fintrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = "INR"

// Money is an amount paired with the currency used to display it.
//
// The ledger itself is single-currency and stores bare decimals; Money only
// exists at the presentation boundary.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M returns value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil even for unknown codes.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted with the currency symbol, rounded to the
// currency's minor unit (e.g. "₹1,995.50").
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit "+" for positive values.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Currency returns the ISO code of the display currency.
func (m Money) Currency() string { return m.cur }

// Value returns the amount.
func (m Money) Value() decimal.Decimal { return m.value }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// Neg returns the opposite amount in the same currency.
func (m Money) Neg() Money { return Money{value: m.value.Neg(), cur: m.cur} }

// Equal reports whether both amount and currency are the same.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Add returns m+n in the currency of m.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }

// LessThan compares the amounts, ignoring currencies.
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// GreaterThan compares the amounts, ignoring currencies.
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
