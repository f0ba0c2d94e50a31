package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/fintrack"
)

// DateTimeLayout is how transaction times are displayed.
const DateTimeLayout = "2 Jan 2006 • 15:04"

// TransactionRow is the view of a single transaction.
type TransactionRow struct {
	ID          string
	Description string // escaped for use in a table cell
	Category    fintrack.Category
	Kind        fintrack.Kind
	Amount      fintrack.Money
	CreatedAt   time.Time // in the display location
}

func newTransactionRow(tx fintrack.Transaction, currency string, loc *time.Location) TransactionRow {
	return TransactionRow{
		ID:          tx.ID,
		Description: escapeCell(tx.Description),
		Category:    tx.Category,
		Kind:        tx.Kind,
		Amount:      fintrack.M(tx.Amount, currency),
		CreatedAt:   tx.CreatedAt.In(loc),
	}
}

// Arrow points up for income and down for expenses.
func (r TransactionRow) Arrow() string {
	if r.Kind == fintrack.Income {
		return "⬆️"
	}
	return "⬇️"
}

// Signed returns the formatted amount prefixed with the sign of its kind.
func (r TransactionRow) Signed() string { return r.Kind.Sign() + r.Amount.String() }

func (r TransactionRow) Emoji() string { return r.Category.Emoji() }

func (r TransactionRow) When() string { return r.CreatedAt.Format(DateTimeLayout) }

// TransactionList is the view of a filtered list of transactions.
type TransactionList struct {
	Title  string
	Filter string // description of the active criteria, empty when there is none
	Rows   []TransactionRow
}

// NewTransactionList prepares txs for rendering, amounts in currency and times in loc.
func NewTransactionList(title string, c fintrack.Criteria, txs []fintrack.Transaction, currency string, loc *time.Location) *TransactionList {
	l := &TransactionList{Title: title, Filter: describeCriteria(c)}
	for _, tx := range txs {
		l.Rows = append(l.Rows, newTransactionRow(tx, currency, loc))
	}
	return l
}

func describeCriteria(c fintrack.Criteria) string {
	var parts []string
	if c.Category != "" {
		parts = append(parts, fmt.Sprintf("category **%s %s**", c.Category.Emoji(), c.Category))
	}
	if c.Kind != "" {
		parts = append(parts, fmt.Sprintf("type **%s**", c.Kind))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filtered by " + strings.Join(parts, " and ") + "."
}

// Transaction renders a transaction on a single line.
func Transaction(tx fintrack.Transaction, currency string) string {
	r := newTransactionRow(tx, currency, time.Local)
	return fmt.Sprintf("%s %s %s (%s %s) on %s", r.Arrow(), r.Signed(), tx.Description, r.Emoji(), r.Category, r.When())
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

func escapeCell(s string) string { return cellEscaper.Replace(s) }
