package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      string
	category    string
	kind        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `ft add -d <description> -a <amount> -c <category> [-t income|expense]

  Records a new transaction, timestamped now. The amount is a positive decimal
  number, the type gives its direction. See 'ft topic categories' for the
  well-known categories.

Usage Examples:
$ ft add -d "Coffee" -a 4.50 -c Food
$ ft add -d "Paycheck" -a 2000 -c Salary -t income
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the transaction")
	f.StringVar(&c.amount, "a", "", "Positive amount, e.g. 4.50")
	f.StringVar(&c.category, "c", "", "Category, e.g. Food")
	f.StringVar(&c.kind, "t", "", "Type: income or expense (default: the usual type of the category, or expense)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := c.kind
	if kind == "" {
		kind = string(fintrack.Expense)
		if k, ok := fintrack.ParseCategory(c.category).UsualKind(); ok {
			kind = string(k)
		}
	}

	store := OpenStore()
	tx, err := store.Add(fintrack.Input{
		Description: c.description,
		Amount:      c.amount,
		Category:    c.category,
		Kind:        kind,
	})

	var verr *fintrack.ValidationError
	var serr *fintrack.StorageError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(stderr, "Error: %v\n", verr)
		return subcommands.ExitUsageError
	case errors.As(err, &serr):
		fmt.Fprintf(stderr, "Error: transaction %s could not be saved: %v\n", tx.ID, serr)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Added %s: %s\n", tx.ID, renderer.Transaction(tx, Currency()))
	return subcommands.ExitSuccess
}
