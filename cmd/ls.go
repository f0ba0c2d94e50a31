package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct {
	filterFlags
	head int
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list transactions, newest first" }
func (*lsCmd) Usage() string {
	return `ft ls [-c <category>] [-t income|expense] [-p <period> | -s <start_date>] [-d <date>] [-n <count>]

  Lists the transactions, newest first, with their ids.

Usage Examples:
# Expenses on food this month
$ ft ls -c food -t expense -p month
# Everything of the last 7 days
$ ft ls -s -7d
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.IntVar(&c.head, "n", 0, "Show only the N newest transactions")
}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sel, err := c.parse(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var txs []fintrack.Transaction
	for _, tx := range OpenStore().Transactions(sel.filters...) {
		if c.head > 0 && len(txs) == c.head {
			break
		}
		txs = append(txs, tx)
	}

	l := renderer.NewTransactionList(sel.title("Transactions"), sel.criteria, txs, Currency(), time.Local)
	printMarkdown(renderer.RenderTransactions(l))
	return subcommands.ExitSuccess
}
