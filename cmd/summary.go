package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total income, expenses and balance" }
func (*summaryCmd) Usage() string {
	return `ft summary [-c <category>] [-t income|expense] [-p <period> | -s <start_date>] [-d <date>]

  Displays the total income, total expenses and the balance, for the whole
  ledger or for a selection of transactions.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sel, err := c.parse(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var txs []fintrack.Transaction
	for _, tx := range OpenStore().Transactions(sel.filters...) {
		txs = append(txs, tx)
	}

	s := renderer.NewSummary(sel.title("Summary"), fintrack.Summarize(txs), Currency())
	printMarkdown(renderer.RenderSummary(s))
	return subcommands.ExitSuccess
}
