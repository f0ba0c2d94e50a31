package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	days int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display spending by month, by category and per day" }
func (*statsCmd) Usage() string {
	return `ft stats [-days <n>]

  Displays the expenses per month, the expenses per category with their share
  of all expenses, and the daily income and expenses of the last days.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of days of the daily trend, today included")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 1 {
		fmt.Fprintf(stderr, "Error: -days must be positive, got %d\n", c.days)
		return subcommands.ExitUsageError
	}
	s := renderer.NewStats("Statistics", OpenStore().All(), Currency(), c.days, time.Now())
	printMarkdown(renderer.RenderStats(s))
	return subcommands.ExitSuccess
}
