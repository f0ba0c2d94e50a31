package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as a JSON file" }
func (*exportCmd) Usage() string {
	return `ft export [-o <file>]

  Writes all the transactions, newest first, as an indented JSON document. The
  default file name contains today's date. Use '-o -' to write to the standard
  output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout (default finance-tracker-<date>.json)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs := OpenStore().All()

	if c.output == "-" {
		if err := fintrack.ExportLedger(stdout, txs); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = fintrack.ExportFilename(time.Now())
	}
	if err := exportFile(name, txs); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Exported %d transactions to %s\n", len(txs), name)
	return subcommands.ExitSuccess
}

func exportFile(name string, txs []fintrack.Transaction) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fintrack.ExportLedger(f, txs)
}
