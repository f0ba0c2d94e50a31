package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the display theme" }
func (*themeCmd) Usage() string {
	return `ft theme [light|dark|toggle]

  Without argument, prints the current theme. The theme selects the colors used
  to render reports in the terminal.
`
}

func (*themeCmd) SetFlags(*flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	prefs := OpenPreferences()
	switch arg := f.Arg(0); arg {
	case "":
		fmt.Fprintln(stdout, prefs.Theme())
	case "toggle":
		t, err := prefs.ToggleTheme()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, t)
	default:
		t, err := fintrack.ParseTheme(arg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := prefs.SetTheme(t); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, t)
	}
	return subcommands.ExitSuccess
}
