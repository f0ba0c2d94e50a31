package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `ft rm <id>...

  Deletes the transactions with the given ids. An id can be abbreviated to any
  prefix that matches a single transaction. Ids are listed by 'ft ls'.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	var errs []error
	for _, prefix := range f.Args() {
		id, err := resolveID(store, prefix)
		if err == nil {
			err = store.Remove(id)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "Deleted %s\n", id)
	}

	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolveID returns the id of the only transaction whose id starts with prefix.
func resolveID(store *fintrack.Store, prefix string) (string, error) {
	if _, ok := store.Get(prefix); ok {
		return prefix, nil
	}
	var found []string
	for _, tx := range store.Transactions() {
		if prefix != "" && strings.HasPrefix(tx.ID, prefix) {
			found = append(found, tx.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("cannot remove %q: %w", prefix, fintrack.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("cannot remove %q: it matches %d transactions", prefix, len(found))
	}
}
