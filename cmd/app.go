// Package cmd implements the CLI application to track income and expenses.
package cmd

import (
	"flag"
	"io"
	"os"
	"sort"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables providing defaults for the global flags. They can be
// set in a .env file.
const (
	EnvDir      = "FINTRACK_DIR"
	EnvCurrency = "FINTRACK_CURRENCY"
	EnvVerbose  = "FINTRACK_VERBOSE"
)

const defaultDir = ".fintrack"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeDir        = flag.String("dir", "", "Directory holding the ledger and preferences (default $"+EnvDir+" or "+defaultDir+")")
	displayCurrency = flag.String("currency", "", "Currency used to display amounts (default $"+EnvCurrency+" or "+fintrack.DefaultCurrency+")")
	Verbose         = flag.Bool("v", false, "Log debug messages")
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type group struct {
	name     string
	commands []subcommands.Command
}

// groups lists all the subcommands by topic, in display order.
var groups = []group{
	{"transactions", []subcommands.Command{&addCmd{}, &rmCmd{}, &lsCmd{}}},
	{"reports", []subcommands.Command{&summaryCmd{}, &statsCmd{}, &queryCmd{}, &exportCmd{}}},
	{"preferences", []subcommands.Command{&themeCmd{}}},
	{"assistant", []subcommands.Command{&assistCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Names returns the sorted names of all subcommands.
func Names() []string {
	var names []string
	for _, g := range groups {
		for _, cmd := range g.commands {
			names = append(names, cmd.Name())
		}
	}
	sort.Strings(names)
	return names
}

// flagOrEnv returns the flag value if set, else the environment variable, else def.
func flagOrEnv(value, env, def string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// StoreDir returns the directory of the application storage.
func StoreDir() string { return flagOrEnv(*storeDir, EnvDir, defaultDir) }

// Currency returns the display currency.
func Currency() string { return flagOrEnv(*displayCurrency, EnvCurrency, fintrack.DefaultCurrency) }

// SetupLogging configures the global logger: human readable on stderr, warnings
// only unless verbose.
func SetupLogging() {
	level := zerolog.WarnLevel
	if *Verbose || os.Getenv(EnvVerbose) == "true" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
}

func openStorage() *storage.Dir { return storage.NewDir(StoreDir()) }

// OpenStore opens the application ledger.
func OpenStore() *fintrack.Store {
	return fintrack.Open(openStorage(), fintrack.WithLogger(log.Logger))
}

// OpenPreferences opens the application preferences.
func OpenPreferences() *fintrack.Preferences {
	return fintrack.NewPreferences(openStorage(), log.Logger)
}
