// Command ft tracks daily income and expenses from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/etnz/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file in the working directory provides defaults, the environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("cannot load .env file")
	}

	commander := subcommands.NewCommander(flag.CommandLine, "ft")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	cmd.Completion(flag.CommandLine).Complete("ft")

	flag.Parse()
	cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !isBuiltin(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, n := range cmd.Names() {
		if n == name {
			return true
		}
	}
	return false
}
