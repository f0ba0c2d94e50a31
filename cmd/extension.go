package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external ft-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension inherits the standard streams, and the global flags are passed
// as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ft-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("command", name).Msg("no extension found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	log.Debug().Str("path", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the resolved global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvDir + "=" + StoreDir(),
		EnvCurrency + "=" + Currency(),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose || os.Getenv(EnvVerbose) == "true"),
	}
}
