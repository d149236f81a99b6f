package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Environment of the extensions.
const (
	EnvPolicy        = EnvPrefix + "_POLICY"
	EnvNormalization = EnvPrefix + "_NORMALIZATION"
	EnvWorkers       = EnvPrefix + "_WORKERS"
	EnvVerbose       = EnvPrefix + "_VERBOSE"
)

// RunExtension attempts to find and execute an external ycs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ycs-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("command", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the effective configuration as environment variables.
func extensionEnv() []string {
	return []string{
		EnvPolicy + "=" + config.Policy,
		EnvNormalization + "=" + config.Normalization,
		EnvWorkers + "=" + strconv.Itoa(config.Workers),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
