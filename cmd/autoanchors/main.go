package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain parses args, runs the conversion and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "autoanchors %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	warnUnknownEnvVars(logger)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env, logger); err != nil {
		logger.Error().Err(err).Msg("conversion failed")
		return exitCodeFor(err)
	}
	return ExitSuccess
}
