package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/mdbuild/internal"
	"github.com/cruciblehq/mdbuild/internal/cli"
)

// The entry point for mdbuild.
//
// Installs a logger seeded from build-time linker flags, then executes the
// root command. Errors are logged and mapped to a non-zero exit code.
func main() {
	cli.SetLogger(os.Stderr, cli.LevelFor(internal.IsDebug(), internal.IsQuiet()), internal.IsVerbose())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("mdbuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
