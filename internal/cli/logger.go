package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/cruciblehq/mdbuild/internal"
)

// Returns the log level for the given modes. Debug wins over quiet.
func LevelFor(debug, quiet bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Installs the default logger, writing to f.
//
// Terminals get text records; anything else, such as a CI log collector,
// gets JSON. Verbose mode adds source locations.
func SetLogger(f *os.File, level slog.Level, verbose bool) {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	slog.SetDefault(slog.New(newHandler(f, tty, level, verbose)))
}

// Creates the log handler, grouped under the program name.
func newHandler(w io.Writer, tty bool, level slog.Level, verbose bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	}

	var handler slog.Handler
	if tty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return handler.WithGroup(internal.Name)
}
