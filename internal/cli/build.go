package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/cruciblehq/mdbuild/internal/build"
	"github.com/cruciblehq/mdbuild/internal/engine"
)

// Represents the 'mdbuild build' command.
type BuildCmd struct {
	Recipe RecipeFlags `embed:""`
	Engine string      `short:"e" default:"${engine}" env:"MDBUILD_ENGINE" help:"Container engine binary. It must accept 'build -'."`
}

// Executes the build command.
//
// The engine's output is forwarded to stdout and the process's stderr.
func (c *BuildCmd) Run(ctx context.Context, stdout io.Writer) error {
	opts, err := c.Recipe.options()
	if err != nil {
		return err
	}

	opts.Builder = engine.New(engine.Config{
		Binary: c.Engine,
		Stdout: stdout,
	})

	result, err := build.Run(ctx, opts)
	if err != nil {
		return err
	}

	slog.Info("instructions verified",
		"markdown", opts.Markdown,
		"commands", len(result.Recipe.Commands()),
		"digest", result.Digest,
	)
	return nil
}
