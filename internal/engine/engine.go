package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/cruciblehq/mdbuild/internal/recipe"
)

const (

	// Engine binary used when none is configured.
	DefaultBinary = "docker"
)

// Holds engine configuration.
type Config struct {
	Binary string    // Engine binary name or path. Empty uses [DefaultBinary].
	Stdout io.Writer // Receives the engine's standard output. Nil uses os.Stdout.
	Stderr io.Writer // Receives the engine's standard error. Nil uses os.Stderr.
}

// Builds images by piping recipes into an engine's build subcommand.
type Engine struct {
	binary  string                                                          // Engine binary name or path.
	stdout  io.Writer                                                       // Destination of the engine's standard output.
	stderr  io.Writer                                                       // Destination of the engine's standard error.
	command func(ctx context.Context, name string, args ...string) *exec.Cmd // Creates the engine process.
}

// Creates a new [Engine].
func New(cfg Config) *Engine {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Engine{
		binary:  binary,
		stdout:  stdout,
		stderr:  stderr,
		command: exec.CommandContext,
	}
}

// Returns the engine binary.
func (e *Engine) Binary() string {
	return e.binary
}

// Builds an image from the recipe.
//
// Runs "<binary> build -" with no further arguments, writes the recipe text
// to the process's standard input, closes it, and waits for the process to
// exit. Cancelling ctx kills the process.
//
// Returns [ErrSpawn] when the process cannot be started or the recipe cannot
// be written, and a [*BuildError] when the process exits with a non-zero
// status. When both happen the exit status is reported.
func (e *Engine) Build(ctx context.Context, r *recipe.Recipe) error {
	cmd := e.command(ctx, e.binary, "build", "-")
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	slog.Debug("engine started", "binary", e.binary, "pid", cmd.Process.Pid)

	writeErr := writeRecipe(stdin, r)
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return fmt.Errorf("build interrupted: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return &BuildError{
			ExitCode: exitErr.ExitCode(),
			Status:   exitErr.ProcessState.String(),
		}
	}

	if writeErr != nil {
		return fmt.Errorf("%w: write recipe: %w", ErrSpawn, writeErr)
	}
	if waitErr != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, waitErr)
	}

	slog.Debug("engine finished", "binary", e.binary, "status", cmd.ProcessState.String())
	return nil
}

// Writes the recipe to the engine's input and closes it.
//
// Closing signals end of input; the engine does not start building before it
// sees EOF.
func writeRecipe(stdin io.WriteCloser, r *recipe.Recipe) error {
	_, err := r.WriteTo(stdin)
	if cerr := stdin.Close(); err == nil {
		err = cerr
	}
	return err
}
