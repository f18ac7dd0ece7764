package cli

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/cruciblehq/mdbuild/internal/build"
	"github.com/cruciblehq/mdbuild/internal/engine"
	"github.com/cruciblehq/mdbuild/internal/markdown"
	"github.com/cruciblehq/mdbuild/internal/rules"
)

// Process exit codes.
const (
	ExitSuccess = 0 // The command completed.
	ExitFailure = 1 // The build failed or another runtime error occurred.
	ExitInput   = 2 // Invalid options, unreadable or malformed input.
	ExitEngine  = 3 // The container engine could not be run.
)

// Returns the exit code for an error returned by [Execute].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case goerrors.IsCategory(err, goerrors.CategoryValidation),
		errors.Is(err, build.ErrInputIO),
		errors.Is(err, markdown.ErrParse),
		errors.Is(err, rules.ErrInvalidRule):
		return ExitInput
	case errors.Is(err, engine.ErrSpawn):
		return ExitEngine
	default:
		return ExitFailure
	}
}
