package build

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	optionsInvalidCode = "BUILD_OPTIONS_INVALID"
)

var (
	ErrInputIO = errors.New("cannot read markdown input")
)

// Wraps an options validation failure in a validation-category error.
func invalidOptions(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid build options").
		WithTextCode(optionsInvalidCode)
}
