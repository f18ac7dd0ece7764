package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cruciblehq/mdbuild/internal"
)

// Represents the 'mdbuild version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context, stdout io.Writer) error {
	_, err := fmt.Fprintln(stdout, internal.VersionString())
	return err
}
