package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cruciblehq/mdbuild/internal/build"
)

// Represents the 'mdbuild render' command.
type RenderCmd struct {
	Recipe RecipeFlags `embed:""`
	Digest bool        `help:"Print the recipe digest instead of the recipe."`
}

// Executes the render command, writing the recipe to stdout.
//
// With --digest only the recipe's digest is written, so scripts can tell
// whether a document change alters the build.
func (c *RenderCmd) Run(ctx context.Context, stdout io.Writer) error {
	opts, err := c.Recipe.options()
	if err != nil {
		return err
	}

	r, err := build.Prepare(opts)
	if err != nil {
		return err
	}

	if c.Digest {
		_, err = fmt.Fprintln(stdout, r.Digest())
		return err
	}

	_, err = r.WriteTo(stdout)
	return err
}
