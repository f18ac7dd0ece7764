// Package mdbuild checks installation instructions by building them.
//
// The shell commands found in the code blocks of a markdown document are
// turned into a Dockerfile, one RUN instruction per line, on top of a base
// image, and built with the container engine. A document whose instructions
// are broken fails to build.
//
// Commands can be adjusted before building. Instructions written for humans
// often omit flags that a non-interactive build needs:
//
//	opts := mdbuild.NewOptions().Flag("apt-get", "-y")
//
//	func TestInstallInstructions(t *testing.T) {
//	    mdbuild.Verify(t, "debian:bookworm", opts, "INSTALL.md")
//	}
package mdbuild

import (
	"context"
	"testing"

	"github.com/cruciblehq/mdbuild/internal/build"
	"github.com/cruciblehq/mdbuild/internal/engine"
	"github.com/cruciblehq/mdbuild/internal/markdown"
	"github.com/cruciblehq/mdbuild/internal/recipe"
	"github.com/cruciblehq/mdbuild/internal/rules"
)

// Options exports the flag rule set applied to extracted commands.
type Options = rules.Rules

// Recipe exports the rendered build recipe.
type Recipe = recipe.Recipe

// BuildError exports the error reported when the engine exits unsuccessfully.
type BuildError = engine.BuildError

var (
	ErrInputIO = build.ErrInputIO  // The markdown document could not be read.
	ErrParse   = markdown.ErrParse // The markdown document could not be parsed.
	ErrSpawn   = engine.ErrSpawn   // The container engine could not be run.
	ErrBuild   = engine.ErrBuild   // The container engine reported a failed build.
)

// NewOptions returns an empty rule set.
func NewOptions() *Options {
	return rules.New()
}

// BuildMarkdown builds an image from the commands in the markdown document at
// path, on top of base, using docker.
//
// A nil opts applies no flags. An empty base falls back to the document's
// front matter.
func BuildMarkdown(ctx context.Context, base string, opts *Options, path string) error {
	_, err := build.Run(ctx, build.Options{
		Markdown: path,
		Base:     base,
		Rules:    opts,
		Builder:  engine.New(engine.Config{}),
	})
	return err
}

// Render returns the recipe BuildMarkdown would build, without building it.
func Render(base string, opts *Options, path string) (*Recipe, error) {
	return build.Prepare(build.Options{
		Markdown: path,
		Base:     base,
		Rules:    opts,
	})
}

// Verify builds the markdown document at path and fails t if the build fails.
func Verify(t testing.TB, base string, opts *Options, path string) {
	t.Helper()
	if err := BuildMarkdown(t.Context(), base, opts, path); err != nil {
		t.Fatalf("instructions in %s do not build on %s: %v", path, base, err)
	}
}
