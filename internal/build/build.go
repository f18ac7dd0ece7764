package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/opencontainers/go-digest"

	"github.com/cruciblehq/mdbuild/internal/markdown"
	"github.com/cruciblehq/mdbuild/internal/recipe"
	"github.com/cruciblehq/mdbuild/internal/rules"
)

// Builds images from recipes.
type Builder interface {
	Build(ctx context.Context, r *recipe.Recipe) error
}

// Controls the pipeline.
type Options struct {
	Markdown  string       // Path to the markdown document.
	Base      string       // Base image. Empty uses the front matter's.
	Rules     *rules.Rules // Flag rules, applied after the front matter's.
	Languages []string     // Code block languages to extract. Empty extracts every block.
	Builder   Builder      // Builds the recipe. Only required by [Run].
}

// Returned after a successful build.
type Result struct {
	Recipe *recipe.Recipe // Recipe that was built.
	Digest digest.Digest  // Digest of the rendered recipe text.
}

// Builds an image from a markdown document.
//
// Prepares the recipe as [Prepare] does and passes it to the options'
// [Builder]. Builder errors are returned wrapped, so engine error types still
// match.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := validation.Validate(opts.Builder, validation.Required.Error("a builder is required")); err != nil {
		return nil, invalidOptions(err)
	}

	r, err := Prepare(opts)
	if err != nil {
		return nil, err
	}

	dgst := r.Digest()

	slog.Info("building image",
		"markdown", opts.Markdown,
		"base", r.Base(),
		"digest", dgst,
	)

	if err := opts.Builder.Build(ctx, r); err != nil {
		return nil, fmt.Errorf("build %s: %w", opts.Markdown, err)
	}

	slog.Info("image built", "markdown", opts.Markdown)

	return &Result{Recipe: r, Digest: dgst}, nil
}

// Renders the recipe for a markdown document without building it.
//
// Fails with [ErrInputIO] when the document cannot be read and with
// markdown.ErrParse when it cannot be parsed. Missing options, including a
// base image that neither the options nor the front matter provide, fail
// with a validation error.
func Prepare(opts Options) (*recipe.Recipe, error) {
	err := validation.ValidateStruct(&opts,
		validation.Field(&opts.Markdown, validation.Required.Error("a markdown path is required")),
	)
	if err != nil {
		return nil, invalidOptions(err)
	}

	source, err := os.ReadFile(opts.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputIO, err)
	}

	fm, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		return nil, err
	}

	base := opts.Base
	if base == "" && fm != nil {
		base = fm.Base
	}
	if err := validation.Validate(base, validation.Required.Error("a base image is required")); err != nil {
		return nil, invalidOptions(err)
	}

	commands, err := markdown.Commands(body, opts.Languages...)
	if err != nil {
		return nil, err
	}

	ruleSet := frontMatterRules(fm).Merge(opts.Rules)
	r := recipe.New(base, ruleSet.Apply(dropBlank(commands)))

	slog.Debug("recipe prepared",
		"markdown", opts.Markdown,
		"commands", len(r.Commands()),
		"rules", ruleSet.Prefixes(),
	)

	return r, nil
}

// Returns the flag rules declared in the front matter, in declaration order.
func frontMatterRules(fm *markdown.FrontMatter) *rules.Rules {
	rs := rules.New()
	if fm == nil {
		return rs
	}
	for _, rule := range fm.Flags {
		for _, arg := range rule.Args {
			rs.Flag(rule.Tool, arg)
		}
	}
	return rs
}

// Returns commands without the blank ones.
//
// Blank lines inside code blocks would otherwise render as bare RUN
// instructions, which engines reject.
func dropBlank(commands []string) []string {
	kept := make([]string, 0, len(commands))
	for i, cmd := range commands {
		if strings.TrimSpace(cmd) == "" {
			slog.Debug("skipping blank command", "index", i)
			continue
		}
		kept = append(kept, cmd)
	}
	return kept
}
