// Package build turns a markdown document into a container image.
//
// The pipeline reads the document, separates its front matter, extracts the
// commands found in its code blocks, drops blank ones, splices in the
// configured flags and renders the result as a recipe. [Prepare] stops there;
// [Run] also hands the recipe to a [Builder], normally an engine.Engine.
//
// Settings may come from two places. The document's front matter can name a
// base image and flag rules; [Options] can do the same. An explicit base in
// the options wins over the front matter, while flag rules from both are
// combined, front matter first.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Options{
//	    Markdown: "INSTALL.md",
//	    Base:     "debian:bookworm",
//	    Rules:    rules.New().Flag("apt-get", "-y"),
//	    Builder:  engine.New(engine.Config{}),
//	})
//	if err != nil {
//	    return err
//	}
package build
