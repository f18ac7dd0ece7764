package markdown

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/adrg/frontmatter"
)

// Build settings declared in a document's front matter under the "mdbuild"
// key.
//
//	---
//	mdbuild:
//	  base: debian:bookworm
//	  flags:
//	    - tool: apt-get
//	      args: ["-y", "--no-install-recommends"]
//	---
type FrontMatter struct {
	Base  string     `yaml:"base"`  // Base image used when the caller does not set one.
	Flags []FlagRule `yaml:"flags"` // Flag rules, applied in declaration order.
}

// Extra arguments for commands starting with Tool.
type FlagRule struct {
	Tool string   `yaml:"tool"`
	Args []string `yaml:"args"`
}

type frontMatterEnvelope struct {
	MDBuild *FrontMatter `yaml:"mdbuild"`
}

// Separates the front matter from the markdown body.
//
// Front matter is a YAML mapping between "---" lines at the very start of the
// document. An opening "---" whose block does not decode to a mapping is a
// thematic break, not front matter, and the whole source is the body.
//
// Documents without front matter, or whose front matter has no "mdbuild" key,
// return a nil [FrontMatter]. An "mdbuild" key whose settings have the wrong
// shape fails with [ErrParse].
func SplitFrontMatter(source []byte) (*FrontMatter, []byte, error) {
	var fields map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(source), &fields)
	if err != nil {
		slog.Debug("leading block is not front matter", "error", err)
		return nil, source, nil
	}
	if _, ok := fields["mdbuild"]; !ok {
		return nil, body, nil
	}

	var env frontMatterEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(source), &env); err != nil {
		return nil, nil, fmt.Errorf("%w: front matter: %w", ErrParse, err)
	}

	return env.MDBuild, body, nil
}
