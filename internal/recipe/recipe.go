package recipe

import (
	_ "crypto/sha256"
	"io"
	"strings"

	"github.com/opencontainers/go-digest"
)

// A base image and the commands to run on top of it.
//
// Recipes are immutable once created.
type Recipe struct {
	base     string   // Base image reference.
	commands []string // Commands in execution order.
}

// Creates a [Recipe]. The commands slice is copied.
func New(base string, commands []string) *Recipe {
	return &Recipe{
		base:     base,
		commands: append([]string(nil), commands...),
	}
}

// Returns the base image reference.
func (r *Recipe) Base() string {
	return r.base
}

// Returns a copy of the commands.
func (r *Recipe) Commands() []string {
	return append([]string(nil), r.commands...)
}

// Returns the recipe text.
//
// Every line, including the last, ends with a newline. No blank lines are
// inserted between instructions.
func (r *Recipe) String() string {
	var b strings.Builder
	b.WriteString("FROM ")
	b.WriteString(r.base)
	b.WriteByte('\n')
	for _, cmd := range r.commands {
		b.WriteString("RUN ")
		b.WriteString(cmd)
		b.WriteByte('\n')
	}
	return b.String()
}

// Writes the recipe text to w.
func (r *Recipe) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Returns the sha256 digest of the recipe text.
func (r *Recipe) Digest() digest.Digest {
	return digest.FromString(r.String())
}
