package rules

import (
	"fmt"
	"strings"
)

// Ordered set of prefix to flag associations.
//
// The zero value and a nil pointer are both valid empty sets.
type Rules struct {
	prefixes []string          // Prefixes in first-configured order.
	flags    map[string]string // Accumulated flag text per prefix, each flag preceded by a space.
}

// Creates an empty [Rules].
func New() *Rules {
	return &Rules{}
}

// Adds flag to the commands starting with tool.
//
// The flag is stored with a leading space. Flags added for a tool that
// already has some are appended after them. Returns the receiver so calls can
// be chained.
func (r *Rules) Flag(tool, flag string) *Rules {
	r.add(tool, " "+flag)
	return r
}

// Appends every rule of other, in other's order, to the receiver.
//
// Prefixes present in both sets accumulate. A nil other is a no-op. Returns
// the receiver.
func (r *Rules) Merge(other *Rules) *Rules {
	if other == nil {
		return r
	}
	for _, prefix := range other.prefixes {
		r.add(prefix, other.flags[prefix])
	}
	return r
}

// Appends raw flag text to the entry for prefix, creating it if needed.
func (r *Rules) add(prefix, text string) {
	if r.flags == nil {
		r.flags = make(map[string]string)
	}
	if _, ok := r.flags[prefix]; !ok {
		r.prefixes = append(r.prefixes, prefix)
	}
	r.flags[prefix] += text
}

// Returns the accumulated flag text stored for prefix.
func (r *Rules) Lookup(prefix string) (string, bool) {
	if r == nil {
		return "", false
	}
	flag, ok := r.flags[prefix]
	return flag, ok
}

// Returns the number of configured prefixes.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.prefixes)
}

// Returns the configured prefixes in application order.
func (r *Rules) Prefixes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.prefixes...)
}

// Returns a copy of commands with the flags spliced in.
//
// For each command, every prefix is tested in order against the command as
// augmented so far; on a match the prefix's flag text is inserted at the byte
// offset equal to the prefix length. Commands never change order and are
// never removed. The input slice is not modified.
func (r *Rules) Apply(commands []string) []string {
	out := make([]string, len(commands))
	for i, cmd := range commands {
		out[i] = r.apply(cmd)
	}
	return out
}

// Applies every matching rule to a single command.
func (r *Rules) apply(cmd string) string {
	if r == nil {
		return cmd
	}
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(cmd, prefix) {
			cmd = cmd[:len(prefix)] + r.flags[prefix] + cmd[len(prefix):]
		}
	}
	return cmd
}

// Parses a rule written as "tool=flag".
//
// The tool is everything before the first "=" and must not be blank; the flag
// is everything after it, kept verbatim.
func Parse(s string) (tool, flag string, err error) {
	tool, flag, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(tool) == "" {
		return "", "", fmt.Errorf("%w: %q, expected TOOL=FLAG", ErrInvalidRule, s)
	}
	return tool, flag, nil
}
