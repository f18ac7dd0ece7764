// Package rules augments shell commands with extra flags.
//
// A [Rules] value maps a command prefix (usually a tool name such as
// "apt-get") to flag text that is spliced in right after the prefix. Flags
// configured repeatedly for the same prefix accumulate, so
//
//	r := rules.New().Flag("apt-get", "-y").Flag("apt-get", "--no-install-recommends")
//
// turns "apt-get install curl" into
// "apt-get -y --no-install-recommends install curl".
//
// Prefixes are kept in the order they were first configured and applied in
// that order. Each prefix is tested against the command as augmented by the
// prefixes before it.
package rules
