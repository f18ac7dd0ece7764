package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name, used for the CLI, the log group and the config directory.
	Name = "mdbuild"

	// Placeholder for variables not provided at link time.
	defaultUndefined = "(undefined)"

	// Version string reported by builds made outside the release pipeline.
	defaultLocalBuild = "(local)"

	// Stage that is omitted from version strings.
	mainBranch = "main"
)

var (
	version   = "" // Release version (e.g., "0.3.1").
	stage     = "" // Git branch the release was cut from (e.g., "main").
	gitCommit = "" // Abbreviated commit hash (e.g., "a1b2c3d4").

	rawQuiet   = "false" // Default for quiet mode.
	rawDebug   = "false" // Default for debug mode.
	rawVerbose = "false" // Default for verbose logging.
	rawEngine  = ""      // Default container engine binary. Empty uses the engine package default.
)

// Returns the release version without a leading "v".
//
// Returns "(undefined)" when no version was linked in.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the lowercased release stage, or "(undefined)".
func Stage() string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return defaultUndefined
	}
	return strings.ToLower(s)
}

// Returns the linked commit hash, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns true unless version, stage and commit were all set at link time.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns a human-readable version line.
//
// Local builds report "(local)". Release builds report
// "<version>[+<stage>] <commit> [<arch>]", where the stage is omitted for the
// main branch.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	s := ""
	if st := Stage(); st != mainBranch {
		s = "+" + st
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), s, GitCommit(), runtime.GOARCH)
}
