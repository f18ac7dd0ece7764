package internal

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cruciblehq/mdbuild/internal/engine"
)

var (
	quietMode   atomic.Bool            // Suppresses informational output.
	debugMode   atomic.Bool            // Enables debug logging.
	verboseMode atomic.Bool            // Adds source locations to log records.
	engineName  atomic.Pointer[string] // Container engine binary.
)

// Seeds the runtime modes from linker flags.
//
// Unparseable values are ignored and leave the mode disabled.
func init() {
	for _, f := range []struct {
		raw  string
		mode *atomic.Bool
	}{
		{rawQuiet, &quietMode},
		{rawDebug, &debugMode},
		{rawVerbose, &verboseMode},
	} {
		if v, err := strconv.ParseBool(f.raw); err == nil {
			f.mode.Store(v)
		}
	}
	SetEngine(rawEngine)
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) {
	quietMode.Store(enabled)
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Enables or disables debug mode.
func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Enables or disables verbose logging.
func SetVerbose(enabled bool) {
	verboseMode.Store(enabled)
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}

// Sets the default container engine binary. Blank values fall back to
// [engine.DefaultBinary].
func SetEngine(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = engine.DefaultBinary
	}
	engineName.Store(&name)
}

// Returns the default container engine binary.
func Engine() string {
	return *engineName.Load()
}
