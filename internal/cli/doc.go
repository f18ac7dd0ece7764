// Parses flags, configures logging and runs the mdbuild commands.
//
// The CLI accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// and the commands build, render and version. Flags override build-time
// defaults set via linker flags, and may also be set in a JSON file at
// $XDG_CONFIG_HOME/mdbuild/config.json. After parsing, the global logger is
// reconfigured to reflect the final level and verbosity.
//
// Errors are mapped to process exit codes by [ExitCode].
package cli
