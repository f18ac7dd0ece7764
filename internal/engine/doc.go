// Package engine runs container image builds through an external engine.
//
// An [Engine] wraps a container engine binary that accepts a Dockerfile on
// standard input, such as docker or podman. [Engine.Build] starts
// "<binary> build -", streams the rendered recipe into the process, closes
// its input and waits for it to exit. The engine's own output is forwarded to
// the configured writers.
//
// Failures fall in two classes. Anything that prevents the recipe from
// reaching the engine (missing binary, failed start, broken pipe) matches
// [ErrSpawn]. An engine that ran and exited with a non-zero status yields a
// [*BuildError] carrying the exit status, which matches [ErrBuild].
//
// The image produced by a successful build is left in the engine's store.
//
// Example usage:
//
//	eng := engine.New(engine.Config{Binary: "podman"})
//
//	err := eng.Build(ctx, recipe.New("debian:bookworm", commands))
//
//	var buildErr *engine.BuildError
//	if errors.As(err, &buildErr) {
//	    log.Printf("build failed with exit code %d", buildErr.ExitCode)
//	}
package engine
