package engine

import (
	"errors"
	"fmt"
)

var (
	ErrSpawn = errors.New("container engine could not be run")
	ErrBuild = errors.New("container build failed")
)

// Reports an engine process that exited unsuccessfully.
//
// The exit status belongs to the engine and is not interpreted.
type BuildError struct {
	ExitCode int    // Exit code, or -1 when the process was terminated by a signal.
	Status   string // Process state as reported by the OS (e.g., "exit status 1").
}

// Returns a message naming the engine's exit status.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: engine %s", ErrBuild, e.Status)
}

// Reports whether target is [ErrBuild].
func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}
