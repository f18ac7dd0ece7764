package engine

import (
	"context"
	"os/exec"
)

// Replaces the function that creates the engine process.
func (e *Engine) SetCommand(fn func(ctx context.Context, name string, args ...string) *exec.Cmd) {
	e.command = fn
}
