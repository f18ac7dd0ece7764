package internal

import (
	"testing"

	"github.com/cruciblehq/mdbuild/internal/engine"
)

func TestSetEngine(t *testing.T) {
	t.Cleanup(func() { SetEngine(rawEngine) })

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"explicit", "podman", "podman"},
		{"trimmed", "  nerdctl\n", "nerdctl"},
		{"blank", "", engine.DefaultBinary},
		{"whitespace", "   ", engine.DefaultBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetEngine(tt.in)
			if got := Engine(); got != tt.want {
				t.Fatalf("Engine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngineLinkerDefault(t *testing.T) {
	if rawEngine != "" {
		t.Skipf("engine linked in as %q", rawEngine)
	}
	if got := Engine(); got != engine.DefaultBinary {
		t.Fatalf("Engine() = %q, want %q", got, engine.DefaultBinary)
	}
}
