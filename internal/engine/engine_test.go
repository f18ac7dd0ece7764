package engine_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cruciblehq/mdbuild/internal/engine"
	"github.com/cruciblehq/mdbuild/internal/recipe"
)

// Stands in for the engine binary when run as a subprocess of the test.
//
// Records its arguments and standard input to MDBUILD_HELPER_OUT, writes a
// line to standard output and exits with MDBUILD_HELPER_EXIT. With
// MDBUILD_HELPER_CLOSED_STDIN set it exits at once without reading its input.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("MDBUILD_WANT_HELPER_PROCESS") != "1" {
		return
	}

	code, _ := strconv.Atoi(os.Getenv("MDBUILD_HELPER_EXIT"))
	if os.Getenv("MDBUILD_HELPER_CLOSED_STDIN") == "1" {
		os.Exit(code)
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		os.Exit(100)
	}
	if out := os.Getenv("MDBUILD_HELPER_OUT"); out != "" {
		record := strings.Join(args, " ") + "\n" + string(input)
		if err := os.WriteFile(out, []byte(record), 0644); err != nil {
			os.Exit(101)
		}
	}

	fmt.Fprintln(os.Stdout, "helper: build complete")
	os.Exit(code)
}

// Returns an engine whose process is the test helper, the path where the
// helper records what it received, and the engine's captured stdout. Extra
// environment entries are passed to the helper.
func stubEngine(t *testing.T, exitCode int, env ...string) (*engine.Engine, string, *bytes.Buffer) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "received")
	stdout := &bytes.Buffer{}

	eng := engine.New(engine.Config{Stdout: stdout, Stderr: io.Discard})
	eng.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(),
			"MDBUILD_WANT_HELPER_PROCESS=1",
			"MDBUILD_HELPER_OUT="+out,
			"MDBUILD_HELPER_EXIT="+strconv.Itoa(exitCode),
		)
		cmd.Env = append(cmd.Env, env...)
		return cmd
	})

	return eng, out, stdout
}

func TestBuildSuccess(t *testing.T) {
	eng, out, stdout := stubEngine(t, 0)

	r := recipe.New("debian:buster", []string{"apt-get install -y vim"})
	if err := eng.Build(context.Background(), r); err != nil {
		t.Fatalf("Build: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read helper record: %v", err)
	}
	want := "docker build -\nFROM debian:buster\nRUN apt-get install -y vim\n"
	if string(got) != want {
		t.Fatalf("engine received %q, want %q", got, want)
	}

	if !strings.Contains(stdout.String(), "helper: build complete") {
		t.Fatalf("engine stdout not forwarded, got %q", stdout.String())
	}
}

func TestBuildFailureCarriesExitStatus(t *testing.T) {
	eng, _, _ := stubEngine(t, 1)

	err := eng.Build(context.Background(), recipe.New("debian:buster", []string{"false"}))
	if err == nil {
		t.Fatal("Build succeeded, want failure")
	}

	var buildErr *engine.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("err = %v (%T), want *BuildError", err, err)
	}
	if buildErr.ExitCode != 1 {
		t.Fatalf("ExitCode = %d, want 1", buildErr.ExitCode)
	}
	if buildErr.Status != "exit status 1" {
		t.Fatalf("Status = %q, want %q", buildErr.Status, "exit status 1")
	}
	if !errors.Is(err, engine.ErrBuild) {
		t.Fatal("BuildError does not match ErrBuild")
	}
	if errors.Is(err, engine.ErrSpawn) {
		t.Fatal("BuildError matches ErrSpawn")
	}
}

// Returns a recipe too large to fit in a pipe buffer, so writing it blocks
// until the engine reads or exits.
func largeRecipe() *recipe.Recipe {
	commands := make([]string, 0, 4096)
	for i := range cap(commands) {
		commands = append(commands, fmt.Sprintf("echo %04d %s", i, strings.Repeat("x", 1024)))
	}
	return recipe.New("debian:buster", commands)
}

func TestBuildWriteFailure(t *testing.T) {
	eng, _, _ := stubEngine(t, 0, "MDBUILD_HELPER_CLOSED_STDIN=1")

	err := eng.Build(context.Background(), largeRecipe())
	if !errors.Is(err, engine.ErrSpawn) {
		t.Fatalf("err = %v, want ErrSpawn", err)
	}

	var buildErr *engine.BuildError
	if errors.As(err, &buildErr) {
		t.Fatal("write failure reported as BuildError")
	}
}

func TestBuildWriteFailureReportsExitStatus(t *testing.T) {
	eng, _, _ := stubEngine(t, 2, "MDBUILD_HELPER_CLOSED_STDIN=1")

	err := eng.Build(context.Background(), largeRecipe())

	var buildErr *engine.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("err = %v (%T), want *BuildError", err, err)
	}
	if buildErr.ExitCode != 2 {
		t.Fatalf("ExitCode = %d, want 2", buildErr.ExitCode)
	}
	if errors.Is(err, engine.ErrSpawn) {
		t.Fatal("exit status reported as ErrSpawn")
	}
}

func TestBuildMissingBinary(t *testing.T) {
	eng := engine.New(engine.Config{
		Binary: filepath.Join(t.TempDir(), "no-such-engine"),
		Stdout: io.Discard,
		Stderr: io.Discard,
	})

	err := eng.Build(context.Background(), recipe.New("debian:buster", nil))
	if !errors.Is(err, engine.ErrSpawn) {
		t.Fatalf("err = %v, want ErrSpawn", err)
	}

	var buildErr *engine.BuildError
	if errors.As(err, &buildErr) {
		t.Fatal("spawn failure reported as BuildError")
	}
}

func TestBuildCancelledContext(t *testing.T) {
	eng, _, _ := stubEngine(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := eng.Build(ctx, recipe.New("debian:buster", nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDefaultBinary(t *testing.T) {
	if got := engine.New(engine.Config{}).Binary(); got != engine.DefaultBinary {
		t.Fatalf("Binary() = %q, want %q", got, engine.DefaultBinary)
	}
	if got := engine.New(engine.Config{Binary: "podman"}).Binary(); got != "podman" {
		t.Fatalf("Binary() = %q, want podman", got)
	}
}

func TestBuildErrorMessage(t *testing.T) {
	err := &engine.BuildError{ExitCode: 2, Status: "exit status 2"}
	if got, want := err.Error(), "container build failed: engine exit status 2"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
