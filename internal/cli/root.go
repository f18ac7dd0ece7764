package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cruciblehq/mdbuild/internal"
	"github.com/cruciblehq/mdbuild/internal/paths"
)

// Represents the root command.
type Root struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Build   BuildCmd   `cmd:"" help:"Build an image from the commands in a markdown document."`
	Render  RenderCmd  `cmd:"" help:"Print the recipe for a markdown document without building it."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// The context passed to commands is cancelled on SIGINT or SIGTERM, which
// stops a running engine.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var root Root
	parser, err := newParser(&root, ctx, os.Stdout,
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, paths.Config()),
	)
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	configureLogger(&root)

	return kongCtx.Run()
}

// Creates the kong parser for root.
//
// Commands receive ctx as their context.Context and stdout as their
// io.Writer.
func newParser(root *Root, ctx context.Context, stdout io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name(internal.Name),
		kong.Description("Builds a container image from the shell commands in a markdown document.\n\nUseful for checking that installation instructions actually work."),
		kong.Writers(stdout, os.Stderr),
		kong.Vars{
			"version": internal.VersionString(),
			"engine":  internal.Engine(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}, options...)

	return kong.New(root, options...)
}

// Configures the global logger based on CLI flags.
func configureLogger(root *Root) {
	debug := root.Debug || internal.IsDebug()
	quiet := root.Quiet || internal.IsQuiet()
	verbose := root.Verbose || internal.IsVerbose()

	internal.SetDebug(debug)
	internal.SetQuiet(quiet)
	internal.SetVerbose(verbose)

	SetLogger(os.Stderr, LevelFor(debug, quiet), verbose)
}
