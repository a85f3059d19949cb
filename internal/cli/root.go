package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/config"
	"github.com/roach88/shelf/internal/launch"
)

// Version is reported by --version. Overridden at build time with -ldflags.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Dir     string

	// Launcher allows overriding how open starts the default application (for testing).
	// If nil, defaults to launch.NewSystem().
	Launcher launch.Launcher
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config returns the application config for the selected directory.
func (o *RootOptions) Config() config.AppConfig {
	return config.New(o.Dir)
}

func (o *RootOptions) launcher() launch.Launcher {
	if o.Launcher != nil {
		return o.Launcher
	}
	return launch.NewSystem()
}

func (o *RootOptions) formatter(out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   o.Verbose,
	}
}

// NewRootCommand creates the root command for the shelf CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "shelf - bookmarks for files",
		Long: `Keep short names ("marks") for files and open them by name.

Marks are stored in a single file named "files" inside the directory
given by --dir, which defaults to the per-user configuration directory.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitFailure, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", config.DefaultHome(), "the directory to store the file map in")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewOpenCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors are rendered through the output formatter: text to errOut, JSON to out.
func Execute(args []string, out, errOut io.Writer) int {
	return execute(&RootOptions{}, args, out, errOut)
}

func execute(opts *RootOptions, args []string, out, errOut io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	failed, err := cmd.ExecuteC()
	if err == nil {
		return ExitSuccess
	}

	code, exit, details := describe(err)
	var d interface{}
	if details != nil {
		d = details
	}
	formatter := opts.formatter(out, errOut)
	_ = formatter.Error(code, err.Error(), d)

	// Errors that are not ExitErrors come from cobra's own parsing
	// (argument counts, unknown commands and flags).
	var exitErr *ExitError
	if !errors.As(err, &exitErr) && failed != nil && formatter.Format != "json" {
		fmt.Fprint(formatter.GetErrWriter(), failed.UsageString())
	}
	return exit
}

// setupLogging installs the default slog logger on w.
// Debug records are only emitted when verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
