// Package cli defines the greet command line and runs it.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/sandrolain/greet/src/greeting"
	"github.com/sandrolain/greet/src/models"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Options carries the environment a command runs in.
// Nil writers default to the process streams, a nil logger to slog.Default().
type Options struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Language language.Tag
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// NewCommand builds the greet command. Each call returns a fresh parser.
func NewCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	logger := opts.Logger.With("component", "cli")

	args := models.NewParsedArguments("")

	cmd := &cobra.Command{
		Use:   "greet NAME",
		Short: "Print a greeting for NAME",
		Long: `greet prints a single line "<greeting>, <name>!" to standard output.

Examples:
  greet Alice
  greet Bob --greeting=Hi
  greet Dan --greeting=Yo --caps`,
		Args: func(cmd *cobra.Command, pos []string) error {
			if err := cobra.ExactArgs(1)(cmd, pos); err != nil {
				return &ArgumentError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, pos []string) error {
			args.Name = pos[0]
			logger.Debug("parsed arguments", "name", args.Name, "greeting", args.Greeting, "caps", args.Caps)
			return greeting.New(opts.Language).Greet(cmd.OutOrStdout(), args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().StringVar(&args.Greeting, "greeting", models.DefaultGreeting, "Greeting word placed before the name")
	cmd.Flags().BoolVar(&args.Caps, "caps", false, "Uppercase the whole greeting")
	// registered now so prefixes of --help resolve before parsing
	cmd.InitDefaultHelpFlag()
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	return cmd
}

// Execute parses args (without the program name), prints the greeting and
// returns the exit code. Argument errors print a diagnostic and the usage
// to stderr and return ExitUsage.
func Execute(args []string, opts Options) int {
	opts = opts.withDefaults()
	cmd := NewCommand(opts)

	normalized, err := normalizeArgs(cmd.Flags(), args)
	if err == nil {
		cmd.SetArgs(normalized)
		err = cmd.Execute()
	}
	if err == nil {
		return ExitOK
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		red := color.New(color.FgRed)
		_, _ = red.Fprintf(opts.Stderr, "Error: %v\n", argErr.Err)
		_, _ = io.WriteString(opts.Stderr, cmd.UsageString())
		return ExitUsage
	}

	opts.Logger.Error("failed to print greeting", "error", err)
	return ExitFailure
}
