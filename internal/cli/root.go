package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gebn/nibble/internal/config"
	"github.com/gebn/nibble/internal/logging"
)

// Version is reported by --version. It is overridden at link time.
var Version = "dev"

// RootOptions holds global flags and the state derived from them before any
// command runs.
type RootOptions struct {
	Verbose    int
	Format     string // "json" | "text"
	ConfigPath string

	Config config.Config
	Logger *slog.Logger
	IDs    IDGenerator
}

// NewRootCommand creates the nibble command. Given arguments it evaluates
// them as one expression.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{IDs: UUIDv7Generator{}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nibble [flags] <expression...>",
		Short: "nibble - information, duration and speed calculator",
		Long: `Evaluate expressions mixing quantities of information, durations and
transfer speeds.

Examples:
  nibble 400GiB at .87Mb/s
  nibble 10Gb/s in MiB/h
  nibble 12 Tb in Mb
  nibble 1h 30m at 100Mb/s in GB
  nibble --format json 17.3GB at 688.3kB/s

Exit codes:
  0 - Expression evaluated
  1 - Expression could not be evaluated
  2 - Usage or configuration error`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args, cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid usage", err)
	})

	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "log to stderr (-v info, -vv debug)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $"+config.EnvPath+")")

	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// prepare loads configuration and builds the logger. An explicit --format
// wins over the config file.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	cfg := config.Default()
	path := config.ResolvePath(o.ConfigPath)
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid configuration", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("format") {
		o.Format = cfg.Format
	}
	if !config.IsValidFormat(o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, config.ValidFormats))
	}

	o.Config = cfg
	o.Logger = logging.New(cmd.ErrOrStderr(), o.Verbose)
	if o.IDs == nil {
		o.IDs = UUIDv7Generator{}
	}
	if path != "" {
		o.formatter(cmd, "").VerboseLog("Using config %s", path)
	}
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command, traceID string) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose > 0,
		TraceID:   traceID,
	}
}

// exactArgs is cobra.ExactArgs with a usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid usage", err)
		}
		return nil
	}
}

// maxArgs is cobra.MaximumNArgs with a usage exit code.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid usage", err)
		}
		return nil
	}
}
