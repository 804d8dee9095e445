package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gogpu/pga3d"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "yaml"
	Precision int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"json", "yaml"}

const maxPrecision = 12

// NewRootCommand creates the root command for pgademo.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pgademo",
		Short: "Compose rigid motions with projective geometric algebra",
		Long: `pgademo builds a motor from a list of translations and rotations,
then prints the motor, its translation and the points it moves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Precision < 0 || opts.Precision > maxPrecision {
				return fmt.Errorf("invalid precision %d: must be between 0 and %d", opts.Precision, maxPrecision)
			}
			if opts.Verbose {
				pga3d.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each step to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "json", "output format (json|yaml)")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", 4, "decimal places in the output")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pga3d library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "pga3d", pga3d.Version)
		},
	}
}
