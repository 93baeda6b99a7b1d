package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/bitreg"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	width   uint
	verbose bool
}

// NewRootCmd builds the bitreg command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bitreg",
		Short: "Inspect fixed-width flag registers",
		Long: `bitreg runs register operations on a fresh register and prints the
resulting value and activity record. Indices beyond the register width are
ignored, the same way the library ignores them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().UintVarP(&opts.width, "width", "w", 8, "register width (8, 16, 32, 64 or 128)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log ignored indices to stderr")

	rootCmd.AddCommand(
		newSetCmd(opts),
		newClearCmd(opts),
		newQueryCmd(opts),
		newMaxCmd(opts),
	)
	return rootCmd
}

func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) registerOptions() []bitreg.Option {
	if !o.verbose {
		return nil
	}
	return []bitreg.Option{bitreg.WithLogger(bitreg.NewTextLogger(slog.LevelDebug))}
}

func (o *rootOptions) newSession() (session, error) {
	width, err := bitreg.ParseWidth(o.width)
	if err != nil {
		return nil, fmt.Errorf("--width: %w", err)
	}
	return newSession(width, o.registerOptions()...), nil
}
