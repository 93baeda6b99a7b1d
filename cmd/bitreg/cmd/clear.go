package cmd

import (
	"github.com/hupe1980/bitreg/internal/conv"
	"github.com/spf13/cobra"
)

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <bit>...",
		Short: "Clear bits on a saturated register",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := conv.ParseIndices(args)
			if err != nil {
				return err
			}
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			s.SetAllFlags()
			s.ClearBits(bits)
			render(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
