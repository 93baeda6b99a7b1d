package cmd

import (
	"github.com/hupe1980/bitreg/internal/conv"
	"github.com/spf13/cobra"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <bit>...",
		Short: "Set bits on a zeroed register",
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
			s.SetBits(bits)
			render(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
