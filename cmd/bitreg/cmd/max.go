package cmd

import "github.com/spf13/cobra"

func newMaxCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Print a register with every flag set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			s.SetAllFlags()
			render(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
