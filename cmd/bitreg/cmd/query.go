package cmd

import (
	"fmt"

	"github.com/hupe1980/bitreg/internal/conv"
	"github.com/spf13/cobra"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var on []uint

	queryCmd := &cobra.Command{
		Use:   "query <bit>...",
		Short: "Query bits after setting the --on bits",
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
			s.SetBits(on)
			activity := s.AreBitsOn(bits)

			w := cmd.OutOrStdout()
			hits := make([]int, 0, len(bits))
			for _, b := range bits {
				if b < uint(len(activity)) && activity[b] {
					hits = append(hits, int(b))
				}
			}
			fmt.Fprintf(w, "%s %v\n", labelColor.Sprintf("%-9s", "hits:"), hits)
			render(w, s)
			return nil
		},
	}

	queryCmd.Flags().UintSliceVar(&on, "on", nil, "bits to set before querying")
	return queryCmd
}
