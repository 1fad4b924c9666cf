package commands

import (
	"github.com/spf13/cobra"
)

func newReportCommand(root *rootOptions) *cobra.Command {
	var reports []string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print reports for a session holding only the opening entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			return s.writeReports(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().StringSliceVar(&reports, "report", []string{"all"}, reportFlagUsage)

	return cmd
}
