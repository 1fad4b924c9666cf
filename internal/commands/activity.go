package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/activity"
)

func newActivityCommand() *cobra.Command {
	var session, outcome string

	cmd := &cobra.Command{
		Use:   "activity <activity.csv>",
		Short: "Show an activity log written by post or run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := activity.Read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			shown := 0
			for _, e := range entries {
				if session != "" && e.Session != session {
					continue
				}
				if outcome != "" && e.Outcome != outcome {
					continue
				}
				entryID := e.EntryID
				if entryID == "" {
					entryID = "-"
				}
				fmt.Fprintf(out, "%s  %-8s  %-20s  %-12s  %s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Outcome, e.Operation, entryID, e.Details)
				shown++
			}
			fmt.Fprintf(out, "%d of %d entries\n", shown, len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "only show entries of this session ID")
	cmd.Flags().StringVar(&outcome, "outcome", "", "only show posted or rejected entries")

	return cmd
}
