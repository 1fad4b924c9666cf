package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/journal"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <journal.csv>",
		Short: "Verify an exported journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening journal: %w", err)
			}
			defer f.Close()

			legs, err := journal.ReadLegs(f)
			if err != nil {
				return err
			}

			violations := journal.CheckLegs(legs, accounts.Default())
			out := cmd.OutOrStdout()
			for _, v := range violations {
				fmt.Fprintln(out, v.Error())
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d violations in %s", len(violations), args[0])
			}
			fmt.Fprintf(out, "%s: %d legs OK\n", args[0], len(legs))
			return nil
		},
	}
}
