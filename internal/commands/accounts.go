package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/model"
)

var accountClasses = []model.AccountClass{
	model.ClassAsset,
	model.ClassLiability,
	model.ClassEquity,
	model.ClassIncome,
	model.ClassExpense,
}

func newAccountsCommand() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print the chart of accounts as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart := accounts.Default()
			if class == "" {
				return accounts.WriteAccounts(cmd.OutOrStdout(), chart.All())
			}
			for _, c := range accountClasses {
				if string(c) == class {
					return accounts.WriteAccounts(cmd.OutOrStdout(), chart.ByClass(c))
				}
			}
			return fmt.Errorf("unknown class %q (want asset, liability, equity, income or expense)", class)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "only list accounts of this class")

	return cmd
}
