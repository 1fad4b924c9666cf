package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/catalog"
)

type postOptions struct {
	amount       string
	cost         string
	percent      string
	months       int
	account      string
	reports      []string
	exportPath   string
	activityPath string
}

func newPostCommand(root *rootOptions) *cobra.Command {
	opts := &postOptions{}

	cmd := &cobra.Command{
		Use:   "post <operation>",
		Short: "Post one catalog operation on top of the opening entry",
		Long: "Post one catalog operation on top of the opening entry.\n\nOperations: " +
			strings.Join(kindNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := opts.operation(args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			if opts.account != "" {
				if op.Account, err = s.chart.Lookup(opts.account); err != nil {
					return err
				}
			}

			receipt, err := s.apply(op)
			if err != nil {
				if ferr := s.finish("", opts.activityPath); ferr != nil {
					s.logger.Error("writing activity log", "error", ferr)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), receipt.Message)

			if err := s.writeReports(cmd.OutOrStdout(), opts.reports); err != nil {
				return err
			}
			return s.finish(opts.exportPath, opts.activityPath)
		},
	}

	cmd.Flags().StringVar(&opts.amount, "amount", "", "amount before VAT (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&opts.cost, "cost", "", "cost of goods sold, for sales")
	cmd.Flags().StringVar(&opts.percent, "percent", "", "percent paid in cash, for split purchases")
	cmd.Flags().IntVar(&opts.months, "months", 1, "months covered, for prepaid rent")
	cmd.Flags().StringVar(&opts.account, "account", "", "settlement account: Caja or Bancos")
	cmd.Flags().StringSliceVar(&opts.reports, "report", nil, reportFlagUsage)
	cmd.Flags().StringVar(&opts.exportPath, "export-journal", "", "write the journal CSV to this path")
	cmd.Flags().StringVar(&opts.activityPath, "activity-log", "", "append the session activity to this CSV")

	return cmd
}

func (o *postOptions) operation(kind string) (catalog.Operation, error) {
	k, err := catalog.ParseKind(kind)
	if err != nil {
		return catalog.Operation{}, err
	}
	op := catalog.Operation{Kind: k, Months: o.months}
	if op.Amount, err = parseDecimal("amount", o.amount); err != nil {
		return catalog.Operation{}, err
	}
	if op.Cost, err = parseDecimal("cost", o.cost); err != nil {
		return catalog.Operation{}, err
	}
	if op.Percent, err = parseDecimal("percent", o.percent); err != nil {
		return catalog.Operation{}, err
	}
	return op, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}

func kindNames() []string {
	kinds := catalog.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
