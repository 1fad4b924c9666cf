package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/catalog"
	"github.com/libro-dev/libro/internal/importer"
)

type runOptions struct {
	reports      []string
	exportPath   string
	activityPath string
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <file|dir|->",
		Short: "Replay a batch of operations into one session",
		Long: `Replay a batch of operations into one session.

The batch is a CSV or YAML file, "-" for CSV on stdin, or a directory whose
.csv/.yaml files are replayed in name order. Rejected operations are reported
and skipped; the command fails after printing reports if any were rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}

			ops, err := readBatch(cmd, s.logger, importer.DefaultRegistry(s.chart), args[0])
			if err != nil {
				return err
			}
			s.logger.Info("batch loaded", "source", args[0], "operations", len(ops))

			out := cmd.OutOrStdout()
			rejected := 0
			for i, op := range ops {
				receipt, err := s.apply(op)
				if err != nil {
					rejected++
					fmt.Fprintf(cmd.ErrOrStderr(), "Operación %d rechazada: %v\n", i+1, err)
					continue
				}
				fmt.Fprintln(out, receipt.Message)
			}

			if err := s.writeReports(out, opts.reports); err != nil {
				return err
			}
			if err := s.finish(opts.exportPath, opts.activityPath); err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d operations rejected", rejected, len(ops))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.reports, "report", []string{"all"}, reportFlagUsage)
	cmd.Flags().StringVar(&opts.exportPath, "export-journal", "", "write the journal CSV to this path")
	cmd.Flags().StringVar(&opts.activityPath, "activity-log", "", "append the session activity to this CSV")

	return cmd
}

// readBatch parses the operations named by source.
func readBatch(cmd *cobra.Command, logger *slog.Logger, reg *importer.Registry, source string) ([]catalog.Operation, error) {
	if source == "-" {
		p, err := reg.ForPath(source)
		if err != nil {
			return nil, err
		}
		return p.Parse(cmd.InOrStdin())
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("reading batch: %w", err)
	}
	if !info.IsDir() {
		return parseFile(reg, source)
	}

	files, err := reg.Scan(source)
	if err != nil {
		return nil, err
	}
	var ops []catalog.Operation
	for _, f := range files {
		logger.Debug("reading batch file", "name", f.Name, "format", f.Format, "bytes", f.Size)
		batch, err := parseFile(reg, f.Path)
		if err != nil {
			return nil, err
		}
		ops = append(ops, batch...)
	}
	return ops, nil
}

func parseFile(reg *importer.Registry, path string) ([]catalog.Operation, error) {
	p, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch: %w", err)
	}
	defer f.Close()

	ops, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}
