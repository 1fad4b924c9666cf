package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/activity"
	"github.com/libro-dev/libro/internal/catalog"
	"github.com/libro-dev/libro/internal/config"
	"github.com/libro-dev/libro/internal/journal"
	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/report"
)

// session is one bookkeeping run: an opened ledger, the catalog posting to
// it and the log of what was attempted.
type session struct {
	id       string
	cfg      *config.Config
	chart    *accounts.Service
	ledger   *ledger.Ledger
	catalog  *catalog.Catalog
	activity *activity.Log
	logger   *slog.Logger
}

// newSession loads configuration and opens a ledger with the configured
// opening entry.
func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Session.LogLevel, opts.debug)
	if err != nil {
		return nil, err
	}
	logger = logger.With("session_id", id)

	chart := accounts.Default()
	date, err := cfg.SessionDate(time.Now())
	if err != nil {
		return nil, err
	}
	rate, err := cfg.Rate()
	if err != nil {
		return nil, err
	}
	settlement, err := cfg.DefaultAccountID(chart)
	if err != nil {
		return nil, err
	}
	debits, credits, err := cfg.OpeningLines(chart)
	if err != nil {
		return nil, err
	}

	l := ledger.New(chart, date)
	opening, err := l.Open(debits, credits)
	if err != nil {
		return nil, err
	}
	logger.Debug("session opened",
		"business", cfg.Business.Name,
		"date", date.Format(config.DateLayout),
		"vat_rate", rate.String(),
		"opening_entry", opening.ID,
	)

	return &session{
		id:       id,
		cfg:      cfg,
		chart:    chart,
		ledger:   l,
		catalog:  catalog.New(l, chart, catalog.WithVATRate(rate), catalog.WithDefaultAccount(settlement)),
		activity: activity.NewLog(id),
		logger:   logger,
	}, nil
}

func newLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// apply posts op, recording the outcome in the activity log and the logger.
func (s *session) apply(op catalog.Operation) (catalog.Receipt, error) {
	receipt, err := s.catalog.Apply(op)
	if err != nil {
		s.activity.Rejected(string(op.Kind), err)
		s.logger.Warn("operation rejected", "kind", op.Kind, "amount", op.Amount.String(), "error", err)
		return catalog.Receipt{}, err
	}
	details := fmt.Sprintf("amount=%s vat=%s total=%s",
		receipt.Amount.StringFixed(2), receipt.VAT.StringFixed(2), receipt.Total.StringFixed(2))
	s.activity.Posted(string(op.Kind), receipt.Entry.ID, details)
	s.logger.Info("operation posted",
		"kind", op.Kind,
		"entry_id", receipt.Entry.ID,
		"total", receipt.Total.StringFixed(2),
	)
	return receipt, nil
}

// writeReports renders the selected reports. An empty selection writes
// nothing; "all" selects every report.
func (s *session) writeReports(w io.Writer, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) == 1 && strings.EqualFold(names[0], "all") {
		names = nil
	}
	text, err := report.All(s.ledger, s.ledger).Text(names...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// exportJournal writes every posted entry to path as a leg-per-row CSV.
func (s *session) exportJournal(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal export: %w", err)
	}
	defer f.Close()

	legs := journal.Legs(s.ledger.Entries(), s.chart)
	if err := journal.WriteLegs(f, legs); err != nil {
		return fmt.Errorf("exporting journal: %w", err)
	}
	s.logger.Info("journal exported", "path", path, "entries", len(s.ledger.Entries()), "legs", len(legs))
	return f.Close()
}

// finish handles the export flags shared by post and run.
func (s *session) finish(journalPath, activityPath string) error {
	if journalPath != "" {
		if err := s.exportJournal(journalPath); err != nil {
			return err
		}
	}
	if activityPath != "" {
		if err := activity.Append(activityPath, s.activity.Entries()); err != nil {
			return fmt.Errorf("writing activity log: %w", err)
		}
	}
	return nil
}

// reportFlagUsage is the --report help text.
var reportFlagUsage = "reports to print: all, " + strings.Join(report.Names, ", ")
