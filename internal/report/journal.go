package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

// JournalLine is an entry line with its account name resolved.
type JournalLine struct {
	Account model.AccountID
	Name    string
	Amount  decimal.Decimal
}

// JournalEntry is one entry as listed in the journal.
type JournalEntry struct {
	Seq         int
	ID          string
	Date        time.Time
	Description string
	Debits      []JournalLine
	Credits     []JournalLine
}

// JournalListing is every posted entry in posting order.
type JournalListing struct {
	Entries []JournalEntry
}

// Journal lists every entry with its lines in insertion order.
func Journal(src Source) JournalListing {
	chart := src.Chart()
	resolve := func(lines []model.Line) []JournalLine {
		out := make([]JournalLine, len(lines))
		for i, ln := range lines {
			out[i] = JournalLine{Account: ln.Account, Name: chart.Name(ln.Account), Amount: ln.Amount}
		}
		return out
	}

	entries := src.Entries()
	listing := JournalListing{Entries: make([]JournalEntry, len(entries))}
	for i, e := range entries {
		listing.Entries[i] = JournalEntry{
			Seq:         e.Seq,
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Debits:      resolve(e.Debits),
			Credits:     resolve(e.Credits),
		}
	}
	return listing
}

func (j JournalListing) Text() string {
	var w writer
	w.WriteString("=== LIBRO DIARIO ===\n")
	for _, e := range j.Entries {
		w.line("")
		w.line("Asiento %d - %s - %s", e.Seq, formatDate(e.Date), e.Description)
		w.line("CARGOS:")
		for _, ln := range e.Debits {
			w.line("  %s: %s", ln.Name, money.Dollars(ln.Amount))
		}
		w.line("ABONOS:")
		for _, ln := range e.Credits {
			w.line("  %s: %s", ln.Name, money.Dollars(ln.Amount))
		}
	}
	return trimNewline(w.String())
}

// Schedule is the ledger detail ("T account") of one account.
type Schedule struct {
	Account model.AccountID
	Name    string
	Debits  []model.Movement
	Credits []model.Movement
	Balance decimal.Decimal // sum of debits minus sum of credits
}

// LedgerSchedules holds one schedule per touched account, in first-touch order.
type LedgerSchedules struct {
	Accounts []Schedule
}

// Schedules rebuilds per-account detail from the recorded movements.
func Schedules(src Source) LedgerSchedules {
	chart := src.Chart()
	touched := src.Touched()
	out := LedgerSchedules{Accounts: make([]Schedule, 0, len(touched))}
	for _, id := range touched {
		s := Schedule{Account: id, Name: chart.Name(id), Balance: decimal.Zero}
		for _, m := range src.Schedule(id) {
			switch m.Side {
			case model.Debit:
				s.Debits = append(s.Debits, m)
				s.Balance = s.Balance.Add(m.Amount)
			case model.Credit:
				s.Credits = append(s.Credits, m)
				s.Balance = s.Balance.Sub(m.Amount)
			}
		}
		out.Accounts = append(out.Accounts, s)
	}
	return out
}

func (s LedgerSchedules) Text() string {
	var w writer
	w.WriteString("=== ESQUEMAS DE MAYOR ===\n")
	for _, acct := range s.Accounts {
		w.line("")
		w.line("Cuenta: %s", acct.Name)
		w.line("CARGOS:")
		for _, m := range acct.Debits {
			w.line("  %s - %s: %s", formatDate(m.Date), m.Description, money.Dollars(m.Amount))
		}
		w.line("ABONOS:")
		for _, m := range acct.Credits {
			w.line("  %s - %s: %s", formatDate(m.Date), m.Description, money.Dollars(m.Amount))
		}
		w.line("Saldo: %s", money.Dollars(acct.Balance))
	}
	return trimNewline(w.String())
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
