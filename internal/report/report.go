// Package report derives the session's financial statements from a ledger.
// Every function is read-only and recomputes from current state.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

// Source is the read-only view of a ledger the reports need.
type Source interface {
	Date() time.Time
	Chart() *accounts.Service
	Balance(id model.AccountID) (decimal.Decimal, error)
	Entries() []model.Entry
	Touched() []model.AccountID
	Schedule(id model.AccountID) []model.Movement
	CashFlows() []model.CashFlow
	OpeningCash() decimal.Decimal
	PeriodIncome() decimal.Decimal
}

// IncomeSink receives the computed net income. *ledger.Ledger implements it.
type IncomeSink interface {
	ApplyNetIncome(v decimal.Decimal)
}

// Item is one labelled amount on a statement.
type Item struct {
	Account model.AccountID
	Name    string
	Amount  decimal.Decimal
}

const (
	labelWidth  = 30
	amountWidth = 15
	ruleWidth   = 60
)

// DateLayout is the dd/mm/yyyy layout used on every report.
const DateLayout = "02/01/2006"

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// balanceOf reads a chart account. Report accounts come from the chart, so a
// lookup failure cannot happen and reads as zero.
func balanceOf(src Source, id model.AccountID) decimal.Decimal {
	b, err := src.Balance(id)
	if err != nil {
		return decimal.Zero
	}
	return b
}

type writer struct {
	strings.Builder
}

func (w *writer) line(format string, args ...any) {
	fmt.Fprintf(&w.Builder, format, args...)
	w.WriteByte('\n')
}

// amount writes "label   $     1,160.00".
func (w *writer) amount(label string, v decimal.Decimal) {
	w.line("%-*s $%*s", labelWidth, label, amountWidth, money.Format(v))
}

func (w *writer) header(title string, date time.Time) {
	w.line("=== %s ===", title)
	w.line("Fecha: %s", formatDate(date))
	w.line("")
}

// verdict writes the closing balanced/unbalanced sentence. There is no
// trailing newline, so reports can be joined with a blank line.
func (w *writer) verdict(ok bool, subject string, diff decimal.Decimal) {
	w.WriteString("\n")
	if ok {
		fmt.Fprintf(&w.Builder, "%s está cuadrad%s.", subject, gender(subject))
		return
	}
	fmt.Fprintf(&w.Builder, "%s NO está cuadrad%s. Diferencia: %s", subject, gender(subject), money.Dollars(diff.Abs()))
}

// gender picks the article agreement of a Spanish statement name.
func gender(subject string) string {
	if strings.HasPrefix(subject, "La ") {
		return "a"
	}
	return "o"
}

func sumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// Set is every report for one session, generated in dependency order.
type Set struct {
	Journal         JournalListing
	Schedules       LedgerSchedules
	TrialBalance    TrialBalanceReport
	IncomeStatement IncomeStatementReport
	BalanceSheet    BalanceSheetReport
	EquityChanges   EquityChangesReport
	CashFlow        CashFlowReport
}

// All computes net income, applies it to sink, then derives every report.
// Passing the same ledger as src and sink is the normal case.
func All(src Source, sink IncomeSink) Set {
	income := IncomeStatement(src)
	sink.ApplyNetIncome(income.NetIncome)
	return Set{
		Journal:         Journal(src),
		Schedules:       Schedules(src),
		TrialBalance:    TrialBalance(src),
		IncomeStatement: income,
		BalanceSheet:    BalanceSheet(src),
		EquityChanges:   EquityChanges(src),
		CashFlow:        CashFlowStatement(src),
	}
}

// Names lists report selectors in display order.
var Names = []string{"diario", "mayor", "balanza", "resultados", "balance", "capital", "flujos"}

// Text renders the named reports, or all of them when names is empty.
func (s Set) Text(names ...string) (string, error) {
	if len(names) == 0 {
		names = Names
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "diario":
			parts = append(parts, s.Journal.Text())
		case "mayor":
			parts = append(parts, s.Schedules.Text())
		case "balanza":
			parts = append(parts, s.TrialBalance.Text())
		case "resultados":
			parts = append(parts, s.IncomeStatement.Text())
		case "balance":
			parts = append(parts, s.BalanceSheet.Text())
		case "capital":
			parts = append(parts, s.EquityChanges.Text())
		case "flujos":
			parts = append(parts, s.CashFlow.Text())
		default:
			return "", fmt.Errorf("unknown report %q (want one of %s)", n, strings.Join(Names, ", "))
		}
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
