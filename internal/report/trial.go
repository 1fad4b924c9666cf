package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

// TrialBalanceRow is one account with a non-zero balance.
type TrialBalanceRow struct {
	Account  model.AccountID
	Name     string
	Normal   model.Side
	Debit    decimal.Decimal
	Credit   decimal.Decimal
	Abnormal bool // balance sits on the side opposite the account's normal side
}

// TrialBalanceReport lists balances split into debit and credit columns.
type TrialBalanceReport struct {
	Date        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Balanced reports whether both columns add up to the same amount.
func (t TrialBalanceReport) Balanced() bool {
	return t.TotalDebit.Equal(t.TotalCredit)
}

// Difference is TotalDebit minus TotalCredit.
func (t TrialBalanceReport) Difference() decimal.Decimal {
	return t.TotalDebit.Sub(t.TotalCredit)
}

// TrialBalance lists every account with a non-zero balance, sorted by name.
// A positive signed balance goes in the debit column and a negative one in
// the credit column, whatever the account's normal side.
func TrialBalance(src Source) TrialBalanceReport {
	t := TrialBalanceReport{Date: src.Date(), TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, a := range src.Chart().All() {
		b := balanceOf(src, a.ID)
		if b.IsZero() {
			continue
		}
		row := TrialBalanceRow{Account: a.ID, Name: a.Name, Normal: a.Normal, Debit: decimal.Zero, Credit: decimal.Zero}
		if b.IsPositive() {
			row.Debit = b
			row.Abnormal = a.Normal == model.Credit
		} else {
			row.Credit = b.Neg()
			row.Abnormal = a.Normal == model.Debit
		}
		t.TotalDebit = t.TotalDebit.Add(row.Debit)
		t.TotalCredit = t.TotalCredit.Add(row.Credit)
		t.Rows = append(t.Rows, row)
	}
	sortByName(t.Rows)
	return t
}

// sortByName orders rows with Spanish collation. A Collator is not safe for
// concurrent use, so each call builds its own.
func sortByName(rows []TrialBalanceRow) {
	spanish := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return spanish.CompareString(rows[i].Name, rows[j].Name) < 0
	})
}

func (t TrialBalanceReport) Text() string {
	var w writer
	w.header("BALANZA DE COMPROBACIÓN", t.Date)
	w.line("%-*s %*s %*s", labelWidth, "Cuenta", amountWidth, "Debe", amountWidth, "Haber")
	w.line("%s", strings.Repeat("-", ruleWidth))
	for _, r := range t.Rows {
		w.line("%-*s %*s %*s", labelWidth, r.Name, amountWidth, money.Format(r.Debit), amountWidth, money.Format(r.Credit))
	}
	w.line("%s", strings.Repeat("-", ruleWidth))
	w.line("%-*s %*s %*s", labelWidth, "TOTAL", amountWidth, money.Format(t.TotalDebit), amountWidth, money.Format(t.TotalCredit))
	w.verdict(t.Balanced(), "La balanza de comprobación", t.Difference())
	return w.String()
}
