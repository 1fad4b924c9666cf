package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/id"
	"github.com/libro-dev/libro/internal/model"
)

// OpeningDescription is the description of the opening entry.
const OpeningDescription = "Asiento de apertura"

// Draft is an entry that has not been posted yet.
type Draft struct {
	Description string
	Category    model.CashFlowCategory
	Debits      []model.Line
	Credits     []model.Line
}

// Ledger is the in-memory state of one bookkeeping session: account
// balances, the journal, per-account movements and cash-flow history.
// It is not safe for concurrent use.
type Ledger struct {
	date      time.Time
	registry  *accounts.Registry
	entries   []model.Entry
	schedules map[model.AccountID][]model.Movement
	touched   []model.AccountID
	cashFlows []model.CashFlow

	openingCash  decimal.Decimal
	periodIncome decimal.Decimal
}

// New creates an empty ledger over chart. date is the session date stamped on
// every entry.
func New(chart *accounts.Service, date time.Time) *Ledger {
	return &Ledger{
		date:      date,
		registry:  accounts.NewRegistry(chart),
		schedules: make(map[model.AccountID][]model.Movement),
	}
}

// Open posts the opening entry and records opening Caja+Bancos.
func (l *Ledger) Open(debits, credits []model.Line) (model.Entry, error) {
	entry, err := l.Post(Draft{
		Description: OpeningDescription,
		Category:    model.CategoryOpening,
		Debits:      debits,
		Credits:     credits,
	})
	if err != nil {
		return model.Entry{}, fmt.Errorf("posting opening entry: %w", err)
	}
	l.openingCash = l.openingCash.Add(cashDelta(entry))
	return entry, nil
}

// Post applies a draft to the ledger. Preconditions are checked before any
// state changes; debit/credit equality is the caller's responsibility.
func (l *Ledger) Post(d Draft) (model.Entry, error) {
	if len(d.Debits) == 0 || len(d.Credits) == 0 {
		return model.Entry{}, apperrors.ErrEmptySide
	}
	for _, line := range append(append([]model.Line{}, d.Debits...), d.Credits...) {
		if !l.registry.Chart().Exists(line.Account) {
			return model.Entry{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, line.Account)
		}
		if !line.Amount.IsPositive() {
			return model.Entry{}, fmt.Errorf("%w: %s on account %s", apperrors.ErrInvalidAmount, line.Amount, line.Account)
		}
	}

	seq := len(l.entries) + 1
	entry := model.Entry{
		Seq:         seq,
		ID:          id.FormatEntryID(l.date, seq),
		Date:        l.date,
		Description: d.Description,
		Category:    d.Category,
		Debits:      append([]model.Line(nil), d.Debits...),
		Credits:     append([]model.Line(nil), d.Credits...),
	}
	l.entries = append(l.entries, entry)

	for _, line := range entry.Debits {
		l.apply(entry, line, model.Debit)
	}
	for _, line := range entry.Credits {
		l.apply(entry, line, model.Credit)
	}

	if delta := cashDelta(entry); !delta.IsZero() {
		l.cashFlows = append(l.cashFlows, model.CashFlow{
			EntryID:     entry.ID,
			Date:        entry.Date,
			Description: entry.Description,
			Category:    entry.Category,
			Amount:      delta,
		})
	}
	return entry, nil
}

func (l *Ledger) apply(entry model.Entry, line model.Line, side model.Side) {
	// Existence was checked in Post.
	_ = l.registry.Apply(line.Account, line.Amount, side)

	if _, seen := l.schedules[line.Account]; !seen {
		l.touched = append(l.touched, line.Account)
	}
	l.schedules[line.Account] = append(l.schedules[line.Account], model.Movement{
		EntryID:     entry.ID,
		Date:        entry.Date,
		Description: entry.Description,
		Side:        side,
		Amount:      line.Amount,
	})
}

func cashDelta(entry model.Entry) decimal.Decimal {
	delta := decimal.Zero
	for _, line := range entry.Debits {
		if line.Account.IsCash() {
			delta = delta.Add(line.Amount)
		}
	}
	for _, line := range entry.Credits {
		if line.Account.IsCash() {
			delta = delta.Sub(line.Amount)
		}
	}
	return delta
}

// Date returns the session date.
func (l *Ledger) Date() time.Time { return l.date }

// Chart returns the chart of accounts.
func (l *Ledger) Chart() *accounts.Service { return l.registry.Chart() }

// Balance returns the signed balance of an account (debit positive).
func (l *Ledger) Balance(id model.AccountID) (decimal.Decimal, error) {
	return l.registry.Balance(id)
}

// Entries returns the journal in posting order.
func (l *Ledger) Entries() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	for i, e := range l.entries {
		e.Debits = append([]model.Line(nil), e.Debits...)
		e.Credits = append([]model.Line(nil), e.Credits...)
		out[i] = e
	}
	return out
}

// Touched returns the accounts that have movements, in first-touch order.
func (l *Ledger) Touched() []model.AccountID {
	return append([]model.AccountID(nil), l.touched...)
}

// Schedule returns the movements of one account in posting order.
func (l *Ledger) Schedule(id model.AccountID) []model.Movement {
	return append([]model.Movement(nil), l.schedules[id]...)
}

// CashFlows returns every recorded change to Caja+Bancos, including the opening entry.
func (l *Ledger) CashFlows() []model.CashFlow {
	return append([]model.CashFlow(nil), l.cashFlows...)
}

// OpeningCash returns Caja+Bancos as set by the opening entry.
func (l *Ledger) OpeningCash() decimal.Decimal { return l.openingCash }

// PeriodIncome returns the net income last applied with ApplyNetIncome.
func (l *Ledger) PeriodIncome() decimal.Decimal { return l.periodIncome }

// ApplyNetIncome stores the period's net income for the balance sheet and the
// statement of changes in equity. It does not touch account balances.
func (l *Ledger) ApplyNetIncome(v decimal.Decimal) { l.periodIncome = v }
