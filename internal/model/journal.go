package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowCategory tags an entry with its economic nature for the cash-flow statement.
type CashFlowCategory string

const (
	CategoryNone      CashFlowCategory = ""
	CategoryOpening   CashFlowCategory = "opening"
	CategoryOperating CashFlowCategory = "operating"
	CategoryInvesting CashFlowCategory = "investing"
	CategoryFinancing CashFlowCategory = "financing"
)

// Line is one account/amount pair on a side of an entry.
type Line struct {
	Account AccountID
	Amount  decimal.Decimal
}

// Entry is a posted journal entry. Entries are never modified after posting.
type Entry struct {
	Seq         int    // 1-based position in the journal
	ID          string // "YYYY-MM-NNN"
	Date        time.Time
	Description string
	Category    CashFlowCategory
	Debits      []Line
	Credits     []Line
}

// TotalDebit sums the debit lines.
func (e Entry) TotalDebit() decimal.Decimal { return SumLines(e.Debits) }

// TotalCredit sums the credit lines.
func (e Entry) TotalCredit() decimal.Decimal { return SumLines(e.Credits) }

// Movement is a single debit or credit touching one account.
type Movement struct {
	EntryID     string
	Date        time.Time
	Description string
	Side        Side
	Amount      decimal.Decimal
}

// CashFlow is the net change to Caja+Bancos produced by one entry.
type CashFlow struct {
	EntryID     string
	Date        time.Time
	Description string
	Category    CashFlowCategory
	Amount      decimal.Decimal // positive = inflow
}

// SumLines adds the amounts of lines.
func SumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
