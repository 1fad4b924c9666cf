// Package journal exports posted entries as one CSV row per leg and reads
// such exports back for checking.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/id"
	"github.com/libro-dev/libro/internal/model"
)

// Header is the CSV header for an exported journal.
var Header = []string{"entry_id", "date", "account_id", "account_name", "description", "debit", "credit", "category"}

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colAcctID  = 2
	colName    = 3
	colDesc    = 4
	colDebit   = 5
	colCredit  = 6
	colCat     = 7
)

// Leg is one line of a posted entry, flattened for export. EntryID carries a
// leg suffix: "2025-03-002a".
type Leg struct {
	EntryID     string
	Date        time.Time
	Account     model.AccountID
	AccountName string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Category    model.CashFlowCategory
}

// EntryGroup returns the base entry ID (without leg suffix).
func (l Leg) EntryGroup() string {
	return id.EntryGroup(l.EntryID)
}

// Namer resolves account display names.
type Namer interface {
	Name(id model.AccountID) string
}

// Legs flattens entries into legs, debits first, lettered in order.
func Legs(entries []model.Entry, names Namer) []Leg {
	var legs []Leg
	for _, e := range entries {
		n := 0
		add := func(line model.Line, side model.Side) {
			leg := Leg{
				EntryID:     id.FormatLegID(e.ID, n),
				Date:        e.Date,
				Account:     line.Account,
				AccountName: names.Name(line.Account),
				Description: e.Description,
				Category:    e.Category,
			}
			if side == model.Debit {
				leg.Debit = line.Amount
			} else {
				leg.Credit = line.Amount
			}
			legs = append(legs, leg)
			n++
		}
		for _, line := range e.Debits {
			add(line, model.Debit)
		}
		for _, line := range e.Credits {
			add(line, model.Credit)
		}
	}
	return legs
}

// ReadLegs reads all legs from an exported journal.
func ReadLegs(r io.Reader) ([]Leg, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var legs []Leg
	for i, rec := range records[1:] {
		leg, err := UnmarshalLeg(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// WriteLegs writes legs with a header row.
func WriteLegs(w io.Writer, legs []Leg) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, leg := range legs {
		if err := cw.Write(MarshalLeg(leg)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLeg converts a Leg to a CSV row.
func MarshalLeg(leg Leg) []string {
	row := make([]string, numFields)
	row[colEntryID] = leg.EntryID
	row[colDate] = leg.Date.Format(dateFormat)
	row[colAcctID] = leg.Account.String()
	row[colName] = leg.AccountName
	row[colDesc] = leg.Description

	if !leg.Debit.IsZero() {
		row[colDebit] = leg.Debit.StringFixed(2)
	}
	if !leg.Credit.IsZero() {
		row[colCredit] = leg.Credit.StringFixed(2)
	}

	row[colCat] = string(leg.Category)
	return row
}

// UnmarshalLeg converts a CSV row to a Leg.
func UnmarshalLeg(record []string) (Leg, error) {
	if len(record) != numFields {
		return Leg{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Leg{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	accountID, err := strconv.Atoi(record[colAcctID])
	if err != nil {
		return Leg{}, fmt.Errorf("parsing account_id %q: %w", record[colAcctID], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return Leg{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return Leg{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return Leg{
		EntryID:     record[colEntryID],
		Date:        date,
		Account:     model.AccountID(accountID),
		AccountName: record[colName],
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
		Category:    model.CashFlowCategory(record[colCat]),
	}, nil
}
