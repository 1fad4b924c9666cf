package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/catalog"
)

// CSVParser reads operations with the header
// operation,amount,cost,percent,months,account. Only operation and amount
// are required on every row.
type CSVParser struct {
	Accounts Resolver
}

// CSVHeader is the column layout CSVParser expects.
var CSVHeader = []string{"operation", "amount", "cost", "percent", "months", "account"}

const (
	colOp = iota
	colAmount
	colCost
	colPercent
	colMonths
	colAccount
	csvNumFields
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a batch CSV. Blank lines are skipped; the header is required
// whenever the file has any record.
func (p *CSVParser) Parse(r io.Reader) ([]catalog.Operation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading batch CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if !strings.EqualFold(records[0][colOp], CSVHeader[colOp]) {
		return nil, fmt.Errorf("missing header: want %s", strings.Join(CSVHeader, ","))
	}

	var ops []catalog.Operation
	for i, rec := range records[1:] {
		op, err := p.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (p *CSVParser) parseRow(rec []string) (catalog.Operation, error) {
	kind, err := catalog.ParseKind(rec[colOp])
	if err != nil {
		return catalog.Operation{}, err
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return catalog.Operation{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	op := catalog.Operation{Kind: kind, Amount: amount}

	if s := rec[colCost]; s != "" {
		if op.Cost, err = decimal.NewFromString(s); err != nil {
			return catalog.Operation{}, fmt.Errorf("parsing cost %q: %w", s, err)
		}
	}
	if s := rec[colPercent]; s != "" {
		if op.Percent, err = decimal.NewFromString(s); err != nil {
			return catalog.Operation{}, fmt.Errorf("parsing percent %q: %w", s, err)
		}
	}
	if s := rec[colMonths]; s != "" {
		if op.Months, err = strconv.Atoi(s); err != nil {
			return catalog.Operation{}, fmt.Errorf("parsing months %q: %w", s, err)
		}
	}
	if op.Account, err = resolveAccount(p.Accounts, rec[colAccount]); err != nil {
		return catalog.Operation{}, err
	}
	return op, nil
}
