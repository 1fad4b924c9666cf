package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/libro-dev/libro/internal/model"
)

const (
	numFields = 5
	colID     = 0
	colName   = 1
	colClass  = 2
	colNormal = 3
	colGroup  = 4
)

// Header is the CSV header written by WriteAccounts.
var Header = []string{"account_id", "account_name", "class", "normal_side", "group"}

// WriteAccounts writes the chart of accounts as CSV.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID.String()
	row[colName] = acct.Name
	row[colClass] = string(acct.Class)
	row[colNormal] = string(acct.Normal)
	row[colGroup] = string(acct.Group)
	return row
}
