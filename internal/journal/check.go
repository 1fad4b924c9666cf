package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/id"
	"github.com/libro-dev/libro/internal/model"
)

// Violation describes a single invariant an exported journal breaks.
type Violation struct {
	Rule        string
	EntryID     string
	Description string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s [%s]: %s", v.Rule, v.EntryID, v.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id model.AccountID) bool
}

var hundred = decimal.NewFromInt(100)

// CheckLegs verifies an exported journal: every entry balances, each leg
// has exactly one side, accounts exist, amounts have at most two decimals
// and entry sequence numbers run 1..N without gaps.
func CheckLegs(legs []Leg, accounts AccountChecker) []Violation {
	var errs []Violation

	// Group legs by entry.
	groups := make(map[string][]Leg)
	var groupOrder []string
	for _, leg := range legs {
		g := leg.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], leg)
	}

	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, leg := range groups[g] {
			totalDebit = totalDebit.Add(leg.Debit)
			totalCredit = totalCredit.Add(leg.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, Violation{
				Rule:        "balance",
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	for _, leg := range legs {
		hasDebit := !leg.Debit.IsZero()
		hasCredit := !leg.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, Violation{
				Rule:        "sides",
				EntryID:     leg.EntryID,
				Description: "leg must have exactly one of debit or credit",
			})
		}

		if !accounts.Exists(leg.Account) {
			errs = append(errs, Violation{
				Rule:        "account",
				EntryID:     leg.EntryID,
				Description: fmt.Sprintf("unknown account %s", leg.Account),
			})
		}

		for _, amt := range []decimal.Decimal{leg.Debit, leg.Credit} {
			if scaled := amt.Mul(hundred); !scaled.Equal(scaled.Floor()) {
				errs = append(errs, Violation{
					Rule:        "precision",
					EntryID:     leg.EntryID,
					Description: fmt.Sprintf("amount %s has more than 2 decimal places", amt),
				})
			}
		}
	}

	seqSeen := make(map[int]bool)
	for _, g := range groupOrder {
		_, _, seq, err := id.ParseEntryID(g)
		if err != nil {
			errs = append(errs, Violation{
				Rule:        "sequence",
				EntryID:     g,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	for i := 1; i <= len(seqSeen); i++ {
		if !seqSeen[i] {
			errs = append(errs, Violation{
				Rule:        "sequence",
				EntryID:     fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
			})
		}
	}

	return errs
}
