package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

// ValidationError describes a single rule a draft breaks.
type ValidationError struct {
	Rule        string
	Description string
	Err         error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Description)
}

func (e ValidationError) Unwrap() error { return e.Err }

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id model.AccountID) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateDraft checks the structural rules every entry must satisfy before
// posting: both sides present, known accounts, positive amounts with at most
// two decimal places, and debits equal to credits.
func ValidateDraft(d Draft, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	if len(d.Debits) == 0 || len(d.Credits) == 0 {
		errs = append(errs, ValidationError{
			Rule:        "sides",
			Description: "entry needs at least one debit and one credit",
			Err:         apperrors.ErrEmptySide,
		})
	}

	check := func(line model.Line, side model.Side) {
		if !accounts.Exists(line.Account) {
			errs = append(errs, ValidationError{
				Rule:        "account",
				Description: fmt.Sprintf("unknown account %s", line.Account),
				Err:         apperrors.ErrUnknownAccount,
			})
		}
		if !line.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Rule:        "amount",
				Description: fmt.Sprintf("%s %s on account %s is not positive", side, line.Amount, line.Account),
				Err:         apperrors.ErrInvalidAmount,
			})
		}
		if scaled := line.Amount.Mul(hundred); !scaled.Equal(scaled.Truncate(0)) {
			errs = append(errs, ValidationError{
				Rule:        "precision",
				Description: fmt.Sprintf("%s %s on account %s has more than 2 decimal places", side, line.Amount, line.Account),
				Err:         apperrors.ErrInvalidAmount,
			})
		}
	}
	for _, line := range d.Debits {
		check(line, model.Debit)
	}
	for _, line := range d.Credits {
		check(line, model.Credit)
	}

	debits, credits := model.SumLines(d.Debits), model.SumLines(d.Credits)
	if !debits.Equal(credits) {
		errs = append(errs, ValidationError{
			Rule:        "balance",
			Description: fmt.Sprintf("debits (%s) != credits (%s)", debits.StringFixed(2), credits.StringFixed(2)),
			Err:         apperrors.ErrUnbalanced,
		})
	}
	return errs
}

// JoinErrors folds validation errors into one error, or nil.
func JoinErrors(verrs []ValidationError) error {
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return fmt.Errorf("validation failed: %w", errors.Join(errs...))
}
