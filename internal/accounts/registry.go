package accounts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

// Registry holds the running balance of every account in a chart.
// Balances use a signed convention: debits add, credits subtract,
// whatever the account's class.
type Registry struct {
	chart    *Service
	balances map[model.AccountID]decimal.Decimal
}

// NewRegistry creates a registry with a zero balance for every chart account.
func NewRegistry(chart *Service) *Registry {
	balances := make(map[model.AccountID]decimal.Decimal, len(chart.All()))
	for _, a := range chart.All() {
		balances[a.ID] = decimal.Zero
	}
	return &Registry{chart: chart, balances: balances}
}

// Chart returns the chart the registry was built from.
func (r *Registry) Chart() *Service {
	return r.chart
}

// Balance returns the signed balance of an account.
func (r *Registry) Balance(id model.AccountID) (decimal.Decimal, error) {
	b, ok := r.balances[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, id)
	}
	return b, nil
}

// Apply moves an account balance by amount on the given side.
func (r *Registry) Apply(id model.AccountID, amount decimal.Decimal, side model.Side) error {
	b, ok := r.balances[id]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, id)
	}
	switch side {
	case model.Debit:
		r.balances[id] = b.Add(amount)
	case model.Credit:
		r.balances[id] = b.Sub(amount)
	default:
		return fmt.Errorf("unknown side %q", side)
	}
	return nil
}
