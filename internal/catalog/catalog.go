package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

// DefaultVATRate is the flat IVA rate applied to pre-tax amounts.
var DefaultVATRate = decimal.RequireFromString("0.16")

var hundred = decimal.NewFromInt(100)

// Poster posts drafts to a ledger.
type Poster interface {
	Post(d ledger.Draft) (model.Entry, error)
}

// Chart resolves account IDs for validation and messages.
type Chart interface {
	Exists(id model.AccountID) bool
	Name(id model.AccountID) string
}

// Receipt is the outcome of a posted operation.
type Receipt struct {
	Entry   model.Entry
	Amount  decimal.Decimal
	VAT     decimal.Decimal
	Total   decimal.Decimal
	Message string
}

// Catalog turns business operations into balanced ledger entries.
type Catalog struct {
	poster         Poster
	chart          Chart
	rate           decimal.Decimal
	defaultAccount model.AccountID
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithVATRate overrides DefaultVATRate.
func WithVATRate(rate decimal.Decimal) Option {
	return func(c *Catalog) { c.rate = rate }
}

// WithDefaultAccount sets the settlement account used when an operation names none.
func WithDefaultAccount(id model.AccountID) Option {
	return func(c *Catalog) { c.defaultAccount = id }
}

// New creates a Catalog posting to poster.
func New(poster Poster, chart Chart, opts ...Option) *Catalog {
	c := &Catalog{
		poster:         poster,
		chart:          chart,
		rate:           DefaultVATRate,
		defaultAccount: model.AccountBank,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rate returns the VAT rate in use.
func (c *Catalog) Rate() decimal.Decimal { return c.rate }

// plan is a validated draft plus the figures reported back to the caller.
type plan struct {
	draft   ledger.Draft
	amount  decimal.Decimal
	vat     decimal.Decimal
	total   decimal.Decimal
	message string
}

// Build validates op and returns the draft it would post, without posting it.
func (c *Catalog) Build(op Operation) (ledger.Draft, error) {
	p, err := c.plan(op)
	if err != nil {
		return ledger.Draft{}, err
	}
	return p.draft, nil
}

// Apply validates op, posts it and returns a receipt.
// Invalid input is rejected before anything is posted.
func (c *Catalog) Apply(op Operation) (Receipt, error) {
	p, err := c.plan(op)
	if err != nil {
		return Receipt{}, err
	}
	if err := ledger.JoinErrors(ledger.ValidateDraft(p.draft, c.chart)); err != nil {
		return Receipt{}, fmt.Errorf("%s: %w", op.Kind, err)
	}
	entry, err := c.poster.Post(p.draft)
	if err != nil {
		return Receipt{}, fmt.Errorf("posting %s: %w", op.Kind, err)
	}
	return Receipt{
		Entry:   entry,
		Amount:  p.amount,
		VAT:     p.vat,
		Total:   p.total,
		Message: p.message,
	}, nil
}

func (c *Catalog) plan(op Operation) (plan, error) {
	if !op.Kind.valid() {
		return plan{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownOperation, op.Kind)
	}
	if err := checkAmount("amount", op.Amount); err != nil {
		return plan{}, err
	}
	account := op.Account
	if op.Kind.usesSettlement() {
		if account == 0 {
			account = c.defaultAccount
		}
		if !account.IsCash() {
			return plan{}, fmt.Errorf("%w: settlement account must be Caja or Bancos, got %s", apperrors.ErrUnknownAccount, c.chart.Name(account))
		}
	}

	switch op.Kind {
	case KindPurchaseCash:
		return c.purchaseCash(op.Amount, account), nil
	case KindPurchaseCredit:
		return c.purchaseCredit(op.Amount), nil
	case KindPurchaseSplit:
		if op.Percent.IsNegative() || op.Percent.GreaterThan(hundred) {
			return plan{}, fmt.Errorf("%w: %s is outside [0, 100]", apperrors.ErrInvalidPercentage, op.Percent)
		}
		return c.purchaseSplit(op.Amount, op.Percent, account), nil
	case KindCustomerAdvance:
		return c.customerAdvance(op.Amount, account), nil
	case KindStationeryPurchase:
		return c.stationeryPurchase(op.Amount, account), nil
	case KindPrepaidRent:
		if op.Months < 1 {
			return plan{}, fmt.Errorf("%w: %d months", apperrors.ErrInvalidDuration, op.Months)
		}
		return c.prepaidRent(op.Amount, op.Months, account), nil
	case KindSaleCash, KindSaleCredit:
		if op.Cost.IsNegative() {
			return plan{}, fmt.Errorf("%w: cost %s is negative", apperrors.ErrInvalidAmount, op.Cost)
		}
		if err := checkPrecision("cost", op.Cost); err != nil {
			return plan{}, err
		}
		if op.Kind == KindSaleCash {
			return c.saleCash(op.Amount, op.Cost, account), nil
		}
		return c.saleCredit(op.Amount, op.Cost), nil
	case KindAdminExpense:
		return c.expense(op.Amount, model.AccountAdminExpenses, "Gasto de administración", account), nil
	case KindSellingExpense:
		return c.expense(op.Amount, model.AccountSellingExpenses, "Gasto de venta", account), nil
	case KindFinancialExpense:
		return c.financialExpense(op.Amount, account), nil
	}
	return plan{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownOperation, op.Kind)
}

func checkAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s %s must be greater than zero", apperrors.ErrInvalidAmount, field, d)
	}
	return checkPrecision(field, d)
}

func checkPrecision(field string, d decimal.Decimal) error {
	if scaled := d.Mul(hundred); !scaled.Equal(scaled.Truncate(0)) {
		return fmt.Errorf("%w: %s %s has more than 2 decimal places", apperrors.ErrInvalidAmount, field, d)
	}
	return nil
}

// tax returns the rounded VAT on amount and the tax-inclusive total.
func (c *Catalog) tax(amount decimal.Decimal) (vat, total decimal.Decimal) {
	vat = money.Round2(amount.Mul(c.rate))
	return vat, amount.Add(vat)
}

// lines builds a side, dropping zero amounts.
func lines(pairs ...model.Line) []model.Line {
	out := make([]model.Line, 0, len(pairs))
	for _, p := range pairs {
		if !p.Amount.IsZero() {
			out = append(out, p)
		}
	}
	return out
}

func l(id model.AccountID, amount decimal.Decimal) model.Line {
	return model.Line{Account: id, Amount: amount}
}
