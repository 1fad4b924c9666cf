package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/model"
)

// PurchaseCash buys merchandise paying amount+VAT from source.
func (c *Catalog) PurchaseCash(amount decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindPurchaseCash, Amount: amount, Account: source})
}

// PurchaseCredit buys merchandise owing amount+VAT to suppliers.
func (c *Catalog) PurchaseCredit(amount decimal.Decimal) (Receipt, error) {
	return c.Apply(Operation{Kind: KindPurchaseCredit, Amount: amount})
}

// PurchaseSplit pays percent of amount+VAT from source and the rest on credit.
func (c *Catalog) PurchaseSplit(amount, percent decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindPurchaseSplit, Amount: amount, Percent: percent, Account: source})
}

// CustomerAdvance receives a customer prepayment into dest.
func (c *Catalog) CustomerAdvance(amount decimal.Decimal, dest model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindCustomerAdvance, Amount: amount, Account: dest})
}

// StationeryPurchase buys office supplies.
func (c *Catalog) StationeryPurchase(amount decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindStationeryPurchase, Amount: amount, Account: source})
}

// PrepaidRent pays rent in advance for the given number of months.
func (c *Catalog) PrepaidRent(amount decimal.Decimal, months int, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindPrepaidRent, Amount: amount, Months: months, Account: source})
}

// SaleCash sells merchandise with cost basis cost, depositing into dest.
func (c *Catalog) SaleCash(amount, cost decimal.Decimal, dest model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindSaleCash, Amount: amount, Cost: cost, Account: dest})
}

// SaleCredit sells merchandise on account.
func (c *Catalog) SaleCredit(amount, cost decimal.Decimal) (Receipt, error) {
	return c.Apply(Operation{Kind: KindSaleCredit, Amount: amount, Cost: cost})
}

// AdminExpense pays an administrative expense plus VAT from source.
func (c *Catalog) AdminExpense(amount decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindAdminExpense, Amount: amount, Account: source})
}

// SellingExpense pays a selling expense plus VAT from source.
func (c *Catalog) SellingExpense(amount decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindSellingExpense, Amount: amount, Account: source})
}

// FinancialExpense pays a VAT-exempt financial charge.
func (c *Catalog) FinancialExpense(amount decimal.Decimal, source model.AccountID) (Receipt, error) {
	return c.Apply(Operation{Kind: KindFinancialExpense, Amount: amount, Account: source})
}
