package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

func (c *Catalog) taxed(amount, vat, total decimal.Decimal) string {
	return fmt.Sprintf("%s + IVA %s = %s", money.Dollars(amount), money.Dollars(vat), money.Dollars(total))
}

func (c *Catalog) purchaseCash(amount decimal.Decimal, source model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Compra de mercancía en efectivo (pagado con %s)", name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountMerchandise, amount), l(model.AccountVATRecoverable, vat)),
			Credits:     lines(l(source, total)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Compra en efectivo por %s registrada con éxito.\nPagado desde: %s", c.taxed(amount, vat, total), name),
	}
}

func (c *Catalog) purchaseCredit(amount decimal.Decimal) plan {
	vat, total := c.tax(amount)
	return plan{
		draft: ledger.Draft{
			Description: "Compra de mercancía a crédito",
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountMerchandise, amount), l(model.AccountVATToRecover, vat)),
			Credits:     lines(l(model.AccountPayables, total)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Compra a crédito por %s registrada con éxito.", c.taxed(amount, vat, total)),
	}
}

// purchaseSplit pays percent of the total from source and owes the rest to
// suppliers. VAT follows the same proportion: the paid share is recoverable
// now, the owed share once paid. The owed parts are derived by subtraction so
// both sides always add up exactly.
func (c *Catalog) purchaseSplit(amount, percent decimal.Decimal, source model.AccountID) plan {
	vat, total := c.tax(amount)
	share := percent.Div(hundred)

	cash := money.Round2(total.Mul(share))
	credit := total.Sub(cash)
	vatCash := money.Round2(vat.Mul(share))
	vatCredit := vat.Sub(vatCash)

	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Compra de mercancía combinada (parte pagada con %s)", name),
			Category:    model.CategoryOperating,
			Debits: lines(
				l(model.AccountMerchandise, amount),
				l(model.AccountVATRecoverable, vatCash),
				l(model.AccountVATToRecover, vatCredit),
			),
			Credits: lines(l(source, cash), l(model.AccountPayables, credit)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Compra combinada por %s\n   Pago en efectivo desde %s: %s (%s%%)\n   Pago a crédito: %s (%s%%)",
			c.taxed(amount, vat, total), name, money.Dollars(cash), percent, money.Dollars(credit), hundred.Sub(percent)),
	}
}

func (c *Catalog) customerAdvance(amount decimal.Decimal, dest model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(dest)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Anticipo recibido de cliente (depositado en %s)", name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(dest, total)),
			Credits:     lines(l(model.AccountCustomerAdvances, amount), l(model.AccountVATCollected, vat)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Anticipo de cliente por %s registrado con éxito.\nDepositado en: %s", c.taxed(amount, vat, total), name),
	}
}

func (c *Catalog) stationeryPurchase(amount decimal.Decimal, source model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Compra de papelería (pagado con %s)", name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountSupplies, amount), l(model.AccountVATRecoverable, vat)),
			Credits:     lines(l(source, total)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Compra de papelería por %s registrada con éxito.\nPagado desde: %s", c.taxed(amount, vat, total), name),
	}
}

// prepaidRent posts amount as prepaid rent. months only appears in the text.
func (c *Catalog) prepaidRent(amount decimal.Decimal, months int, source model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Pago de rentas anticipadas por %d meses (pagado con %s)", months, name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountPrepaidRent, amount), l(model.AccountVATRecoverable, vat)),
			Credits:     lines(l(source, total)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Pago de rentas anticipadas por %d meses: %s registrado con éxito.\nPagado desde: %s", months, c.taxed(amount, vat, total), name),
	}
}

func (c *Catalog) saleCash(amount, cost decimal.Decimal, dest model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(dest)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Venta de mercancía en efectivo (depositado en %s)", name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(dest, total), l(model.AccountCostOfSales, cost)),
			Credits:     lines(l(model.AccountSales, amount), l(model.AccountVATCollected, vat), l(model.AccountMerchandise, cost)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Venta en efectivo por %s registrada con éxito.\nDepositado en: %s", c.taxed(amount, vat, total), name),
	}
}

func (c *Catalog) saleCredit(amount, cost decimal.Decimal) plan {
	vat, total := c.tax(amount)
	return plan{
		draft: ledger.Draft{
			Description: "Venta de mercancía a crédito",
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountReceivables, total), l(model.AccountCostOfSales, cost)),
			Credits:     lines(l(model.AccountSales, amount), l(model.AccountVATCollected, vat), l(model.AccountMerchandise, cost)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("Venta a crédito por %s registrada con éxito.", c.taxed(amount, vat, total)),
	}
}

func (c *Catalog) expense(amount decimal.Decimal, category model.AccountID, label string, source model.AccountID) plan {
	vat, total := c.tax(amount)
	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("%s (pagado con %s)", label, name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(category, amount), l(model.AccountVATRecoverable, vat)),
			Credits:     lines(l(source, total)),
		},
		amount: amount, vat: vat, total: total,
		message: fmt.Sprintf("%s por %s registrado con éxito.\nPagado desde: %s", label, c.taxed(amount, vat, total), name),
	}
}

// financialExpense carries no VAT.
func (c *Catalog) financialExpense(amount decimal.Decimal, source model.AccountID) plan {
	name := c.chart.Name(source)
	return plan{
		draft: ledger.Draft{
			Description: fmt.Sprintf("Gasto financiero (pagado con %s)", name),
			Category:    model.CategoryOperating,
			Debits:      lines(l(model.AccountFinancialExpenses, amount)),
			Credits:     lines(l(source, amount)),
		},
		amount: amount, vat: decimal.Zero, total: amount,
		message: fmt.Sprintf("Gasto financiero por %s registrado con éxito.\nPagado desde: %s", money.Dollars(amount), name),
	}
}
