package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

// Kind names a business-transaction template.
type Kind string

const (
	KindPurchaseCash       Kind = "purchase-cash"
	KindPurchaseCredit     Kind = "purchase-credit"
	KindPurchaseSplit      Kind = "purchase-split"
	KindCustomerAdvance    Kind = "customer-advance"
	KindStationeryPurchase Kind = "stationery-purchase"
	KindPrepaidRent        Kind = "prepaid-rent"
	KindSaleCash           Kind = "sale-cash"
	KindSaleCredit         Kind = "sale-credit"
	KindAdminExpense       Kind = "admin-expense"
	KindSellingExpense     Kind = "selling-expense"
	KindFinancialExpense   Kind = "financial-expense"
)

// Kinds returns every template kind in menu order.
func Kinds() []Kind {
	return []Kind{
		KindPurchaseCash,
		KindPurchaseCredit,
		KindPurchaseSplit,
		KindCustomerAdvance,
		KindStationeryPurchase,
		KindPrepaidRent,
		KindSaleCash,
		KindSaleCredit,
		KindAdminExpense,
		KindSellingExpense,
		KindFinancialExpense,
	}
}

// Spanish menu names accepted as aliases.
var aliases = map[string]Kind{
	"compra_efectivo":      KindPurchaseCash,
	"compra_credito":       KindPurchaseCredit,
	"compra_combinada":     KindPurchaseSplit,
	"anticipo_cliente":     KindCustomerAdvance,
	"compra_papeleria":     KindStationeryPurchase,
	"rentas_anticipadas":   KindPrepaidRent,
	"venta_efectivo":       KindSaleCash,
	"venta_credito":        KindSaleCredit,
	"gasto_administracion": KindAdminExpense,
	"gasto_venta":          KindSellingExpense,
	"gasto_financiero":     KindFinancialExpense,
}

// ParseKind resolves a kind name or its Spanish alias.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == key {
			return k, nil
		}
	}
	if k, ok := aliases[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownOperation, s)
}

// Operation is one request to the catalog. Cost, Percent, Months and Account
// are read only by the kinds that use them; a zero Account selects the
// catalog's default settlement account.
type Operation struct {
	Kind    Kind
	Amount  decimal.Decimal
	Cost    decimal.Decimal
	Percent decimal.Decimal
	Months  int
	Account model.AccountID
}

// usesSettlement reports whether the kind pays from or deposits into Caja/Bancos.
func (k Kind) usesSettlement() bool {
	switch k {
	case KindPurchaseCredit, KindSaleCredit:
		return false
	}
	return true
}

func (k Kind) valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}
