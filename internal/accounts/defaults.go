package accounts

import "github.com/libro-dev/libro/internal/model"

// DefaultChart returns the fixed chart of accounts, in presentation order.
func DefaultChart() []model.Account {
	return []model.Account{
		asset(model.AccountCash, "Caja", model.GroupCurrentAsset),
		asset(model.AccountBank, "Bancos", model.GroupCurrentAsset),
		asset(model.AccountReceivables, "Clientes", model.GroupCurrentAsset),
		asset(model.AccountMerchandise, "Mercancía", model.GroupCurrentAsset),
		asset(model.AccountVATRecoverable, "IVA acreditable", model.GroupCurrentAsset),
		asset(model.AccountVATToRecover, "IVA por acreditar", model.GroupCurrentAsset),
		asset(model.AccountSupplies, "Papelería y útiles", model.GroupCurrentAsset),
		asset(model.AccountPrepaidRent, "Rentas pagadas por anticipado", model.GroupCurrentAsset),
		asset(model.AccountBuildings, "Edificios", model.GroupNonCurrentAsset),
		asset(model.AccountLand, "Terrenos", model.GroupNonCurrentAsset),
		asset(model.AccountComputerEquipment, "Equipo de computo", model.GroupNonCurrentAsset),
		asset(model.AccountFurniture, "Muebles y enseres", model.GroupNonCurrentAsset),
		asset(model.AccountOfficeEquipment, "Mobiliaria y equipo", model.GroupNonCurrentAsset),
		asset(model.AccountDeliveryEquipment, "Equipo de reparto", model.GroupNonCurrentAsset),
		{ID: model.AccountPayables, Name: "Proveedores", Class: model.ClassLiability, Normal: model.Credit, Group: model.GroupShortTermDebt},
		{ID: model.AccountVATCollected, Name: "IVA trasladado", Class: model.ClassLiability, Normal: model.Credit, Group: model.GroupShortTermDebt},
		{ID: model.AccountVATToCollect, Name: "IVA por trasladar", Class: model.ClassLiability, Normal: model.Credit, Group: model.GroupShortTermDebt},
		{ID: model.AccountCustomerAdvances, Name: "Anticipo de clientes", Class: model.ClassLiability, Normal: model.Credit, Group: model.GroupShortTermDebt},
		{ID: model.AccountCapital, Name: "Capital social", Class: model.ClassEquity, Normal: model.Credit, Group: model.GroupEquity},
		{ID: model.AccountPeriodIncome, Name: "Utilidad del ejercicio", Class: model.ClassEquity, Normal: model.Credit, Group: model.GroupEquity},
		{ID: model.AccountRetainedEarnings, Name: "Utilidades retenidas", Class: model.ClassEquity, Normal: model.Credit, Group: model.GroupEquity},
		{ID: model.AccountSales, Name: "Ventas", Class: model.ClassIncome, Normal: model.Credit, Group: model.GroupIncome},
		{ID: model.AccountFinancialIncome, Name: "Productos financieros", Class: model.ClassIncome, Normal: model.Credit, Group: model.GroupIncome},
		{ID: model.AccountOtherIncome, Name: "Otros ingresos", Class: model.ClassIncome, Normal: model.Credit, Group: model.GroupIncome},
		{ID: model.AccountCostOfSales, Name: "Costo de ventas", Class: model.ClassExpense, Normal: model.Debit, Group: model.GroupCost},
		{ID: model.AccountSellingExpenses, Name: "Gastos de venta", Class: model.ClassExpense, Normal: model.Debit, Group: model.GroupExpense},
		{ID: model.AccountAdminExpenses, Name: "Gastos de administración", Class: model.ClassExpense, Normal: model.Debit, Group: model.GroupExpense},
		{ID: model.AccountFinancialExpenses, Name: "Gastos financieros", Class: model.ClassExpense, Normal: model.Debit, Group: model.GroupExpense},
	}
}

func asset(id model.AccountID, name string, group model.Group) model.Account {
	return model.Account{ID: id, Name: name, Class: model.ClassAsset, Normal: model.Debit, Group: group}
}
