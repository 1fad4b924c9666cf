package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/model"
)

// natural returns an account's balance with the sign flipped for
// credit-normal accounts, so a normal balance reads positive.
func natural(src Source, a model.Account) decimal.Decimal {
	b := balanceOf(src, a.ID)
	if a.Normal == model.Credit {
		return b.Neg()
	}
	return b
}

// groupItems lists the non-zero accounts of a group in chart order. Accounts
// in always are listed even when zero.
func groupItems(src Source, group model.Group, always ...model.AccountID) []Item {
	var items []Item
	for _, a := range src.Chart().ByGroup(group) {
		v := natural(src, a)
		if v.IsZero() && !contains(always, a.ID) {
			continue
		}
		items = append(items, Item{Account: a.ID, Name: a.Name, Amount: v})
	}
	return items
}

func contains(ids []model.AccountID, id model.AccountID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// IncomeStatementReport is the period's profit and loss.
type IncomeStatementReport struct {
	Date          time.Time
	Income        []Item
	TotalIncome   decimal.Decimal
	CostOfSales   decimal.Decimal
	GrossProfit   decimal.Decimal
	Expenses      []Item
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// IncomeStatement derives income, gross profit and net income from current
// balances. It has no side effects; see ComputeNetIncome and All.
func IncomeStatement(src Source) IncomeStatementReport {
	r := IncomeStatementReport{Date: src.Date()}
	r.Income = groupItems(src, model.GroupIncome, model.AccountSales)
	r.TotalIncome = sumItems(r.Income)
	r.CostOfSales = sumItems(groupItems(src, model.GroupCost))
	r.GrossProfit = r.TotalIncome.Sub(r.CostOfSales)
	r.Expenses = groupItems(src, model.GroupExpense)
	r.TotalExpenses = sumItems(r.Expenses)
	r.NetIncome = r.GrossProfit.Sub(r.TotalExpenses)
	return r
}

// ComputeNetIncome returns the period's net income. Callers store it with
// Ledger.ApplyNetIncome before deriving the balance sheet or equity changes.
func ComputeNetIncome(src Source) decimal.Decimal {
	return IncomeStatement(src).NetIncome
}

func (r IncomeStatementReport) Text() string {
	var w writer
	w.header("ESTADO DE RESULTADOS", r.Date)
	w.line("INGRESOS")
	for _, it := range r.Income {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Ingresos", r.TotalIncome)
	w.line("")
	w.amount("Costo de ventas", r.CostOfSales)
	w.line("")
	w.amount("UTILIDAD BRUTA", r.GrossProfit)
	w.line("")
	w.line("GASTOS")
	for _, it := range r.Expenses {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Gastos", r.TotalExpenses)
	w.line("")
	w.amount("UTILIDAD NETA", r.NetIncome)
	return trimNewline(w.String())
}

// BalanceSheetReport is the statement of financial position.
type BalanceSheetReport struct {
	Date                   time.Time
	CurrentAssets          []Item
	TotalCurrentAssets     decimal.Decimal
	NonCurrentAssets       []Item
	TotalNonCurrentAssets  decimal.Decimal
	TotalAssets            decimal.Decimal
	ShortTermLiabilities   []Item
	TotalLiabilities       decimal.Decimal
	Equity                 []Item
	TotalEquity            decimal.Decimal
	TotalLiabilitiesEquity decimal.Decimal
}

// Balanced reports whether assets equal liabilities plus equity.
func (b BalanceSheetReport) Balanced() bool {
	return b.TotalAssets.Equal(b.TotalLiabilitiesEquity)
}

// Difference is total assets minus liabilities plus equity.
func (b BalanceSheetReport) Difference() decimal.Decimal {
	return b.TotalAssets.Sub(b.TotalLiabilitiesEquity)
}

// BalanceSheet classifies balances into assets, liabilities and equity.
// Period income comes from the value last applied to the ledger, not from
// the income accounts, so it only reflects current activity after
// ApplyNetIncome. Amounts are signed: a loss or an overdrawn account shows
// negative instead of being dropped.
func BalanceSheet(src Source) BalanceSheetReport {
	r := BalanceSheetReport{Date: src.Date()}

	r.CurrentAssets = groupItems(src, model.GroupCurrentAsset)
	r.TotalCurrentAssets = sumItems(r.CurrentAssets)
	r.NonCurrentAssets = groupItems(src, model.GroupNonCurrentAsset)
	r.TotalNonCurrentAssets = sumItems(r.NonCurrentAssets)
	r.TotalAssets = r.TotalCurrentAssets.Add(r.TotalNonCurrentAssets)

	r.ShortTermLiabilities = groupItems(src, model.GroupShortTermDebt)
	r.TotalLiabilities = sumItems(r.ShortTermLiabilities)

	r.Equity = equityItems(src)
	r.TotalEquity = sumItems(r.Equity)
	r.TotalLiabilitiesEquity = r.TotalLiabilities.Add(r.TotalEquity)
	return r
}

// equityItems lists equity accounts, adding the applied period income to the
// "Utilidad del ejercicio" line. Capital social is always shown.
func equityItems(src Source) []Item {
	var items []Item
	for _, a := range src.Chart().ByGroup(model.GroupEquity) {
		v := natural(src, a)
		if a.ID == model.AccountPeriodIncome {
			v = v.Add(src.PeriodIncome())
		}
		if v.IsZero() && a.ID != model.AccountCapital {
			continue
		}
		items = append(items, Item{Account: a.ID, Name: a.Name, Amount: v})
	}
	return items
}

func (b BalanceSheetReport) Text() string {
	var w writer
	w.header("BALANCE GENERAL", b.Date)
	w.line("ACTIVO")
	w.line("")
	w.line("CIRCULANTE")
	for _, it := range b.CurrentAssets {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Activo Circulante", b.TotalCurrentAssets)
	w.line("")
	w.line("NO CIRCULANTE")
	for _, it := range b.NonCurrentAssets {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Activo No Circulante", b.TotalNonCurrentAssets)
	w.line("")
	w.amount("TOTAL ACTIVO", b.TotalAssets)
	w.line("")
	w.line("PASIVO")
	w.line("")
	w.line("CORTO PLAZO")
	for _, it := range b.ShortTermLiabilities {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Pasivo Corto Plazo", b.TotalLiabilities)
	w.line("")
	w.amount("TOTAL PASIVO", b.TotalLiabilities)
	w.line("")
	w.line("CAPITAL CONTABLE")
	for _, it := range b.Equity {
		w.amount(it.Name, it.Amount)
	}
	w.amount("Total Capital Contable", b.TotalEquity)
	w.line("")
	w.amount("TOTAL PASIVO + CAPITAL", b.TotalLiabilitiesEquity)
	w.verdict(b.Balanced(), "El balance general", b.Difference())
	return w.String()
}

// EquityChangesReport is the statement of changes in equity.
type EquityChangesReport struct {
	Date            time.Time
	OpeningCapital  decimal.Decimal
	RetainedEarning decimal.Decimal
	OpeningEquity   decimal.Decimal
	PeriodIncome    decimal.Decimal
	ClosingEquity   decimal.Decimal
}

// EquityChanges rolls opening equity forward by the applied period income.
func EquityChanges(src Source) EquityChangesReport {
	chart := src.Chart()
	read := func(id model.AccountID) decimal.Decimal {
		a, ok := chart.Get(id)
		if !ok {
			return decimal.Zero
		}
		return natural(src, a)
	}

	r := EquityChangesReport{Date: src.Date()}
	r.OpeningCapital = read(model.AccountCapital)
	r.RetainedEarning = read(model.AccountRetainedEarnings)
	r.OpeningEquity = r.OpeningCapital.Add(r.RetainedEarning)
	r.PeriodIncome = read(model.AccountPeriodIncome).Add(src.PeriodIncome())
	r.ClosingEquity = r.OpeningEquity.Add(r.PeriodIncome)
	return r
}

func (r EquityChangesReport) Text() string {
	var w writer
	w.header("ESTADO DE CAMBIOS EN EL CAPITAL CONTABLE", r.Date)
	w.amount("Capital social inicial", r.OpeningCapital)
	if !r.RetainedEarning.IsZero() {
		w.amount("Utilidades retenidas", r.RetainedEarning)
	}
	w.amount("Capital contable inicial", r.OpeningEquity)
	w.line("")
	w.amount("Utilidad del ejercicio", r.PeriodIncome)
	w.line("")
	w.amount("Capital contable final", r.ClosingEquity)
	return trimNewline(w.String())
}
