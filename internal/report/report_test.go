package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/catalog"
	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/model"
)

var sessionDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func newSession(t *testing.T) (*ledger.Ledger, *catalog.Catalog) {
	t.Helper()
	chart := accounts.Default()
	l := ledger.New(chart, sessionDate)
	_, err := l.Open(ledger.DefaultOpening())
	require.NoError(t, err)
	return l, catalog.New(l, chart)
}

func busySession(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, c := newSession(t)
	ops := []catalog.Operation{
		{Kind: catalog.KindPurchaseCash, Amount: dec("1000"), Account: model.AccountBank},
		{Kind: catalog.KindPurchaseCredit, Amount: dec("2500")},
		{Kind: catalog.KindPurchaseSplit, Amount: dec("1000"), Percent: dec("40"), Account: model.AccountCash},
		{Kind: catalog.KindCustomerAdvance, Amount: dec("700"), Account: model.AccountCash},
		{Kind: catalog.KindStationeryPurchase, Amount: dec("120.50"), Account: model.AccountBank},
		{Kind: catalog.KindPrepaidRent, Amount: dec("6000"), Months: 6, Account: model.AccountBank},
		{Kind: catalog.KindSaleCash, Amount: dec("2000"), Cost: dec("1200"), Account: model.AccountBank},
		{Kind: catalog.KindSaleCredit, Amount: dec("1500"), Cost: dec("900")},
		{Kind: catalog.KindAdminExpense, Amount: dec("333.33"), Account: model.AccountCash},
		{Kind: catalog.KindSellingExpense, Amount: dec("80"), Account: model.AccountBank},
		{Kind: catalog.KindFinancialExpense, Amount: dec("45.10"), Account: model.AccountBank},
	}
	for _, op := range ops {
		_, err := c.Apply(op)
		require.NoError(t, err, op.Kind)
	}
	return l
}

func TestOpeningTrialBalance(t *testing.T) {
	l, _ := newSession(t)

	tb := TrialBalance(l)
	assertDec(t, "4980000", tb.TotalDebit)
	assertDec(t, "4980000", tb.TotalCredit)
	assert.True(t, tb.Balanced())

	names := make([]string, len(tb.Rows))
	for i, r := range tb.Rows {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"Bancos",
		"Caja",
		"Capital social",
		"Edificios",
		"Equipo de computo",
		"Equipo de reparto",
		"Mercancía",
		"Mobiliaria y equipo",
		"Muebles y enseres",
		"Terrenos",
	}, names)

	text := tb.Text()
	assert.True(t, strings.HasPrefix(text, "=== BALANZA DE COMPROBACIÓN ===\nFecha: 14/03/2025\n"))
	assert.Contains(t, text, "Caja                                 30,000.00            0.00\n")
	assert.Contains(t, text, "TOTAL                             4,980,000.00    4,980,000.00\n")
	assert.True(t, strings.HasSuffix(text, "\nLa balanza de comprobación está cuadrada."))
}

func TestTrialBalanceStaysBalanced(t *testing.T) {
	l := busySession(t)

	tb := TrialBalance(l)
	assert.True(t, tb.Balanced(), "debit %s credit %s", tb.TotalDebit, tb.TotalCredit)

	l.ApplyNetIncome(ComputeNetIncome(l))
	assert.True(t, TrialBalance(l).Balanced())
}

func TestTrialBalanceAbnormalSide(t *testing.T) {
	l, c := newSession(t)
	_, err := c.FinancialExpense(dec("40000"), model.AccountCash)
	require.NoError(t, err)

	tb := TrialBalance(l)
	var caja TrialBalanceRow
	for _, r := range tb.Rows {
		if r.Account == model.AccountCash {
			caja = r
		}
	}
	assertDec(t, "10000", caja.Credit)
	assert.True(t, caja.Abnormal)
	assert.True(t, tb.Balanced())
}

func TestNetIncomeAfterCashSale(t *testing.T) {
	l, c := newSession(t)
	_, err := c.SaleCash(dec("2000"), dec("1200"), model.AccountBank)
	require.NoError(t, err)

	is := IncomeStatement(l)
	assertDec(t, "2000", is.TotalIncome)
	assertDec(t, "1200", is.CostOfSales)
	assertDec(t, "800", is.GrossProfit)
	assertDec(t, "0", is.TotalExpenses)
	assertDec(t, "800", is.NetIncome)
	assertDec(t, "800", ComputeNetIncome(l))

	text := is.Text()
	assert.Contains(t, text, "UTILIDAD BRUTA                 $         800.00")
	assert.Contains(t, text, "UTILIDAD NETA                  $         800.00")
}

func TestNetIncomeIsTwoStep(t *testing.T) {
	l, c := newSession(t)
	_, err := c.SaleCash(dec("2000"), dec("1200"), model.AccountBank)
	require.NoError(t, err)

	before := BalanceSheet(l)
	assert.False(t, before.Balanced())
	assertDec(t, "800", before.Difference())
	assert.Contains(t, before.Text(), "El balance general NO está cuadrado. Diferencia: $800.00")

	l.ApplyNetIncome(ComputeNetIncome(l))
	after := BalanceSheet(l)
	assert.True(t, after.Balanced())
	assert.True(t, strings.HasSuffix(after.Text(), "El balance general está cuadrado."))

	eq := EquityChanges(l)
	assertDec(t, "4980000", eq.OpeningCapital)
	assertDec(t, "800", eq.PeriodIncome)
	assertDec(t, "4980800", eq.ClosingEquity)
}

func TestBalanceSheetShowsLoss(t *testing.T) {
	l, c := newSession(t)
	_, err := c.AdminExpense(dec("1000"), model.AccountBank)
	require.NoError(t, err)

	set := All(l, l)
	assertDec(t, "-1000", set.IncomeStatement.NetIncome)
	assert.True(t, set.BalanceSheet.Balanced())
	assertDec(t, "4979000", set.BalanceSheet.TotalEquity)
	assertDec(t, "4979000", set.EquityChanges.ClosingEquity)
	assert.Contains(t, set.BalanceSheet.Text(), "Utilidad del ejercicio         $      -1,000.00")
}

func TestAllBalancesAfterEveryTemplate(t *testing.T) {
	l := busySession(t)

	set := All(l, l)
	assert.True(t, set.TrialBalance.Balanced())
	assert.True(t, set.BalanceSheet.Balanced(), "difference %s", set.BalanceSheet.Difference())
	assert.True(t, set.CashFlow.Reconciled())
	assert.True(t, set.EquityChanges.PeriodIncome.Equal(set.IncomeStatement.NetIncome))
}

func TestReportsAreIdempotent(t *testing.T) {
	l := busySession(t)

	first, err := All(l, l).Text()
	require.NoError(t, err)
	second, err := All(l, l).Text()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, ComputeNetIncome(l).Equal(l.PeriodIncome()))
}

func TestJournalText(t *testing.T) {
	l, c := newSession(t)
	_, err := c.PurchaseCash(dec("1000"), model.AccountBank)
	require.NoError(t, err)

	j := Journal(l)
	require.Len(t, j.Entries, 2)
	assert.Equal(t, "Bancos", j.Entries[1].Credits[0].Name)

	text := j.Text()
	assert.True(t, strings.HasPrefix(text, "=== LIBRO DIARIO ===\n\nAsiento 1 - 14/03/2025 - Asiento de apertura\nCARGOS:\n  Caja: $30,000.00\n"))
	assert.Contains(t, text, "Asiento 2 - 14/03/2025 - Compra de mercancía en efectivo (pagado con Bancos)\nCARGOS:\n  Mercancía: $1,000.00\n  IVA acreditable: $160.00\nABONOS:\n  Bancos: $1,160.00")
}

func TestSchedules(t *testing.T) {
	l, c := newSession(t)
	_, err := c.PurchaseCash(dec("1000"), model.AccountBank)
	require.NoError(t, err)
	_, err = c.SaleCash(dec("2000"), dec("1200"), model.AccountBank)
	require.NoError(t, err)

	s := Schedules(l)
	require.NotEmpty(t, s.Accounts)
	assert.Equal(t, model.AccountCash, s.Accounts[0].Account)

	var bank Schedule
	for _, a := range s.Accounts {
		if a.Account == model.AccountBank {
			bank = a
		}
	}
	require.Len(t, bank.Debits, 2)
	require.Len(t, bank.Credits, 1)
	assertDec(t, "101160", bank.Balance)

	b, err := l.Balance(model.AccountBank)
	require.NoError(t, err)
	assert.True(t, b.Equal(bank.Balance))

	assert.Contains(t, s.Text(), "Cuenta: Bancos\nCARGOS:\n  14/03/2025 - Asiento de apertura: $100,000.00\n")
}

func TestCashFlowStatement(t *testing.T) {
	l, c := newSession(t)
	_, err := c.PurchaseCash(dec("1000"), model.AccountBank)
	require.NoError(t, err)
	_, err = c.PurchaseCredit(dec("500"))
	require.NoError(t, err)
	_, err = c.SaleCash(dec("2000"), dec("1200"), model.AccountCash)
	require.NoError(t, err)

	cf := CashFlowStatement(l)
	assertDec(t, "130000", cf.OpeningCash)
	require.Len(t, cf.Operating, 2)
	assert.Empty(t, cf.Investing)
	assert.Empty(t, cf.Financing)
	assertDec(t, "1160", cf.TotalOps)
	assertDec(t, "131160", cf.ClosingCash)
	assert.True(t, cf.Reconciled())

	text := cf.Text()
	assert.NotContains(t, text, "Asiento de apertura")
	assert.NotContains(t, text, "INVERSIÓN")
	assert.True(t, strings.HasSuffix(text, "El saldo final de efectivo coincide con el saldo actual en Caja y Bancos."))
}

func TestCashFlowClampsOverdrawnAccounts(t *testing.T) {
	l, c := newSession(t)
	_, err := c.FinancialExpense(dec("40000"), model.AccountCash)
	require.NoError(t, err)

	cf := CashFlowStatement(l)
	assertDec(t, "90000", cf.ClosingCash)
	assertDec(t, "100000", cf.ActualCash)
	assert.False(t, cf.Reconciled())
	assert.Contains(t, cf.Text(), "NO coincide con el saldo actual en Caja y Bancos ($100,000.00).\nDiferencia: $10,000.00")
}

func TestCashFlowUntaggedEntries(t *testing.T) {
	l, _ := newSession(t)
	_, err := l.Post(ledger.Draft{
		Description: "Adquisición de equipo de reparto",
		Debits:      []model.Line{{Account: model.AccountDeliveryEquipment, Amount: dec("5000")}},
		Credits:     []model.Line{{Account: model.AccountBank, Amount: dec("5000")}},
	})
	require.NoError(t, err)
	_, err = l.Post(ledger.Draft{
		Description: "Aportación de capital",
		Debits:      []model.Line{{Account: model.AccountBank, Amount: dec("2000")}},
		Credits:     []model.Line{{Account: model.AccountCapital, Amount: dec("2000")}},
	})
	require.NoError(t, err)

	cf := CashFlowStatement(l)
	require.Len(t, cf.Investing, 1)
	require.Len(t, cf.Financing, 1)
	assertDec(t, "-5000", cf.TotalInv)
	assertDec(t, "2000", cf.TotalFin)
	assertDec(t, "127000", cf.ClosingCash)
	assert.True(t, cf.Reconciled())

	text := cf.Text()
	assert.Contains(t, text, "FLUJOS DE EFECTIVO DE ACTIVIDADES DE INVERSIÓN")
	assert.Contains(t, text, "FLUJOS DE EFECTIVO DE ACTIVIDADES DE FINANCIAMIENTO")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		cf   model.CashFlow
		want model.CashFlowCategory
	}{
		{"tag wins", model.CashFlow{Description: "Compra de terreno", Category: model.CategoryInvesting}, model.CategoryInvesting},
		{"opening by text", model.CashFlow{Description: "ASIENTO DE APERTURA"}, model.CategoryOpening},
		{"sale", model.CashFlow{Description: "Venta de mercancía"}, model.CategoryOperating},
		{"operating keyword first", model.CashFlow{Description: "Compra de equipo"}, model.CategoryOperating},
		{"building", model.CashFlow{Description: "Edificio nuevo"}, model.CategoryInvesting},
		{"loan", model.CashFlow{Description: "Préstamo bancario"}, model.CategoryFinancing},
		{"dividend", model.CashFlow{Description: "Pago de dividendos"}, model.CategoryFinancing},
		{"default", model.CashFlow{Description: "Ajuste"}, model.CategoryOperating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.cf))
		})
	}
}

func TestSetText(t *testing.T) {
	l, _ := newSession(t)
	set := All(l, l)

	text, err := set.Text("balanza", "flujos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "=== BALANZA DE COMPROBACIÓN ==="))
	assert.Contains(t, text, "\n\n=== ESTADO DE FLUJOS DE EFECTIVO ===")
	assert.NotContains(t, text, "LIBRO DIARIO")

	_, err = set.Text("inventario")
	assert.Error(t, err)
}
