package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/model"
	"github.com/libro-dev/libro/internal/money"
)

var keywordCategories = []struct {
	category model.CashFlowCategory
	words    []string
}{
	{model.CategoryOperating, []string{"venta", "compra", "gasto", "anticipo"}},
	{model.CategoryInvesting, []string{"equipo", "edificio", "terreno"}},
	{model.CategoryFinancing, []string{"capital", "préstamo", "dividendo"}},
}

// Classify returns the cash-flow bucket of a record. The category tagged at
// posting time wins; untagged records are matched by description keyword and
// default to operating.
func Classify(cf model.CashFlow) model.CashFlowCategory {
	if cf.Category != model.CategoryNone {
		return cf.Category
	}
	desc := strings.ToLower(cf.Description)
	if strings.Contains(desc, "asiento de apertura") {
		return model.CategoryOpening
	}
	for _, kc := range keywordCategories {
		for _, w := range kc.words {
			if strings.Contains(desc, w) {
				return kc.category
			}
		}
	}
	return model.CategoryOperating
}

// CashFlowReport is the statement of cash flows.
type CashFlowReport struct {
	Date        time.Time
	OpeningCash decimal.Decimal
	Operating   []model.CashFlow
	Investing   []model.CashFlow
	Financing   []model.CashFlow
	TotalOps    decimal.Decimal
	TotalInv    decimal.Decimal
	TotalFin    decimal.Decimal
	NetChange   decimal.Decimal
	ClosingCash decimal.Decimal
	// ActualCash is live Caja plus Bancos, each floored at zero.
	ActualCash decimal.Decimal
}

// Reconciled reports whether the computed closing cash matches ActualCash.
func (r CashFlowReport) Reconciled() bool {
	return r.ClosingCash.Equal(r.ActualCash)
}

// CashFlowStatement buckets every non-opening cash movement and reconciles
// the result against the live cash accounts. A mismatch is reported, not
// returned as an error.
func CashFlowStatement(src Source) CashFlowReport {
	r := CashFlowReport{
		Date:        src.Date(),
		OpeningCash: src.OpeningCash(),
		TotalOps:    decimal.Zero,
		TotalInv:    decimal.Zero,
		TotalFin:    decimal.Zero,
	}
	for _, cf := range src.CashFlows() {
		switch Classify(cf) {
		case model.CategoryOpening:
			continue
		case model.CategoryInvesting:
			r.Investing = append(r.Investing, cf)
			r.TotalInv = r.TotalInv.Add(cf.Amount)
		case model.CategoryFinancing:
			r.Financing = append(r.Financing, cf)
			r.TotalFin = r.TotalFin.Add(cf.Amount)
		default:
			r.Operating = append(r.Operating, cf)
			r.TotalOps = r.TotalOps.Add(cf.Amount)
		}
	}
	r.NetChange = r.TotalOps.Add(r.TotalInv).Add(r.TotalFin)
	r.ClosingCash = r.OpeningCash.Add(r.NetChange)

	cash := decimal.Max(balanceOf(src, model.AccountCash), decimal.Zero)
	bank := decimal.Max(balanceOf(src, model.AccountBank), decimal.Zero)
	r.ActualCash = cash.Add(bank)
	return r
}

func (r CashFlowReport) Text() string {
	var w writer
	w.header("ESTADO DE FLUJOS DE EFECTIVO", r.Date)
	w.amount("Saldo inicial de efectivo", r.OpeningCash)
	w.line("")

	w.line("FLUJOS DE EFECTIVO DE ACTIVIDADES DE OPERACIÓN")
	for _, cf := range r.Operating {
		w.amount(cf.Description, cf.Amount)
	}
	w.amount("Total flujos de operación", r.TotalOps)
	w.line("")

	if len(r.Investing) > 0 {
		w.line("FLUJOS DE EFECTIVO DE ACTIVIDADES DE INVERSIÓN")
		for _, cf := range r.Investing {
			w.amount(cf.Description, cf.Amount)
		}
		w.amount("Total flujos de inversión", r.TotalInv)
		w.line("")
	}
	if len(r.Financing) > 0 {
		w.line("FLUJOS DE EFECTIVO DE ACTIVIDADES DE FINANCIAMIENTO")
		for _, cf := range r.Financing {
			w.amount(cf.Description, cf.Amount)
		}
		w.amount("Total flujos de financiamiento", r.TotalFin)
		w.line("")
	}

	w.amount("Incremento neto de efectivo", r.NetChange)
	w.line("")
	w.amount("Saldo final de efectivo", r.ClosingCash)
	w.line("")
	if r.Reconciled() {
		w.WriteString("El saldo final de efectivo coincide con el saldo actual en Caja y Bancos.")
	} else {
		w.line("El saldo final de efectivo NO coincide con el saldo actual en Caja y Bancos (%s).", money.Dollars(r.ActualCash))
		w.WriteString("Diferencia: " + money.Dollars(r.ClosingCash.Sub(r.ActualCash).Abs()))
	}
	return w.String()
}
