package finance

import (
	"time"

	"bfx/models"
)

// Installment parcela prevista de uma venda
type Installment struct {
	DueMonth time.Time `json:"vencimento"`
	Amount   float64   `json:"valor"`
}

// CashFlowRow linha mensal da projeção de caixa
type CashFlowRow struct {
	Month   string  `json:"mes"`   // MM/YYYY
	Key     string  `json:"chave"` // YYYY-MM
	Inflow  float64 `json:"entradas"`
	Outflow float64 `json:"saidas"`
	Balance float64 `json:"saldo"`
}

// FirstDueMonth mês da primeira parcela pela regra de corte:
// venda até o dia de corte vence no mês seguinte, depois dele dois meses adiante.
func FirstDueMonth(saleDate time.Time, cutoffDay int) time.Time {
	offset := 1
	if saleDate.UTC().Day() > cutoffDay {
		offset = 2
	}
	return AddMonths(saleDate, offset)
}

// InstallmentWindow meses [start, end) em que as parcelas da venda estão ativas
func InstallmentWindow(s models.Sale, cutoffDay int) (time.Time, time.Time) {
	start := FirstDueMonth(s.SaleDate, cutoffDay)
	n := s.InstallmentCount
	if n < 0 {
		n = 0
	}
	return start, start.AddDate(0, n, 0)
}

// ScheduleInstallments recebimentos previstos de uma venda.
// Venda antecipada entra inteira no próprio mês da venda.
func ScheduleInstallments(s models.Sale, cutoffDay int) []Installment {
	if s.InstallmentCount <= 0 {
		return nil
	}
	if s.Anticipated {
		return []Installment{{
			DueMonth: MonthStart(s.SaleDate),
			Amount:   s.InstallmentValue * float64(s.InstallmentCount),
		}}
	}

	start := FirstDueMonth(s.SaleDate, cutoffDay)
	out := make([]Installment, 0, s.InstallmentCount)
	for p := 0; p < s.InstallmentCount; p++ {
		out = append(out, Installment{
			DueMonth: start.AddDate(0, p, 0),
			Amount:   s.InstallmentValue,
		})
	}
	return out
}

// ProjectCashFlow projeta entradas e saídas para rules.ProjectionMonths meses a partir de ref
func ProjectCashFlow(ref time.Time, sales []models.Sale, expenses []models.Expense, rules Rules) []CashFlowRow {
	months := rules.ProjectionMonths
	if months <= 0 {
		months = DefaultRules().ProjectionMonths
	}

	rows := make([]CashFlowRow, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := AddMonths(ref, i)
		rows[i] = CashFlowRow{Month: MonthLabel(m), Key: MonthKey(m)}
		index[rows[i].Key] = i
	}

	for _, s := range sales {
		for _, inst := range ScheduleInstallments(s, rules.BillingCutoffDay) {
			if i, ok := index[MonthKey(inst.DueMonth)]; ok {
				rows[i].Inflow += inst.Amount
			}
		}
	}

	for _, e := range expenses {
		if i, ok := index[MonthKey(e.ExpenseDate)]; ok {
			rows[i].Outflow += e.Amount
		}
	}

	for i := range rows {
		rows[i].Balance = rows[i].Inflow - rows[i].Outflow
	}
	return rows
}
