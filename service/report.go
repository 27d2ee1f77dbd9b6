package service

import (
	"fmt"

	"bfx/finance"

	"github.com/xuri/excelize/v2"
)

const (
	DRESheet      = "DRE"
	CashFlowSheet = "Fluxo de Caixa"
)

type reportStyles struct {
	header  int
	data    int
	money   int
	summary int
}

var cellBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

func newReportStyles(f *excelize.File) (reportStyles, error) {
	var st reportStyles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    cellBorder,
	})
	if err != nil {
		return st, err
	}

	st.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    cellBorder,
	})
	if err != nil {
		return st, err
	}

	moneyFmt := `"R$" #,##0.00`
	st.money, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       cellBorder,
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return st, err
	}

	st.summary, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       cellBorder,
		CustomNumFmt: &moneyFmt,
	})
	return st, err
}

// BuildFinanceWorkbook planilha com o DRE do mês e a projeção de caixa
func BuildFinanceWorkbook(d finance.DRE, flow []finance.CashFlowRow) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newReportStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", DRESheet); err != nil {
		f.Close()
		return nil, err
	}
	writeDRESheet(f, st, d)

	if _, err := f.NewSheet(CashFlowSheet); err != nil {
		f.Close()
		return nil, err
	}
	writeCashFlowSheet(f, st, flow)

	return f, nil
}

func writeDRESheet(f *excelize.File, st reportStyles, d finance.DRE) {
	sheet := DRESheet
	f.SetColWidth(sheet, "A", "A", 34)
	f.SetColWidth(sheet, "B", "B", 18)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("DRE %s", d.Month))
	f.SetCellValue(sheet, "B1", "Valor")
	f.SetCellStyle(sheet, "A1", "B1", st.header)

	lines := []struct {
		label string
		value float64
	}{
		{"Receita bruta", d.GrossRevenue},
		{"(-) CMV", d.Detail.COGS},
		{"(-) Comissões", d.Detail.Commissions},
		{"(-) Despesas variáveis", d.Detail.VariableExpenses},
		{"(-) Frete real", d.Detail.RealFreight},
		{"Custos variáveis", d.VariableCostTotal},
		{"Margem de contribuição", d.Margin},
		{"(-) Despesas fixas", d.FixedExpenses},
		{"Ponto de equilíbrio", d.BreakEvenRevenue},
		{"Meta global", d.GlobalTarget},
	}
	row := 2
	for _, l := range lines {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), l.value)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.data)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), st.money)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Lucro líquido")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.NetProfit)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), st.summary)

	// comissões por vendedor
	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Vendedor")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Receita")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "%")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Comissão")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), st.header)
	f.SetColWidth(sheet, "C", "C", 8)
	f.SetColWidth(sheet, "D", "D", 18)
	for _, s := range d.Sellers {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.Seller)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Revenue)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.Pct)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.Commission)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.data)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), st.money)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), st.data)
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.money)
	}
}

func writeCashFlowSheet(f *excelize.File, st reportStyles, flow []finance.CashFlowRow) {
	sheet := CashFlowSheet
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "D", 18)

	headers := []string{"Mês", "Entradas", "Saídas", "Saldo"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, st.header)
	}

	var in, out float64
	for i, r := range flow {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Month)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Inflow)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Outflow)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Balance)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.data)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), st.money)
		in += r.Inflow
		out += r.Outflow
	}

	summaryRow := len(flow) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), in)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), out)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), in-out)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow), st.summary)
}
