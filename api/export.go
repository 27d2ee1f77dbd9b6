package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bfx/database"
	"bfx/finance"
	"bfx/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler exportações em planilha e CSV
type ExportHandler struct {
	rules finance.Rules
}

// NewExportHandler cria o handler de exportação
func NewExportHandler(rules finance.Rules) *ExportHandler {
	return &ExportHandler{rules: rules}
}

// FinanceXLSX planilha com DRE e fluxo de caixa
// @Summary Exportar relatório financeiro
// @Tags Exportação
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param mes query string false "Mês (AAAA-MM), padrão mês atual"
// @Success 200 {file} file "Planilha XLSX"
// @Failure 400 {object} Response
// @Router /api/financeiro/export [get]
func (h *ExportHandler) FinanceXLSX(c *gin.Context) {
	month, ok := monthParam(c, c.Query("mes"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	fin := service.NewFinanceService(database.DB, h.rules)
	d, err := fin.DRE(ctx, month)
	if err != nil {
		serverError(c, err, "Falha ao calcular DRE")
		return
	}
	flow, err := fin.CashFlow(ctx, month)
	if err != nil {
		serverError(c, err, "Falha ao projetar fluxo de caixa")
		return
	}

	f, err := service.BuildFinanceWorkbook(d, flow)
	if err != nil {
		serverError(c, err, "Falha ao gerar planilha")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		serverError(c, err, "Falha ao gerar planilha")
		return
	}

	filename := fmt.Sprintf("financeiro_%s.xlsx", d.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// CommissionCSV comissões venda a venda em CSV
// @Summary Exportar comissões
// @Tags Exportação
// @Produce text/csv
// @Security BearerAuth
// @Param seller_id query int false "Vendedor"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD), inclusiva"
// @Success 200 {file} file "Arquivo CSV"
// @Failure 400 {object} Response
// @Router /api/comissoes/relatorio [get]
func (h *ExportHandler) CommissionCSV(c *gin.Context) {
	f, ok := commissionFilter(c)
	if !ok {
		return
	}
	lines, err := service.NewFinanceService(database.DB, h.rules).CommissionDetails(c.Request.Context(), f)
	if err != nil {
		serverError(c, err, "Falha ao calcular comissões")
		return
	}

	records := [][]string{{"Data", "Vendedor", "Cliente", "Produto", "Valor venda", "Lucro líquido", "% Comissão", "Comissão"}}
	var total float64
	for _, l := range lines {
		records = append(records, []string{
			l.Date.Format("02/01/2006"),
			l.Seller,
			l.Customer,
			l.Product,
			decimalBR(l.SaleValue),
			decimalBR(l.NetProfit),
			decimalBR(l.Pct),
			decimalBR(l.Commission),
		})
		total += l.Commission
	}
	records = append(records, []string{"Total", "", "", "", "", "", "", decimalBR(finance.Round2(total))})
	writeCSV(c, "comissoes.csv", records)
}

// SalesCSV relatório de vendas do período em CSV
// @Summary Exportar relatório de vendas
// @Tags Exportação
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "Data inicial (AAAA-MM-DD), padrão início do mês"
// @Param to query string false "Data final (AAAA-MM-DD), inclusiva"
// @Param empresa query string false "Empresa conveniada do cliente (all para todas)"
// @Success 200 {file} file "Arquivo CSV"
// @Failure 400 {object} Response
// @Router /api/relatorios/vendas [get]
func (h *ExportHandler) SalesCSV(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	f := service.SalesReportFilter{From: from, To: to, Company: c.Query("empresa")}
	lines, err := service.NewSaleService(database.DB, h.rules).SalesReport(c.Request.Context(), f, time.Now())
	if err != nil {
		serverError(c, err, "Falha ao gerar relatório de vendas")
		return
	}

	records := [][]string{{"Data", "Vendedor", "Empresa", "Produto", "Valor", "Frete", "Parcelas"}}
	for _, l := range lines {
		records = append(records, []string{
			l.Date.Format("02/01/2006"),
			l.Seller,
			l.Company,
			l.Product,
			decimalBR(l.SaleValue),
			decimalBR(l.FreightValue),
			strconv.Itoa(l.Installments),
		})
	}
	writeCSV(c, "relatorio_vendas.csv", records)
}

// AnticipationCSV recebíveis selecionados para a financeira
// @Summary Exportar relatório de antecipação
// @Description Vendas escolhidas com total geral e resumo por empresa conveniada
// @Tags Exportação
// @Produce text/csv
// @Security BearerAuth
// @Param ids query string true "IDs das vendas separados por vírgula"
// @Success 200 {file} file "Arquivo CSV"
// @Failure 400 {object} Response
// @Router /api/relatorios/antecipacao [get]
func (h *ExportHandler) AnticipationCSV(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		BadRequest(c, "Nenhum ID fornecido")
		return
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			BadRequest(c, "ID de venda inválido")
			return
		}
		ids = append(ids, uint(id))
	}

	report, err := service.NewSaleService(database.DB, h.rules).AnticipationReport(c.Request.Context(), ids)
	if err != nil {
		serverError(c, err, "Falha ao gerar relatório de antecipação")
		return
	}

	records := [][]string{{"Nome do Cliente", "Documento (CPF/CNPJ)", "Empresa Conveniada", "Produto",
		"Valor Total", "Parcelas", "Valor da Parcela", "Data da Venda"}}
	for _, l := range report.Lines {
		records = append(records, []string{
			l.Customer,
			l.Document,
			l.Company,
			l.Product,
			decimalBR(l.Total),
			strconv.Itoa(l.Installments),
			decimalBR(l.InstallmentValue),
			l.Date.Format("02/01/2006"),
		})
	}
	records = append(records,
		[]string{},
		[]string{"TOTAL GERAL", "", "", "", decimalBR(finance.Round2(report.Total)), "", "", ""},
		[]string{},
		[]string{"RESUMO POR EMPRESA CONVENIADA"},
		[]string{"Empresa", "Valor Total"},
	)
	for _, t := range report.Companies {
		records = append(records, []string{t.Company, decimalBR(finance.Round2(t.Total))})
	}
	writeCSV(c, fmt.Sprintf("relatorio-financeira-%s.csv", time.Now().Format("20060102-150405")), records)
}

// writeCSV responde o arquivo no formato do Excel brasileiro (BOM e ponto e vírgula)
func writeCSV(c *gin.Context, filename string, records [][]string) {
	buf := new(bytes.Buffer)
	// BOM para o Excel abrir em UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	writer.Comma = ';'
	if err := writer.WriteAll(records); err != nil {
		InternalError(c, "Falha ao gerar CSV")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// decimalBR número com vírgula decimal, sem separador de milhar
func decimalBR(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
