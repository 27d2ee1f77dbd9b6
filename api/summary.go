package api

import (
	"time"

	"bfx/database"
	"bfx/finance"
	"bfx/middleware"
	"bfx/models"

	"github.com/gin-gonic/gin"
)

// SummaryHandler resumo do mês para o painel
type SummaryHandler struct {
	rules finance.Rules
}

// NewSummaryHandler cria o handler do painel
func NewSummaryHandler(rules finance.Rules) *SummaryHandler {
	return &SummaryHandler{rules: rules}
}

// SellerSummaryResponse desempenho do vendedor no mês
type SellerSummaryResponse struct {
	Month         string  `json:"mes"`
	SalesCount    int     `json:"quantidadeVendas"`
	Revenue       float64 `json:"faturamento"` // venda + frete
	NetProfit     float64 `json:"lucroLiquido"`
	Commission    float64 `json:"comissao"` // lucro líquido × percentual
	MonthlyTarget float64 `json:"meta"`
	TargetPct     float64 `json:"percentualMeta"` // faturamento / meta × 100
}

// GetSellerSummary resumo do usuário logado no mês
// @Summary Resumo do vendedor
// @Description Quantidade de vendas, faturamento, comissão e progresso da meta do usuário logado
// @Tags Painel
// @Produce json
// @Security BearerAuth
// @Param mes query string false "Mês (AAAA-MM), padrão mês atual"
// @Success 200 {object} Response{data=SellerSummaryResponse}
// @Failure 400 {object} Response
// @Router /api/resumo [get]
func (h *SummaryHandler) GetSellerSummary(c *gin.Context) {
	month := finance.MonthStart(time.Now())
	if v := c.Query("mes"); v != "" {
		m, err := finance.ParseMonth(v)
		if err != nil {
			BadRequest(c, "Mês inválido, use AAAA-MM")
			return
		}
		month = m
	}
	start, end := finance.MonthRange(month)
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Usuário não encontrado")
		return
	}

	var sales []models.Sale
	if err := database.DB.Where("seller_id = ? AND sale_date >= ? AND sale_date < ?", userID, start, end).
		Find(&sales).Error; err != nil {
		serverError(c, err, "Falha ao calcular resumo")
		return
	}

	resp := SellerSummaryResponse{
		Month:         finance.MonthKey(month),
		SalesCount:    len(sales),
		MonthlyTarget: user.MonthlyTarget,
	}
	for _, s := range sales {
		resp.Revenue += s.GrossValue()
		resp.NetProfit += s.NetProfit
	}
	resp.Commission = finance.Round2(resp.NetProfit * user.CommissionPct / 100)
	resp.Revenue = finance.Round2(resp.Revenue)
	resp.NetProfit = finance.Round2(resp.NetProfit)
	if user.MonthlyTarget > 0 {
		resp.TargetPct = finance.Round2(resp.Revenue / user.MonthlyTarget * 100)
	}
	Success(c, resp)
}
