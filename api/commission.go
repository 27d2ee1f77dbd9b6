package api

import (
	"strconv"

	"bfx/database"
	"bfx/finance"
	"bfx/service"

	"github.com/gin-gonic/gin"
)

// CommissionHandler relatório de comissões
type CommissionHandler struct {
	rules finance.Rules
}

// NewCommissionHandler cria o handler de comissões
func NewCommissionHandler(rules finance.Rules) *CommissionHandler {
	return &CommissionHandler{rules: rules}
}

// commissionFilter lê seller_id, from e to da query
func commissionFilter(c *gin.Context) (service.CommissionFilter, bool) {
	var f service.CommissionFilter
	if v := c.Query("seller_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			BadRequest(c, "seller_id inválido")
			return f, false
		}
		seller := uint(id)
		f.SellerID = &seller
	}
	from, to, ok := parseRange(c)
	if !ok {
		return f, false
	}
	f.From, f.To = from, to
	return f, true
}

// List comissão total por vendedor
// @Summary Comissões por vendedor
// @Description Comissão = lucro líquido × percentual do vendedor / 100
// @Tags Comissões
// @Produce json
// @Security BearerAuth
// @Param seller_id query int false "Vendedor"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD), inclusiva"
// @Success 200 {object} Response{data=[]finance.CommissionTotal}
// @Router /api/comissoes [get]
func (h *CommissionHandler) List(c *gin.Context) {
	f, ok := commissionFilter(c)
	if !ok {
		return
	}
	totals, err := service.NewFinanceService(database.DB, h.rules).Commissions(c.Request.Context(), f)
	if err != nil {
		serverError(c, err, "Falha ao calcular comissões")
		return
	}
	Success(c, totals)
}

// Detail comissão venda a venda
// @Summary Comissões detalhadas
// @Tags Comissões
// @Produce json
// @Security BearerAuth
// @Param seller_id query int false "Vendedor"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD), inclusiva"
// @Success 200 {object} Response{data=[]finance.CommissionLine}
// @Router /api/comissoes/detalhe [get]
func (h *CommissionHandler) Detail(c *gin.Context) {
	f, ok := commissionFilter(c)
	if !ok {
		return
	}
	lines, err := service.NewFinanceService(database.DB, h.rules).CommissionDetails(c.Request.Context(), f)
	if err != nil {
		serverError(c, err, "Falha ao calcular comissões")
		return
	}
	Success(c, lines)
}
