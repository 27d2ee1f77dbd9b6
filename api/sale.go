package api

import (
	"errors"
	"strconv"
	"time"

	"bfx/database"
	"bfx/finance"
	"bfx/logger"
	"bfx/middleware"
	"bfx/models"
	"bfx/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// SaleHandler vendas (PDV)
type SaleHandler struct {
	rules finance.Rules
}

// NewSaleHandler cria o handler de vendas
func NewSaleHandler(rules finance.Rules) *SaleHandler {
	return &SaleHandler{rules: rules}
}

func (h *SaleHandler) sales() *service.SaleService {
	return service.NewSaleService(database.DB, h.rules)
}

// CreateSaleRequest venda rápida
type CreateSaleRequest struct {
	SaleDate      string  `json:"sale_date" example:"2026-03-15"` // vazio usa hoje
	SellerID      *uint   `json:"seller_id"`                      // ignorado para vendedor
	CustomerID    *uint   `json:"customer_id"`
	ProductName   string  `json:"product_name" binding:"required"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price" binding:"required,gt=0"`
	UnitCost      float64 `json:"unit_cost" binding:"gte=0"`
	Freight       float64 `json:"freight" binding:"gte=0"`
	ShippingCost  float64 `json:"shipping_cost" binding:"gte=0"`
	Installments  int     `json:"installments" binding:"gte=0"`
	Anticipated   bool    `json:"anticipated"`
	HasInvoice    bool    `json:"has_invoice"`
	InvoiceTaxPct float64 `json:"invoice_tax_pct" binding:"gte=0"`
}

// UpdateSaleRequest campos alteráveis; ausentes mantêm o valor
type UpdateSaleRequest struct {
	SaleDate         *string  `json:"sale_date"`
	SellerID         *uint    `json:"seller_id"`
	ProductName      *string  `json:"product_name"`
	SaleValue        *float64 `json:"sale_value" binding:"omitempty,gt=0"`
	FreightValue     *float64 `json:"freight_value" binding:"omitempty,gte=0"`
	ShippingCost     *float64 `json:"shipping_cost" binding:"omitempty,gte=0"`
	InstallmentCount *int     `json:"installment_count" binding:"omitempty,gte=1"`
}

// CreateSaleResponse venda criada e a análise de crédito do cliente
type CreateSaleResponse struct {
	Sale   *models.Sale         `json:"sale"`
	Credit *finance.CreditCheck `json:"credit,omitempty"`
}

// ReceiptResponse dados públicos do recibo
type ReceiptResponse struct {
	Sale     *models.Sale `json:"sale"`
	Customer string       `json:"customer"`
	Total    float64      `json:"total"`
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// parseRange lê from/to (YYYY-MM-DD) da query
func parseRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if v := c.Query("from"); v != "" {
		t, err := parseDay(v)
		if err != nil {
			BadRequest(c, "Data inicial inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseDay(v)
		if err != nil {
			BadRequest(c, "Data final inválida, use AAAA-MM-DD")
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}

func saleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSaleNotFound):
		NotFound(c, "Venda não encontrada")
	case errors.Is(err, service.ErrSellerNotFound):
		BadRequest(c, "Vendedor não encontrado")
	case errors.Is(err, service.ErrCustomerNotFound):
		BadRequest(c, "Cliente não encontrado")
	case errors.Is(err, finance.ErrInvalidQuantity), errors.Is(err, finance.ErrInvalidPrice):
		BadRequest(c, err.Error())
	default:
		serverError(c, err, fallback)
	}
}

// List lista vendas; vendedor vê apenas as próprias
// @Summary Listar vendas
// @Tags Vendas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Param seller_id query int false "Vendedor (somente admin)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Sale}}
// @Router /api/vendas [get]
func (h *SaleHandler) List(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	page, pageSize := pagination(c)
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	f := service.SaleFilter{From: from, To: to, Limit: pageSize, Offset: (page - 1) * pageSize}
	if id.Role.Can(models.CapActForSellers) {
		if v := c.Query("seller_id"); v != "" {
			sellerID, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				BadRequest(c, "seller_id inválido")
				return
			}
			seller := uint(sellerID)
			f.SellerID = &seller
		}
	} else {
		f.SellerID = &id.UserID
	}

	list, total, err := h.sales().List(c.Request.Context(), f)
	if err != nil {
		serverError(c, err, "Falha ao listar vendas")
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Calcula parcela e lucro; quando há cliente devolve também a análise de crédito (consultiva)
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSaleRequest true "Venda"
// @Success 200 {object} Response{data=CreateSaleResponse}
// @Failure 400 {object} Response
// @Router /api/vendas [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	saleDate := time.Now().UTC()
	if req.SaleDate != "" {
		t, err := parseDay(req.SaleDate)
		if err != nil {
			BadRequest(c, "Data da venda inválida, use AAAA-MM-DD")
			return
		}
		saleDate = t
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	id := middleware.CurrentIdentity(c)
	sellerID := req.SellerID
	if !id.Role.Can(models.CapActForSellers) {
		sellerID = &id.UserID
	}

	ctx := c.Request.Context()
	sale, err := h.sales().Create(ctx, service.SaleEntry{
		SaleDate:      saleDate,
		SellerID:      sellerID,
		CustomerID:    req.CustomerID,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		UnitCost:      req.UnitCost,
		Freight:       req.Freight,
		ShippingCost:  req.ShippingCost,
		Installments:  req.Installments,
		Anticipated:   req.Anticipated,
		HasInvoice:    req.HasInvoice,
		InvoiceTaxPct: req.InvoiceTaxPct,
	})
	if err != nil {
		saleError(c, err, "Falha ao registrar venda")
		return
	}

	resp := CreateSaleResponse{Sale: sale}
	if sale.CustomerID != nil {
		// a parcela da venda entra como nova, mesmo em venda retroativa
		check, err := service.NewFinanceService(database.DB, h.rules).CheckSale(ctx, sale)
		if err != nil {
			logger.L().Warn("falha na análise de crédito da venda",
				zap.Uint("venda_id", sale.ID), zap.Uint("cliente_id", *sale.CustomerID), zap.Error(err))
		} else {
			resp.Credit = &check
		}
	}
	SuccessWithMessage(c, "Venda registrada", resp)
}

// Get detalhe de uma venda
// @Summary Detalhe da venda
// @Tags Vendas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da venda"
// @Success 200 {object} Response{data=models.Sale}
// @Failure 404 {object} Response
// @Router /api/vendas/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	sale, err := h.sales().Get(c.Request.Context(), saleID)
	if err != nil {
		saleError(c, err, "Falha ao buscar venda")
		return
	}

	id := middleware.CurrentIdentity(c)
	if !id.Role.Can(models.CapActForSellers) && (sale.SellerID == nil || *sale.SellerID != id.UserID) {
		NotFound(c, "Venda não encontrada")
		return
	}
	Success(c, sale)
}

// Update altera uma venda e recalcula os valores
// @Summary Alterar venda
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da venda"
// @Param request body UpdateSaleRequest true "Campos"
// @Success 200 {object} Response{data=models.Sale}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/vendas/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	patch := service.SalePatch{
		SellerID:         req.SellerID,
		ProductName:      req.ProductName,
		SaleValue:        req.SaleValue,
		FreightValue:     req.FreightValue,
		ShippingCost:     req.ShippingCost,
		InstallmentCount: req.InstallmentCount,
	}
	if req.SaleDate != nil {
		t, err := parseDay(*req.SaleDate)
		if err != nil {
			BadRequest(c, "Data da venda inválida, use AAAA-MM-DD")
			return
		}
		patch.SaleDate = &t
	}

	sale, err := h.sales().Update(c.Request.Context(), saleID, patch)
	if err != nil {
		saleError(c, err, "Falha ao alterar venda")
		return
	}
	SuccessWithMessage(c, "Venda alterada", sale)
}

// Delete remove uma venda
// @Summary Excluir venda
// @Tags Vendas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da venda"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/vendas/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	if err := h.sales().Delete(c.Request.Context(), saleID); err != nil {
		saleError(c, err, "Falha ao excluir venda")
		return
	}
	SuccessWithMessage(c, "Venda excluída", nil)
}

// Receipt recibo público da venda pelo token uuid
// @Summary Recibo da venda
// @Tags Vendas
// @Produce json
// @Param id query string true "UUID da venda"
// @Success 200 {object} Response{data=ReceiptResponse}
// @Failure 404 {object} Response
// @Router /api/recibo [get]
func (h *SaleHandler) Receipt(c *gin.Context) {
	token := c.Query("id")
	if token == "" {
		BadRequest(c, "Informe o id do recibo")
		return
	}

	var sale models.Sale
	err := database.DB.Where("uuid = ?", token).First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Recibo não encontrado")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar recibo")
		return
	}

	resp := ReceiptResponse{Sale: &sale, Total: finance.Round2(sale.GrossValue())}
	if sale.CustomerID != nil {
		var customer models.Customer
		if err := database.DB.Select("id", "name").First(&customer, *sale.CustomerID).Error; err == nil {
			resp.Customer = customer.Name
		}
	}
	Success(c, resp)
}

// ImportBatch importação em lote de vendas de planilha
// @Summary Importar vendas
// @Description Cria os clientes ausentes pelo nome; parcela = (valor + frete) / parcelas. Linhas sem cliente são ignoradas.
// @Tags Vendas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []service.ImportRow true "Linhas da planilha"
// @Success 200 {object} Response{data=service.ImportResult}
// @Failure 400 {object} Response
// @Router /api/importacao/batch [post]
func (h *SaleHandler) ImportBatch(c *gin.Context) {
	var rows []service.ImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		BadRequest(c, "Dados inválidos")
		return
	}

	result, err := h.sales().ImportBatch(c.Request.Context(), rows)
	switch {
	case errors.Is(err, service.ErrEmptyImport), errors.Is(err, service.ErrInvalidImportRow):
		BadRequest(c, err.Error())
		return
	case err != nil:
		serverError(c, err, "Falha na importação")
		return
	}
	SuccessWithMessage(c, "Importação concluída", result)
}
