package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bfx/database"
	"bfx/finance"
	"bfx/logger"
	"bfx/models"
	"bfx/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerHandler clientes e margem consignável
type CustomerHandler struct {
	rules finance.Rules
}

// NewCustomerHandler cria o handler de clientes
func NewCustomerHandler(rules finance.Rules) *CustomerHandler {
	return &CustomerHandler{rules: rules}
}

// CustomerRequest cadastro/alteração de cliente
type CustomerRequest struct {
	Name             string   `json:"name" binding:"required,max=150"`
	Kind             string   `json:"kind" binding:"omitempty,oneof=PF PJ"`
	CPF              string   `json:"cpf" binding:"max=14"`
	CNPJ             string   `json:"cnpj" binding:"max=18"`
	Income           *float64 `json:"income" binding:"omitempty,gte=0"`
	Company          string   `json:"company" binding:"max=150"`
	Phone            string   `json:"phone" binding:"max=20"`
	CEP              string   `json:"cep" binding:"max=9"`
	Address          string   `json:"address" binding:"max=255"`
	Registration     string   `json:"registration" binding:"max=50"`
	PartnerCompanyID *uint    `json:"partner_company_id"`
}

// limitError corpo de erro da rota de limite (fora do envelope padrão)
type limitError struct {
	Error string `json:"error"`
}

func (r CustomerRequest) apply(m *models.Customer) {
	m.Name = strings.TrimSpace(r.Name)
	m.Kind = r.Kind
	if m.Kind == "" {
		m.Kind = "PF"
	}
	m.CPF = r.CPF
	m.CNPJ = r.CNPJ
	m.Income = r.Income
	m.Company = r.Company
	m.Phone = r.Phone
	m.CEP = r.CEP
	m.Address = r.Address
	m.Registration = r.Registration
	m.PartnerCompanyID = r.PartnerCompanyID
}

// List lista clientes com busca por nome
// @Summary Listar clientes
// @Tags Clientes
// @Produce json
// @Security BearerAuth
// @Param q query string false "Busca por nome"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Customer}}
// @Router /api/clientes [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Customer{})
	if q := c.Query("q"); strings.TrimSpace(q) != "" {
		query = query.Where("LOWER(name) LIKE ?", likeSearch(q))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		serverError(c, err, "Falha ao listar clientes")
		return
	}
	var list []models.Customer
	if err := query.Order("name ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		serverError(c, err, "Falha ao listar clientes")
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Create cadastra um cliente
// @Summary Cadastrar cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CustomerRequest true "Cliente"
// @Success 200 {object} Response{data=models.Customer}
// @Failure 400 {object} Response
// @Router /api/clientes [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}
	var customer models.Customer
	req.apply(&customer)
	if err := database.DB.Create(&customer).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar cliente")
		return
	}
	SuccessWithMessage(c, "Cliente cadastrado", customer)
}

// Get detalhe do cliente
// @Summary Detalhe do cliente
// @Tags Clientes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} Response{data=models.Customer}
// @Failure 404 {object} Response
// @Router /api/clientes/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	var customer models.Customer
	err := database.DB.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Cliente não encontrado")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar cliente")
		return
	}
	Success(c, customer)
}

// Update altera o cliente
// @Summary Alterar cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Param request body CustomerRequest true "Cliente"
// @Success 200 {object} Response{data=models.Customer}
// @Failure 404 {object} Response
// @Router /api/clientes/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	var customer models.Customer
	err := database.DB.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Cliente não encontrado")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar cliente")
		return
	}
	req.apply(&customer)
	if err := database.DB.Save(&customer).Error; err != nil {
		serverError(c, err, "Falha ao alterar cliente")
		return
	}
	SuccessWithMessage(c, "Cliente alterado", customer)
}

// Limit margem consignável do cliente
// @Summary Limite do cliente
// @Description Resposta sem o envelope padrão: {nome, renda, margemTotal, comprometimentoAtual, margemDisponivel, tetoParcelaMax}
// @Tags Clientes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} finance.CreditLimit
// @Failure 404 {object} limitError "Cliente não encontrado"
// @Failure 500 {object} limitError "Erro ao consultar limite"
// @Router /api/clientes/{id}/limite [get]
func (h *CustomerHandler) Limit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, limitError{Error: "Cliente não encontrado"})
		return
	}

	limit, err := service.NewFinanceService(database.DB, h.rules).Limit(c.Request.Context(), id)
	if errors.Is(err, service.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, limitError{Error: "Cliente não encontrado"})
		return
	}
	if err != nil {
		logger.L().Error("falha ao consultar limite", zap.Uint("cliente_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, limitError{Error: "Erro ao consultar limite"})
		return
	}
	c.JSON(http.StatusOK, limit)
}

// Credit análise consultiva de uma nova parcela
// @Summary Checar crédito
// @Description Estourar o limite não é erro: ok=false indica alerta
// @Tags Clientes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Param parcela query number true "Valor da nova parcela"
// @Success 200 {object} Response{data=finance.CreditCheck}
// @Failure 400 {object} Response
// @Router /api/clientes/{id}/credito [get]
func (h *CustomerHandler) Credit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	installment, err := strconv.ParseFloat(c.Query("parcela"), 64)
	if err != nil || installment < 0 {
		BadRequest(c, "Valor da parcela inválido")
		return
	}

	check, err := service.NewFinanceService(database.DB, h.rules).CheckCredit(c.Request.Context(), id, installment)
	if err != nil {
		serverError(c, err, "Falha ao checar crédito")
		return
	}
	Success(c, check)
}

// SalesProfile perfil de compras do cliente
// @Summary Perfil de vendas do cliente
// @Description Última compra, ticket médio, total gasto e capacidade de compra (30% da renda ou 1,2 × ticket médio)
// @Tags Clientes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do cliente"
// @Success 200 {object} Response{data=service.CustomerProfile}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/clientes/{id}/perfil-vendas [get]
func (h *CustomerHandler) SalesProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	profile, err := service.NewSaleService(database.DB, h.rules).CustomerProfile(c.Request.Context(), id)
	if errors.Is(err, service.ErrCustomerNotFound) {
		NotFound(c, "Cliente não encontrado")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao montar perfil de vendas")
		return
	}
	Success(c, profile)
}
