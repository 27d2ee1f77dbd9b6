package api

import (
	"errors"
	"strings"
	"time"

	"bfx/database"
	"bfx/finance"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler despesas (somente admin)
type ExpenseHandler struct{}

// NewExpenseHandler cria o handler de despesas
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest nova despesa
type CreateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date" binding:"required" example:"2026-03-10"`
	Description string  `json:"description" binding:"max=255" example:"Aluguel da loja"`
	Category    string  `json:"category" binding:"max=50" example:"Aluguel"`
	Type        string  `json:"type" example:"Fixa"` // Fixa ou Variável; vazio vira Variável
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"3500"`
}

// UpdateExpenseRequest alteração de despesa; campos vazios mantêm o valor
type UpdateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date" example:"2026-03-10"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount" binding:"omitempty,gt=0"`
}

// ExpenseListRequest filtros da listagem
type ExpenseListRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"20"`
	Type     string `form:"type" example:"Fixa"`
	Category string `form:"category" example:"Aluguel"`
	Month    string `form:"mes" example:"2026-03"`
}

// ExpenseStat total por categoria
type ExpenseStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

func parseExpenseType(s string) (models.ExpenseType, bool) {
	if s == "" {
		return models.ExpenseVariable, true
	}
	t := models.ExpenseType(s)
	return t, t.Valid()
}

// Create cadastra uma despesa
// @Summary Cadastrar despesa
// @Tags Despesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "Despesa"
// @Success 200 {object} Response{data=models.Expense}
// @Failure 400 {object} Response
// @Router /api/despesas [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}

	date, err := parseDay(req.ExpenseDate)
	if err != nil {
		BadRequest(c, "Data inválida, use AAAA-MM-DD")
		return
	}
	expenseType, ok := parseExpenseType(req.Type)
	if !ok {
		BadRequest(c, "Tipo deve ser Fixa ou Variável")
		return
	}

	expense := models.Expense{
		ExpenseDate: date,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Type:        expenseType,
		Amount:      req.Amount,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar despesa")
		return
	}
	SuccessWithMessage(c, "Despesa cadastrada", expense)
}

// List lista despesas
// @Summary Listar despesas
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Param type query string false "Fixa ou Variável"
// @Param category query string false "Categoria"
// @Param mes query string false "Mês (AAAA-MM)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}}
// @Router /api/despesas [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Expense{})
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Month != "" {
		month, err := finance.ParseMonth(req.Month)
		if err != nil {
			BadRequest(c, "Mês inválido, use AAAA-MM")
			return
		}
		start, end := finance.MonthRange(month)
		query = query.Where("expense_date >= ? AND expense_date < ?", start, end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		serverError(c, err, "Falha ao listar despesas")
		return
	}

	var expenses []models.Expense
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("expense_date DESC").Offset(offset).Limit(req.PageSize).Find(&expenses).Error; err != nil {
		serverError(c, err, "Falha ao listar despesas")
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     expenses,
	})
}

// Update altera uma despesa
// @Summary Alterar despesa
// @Tags Despesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da despesa"
// @Param request body UpdateExpenseRequest true "Campos"
// @Success 200 {object} Response{data=models.Expense}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/despesas/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}

	var expense models.Expense
	err := database.DB.First(&expense, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Despesa não encontrada")
		return
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar despesa")
		return
	}

	if req.ExpenseDate != "" {
		date, err := parseDay(req.ExpenseDate)
		if err != nil {
			BadRequest(c, "Data inválida, use AAAA-MM-DD")
			return
		}
		expense.ExpenseDate = date
	}
	if req.Type != "" {
		t, ok := parseExpenseType(req.Type)
		if !ok {
			BadRequest(c, "Tipo deve ser Fixa ou Variável")
			return
		}
		expense.Type = t
	}
	if req.Description != nil {
		expense.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		expense.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount > 0 {
		expense.Amount = req.Amount
	}

	if err := database.DB.Save(&expense).Error; err != nil {
		serverError(c, err, "Falha ao alterar despesa")
		return
	}
	SuccessWithMessage(c, "Despesa alterada", expense)
}

// Delete remove uma despesa
// @Summary Excluir despesa
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da despesa"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/despesas/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	res := database.DB.Delete(&models.Expense{}, id)
	if res.Error != nil {
		serverError(c, res.Error, "Falha ao excluir despesa")
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Despesa não encontrada")
		return
	}
	SuccessWithMessage(c, "Despesa excluída", nil)
}

// GetCategories categorias sugeridas
// @Summary Categorias de despesa
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]string}
// @Router /api/despesas/categorias [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, models.ExpenseCategories())
}

// GetStatistics totais por categoria no mês
// @Summary Despesas por categoria
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param mes query string false "Mês (AAAA-MM), padrão mês atual"
// @Success 200 {object} Response
// @Router /api/despesas/estatisticas [get]
func (h *ExpenseHandler) GetStatistics(c *gin.Context) {
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

	var stats []ExpenseStat
	err := database.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) as total, COUNT(*) as count").
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Group("category").
		Order("total DESC").
		Scan(&stats).Error
	if err != nil {
		serverError(c, err, "Falha ao calcular despesas")
		return
	}

	var total float64
	for _, s := range stats {
		total += s.Total
	}
	Success(c, gin.H{
		"mes":            finance.MonthKey(month),
		"total_amount":   finance.Round2(total),
		"category_stats": stats,
	})
}
