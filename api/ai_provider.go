package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bfx/database"
	"bfx/models"
	"bfx/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AIProviderHandler provedores de IA (somente admin)
type AIProviderHandler struct {
	client *service.AIClient
}

// NewAIProviderHandler cria o handler de provedores
func NewAIProviderHandler() *AIProviderHandler {
	return &AIProviderHandler{client: service.NewAIClient(15 * time.Second)}
}

// CreateAIProviderRequest novo provedor
type CreateAIProviderRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=50" example:"openai"`
	BaseURL   string `json:"base_url" binding:"required,url" example:"https://api.openai.com/v1"`
	APIKey    string `json:"api_key" binding:"required,min=1" example:"sk-..."`
	Model     string `json:"model" binding:"required,max=100" example:"gpt-4o-mini"`
	SortOrder int    `json:"sort_order"`
	Enabled   *bool  `json:"enabled"`
}

// UpdateAIProviderRequest alteração; vazios mantêm o valor
type UpdateAIProviderRequest struct {
	Name    string `json:"name" binding:"omitempty,min=1,max=50"`
	BaseURL string `json:"base_url" binding:"omitempty,url"`
	APIKey  string `json:"api_key" binding:"omitempty,min=1"`
	Model   string `json:"model" binding:"omitempty,max=100"`
	Enabled *bool  `json:"enabled"`
}

// ReorderAIProvidersRequest nova ordem de fallback
type ReorderAIProvidersRequest struct {
	ProviderIDs []uint `json:"provider_ids" binding:"required,min=1"`
}

func findProvider(c *gin.Context) (*models.AIProvider, bool) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return nil, false
	}
	var p models.AIProvider
	err := database.DB.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Provedor não encontrado")
		return nil, false
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar provedor")
		return nil, false
	}
	return &p, true
}

// List provedores na ordem de fallback
// @Summary Listar provedores de IA
// @Tags Provedores de IA
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.AIProvider}
// @Router /api/ia/provedores [get]
func (h *AIProviderHandler) List(c *gin.Context) {
	var list []models.AIProvider
	if err := database.DB.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		serverError(c, err, "Falha ao listar provedores")
		return
	}
	Success(c, list)
}

// Create cadastra um provedor
// @Summary Cadastrar provedor de IA
// @Tags Provedores de IA
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAIProviderRequest true "Provedor"
// @Success 200 {object} Response{data=models.AIProvider}
// @Failure 400 {object} Response
// @Router /api/ia/provedores [post]
func (h *AIProviderHandler) Create(c *gin.Context) {
	var req CreateAIProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}

	var count int64
	if err := database.DB.Model(&models.AIProvider{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar provedor")
		return
	}
	if count > 0 {
		BadRequest(c, "Já existe um provedor com esse nome")
		return
	}

	p := models.AIProvider{
		Name:      strings.TrimSpace(req.Name),
		BaseURL:   strings.TrimRight(req.BaseURL, "/"),
		APIKey:    req.APIKey,
		Model:     req.Model,
		SortOrder: req.SortOrder,
		Enabled:   true,
	}
	if req.Enabled != nil {
		p.Enabled = *req.Enabled
	}
	if err := database.DB.Create(&p).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar provedor")
		return
	}
	SuccessWithMessage(c, "Provedor cadastrado", p)
}

// Update altera um provedor
// @Summary Alterar provedor de IA
// @Tags Provedores de IA
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do provedor"
// @Param request body UpdateAIProviderRequest true "Campos"
// @Success 200 {object} Response{data=models.AIProvider}
// @Failure 404 {object} Response
// @Router /api/ia/provedores/{id} [put]
func (h *AIProviderHandler) Update(c *gin.Context) {
	var req UpdateAIProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	p, ok := findProvider(c)
	if !ok {
		return
	}

	if req.Name != "" {
		p.Name = strings.TrimSpace(req.Name)
	}
	if req.BaseURL != "" {
		p.BaseURL = strings.TrimRight(req.BaseURL, "/")
	}
	// chave vazia mantém a atual
	if req.APIKey != "" {
		p.APIKey = req.APIKey
	}
	if req.Model != "" {
		p.Model = req.Model
	}
	if req.Enabled != nil {
		p.Enabled = *req.Enabled
	}
	if err := database.DB.Save(p).Error; err != nil {
		serverError(c, err, "Falha ao alterar provedor")
		return
	}
	SuccessWithMessage(c, "Provedor alterado", p)
}

// Reorder grava a ordem de fallback
// @Summary Ordenar provedores de IA
// @Tags Provedores de IA
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderAIProvidersRequest true "IDs na nova ordem"
// @Success 200 {object} Response
// @Router /api/ia/provedores/ordem [put]
func (h *AIProviderHandler) Reorder(c *gin.Context) {
	var req ReorderAIProvidersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range req.ProviderIDs {
			if err := tx.Model(&models.AIProvider{}).Where("id = ?", id).Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		serverError(c, err, "Falha ao salvar ordem")
		return
	}
	SuccessWithMessage(c, "Ordem salva", nil)
}

// Test envia uma mensagem curta para validar URL, chave e modelo
// @Summary Testar provedor de IA
// @Tags Provedores de IA
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do provedor"
// @Success 200 {object} Response
// @Failure 502 {object} Response
// @Router /api/ia/provedores/{id}/teste [post]
func (h *AIProviderHandler) Test(c *gin.Context) {
	p, ok := findProvider(c)
	if !ok {
		return
	}
	_, err := h.client.Complete(c.Request.Context(), *p, []service.ChatMessage{{Role: "user", Content: "oi"}})
	if err != nil {
		Error(c, http.StatusBadGateway, SafeErrorMessage(err, "Provedor indisponível"))
		return
	}
	SuccessWithMessage(c, "Provedor disponível", nil)
}

// Delete remove um provedor
// @Summary Excluir provedor de IA
// @Tags Provedores de IA
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do provedor"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/ia/provedores/{id} [delete]
func (h *AIProviderHandler) Delete(c *gin.Context) {
	p, ok := findProvider(c)
	if !ok {
		return
	}
	if err := database.DB.Delete(p).Error; err != nil {
		serverError(c, err, "Falha ao excluir provedor")
		return
	}
	SuccessWithMessage(c, "Provedor excluído", nil)
}
