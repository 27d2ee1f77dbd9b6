package api

import (
	"time"

	"bfx/aiaction"
	"bfx/config"
	"bfx/database"
	"bfx/finance"
	"bfx/middleware"
	"bfx/models"
	"bfx/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler assistente de IA
type AssistantHandler struct {
	cfg   *config.Config
	rules finance.Rules
	llm   aiaction.Completer
}

// NewAssistantHandler cria o handler do assistente
func NewAssistantHandler(cfg *config.Config, rules finance.Rules) *AssistantHandler {
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	return &AssistantHandler{cfg: cfg, rules: rules, llm: service.NewAIClient(timeout)}
}

// WithCompleter troca o cliente do modelo (testes)
func (h *AssistantHandler) WithCompleter(llm aiaction.Completer) *AssistantHandler {
	h.llm = llm
	return h
}

// ChatRequest mensagem ao assistente
type ChatRequest struct {
	Prompt     string                  `json:"prompt" binding:"max=4000"`
	Mode       string                  `json:"mode" example:"plan"` // plan, auto ou execute
	ProviderID *uint                   `json:"providerId"`
	Action     *aiaction.PlannedAction `json:"action"` // ação confirmada no modo execute
}

// Chat um turno de conversa
// @Summary Conversar com o assistente
// @Description plan devolve ações pendentes; auto executa somente leituras; execute roda a ação confirmada
// @Tags Inteligência
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Mensagem"
// @Success 200 {object} Response{data=aiaction.Reply}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/inteligencia/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	mode, err := aiaction.ParseMode(req.Mode)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if mode != aiaction.ModeExecute && req.Prompt == "" {
		BadRequest(c, "Digite uma mensagem")
		return
	}

	assistant := aiaction.NewAssistant(database.DB, newDispatcher(h.rules), h.llm, h.cfg.Server.BaseURL)
	reply, err := assistant.Run(c.Request.Context(), actorFrom(c), aiaction.Request{
		Prompt:     req.Prompt,
		Mode:       mode,
		ProviderID: req.ProviderID,
		Execute:    req.Action,
	})
	if err != nil {
		if aiaction.IsClientError(err) {
			actionError(c, err)
			return
		}
		serverError(c, err, "Falha ao processar mensagem")
		return
	}
	Success(c, reply)
}

// History histórico do usuário logado, mais recente primeiro
// @Summary Histórico do assistente
// @Tags Inteligência
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.AIChatMessage}}
// @Router /api/inteligencia/historico [get]
func (h *AssistantHandler) History(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.AIChatMessage{}).Where("user_id = ?", userID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		serverError(c, err, "Falha ao carregar histórico")
		return
	}
	var list []models.AIChatMessage
	if err := query.Order("id DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		serverError(c, err, "Falha ao carregar histórico")
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// DeleteHistory apaga uma mensagem do próprio histórico
// @Summary Apagar mensagem do histórico
// @Tags Inteligência
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da mensagem"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/inteligencia/historico/{id} [delete]
func (h *AssistantHandler) DeleteHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	res := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).Delete(&models.AIChatMessage{}, id)
	if res.Error != nil {
		serverError(c, res.Error, "Falha ao apagar mensagem")
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Mensagem não encontrada")
		return
	}
	SuccessWithMessage(c, "Mensagem apagada", nil)
}
