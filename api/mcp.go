package api

import (
	"errors"

	"bfx/aiaction"
	"bfx/database"
	"bfx/finance"
	"bfx/middleware"
	"bfx/service"

	"github.com/gin-gonic/gin"
)

// MCPHandler catálogo e chamada direta das ações do assistente
type MCPHandler struct {
	rules finance.Rules
}

// NewMCPHandler cria o handler MCP
func NewMCPHandler(rules finance.Rules) *MCPHandler {
	return &MCPHandler{rules: rules}
}

// MCPCallRequest chamada de ferramenta
type MCPCallRequest struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// actorFrom converte a identidade da sessão no ator das ações
func actorFrom(c *gin.Context) aiaction.Actor {
	id := middleware.CurrentIdentity(c)
	return aiaction.Actor{
		UserID:      id.UserID,
		Username:    id.Username,
		DisplayName: id.DisplayName,
		Role:        id.Role,
	}
}

func newDispatcher(rules finance.Rules) *aiaction.Dispatcher {
	return aiaction.NewDispatcher(database.DB, service.NewFinanceService(database.DB, rules))
}

// actionError mapeia os erros do despachante para o status HTTP
func actionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, aiaction.ErrForbidden):
		Forbidden(c, "Permissão insuficiente para esta ação")
	case errors.Is(err, aiaction.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, aiaction.ErrUnknownAction), errors.Is(err, aiaction.ErrInvalidParams):
		BadRequest(c, err.Error())
	default:
		serverError(c, err, "Falha ao executar ação")
	}
}

// Tools ferramentas de leitura disponíveis ao usuário
// @Summary Listar ferramentas
// @Tags MCP
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=map[string][]aiaction.Tool}
// @Router /api/mcp [get]
func (h *MCPHandler) Tools(c *gin.Context) {
	Success(c, gin.H{"tools": aiaction.Tools(actorFrom(c), aiaction.ModePlan)})
}

// Call executa uma ferramenta com as permissões do usuário
// @Summary Chamar ferramenta
// @Tags MCP
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MCPCallRequest true "Ferramenta e parâmetros"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/mcp [post]
func (h *MCPHandler) Call(c *gin.Context) {
	var req MCPCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Payload inválido")
		return
	}
	if req.Name == "" {
		BadRequest(c, "Informe o nome da ferramenta")
		return
	}

	result, err := newDispatcher(h.rules).Execute(c.Request.Context(), actorFrom(c), req.Name, req.Params)
	if err != nil {
		actionError(c, err)
		return
	}
	Success(c, gin.H{"result": result})
}
