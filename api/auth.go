package api

import (
	"net/http"

	"bfx/config"
	"bfx/database"
	"bfx/logger"
	"bfx/middleware"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler autenticação
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler cria o handler de autenticação
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest pedido de login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin"`
}

// LoginResponse resposta do login
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// ChangePasswordRequest troca de senha
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=4,max=72"`
}

// Login autentica e abre a sessão
// @Summary Login
// @Description Autentica por usuário e senha; devolve o token e grava o cookie de sessão
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais"
// @Success 200 {object} Response{data=LoginResponse} "Login realizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Usuário ou senha inválidos"
// @Failure 403 {object} Response "Conta bloqueada"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", models.NormalizeUsername(req.Username)).First(&user).Error; err != nil {
		Unauthorized(c, "Usuário ou senha inválidos")
		return
	}

	if !user.CheckPassword(req.Password) {
		logger.L().Warn("senha inválida", zap.String("username", user.Username), zap.String("ip", c.ClientIP()))
		Unauthorized(c, "Usuário ou senha inválidos")
		return
	}

	// só contas ativas entram
	if !user.IsActive() {
		Error(c, http.StatusForbidden, "Conta bloqueada, procure o administrador")
		return
	}

	token, err := middleware.GenerateToken(&user, h.cfg.JWT.ExpireTime)
	if err != nil {
		serverError(c, err, "Falha ao gerar sessão")
		return
	}
	setSessionCookie(c, token, int(h.cfg.JWT.ExpireTime.Seconds()))

	SuccessWithMessage(c, "Login realizado", LoginResponse{
		Token:    token,
		UserInfo: user,
	})
}

// Logout encerra a sessão
// @Summary Logout
// @Tags Autenticação
// @Produce json
// @Success 200 {object} Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	SuccessWithMessage(c, "Sessão encerrada", nil)
}

// GetProfile dados do usuário logado
// @Summary Perfil do usuário
// @Tags Autenticação
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User}
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		Unauthorized(c, "Faça login para continuar")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "Usuário não encontrado")
		return
	}
	Success(c, user)
}

// ChangePassword troca a senha do usuário logado
// @Summary Trocar senha
// @Tags Autenticação
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Senhas"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/auth/senha [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, middleware.GetCurrentUserID(c)).Error; err != nil {
		NotFound(c, "Usuário não encontrado")
		return
	}
	if !user.CheckPassword(req.OldPassword) {
		BadRequest(c, "Senha atual incorreta")
		return
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		serverError(c, err, "Falha ao trocar a senha")
		return
	}
	if err := database.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		serverError(c, err, "Falha ao trocar a senha")
		return
	}
	SuccessWithMessage(c, "Senha alterada", nil)
}
