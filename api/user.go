package api

import (
	"errors"
	"strings"

	"bfx/database"
	"bfx/logger"
	"bfx/middleware"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserHandler cadastro de usuários e vendedores (somente admin)
type UserHandler struct{}

// NewUserHandler cria o handler de usuários
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// CreateUserRequest novo usuário
type CreateUserRequest struct {
	Username      string   `json:"username" binding:"required,min=3,max=50" example:"maria"`
	Password      string   `json:"password" binding:"required,min=4,max=72"`
	DisplayName   string   `json:"display_name" binding:"max=100" example:"Maria Souza"`
	Role          string   `json:"role" example:"vendedor"`
	CommissionPct *float64 `json:"commission_pct" binding:"omitempty,gte=0,lte=100"`
	MonthlyTarget float64  `json:"monthly_target" binding:"gte=0"`
}

// UpdateUserRequest alteração de usuário; ausentes mantêm o valor
type UpdateUserRequest struct {
	DisplayName   *string  `json:"display_name" binding:"omitempty,max=100"`
	Role          *string  `json:"role"`
	CommissionPct *float64 `json:"commission_pct" binding:"omitempty,gte=0,lte=100"`
	MonthlyTarget *float64 `json:"monthly_target" binding:"omitempty,gte=0"`
}

// UpdateUserStatusRequest bloqueio/desbloqueio
type UpdateUserStatusRequest struct {
	// Status active (normal) ou locked (bloqueado)
	Status string `json:"status" binding:"required,oneof=active locked"`
}

// UpdateUserPasswordRequest nova senha definida pelo admin
type UpdateUserPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=4,max=72"`
}

func findUser(c *gin.Context) (*models.User, bool) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return nil, false
	}
	var user models.User
	err := database.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Usuário não encontrado")
		return nil, false
	}
	if err != nil {
		serverError(c, err, "Falha ao buscar usuário")
		return nil, false
	}
	return &user, true
}

// List usuários ordenados pelo nome
// @Summary Listar usuários
// @Tags Usuários
// @Produce json
// @Security BearerAuth
// @Param role query string false "admin ou vendedor"
// @Success 200 {object} Response{data=[]models.User}
// @Router /api/usuarios [get]
func (h *UserHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Order("display_name ASC").Find(&users).Error; err != nil {
		serverError(c, err, "Falha ao listar usuários")
		return
	}
	Success(c, users)
}

// Create cadastra usuário
// @Summary Cadastrar usuário
// @Tags Usuários
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "Usuário"
// @Success 200 {object} Response{data=models.User}
// @Failure 400 {object} Response
// @Router /api/usuarios [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		BadRequest(c, "Perfil deve ser admin ou vendedor")
		return
	}

	username := models.NormalizeUsername(req.Username)
	var count int64
	if err := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar usuário")
		return
	}
	if count > 0 {
		BadRequest(c, "Usuário já existe")
		return
	}

	user := models.User{
		Username:      username,
		DisplayName:   strings.TrimSpace(req.DisplayName),
		Role:          role,
		CommissionPct: models.DefaultCommissionPct,
		MonthlyTarget: req.MonthlyTarget,
		Status:        models.UserStatusActive,
	}
	if req.CommissionPct != nil {
		user.CommissionPct = *req.CommissionPct
	}
	if err := user.SetPassword(req.Password); err != nil {
		serverError(c, err, "Falha ao cadastrar usuário")
		return
	}
	if err := database.DB.Create(&user).Error; err != nil {
		serverError(c, err, "Falha ao cadastrar usuário")
		return
	}
	SuccessWithMessage(c, "Usuário cadastrado", user)
}

// Update altera nome, perfil, comissão ou meta
// @Summary Alterar usuário
// @Tags Usuários
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param request body UpdateUserRequest true "Campos"
// @Success 200 {object} Response{data=models.User}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/usuarios/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	user, ok := findUser(c)
	if !ok {
		return
	}

	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			BadRequest(c, "Perfil deve ser admin ou vendedor")
			return
		}
		// o admin não pode rebaixar a si mesmo
		if user.ID == middleware.GetCurrentUserID(c) && role != models.RoleAdmin {
			BadRequest(c, "Não é possível remover o próprio perfil de administrador")
			return
		}
		user.Role = role
	}
	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.CommissionPct != nil {
		user.CommissionPct = *req.CommissionPct
	}
	if req.MonthlyTarget != nil {
		user.MonthlyTarget = *req.MonthlyTarget
	}

	if err := database.DB.Save(user).Error; err != nil {
		serverError(c, err, "Falha ao alterar usuário")
		return
	}
	SuccessWithMessage(c, "Usuário alterado", user)
}

// UpdateStatus bloqueia ou libera o acesso
// @Summary Bloquear/desbloquear usuário
// @Tags Usuários
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param request body UpdateUserStatusRequest true "Status"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/usuarios/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	user, ok := findUser(c)
	if !ok {
		return
	}
	if user.ID == middleware.GetCurrentUserID(c) && req.Status == models.UserStatusLocked {
		BadRequest(c, "Não é possível bloquear a própria conta")
		return
	}
	if err := database.DB.Model(user).Update("status", req.Status).Error; err != nil {
		serverError(c, err, "Falha ao alterar status")
		return
	}
	logger.L().Info("status de usuário alterado", zap.Uint("usuario_id", user.ID), zap.String("status", req.Status))
	SuccessWithMessage(c, "Status alterado", nil)
}

// UpdatePassword define nova senha para o usuário
// @Summary Redefinir senha
// @Tags Usuários
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param request body UpdateUserPasswordRequest true "Nova senha"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/usuarios/{id}/senha [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req UpdateUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	user, ok := findUser(c)
	if !ok {
		return
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		serverError(c, err, "Falha ao redefinir senha")
		return
	}
	if err := database.DB.Model(user).Update("password", user.Password).Error; err != nil {
		serverError(c, err, "Falha ao redefinir senha")
		return
	}
	SuccessWithMessage(c, "Senha redefinida", nil)
}

// Delete remove usuário (soft delete); não permite excluir a si mesmo
// @Summary Excluir usuário
// @Tags Usuários
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/usuarios/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		BadRequest(c, "ID inválido")
		return
	}
	if id == middleware.GetCurrentUserID(c) {
		BadRequest(c, "Não é possível excluir a própria conta")
		return
	}
	res := database.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		serverError(c, res.Error, "Falha ao excluir usuário")
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Usuário não encontrado")
		return
	}
	SuccessWithMessage(c, "Usuário excluído", nil)
}
