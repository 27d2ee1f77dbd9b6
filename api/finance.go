package api

import (
	"bfx/config"
	"bfx/database"
	"bfx/finance"
	"bfx/logger"
	"bfx/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinanceHandler relatórios financeiros (DRE e fluxo de caixa)
type FinanceHandler struct {
	cfg   *config.Config
	rules finance.Rules
}

// NewFinanceHandler cria o handler financeiro
func NewFinanceHandler(cfg *config.Config, rules finance.Rules) *FinanceHandler {
	return &FinanceHandler{cfg: cfg, rules: rules}
}

// SendDRERequest envio do resumo por e-mail
type SendDRERequest struct {
	Month string `json:"mes" example:"2026-03"`
	To    string `json:"to" binding:"omitempty,email"` // vazio usa email.report_to
}

func (h *FinanceHandler) finance() *service.FinanceService {
	return service.NewFinanceService(database.DB, h.rules)
}

// monthParam lê ?mes=AAAA-MM; vazio significa mês corrente
func monthParam(c *gin.Context, value string) (string, bool) {
	if value == "" {
		return "", true
	}
	if _, err := finance.ParseMonth(value); err != nil {
		BadRequest(c, "Mês inválido, use AAAA-MM")
		return "", false
	}
	return value, true
}

// DRE demonstração de resultado do mês
// @Summary DRE do mês
// @Tags Financeiro
// @Produce json
// @Security BearerAuth
// @Param mes query string false "Mês (AAAA-MM), padrão mês atual"
// @Success 200 {object} Response{data=finance.DRE}
// @Failure 400 {object} Response
// @Router /api/financeiro/dre [get]
func (h *FinanceHandler) DRE(c *gin.Context) {
	month, ok := monthParam(c, c.Query("mes"))
	if !ok {
		return
	}
	d, err := h.finance().DRE(c.Request.Context(), month)
	if err != nil {
		serverError(c, err, "Falha ao calcular DRE")
		return
	}
	Success(c, d)
}

// CashFlow projeção de caixa dos próximos meses
// @Summary Fluxo de caixa
// @Tags Financeiro
// @Produce json
// @Security BearerAuth
// @Param mes query string false "Mês inicial (AAAA-MM), padrão mês atual"
// @Success 200 {object} Response{data=[]finance.CashFlowRow}
// @Failure 400 {object} Response
// @Router /api/financeiro/fluxo [get]
func (h *FinanceHandler) CashFlow(c *gin.Context) {
	month, ok := monthParam(c, c.Query("mes"))
	if !ok {
		return
	}
	flow, err := h.finance().CashFlow(c.Request.Context(), month)
	if err != nil {
		serverError(c, err, "Falha ao projetar fluxo de caixa")
		return
	}
	Success(c, flow)
}

// SendDRE envia o resumo do DRE com a planilha anexa
// @Summary Enviar DRE por e-mail
// @Tags Financeiro
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendDRERequest true "Mês e destinatário"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/financeiro/dre/enviar [post]
func (h *FinanceHandler) SendDRE(c *gin.Context) {
	var req SendDRERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	month, ok := monthParam(c, req.Month)
	if !ok {
		return
	}

	mail := service.NewEmailService(&h.cfg.Email)
	to := mail.Recipient(req.To)
	if !h.cfg.Email.Enabled || to == "" {
		BadRequest(c, "Envio de e-mail indisponível: habilite email.enabled e informe o destinatário")
		return
	}

	ctx := c.Request.Context()
	fin := h.finance()
	d, err := fin.DRE(ctx, month)
	if err != nil {
		serverError(c, err, "Falha ao calcular DRE")
		return
	}
	flow, err := fin.CashFlow(ctx, month)
	if err != nil {
		serverError(c, err, "Falha ao projetar fluxo de caixa")
		return
	}

	if err := mail.SendDRESummary(to, d, flow); err != nil {
		serverError(c, err, "Falha ao enviar e-mail")
		return
	}
	logger.L().Info("DRE enviado por e-mail", zap.String("mes", d.Month), zap.String("to", to))
	SuccessWithMessage(c, "DRE enviado para "+to, nil)
}

// TestEmailRequest destinatário do e-mail de teste
type TestEmailRequest struct {
	To string `json:"to" binding:"omitempty,email"` // vazio usa email.report_to
}

// TestEmail valida a configuração SMTP
// @Summary Testar envio de e-mail
// @Tags Financeiro
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestEmailRequest true "Destinatário"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/financeiro/email/teste [post]
func (h *FinanceHandler) TestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Parâmetros inválidos"))
		return
	}
	mail := service.NewEmailService(&h.cfg.Email)
	to := mail.Recipient(req.To)
	if !h.cfg.Email.Enabled || to == "" {
		BadRequest(c, "Envio de e-mail indisponível: habilite email.enabled e informe o destinatário")
		return
	}
	if err := mail.SendTestEmail(to); err != nil {
		serverError(c, err, "Falha ao enviar e-mail")
		return
	}
	SuccessWithMessage(c, "E-mail de teste enviado para "+to, nil)
}
