package aiaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"bfx/finance"
	"bfx/logger"
	"bfx/models"
	"bfx/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUnknownAction = errors.New("ação não suportada")
	ErrForbidden     = errors.New("ação não permitida para o seu perfil")
	ErrInvalidParams = errors.New("parâmetros inválidos")
	ErrNotFound      = errors.New("registro não encontrado")
)

// Mode modo de operação do assistente
type Mode string

const (
	ModePlan    Mode = "plan"    // somente leitura; ações de escrita voltam como plano
	ModeAuto    Mode = "auto"    // executa as leituras planejadas e resume
	ModeExecute Mode = "execute" // executa a ação confirmada
)

// ParseMode converte texto em Mode; vazio vira plan
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePlan:
		return ModePlan, nil
	case ModeAuto, ModeExecute:
		return Mode(s), nil
	}
	return "", fmt.Errorf("modo inválido: %q", s)
}

// Actor usuário em nome de quem a ação roda
type Actor struct {
	UserID      uint
	Username    string
	DisplayName string
	Role        models.Role
}

// Label nome exibido do ator
func (a Actor) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// Dispatcher executa ações com verificação de perfil e auditoria
type Dispatcher struct {
	db      *gorm.DB
	finance *service.FinanceService
	rules   finance.Rules
	now     func() time.Time
}

// NewDispatcher cria o despachante de ações
func NewDispatcher(db *gorm.DB, fin *service.FinanceService) *Dispatcher {
	return &Dispatcher{db: db, finance: fin, rules: fin.Rules(), now: time.Now}
}

// WithClock substitui o relógio (testes)
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	d.finance.WithClock(now)
	return d
}

type handlerFunc func(d *Dispatcher, ctx context.Context, actor Actor, params map[string]any) (any, error)

var handlers = map[string]handlerFunc{
	"listar_vendas":     listSales,
	"criar_venda":       createSale,
	"atualizar_venda":   updateSale,
	"listar_clientes":   listCustomers,
	"criar_cliente":     createCustomer,
	"consultar_limite":  customerLimit,
	"listar_produtos":   listProducts,
	"criar_produto":     createProduct,
	"listar_despesas":   listExpenses,
	"criar_despesa":     createExpense,
	"atualizar_despesa": updateExpense,
	"consultar_dre":     monthDRE,
	"listar_empresas":   listPartners,
	"criar_empresa":     createPartner,
	"listar_usuarios":   listUsers,
	"criar_usuario":     createUser,
	"atualizar_usuario": updateUser,
}

// Execute roda a ação em nome do ator. Toda chamada gera um registro de auditoria.
func (d *Dispatcher) Execute(ctx context.Context, actor Actor, name string, params map[string]any) (any, error) {
	if params == nil {
		params = map[string]any{}
	}

	result, err := d.execute(ctx, actor, name, params)

	outcome := models.AuditOutcomeOK
	switch {
	case errors.Is(err, ErrForbidden):
		outcome = models.AuditOutcomeDenied
	case err != nil:
		outcome = models.AuditOutcomeError
	}
	d.audit(ctx, actor, name, params, outcome, err)

	return result, err
}

func (d *Dispatcher) execute(ctx context.Context, actor Actor, name string, params map[string]any) (any, error) {
	action, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if !actor.Role.Can(action.Capability) {
		return nil, ErrForbidden
	}
	return handlers[name](d, ctx, actor, params)
}

func (d *Dispatcher) audit(ctx context.Context, actor Actor, name string, params map[string]any, outcome string, actionErr error) {
	entry := models.AuditLog{
		UserID:  actor.UserID,
		Role:    actor.Role,
		Action:  name,
		Outcome: outcome,
	}
	if b, err := json.Marshal(redact(params)); err == nil {
		entry.Params = string(b)
	}
	if actionErr != nil {
		entry.Error = truncate(actionErr.Error(), 500)
	}

	if err := d.db.WithContext(ctx).Create(&entry).Error; err != nil {
		logger.L().Error("falha ao gravar auditoria da ação",
			zap.String("acao", name), zap.Uint("usuario_id", actor.UserID), zap.Error(err))
	}
	if outcome != models.AuditOutcomeOK {
		logger.L().Warn("ação do assistente não executada",
			zap.String("acao", name),
			zap.Uint("usuario_id", actor.UserID),
			zap.String("perfil", string(actor.Role)),
			zap.String("resultado", outcome),
			zap.Error(actionErr))
	}
}

// redact remove senhas dos parâmetros gravados
func redact(params map[string]any) map[string]any {
	if _, ok := params["password"]; !ok {
		return params
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	out["password"] = "***"
	return out
}

// truncate corta em n caracteres, sem partir uma runa ao meio
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// decode converte o mapa de parâmetros na struct tipada
func decode(params map[string]any, v any) error {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// clampLimit aplica o padrão quando ausente e o máximo permitido
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

const dateLayout = "2006-01-02"

func parseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s deve estar no formato YYYY-MM-DD", ErrInvalidParams, field)
	}
	return t, nil
}

// dateRange filtro opcional de período; to é inclusivo até o fim do dia
func dateRange(q *gorm.DB, column, from, to string) (*gorm.DB, error) {
	if from != "" {
		t, err := parseDate("from", from)
		if err != nil {
			return nil, err
		}
		q = q.Where(column+" >= ?", t)
	}
	if to != "" {
		t, err := parseDate("to", to)
		if err != nil {
			return nil, err
		}
		q = q.Where(column+" < ?", t.AddDate(0, 0, 1))
	}
	return q, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
