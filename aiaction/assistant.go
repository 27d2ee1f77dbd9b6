package aiaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bfx/logger"
	"bfx/models"
	"bfx/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Completer modelo de linguagem com fallback entre provedores
type Completer interface {
	CompleteWithFallback(ctx context.Context, providers []models.AIProvider, messages []service.ChatMessage) (string, *models.AIProvider, error)
}

// Request pedido ao assistente
type Request struct {
	Prompt     string
	Mode       Mode
	ProviderID *uint          // provedor preferido; os demais servem de fallback
	Execute    *PlannedAction // ação confirmada (modo execute)
}

// Link link devolvido junto da resposta
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Reply resposta do assistente
type Reply struct {
	Text      string          `json:"text"`
	Actions   []PlannedAction `json:"actions,omitempty"`  // aguardando confirmação
	Executed  []Executed      `json:"executed,omitempty"` // já executadas
	Links     []Link          `json:"links,omitempty"`
	MessageID uint            `json:"messageId,omitempty"`
}

const (
	historyTurns = 5

	textNoProvider  = "Nenhum provedor de IA configurado."
	textUnavailable = "O provedor de IA está indisponível no momento. Tente novamente em alguns minutos."
	textExecuted    = "Ação executada com sucesso."
	textNoAnswer    = "Sem resposta."
)

var (
	reExpenses  = regexp.MustCompile(`(?i)despesa|gasto|gastando`)
	reThisMonth = regexp.MustCompile(`(?i)m[eê]s`)
	reWaiting   = regexp.MustCompile(`(?i)buscando|aguarde|processando|consultando`)
)

// Assistant conversa com o modelo e despacha as ações planejadas
type Assistant struct {
	db         *gorm.DB
	dispatcher *Dispatcher
	llm        Completer
	baseURL    string
	now        func() time.Time
}

// NewAssistant cria o assistente; baseURL monta o link do recibo
func NewAssistant(db *gorm.DB, dispatcher *Dispatcher, llm Completer, baseURL string) *Assistant {
	return &Assistant{
		db:         db,
		dispatcher: dispatcher,
		llm:        llm,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
	}
}

// WithClock substitui o relógio (testes)
func (a *Assistant) WithClock(now func() time.Time) *Assistant {
	a.now = now
	return a
}

// Run processa um turno de conversa e grava o histórico do usuário
func (a *Assistant) Run(ctx context.Context, actor Actor, req Request) (*Reply, error) {
	if req.Mode == "" {
		req.Mode = ModePlan
	}
	if req.Mode == ModeExecute {
		if req.Execute == nil || req.Execute.Name == "" {
			return nil, fmt.Errorf("%w: ação a executar não informada", ErrInvalidParams)
		}
		reply, err := a.runConfirmed(ctx, actor, *req.Execute)
		if err != nil {
			return nil, err
		}
		a.persist(ctx, actor, req, nil, reply)
		return reply, nil
	}

	providers, err := a.providers(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return &Reply{Text: textNoProvider}, nil
	}

	messages := []service.ChatMessage{{Role: "system", Content: a.systemPrompt(actor, req.Mode)}}
	messages = append(messages, a.history(ctx, actor)...)
	messages = append(messages, service.ChatMessage{Role: "user", Content: req.Prompt})

	text, used, err := a.llm.CompleteWithFallback(ctx, providers, messages)
	if err != nil {
		logger.L().Error("assistente sem resposta dos provedores", zap.Uint("usuario_id", actor.UserID), zap.Error(err))
		return &Reply{Text: textUnavailable}, nil
	}

	reply := a.handleAnswer(ctx, actor, req, text)
	a.persist(ctx, actor, req, used, reply)
	return reply, nil
}

// runConfirmed executa a ação confirmada pelo usuário
func (a *Assistant) runConfirmed(ctx context.Context, actor Actor, act PlannedAction) (*Reply, error) {
	result, err := a.dispatcher.Execute(ctx, actor, act.Name, act.Params)
	if err != nil {
		return nil, err
	}

	reply := &Reply{
		Text:     textExecuted,
		Executed: []Executed{{Name: act.Name, Params: act.Params, Result: result}},
	}
	if sale, ok := result.(*models.Sale); ok && act.Name == "criar_venda" {
		token := sale.UUID
		if token == "" {
			token = fmt.Sprint(sale.ID)
		}
		reply.Links = append(reply.Links, Link{
			Label: "Recibo PDF",
			URL:   fmt.Sprintf("%s/api/recibo?id=%s", a.baseURL, token),
		})
	}
	return reply, nil
}

func (a *Assistant) handleAnswer(ctx context.Context, actor Actor, req Request, text string) *Reply {
	planned := ExtractActions(text)
	clean := StripActions(text)

	var executed []Executed
	var pending []PlannedAction
	for _, p := range planned {
		action, ok := Lookup(p.Name)
		if req.Mode != ModeAuto || !ok || !action.ReadOnly {
			pending = append(pending, p)
			continue
		}
		result, err := a.dispatcher.Execute(ctx, actor, p.Name, p.Params)
		item := Executed{Name: p.Name, Params: p.Params, Result: result}
		if err != nil {
			item.Result = nil
			item.Error = err.Error()
		}
		executed = append(executed, item)
	}

	if len(executed) == 0 && a.asksMonthlyExpenses(req.Prompt) && actor.Role.Can(models.CapManageExpenses) {
		if reply := a.monthlyExpenses(ctx, actor); reply != nil {
			return reply
		}
	}

	if req.Mode == ModePlan {
		return &Reply{Text: orNoAnswer(clean), Actions: pending}
	}

	reply := &Reply{Actions: pending, Executed: executed}
	summary := Summarize(executed)
	switch {
	case summary != "" && (clean == "" || reWaiting.MatchString(clean)):
		reply.Text = summary
	case summary != "":
		reply.Text = clean + "\n\n" + summary
	default:
		reply.Text = orNoAnswer(clean)
	}
	return reply
}

func orNoAnswer(text string) string {
	if strings.TrimSpace(text) == "" {
		return textNoAnswer
	}
	return text
}

func (a *Assistant) asksMonthlyExpenses(prompt string) bool {
	return reExpenses.MatchString(prompt) && reThisMonth.MatchString(prompt)
}

// monthlyExpenses responde "despesas do mês" sem depender do modelo
func (a *Assistant) monthlyExpenses(ctx context.Context, actor Actor) *Reply {
	from, to := monthBounds(a.now())
	params := map[string]any{"from": from, "to": to, "limit": 200}
	result, err := a.dispatcher.Execute(ctx, actor, "listar_despesas", params)
	if err != nil {
		return nil
	}
	rows, ok := result.([]models.Expense)
	if !ok {
		return nil
	}
	return &Reply{
		Text:     SummarizeExpenses(rows),
		Executed: []Executed{{Name: "listar_despesas", Params: params, Result: rows}},
	}
}

func (a *Assistant) systemPrompt(actor Actor, mode Mode) string {
	var b strings.Builder
	b.WriteString("Você é o assistente do sistema BFX. Responda sempre em português do Brasil.\n")
	fmt.Fprintf(&b, "Usuário: %s, perfil %s. ", actor.Label(), actor.Role)
	if actor.Role != models.RoleAdmin {
		b.WriteString("Vendedores não podem executar ações administrativas. ")
	}
	b.WriteString("Quando precisar consultar, criar ou atualizar algo, descreva o que pretende fazer e inclua uma linha no final com ")
	b.WriteString(`ACTIONS: [{"name":"...","params":{...}}]`)
	b.WriteString(".\nAções disponíveis:\n")

	if mode == ModePlan {
		b.WriteString("Nada será executado agora: o usuário confirma cada ação antes.\n")
	}
	for _, t := range Tools(actor, ModeExecute) {
		params, _ := json.Marshal(t.InputSchema)
		fmt.Fprintf(&b, "- %s: %s Parâmetros: %s\n", t.Name, t.Description, params)
	}
	return b.String()
}

// providers provedores habilitados; o preferido vem primeiro
func (a *Assistant) providers(ctx context.Context, preferred *uint) ([]models.AIProvider, error) {
	var list []models.AIProvider
	if err := a.db.WithContext(ctx).Where("enabled = ?", true).Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	if preferred == nil {
		return list, nil
	}
	for i := range list {
		if list[i].ID == *preferred {
			first := list[i]
			rest := append(append([]models.AIProvider{}, list[:i]...), list[i+1:]...)
			return append([]models.AIProvider{first}, rest...), nil
		}
	}
	return list, nil
}

// history últimos turnos do próprio usuário, em ordem cronológica
func (a *Assistant) history(ctx context.Context, actor Actor) []service.ChatMessage {
	var turns []models.AIChatMessage
	err := a.db.WithContext(ctx).
		Where("user_id = ?", actor.UserID).
		Order("created_at DESC").
		Limit(historyTurns).
		Find(&turns).Error
	if err != nil {
		logger.L().Warn("falha ao carregar histórico do assistente", zap.Uint("usuario_id", actor.UserID), zap.Error(err))
		return nil
	}

	out := make([]service.ChatMessage, 0, len(turns)*2)
	for i := len(turns) - 1; i >= 0; i-- {
		out = append(out,
			service.ChatMessage{Role: "user", Content: turns[i].UserText},
			service.ChatMessage{Role: "assistant", Content: turns[i].AIText},
		)
	}
	return out
}

func (a *Assistant) persist(ctx context.Context, actor Actor, req Request, used *models.AIProvider, reply *Reply) {
	msg := models.AIChatMessage{
		UserID:   actor.UserID,
		Mode:     string(req.Mode),
		UserText: req.Prompt,
		AIText:   reply.Text,
	}
	if msg.UserText == "" && req.Execute != nil {
		msg.UserText = req.Execute.Name
	}
	if used != nil {
		id := used.ID
		msg.ProviderID = &id
	}

	record := struct {
		Actions  []PlannedAction `json:"actions,omitempty"`
		Executed []string        `json:"executed,omitempty"`
	}{Actions: reply.Actions}
	for _, e := range reply.Executed {
		record.Executed = append(record.Executed, e.Name)
	}
	if b, err := json.Marshal(record); err == nil {
		msg.Actions = string(b)
	}

	if err := a.db.WithContext(ctx).Create(&msg).Error; err != nil {
		logger.L().Error("falha ao gravar histórico do assistente", zap.Uint("usuario_id", actor.UserID), zap.Error(err))
		return
	}
	reply.MessageID = msg.ID
}

// IsClientError indica erros de ação que devem virar 4xx
func IsClientError(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUnknownAction) ||
		errors.Is(err, ErrInvalidParams) ||
		errors.Is(err, ErrNotFound)
}
