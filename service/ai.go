package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bfx/logger"
	"bfx/models"

	"go.uber.org/zap"
)

// ErrNoProvider nenhum provedor de IA habilitado
var ErrNoProvider = errors.New("nenhum provedor de IA configurado")

// ChatMessage mensagem no formato chat/completions
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// AIClient cliente de provedores compatíveis com a API OpenAI chat/completions
type AIClient struct {
	http *http.Client
}

// NewAIClient cria o cliente com o timeout informado (padrão 120s)
func NewAIClient(timeout time.Duration) *AIClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &AIClient{http: &http.Client{Timeout: timeout}}
}

// Complete envia as mensagens ao provedor e devolve o texto da primeira escolha
func (c *AIClient) Complete(ctx context.Context, provider models.AIProvider, messages []ChatMessage) (string, error) {
	if provider.BaseURL == "" || provider.APIKey == "" {
		return "", fmt.Errorf("provedor %s sem chave ou URL", provider.Name)
	}

	jsonData, err := json.Marshal(chatRequest{
		Model:       provider.Model,
		Messages:    messages,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("falha ao montar requisição: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(provider.BaseURL, "/")+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("falha ao criar requisição: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+provider.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("falha ao chamar o provedor %s: %w", provider.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("provedor %s respondeu %d: %s", provider.Name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resposta inválida do provedor %s: %w", provider.Name, err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// CompleteWithFallback tenta cada provedor na ordem até um responder
func (c *AIClient) CompleteWithFallback(ctx context.Context, providers []models.AIProvider, messages []ChatMessage) (string, *models.AIProvider, error) {
	if len(providers) == 0 {
		return "", nil, ErrNoProvider
	}
	var lastErr error
	for i := range providers {
		text, err := c.Complete(ctx, providers[i], messages)
		if err == nil {
			return text, &providers[i], nil
		}
		lastErr = err
		logger.L().Warn("provedor de IA falhou, tentando o próximo",
			zap.String("provedor", providers[i].Name), zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", nil, lastErr
}
