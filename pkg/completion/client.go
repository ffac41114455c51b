package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mindease/mindease-api/internal/infrastructure/config"
	"github.com/mindease/mindease-api/pkg/logger"
)

// Erros específicos do cliente
var (
	// ErrEmptyCompletion indica que a API respondeu 200 mas sem nenhuma escolha,
	// distinto de falhas de transporte ou de status
	ErrEmptyCompletion = errors.New("a API de completions não retornou nenhuma escolha")
)

// Papéis das mensagens do transcript
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message representa um turno do transcript enviado à API de completions
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Client é o cliente HTTP para a API de chat completions
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// NewClient cria um novo cliente de completions a partir da configuração
func NewClient(cfg *config.Config, log logger.Logger) (*Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	return &Client{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
		model:   cfg.OpenAIModel,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		logger:  log,
	}, nil
}

// Model retorna o identificador de modelo configurado
func (c *Client) Model() string {
	return c.model
}

// Complete envia o transcript à API e retorna o texto da primeira escolha.
// Nenhum parâmetro de amostragem é enviado; temperatura e max_tokens ficam
// nos padrões do provedor.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	// Criar o request HTTP
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	// Configurar headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Enviando requisição para API de completions",
		"model", reqBody.Model,
		"numMessages", len(reqBody.Messages))

	// Enviar a requisição
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Erro na chamada da API de completions", "error", err)
		return "", fmt.Errorf("erro na comunicação com a API de completions: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	// Verificar código de status
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("API de completions retornou erro",
			"status", resp.Status,
			"body", string(respBody))
		return "", fmt.Errorf("API error: %s", resp.Status)
	}

	// Deserializar a resposta
	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		c.logger.Error("Erro ao deserializar resposta", "error", err, "body", string(respBody))
		return "", fmt.Errorf("erro ao interpretar resposta da API: %w", err)
	}

	// Validar a presença de pelo menos uma escolha antes de indexar
	if len(apiResp.Choices) == 0 {
		c.logger.Error("Resposta sem escolhas da API", "body", string(respBody))
		return "", ErrEmptyCompletion
	}

	c.logger.Info("Resposta gerada com sucesso",
		"model", apiResp.Model,
		"prompt_tokens", apiResp.Usage.PromptTokens,
		"completion_tokens", apiResp.Usage.CompletionTokens,
		"finish_reason", apiResp.Choices[0].FinishReason)

	return apiResp.Choices[0].Message.Content, nil
}
