package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/pkg/completion"
	"github.com/mindease/mindease-api/pkg/logger"
)

// systemPrompt é a instrução fixa que restringe o assistente à persona
// de apoio em saúde mental
const systemPrompt = "You are an empathetic mental health assistant. Provide supportive, " +
	"understanding responses while maintaining appropriate boundaries. Focus on active " +
	"listening and suggesting healthy coping strategies. Keep responses concise and caring."

// Completer é a interface do colaborador de chat completions
type Completer interface {
	Complete(ctx context.Context, messages []completion.Message) (string, error)
}

// ChatController gerencia as requisições de chat com o assistente
type ChatController struct {
	completer Completer
	logger    logger.Logger
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(completer Completer, log logger.Logger) *ChatController {
	return &ChatController{
		completer: completer,
		logger:    log,
	}
}

// Respond gera uma resposta do assistente para a mensagem do usuário.
// O chamador envia o histórico completo a cada turno; nenhum estado de
// conversa é mantido no servidor.
// @Summary Gera uma resposta do assistente
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Mensagem e histórico da conversa"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} map[string]string
// @Router /chat/response [post]
func (c *ChatController) Respond(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.logger.Error("Erro ao interpretar requisição de chat", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Montar o transcript: instrução de sistema, histórico e a mensagem atual
	messages := make([]completion.Message, 0, len(request.PreviousMessages)+2)
	messages = append(messages, completion.Message{
		Role:    completion.RoleSystem,
		Content: systemPrompt,
	})

	for _, msg := range request.PreviousMessages {
		role := completion.RoleAssistant
		if msg.Sender == "user" {
			role = completion.RoleUser
		}
		messages = append(messages, completion.Message{
			Role:    role,
			Content: msg.Text,
		})
	}

	messages = append(messages, completion.Message{
		Role:    completion.RoleUser,
		Content: request.Message,
	})

	response, err := c.completer.Complete(ctx, messages)
	if err != nil {
		c.logger.Error("Erro ao gerar resposta do assistente", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}
