package dto

// ChatHistoryMessage representa um turno do histórico enviado pelo cliente.
// O sender "user" indica o usuário; qualquer outro valor indica o assistente.
type ChatHistoryMessage struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

// ChatRequest representa o corpo da requisição de chat
type ChatRequest struct {
	Message          string               `json:"message" binding:"required"`
	PreviousMessages []ChatHistoryMessage `json:"previousMessages"`
}

// ChatResponse representa a resposta gerada pelo assistente
type ChatResponse struct {
	Response string `json:"response"`
}
