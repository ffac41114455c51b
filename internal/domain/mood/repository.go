package mood

import (
	"context"
)

// Repository define a interface para operações de repositório do diário de humor
type Repository interface {
	// Create cria uma nova entrada no diário
	Create(ctx context.Context, e *Entry) error

	// FindByID busca uma entrada pelo ID
	FindByID(ctx context.Context, id string) (*Entry, error)

	// ListByUser lista as entradas de um usuário, das mais recentes para as mais antigas
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Entry, error)

	// CountByUser conta as entradas de um usuário
	CountByUser(ctx context.Context, userID string) (int, error)

	// Update atualiza o conteúdo e a pontuação de uma entrada existente
	Update(ctx context.Context, e *Entry) error

	// UpdateSuggestion registra a sugestão gerada para uma entrada
	UpdateSuggestion(ctx context.Context, id, suggestion string) error

	// Delete remove uma entrada do diário
	Delete(ctx context.Context, id string) error
}
