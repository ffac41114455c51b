package role

import (
	"context"
)

// Repository define a interface para operações de repositório de papéis de usuário
type Repository interface {
	// Assign atribui um papel a um usuário; a operação é idempotente,
	// atribuir um papel que o usuário já possui não cria uma nova linha
	Assign(ctx context.Context, a *Assignment) error

	// FindByUser lista os papéis atribuídos a um usuário
	FindByUser(ctx context.Context, userID string) ([]Assignment, error)

	// HasRole verifica se um usuário possui um papel específico
	HasRole(ctx context.Context, userID string, r Role) (bool, error)

	// IsAdmin verifica se um usuário é administrador
	IsAdmin(ctx context.Context, userID string) (bool, error)

	// IsModeratorOrAdmin verifica se um usuário é moderador ou administrador
	IsModeratorOrAdmin(ctx context.Context, userID string) (bool, error)
}
