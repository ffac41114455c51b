package discussion

import (
	"context"
)

// Repository define a interface para operações de repositório de discussões da comunidade
type Repository interface {
	// Create cria uma nova discussão
	Create(ctx context.Context, d *Discussion) error

	// FindByID busca uma discussão pelo ID
	FindByID(ctx context.Context, id string) (*Discussion, error)

	// ListVisible lista as discussões aprovadas e não ocultas, com paginação
	// e filtro opcional por tag
	ListVisible(ctx context.Context, tag string, limit, offset int) ([]*Discussion, error)

	// CountVisible conta as discussões aprovadas e não ocultas
	CountVisible(ctx context.Context, tag string) (int, error)

	// SetApproved atualiza o estado de aprovação de uma discussão
	SetApproved(ctx context.Context, id string, approved bool) error

	// SetHidden atualiza o estado de ocultação de uma discussão
	SetHidden(ctx context.Context, id string, hidden bool) error

	// IncrementLikes incrementa o contador de curtidas de uma discussão
	IncrementLikes(ctx context.Context, id string) error

	// ListTags lista o vocabulário de tags de discussão
	ListTags(ctx context.Context) ([]Tag, error)
}
