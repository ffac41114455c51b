package flag

import (
	"context"
)

// Repository define a interface para operações de repositório de denúncias de conteúdo
type Repository interface {
	// Create registra uma nova denúncia
	Create(ctx context.Context, f *Flag) error

	// FindByID busca uma denúncia pelo ID
	FindByID(ctx context.Context, id string) (*Flag, error)

	// List lista as denúncias com filtro opcional por status e paginação
	List(ctx context.Context, status Status, limit, offset int) ([]*Flag, error)

	// Count conta as denúncias com filtro opcional por status
	Count(ctx context.Context, status Status) (int, error)

	// Resolve registra o desfecho de uma denúncia
	Resolve(ctx context.Context, id string, status Status, notes, resolvedBy string) error
}
