package user

import (
	"context"
)

// Repository define a interface para operações de repositório de perfis de usuário
type Repository interface {
	// Create cria um novo perfil de usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update atualiza os dados de perfil de um usuário existente
	Update(ctx context.Context, u *User) error

	// UpdateStatus atualiza o status de um usuário
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Exists verifica se um usuário existe
	Exists(ctx context.Context, id string) (bool, error)
}
