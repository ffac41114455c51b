package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindease/mindease-api/internal/domain/role"
)

// Erros específicos do repositório
var (
	ErrInvalidRole = errors.New("papel de usuário inválido")
)

// RoleRepository implementa a interface role.Repository usando PostgreSQL
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository cria uma nova instância de RoleRepository
func NewRoleRepository(db *pgxpool.Pool) role.Repository {
	return &RoleRepository{
		db: db,
	}
}

// Assign implementa role.Repository.Assign. A tabela user_roles possui uma
// restrição UNIQUE (user_id, role); atribuir um papel já existente não cria
// uma nova linha, tornando a operação idempotente sob retry.
func (r *RoleRepository) Assign(ctx context.Context, a *role.Assignment) error {
	if !a.Role.IsValid() {
		return ErrInvalidRole
	}

	query := `
		INSERT INTO user_roles (id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, role) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, a.ID, a.UserID, string(a.Role), a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao atribuir papel: %w", err)
	}

	return nil
}

// FindByUser implementa role.Repository.FindByUser
func (r *RoleRepository) FindByUser(ctx context.Context, userID string) ([]role.Assignment, error) {
	query := `
		SELECT id, user_id, role, created_at, updated_at
		FROM user_roles
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar papéis: %w", err)
	}
	defer rows.Close()

	assignments := []role.Assignment{}
	for rows.Next() {
		var a role.Assignment
		var roleName string
		if err := rows.Scan(&a.ID, &a.UserID, &roleName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler papel: %w", err)
		}
		a.Role = role.Role(roleName)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer papéis: %w", err)
	}

	return assignments, nil
}

// HasRole implementa role.Repository.HasRole
func (r *RoleRepository) HasRole(ctx context.Context, userID string, rl role.Role) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, string(rl)).Scan(&exists); err != nil {
		return false, fmt.Errorf("falha ao verificar papel: %w", err)
	}

	return exists, nil
}

// IsAdmin implementa role.Repository.IsAdmin
func (r *RoleRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return r.HasRole(ctx, userID, role.RoleAdmin)
}

// IsModeratorOrAdmin implementa role.Repository.IsModeratorOrAdmin
func (r *RoleRepository) IsModeratorOrAdmin(ctx context.Context, userID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM user_roles
			WHERE user_id = $1 AND role IN ('moderator', 'admin')
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("falha ao verificar papel de moderação: %w", err)
	}

	return exists, nil
}
