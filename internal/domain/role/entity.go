package role

import (
	"time"
)

// Role representa o papel de um usuário na plataforma
type Role string

// Constantes para Role
const (
	RoleUser      Role = "user"      // Usuário comum
	RoleModerator Role = "moderator" // Moderador da comunidade
	RoleAdmin     Role = "admin"     // Administrador da plataforma
)

// IsValid verifica se o papel pertence à enumeração conhecida
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Assignment representa a atribuição de um papel a um usuário
type Assignment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
