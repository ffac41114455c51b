package dto

import (
	"time"

	"github.com/mindease/mindease-api/internal/domain/role"
)

// AssignAdminRequest representa o corpo opcional da concessão de papel admin.
// Sem userId a concessão é para o próprio chamador.
type AssignAdminRequest struct {
	UserID string `json:"userId"`
}

// AssignAdminResponse representa a resposta da concessão de papel admin
type AssignAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RoleResponse representa um papel atribuído a um usuário
type RoleResponse struct {
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleListResponse representa a resposta com os papéis de um usuário
type RoleListResponse struct {
	UserID string         `json:"user_id"`
	Roles  []RoleResponse `json:"roles"`
}

// ToRoleListResponse converte as atribuições do domínio para DTO de resposta
func ToRoleListResponse(userID string, assignments []role.Assignment) RoleListResponse {
	roles := make([]RoleResponse, len(assignments))
	for i, a := range assignments {
		roles[i] = RoleResponse{
			Role:      string(a.Role),
			CreatedAt: a.CreatedAt,
		}
	}

	return RoleListResponse{
		UserID: userID,
		Roles:  roles,
	}
}
