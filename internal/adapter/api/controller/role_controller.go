package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/pkg/auth"
)

// RoleController gerencia as requisições de atribuição e consulta de papéis
type RoleController struct {
	roleRepository role.Repository
}

// NewRoleController cria uma nova instância de RoleController
func NewRoleController(roleRepository role.Repository) *RoleController {
	return &RoleController{
		roleRepository: roleRepository,
	}
}

// AssignAdmin concede o papel admin a um usuário
// @Summary Concede o papel admin
// @Description Sem corpo (ou sem userId) a concessão vale para o próprio chamador.
// @Description Com userId explícito, apenas chamadores que já possuem o papel admin
// @Description podem conceder o papel a outro usuário. A operação é idempotente.
// @Tags roles
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body dto.AssignAdminRequest false "Alvo opcional da concessão"
// @Success 200 {object} dto.AssignAdminResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /roles/assign-admin [post]
func (c *RoleController) AssignAdmin(ctx *gin.Context) {
	callerID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthorized",
			"message": "User not authenticated",
		})
		return
	}

	// O corpo é opcional; um corpo ausente ou vazio equivale a auto-concessão
	var request dto.AssignAdminRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetID := callerID
	message := "Admin role assigned to current user"

	if request.UserID != "" && request.UserID != callerID {
		// Conceder a outro usuário exige que o chamador já seja admin
		isAdmin, err := c.roleRepository.IsAdmin(ctx, callerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !isAdmin {
			ctx.JSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "Only admins can assign roles to other users",
			})
			return
		}

		targetID = request.UserID
		message = "Admin role assigned to user"
	}

	now := time.Now()
	assignment := &role.Assignment{
		ID:        uuid.New().String(),
		UserID:    targetID,
		Role:      role.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.roleRepository.Assign(ctx, assignment); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.AssignAdminResponse{
		Success: true,
		Message: message,
		UserID:  targetID,
	})
}

// MyRoles lista os papéis do usuário autenticado
// @Summary Lista os papéis do usuário autenticado
// @Tags roles
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.RoleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/me [get]
func (c *RoleController) MyRoles(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	assignments, err := c.roleRepository.FindByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar papéis", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoleListResponse(userID, assignments))
}
