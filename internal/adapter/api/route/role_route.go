package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupRoleRoutes configura as rotas de papéis de usuário
func SetupRoleRoutes(router *gin.RouterGroup, roleController *controller.RoleController, authMiddleware gin.HandlerFunc) {
	roleRouter := router.Group("/roles")
	roleRouter.Use(authMiddleware)
	{
		roleRouter.POST("/assign-admin", roleController.AssignAdmin)
		roleRouter.GET("/me", roleController.MyRoles)
	}
}
