package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupProfileRoutes configura as rotas de perfil do usuário
func SetupProfileRoutes(router *gin.RouterGroup, profileController *controller.ProfileController, authMiddleware gin.HandlerFunc) {
	profileRouter := router.Group("/profiles")
	profileRouter.Use(authMiddleware)
	{
		profileRouter.GET("/me", profileController.Me)
		profileRouter.PUT("/me", profileController.UpdateMe)
	}
}
