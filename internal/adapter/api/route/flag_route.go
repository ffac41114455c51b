package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupFlagRoutes configura as rotas de denúncias de conteúdo
func SetupFlagRoutes(router *gin.RouterGroup, flagController *controller.FlagController, authMiddleware gin.HandlerFunc) {
	flagRouter := router.Group("/flags")
	flagRouter.Use(authMiddleware)
	{
		flagRouter.POST("", flagController.Create)
		flagRouter.GET("", flagController.List)
		flagRouter.PATCH("/:id/resolve", flagController.Resolve)
	}
}
