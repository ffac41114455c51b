package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupDiscussionRoutes configura as rotas de discussões da comunidade
func SetupDiscussionRoutes(router *gin.RouterGroup, discussionController *controller.DiscussionController, authMiddleware gin.HandlerFunc) {
	discussionRouter := router.Group("/discussions")
	{
		// Leitura pública
		discussionRouter.GET("", discussionController.List)
		discussionRouter.GET("/tags", discussionController.ListTags)
		discussionRouter.GET("/:id", discussionController.GetByID)

		// Operações autenticadas
		protected := discussionRouter.Group("")
		protected.Use(authMiddleware)
		{
			protected.POST("", discussionController.Create)
			protected.POST("/:id/like", discussionController.Like)
			protected.PATCH("/:id/approve", discussionController.Approve)
			protected.PATCH("/:id/hide", discussionController.Hide)
		}
	}
}
