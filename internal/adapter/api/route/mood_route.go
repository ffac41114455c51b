package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupMoodRoutes configura as rotas do diário de humor
func SetupMoodRoutes(router *gin.RouterGroup, moodController *controller.MoodController, authMiddleware gin.HandlerFunc) {
	moodRouter := router.Group("/mood-entries")
	moodRouter.Use(authMiddleware)
	{
		moodRouter.POST("", moodController.Create)
		moodRouter.GET("", moodController.List)
		moodRouter.PUT("/:id", moodController.Update)
		moodRouter.DELETE("/:id", moodController.Delete)
		moodRouter.POST("/:id/suggestion", moodController.Suggest)
	}
}
