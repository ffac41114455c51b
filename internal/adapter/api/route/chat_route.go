package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/adapter/api/controller"
)

// SetupChatRoutes configura as rotas do assistente de chat.
// O endpoint é público; o histórico é reenviado pelo cliente a cada turno
// e nenhum estado é mantido no servidor.
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController) {
	chatRouter := router.Group("/chat")
	{
		chatRouter.POST("/response", chatController.Respond)
	}
}
