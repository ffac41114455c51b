package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Chaves de contexto preenchidas pelo middleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// unauthorizedBody é o corpo de resposta para requisições não autenticadas
var unauthorizedBody = gin.H{
	"error":   "Unauthorized",
	"message": "User not authenticated",
}

// Middleware cria um middleware gin que resolve a credencial Bearer do
// cabeçalho Authorization em uma identidade de usuário no contexto.
// Requisições sem credencial válida são rejeitadas com 401 antes de
// qualquer mudança de estado.
func Middleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		// Verificar o formato "Bearer <token>"
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// Validar o token
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		// Adicionar a identidade ao contexto
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// UserIDFromContext retorna o ID do usuário autenticado no contexto
func UserIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
