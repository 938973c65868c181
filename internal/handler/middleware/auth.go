package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/usecase/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator auth.TokenValidator
}

const ctxActorKey = "actor"

var roleHierarchy = map[actor.Role]int{
	actor.RoleViewer:   1,
	actor.RoleOperator: 2,
	actor.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator auth.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		act, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxActorKey, act)
		c.Next()
	}
}

func hasMinimumRole(role, minRole actor.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOk := roleHierarchy[minRole]
	return ok && minOk && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		act, ok := GetActor(c)
		if !ok {
			// should be used after RequireAuth()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !hasMinimumRole(act.Role, minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

// GetActor returns the authenticated staff member set by RequireAuth.
func GetActor(c *gin.Context) (actor.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Actor{}, false
	}

	act, ok := v.(actor.Actor)
	return act, ok
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	act, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return act.ID, true
}
