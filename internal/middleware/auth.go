package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// SessionMiddleware verifies the session token from the authToken cookie
// (or a Bearer header as fallback) and stores the verified claims in the
// request context. Every verification failure is the same 401.
func SessionMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionTokenFromRequest(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidSession)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// OwnerMiddleware allows only users whose verified token carries the
// owner role. The check runs on the token claim, never on stored state.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		role, ok := roleVal.(string)
		if !exists || !ok || role != string(models.UserTypeOwner) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Forbidden: Admin access only"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user's id from the context.
func SessionUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := val.(uint)
	return userID, ok
}

// SessionRole returns the authenticated user's role from the context.
func SessionRole(c *gin.Context) string {
	val, exists := c.Get(ContextRoleKey)
	if !exists {
		return ""
	}
	role, _ := val.(string)
	return role
}

func sessionTokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
