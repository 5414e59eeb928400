package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/UNI-F-2025/campus-service/internal/models"
	"github.com/UNI-F-2025/campus-service/internal/services"
)

const sessionContextKey = "session"

// AuthManager validates bearer tokens and enforces role requirements.
type AuthManager struct {
	jwtSecret []byte
}

func NewAuthManager(jwtSecret string) *AuthManager {
	return &AuthManager{jwtSecret: []byte(jwtSecret)}
}

// AuthMiddleware parses the Authorization header and stores the session in
// the request context.
func (am *AuthManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthorized",
				Details: "authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthorized",
				Details: "invalid authorization header format",
			})
			c.Abort()
			return
		}

		session, err := services.ParseSession(tokenParts[1], am.jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthorized",
				Details: "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Set("user_id", session.UserID)
		c.Set("user_role", session.Role)
		c.Set("campus_id", session.CampusID)

		c.Next()
	}
}

// RequireRoleMiddleware admits the listed roles. Admins always pass.
func (am *AuthManager) RequireRoleMiddleware(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSessionFromContext(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthorized",
			})
			c.Abort()
			return
		}

		if session.IsAdmin() {
			c.Next()
			return
		}

		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
			Details: "insufficient role",
		})
		c.Abort()
	}
}

// GetSessionFromContext returns the session set by AuthMiddleware, or nil.
func GetSessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
