package middleware

import (
	"net/http"
	"strings"

	"vidmint/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "vidmint_session"

// SessionChecker is satisfied by the session repository. The opaque token inside
// the JWT must still exist server-side, so deleting a session row forces logout.
type SessionChecker interface {
	SessionExists(token, audience string) (bool, error)
}

func AuthMiddleware(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return requireAudience(jwtService, sessions, "user")
}

func AdminMiddleware(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return requireAudience(jwtService, sessions, "admin")
}

func requireAudience(jwtService *jwt.Service, sessions SessionChecker, audience string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if claims.Role != audience {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if sessions != nil {
			ok, err := sessions.SessionExists(claims.SessionToken, audience)
			if err != nil || !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Set("session_token", claims.SessionToken)
		c.Next()
	}
}

// extractToken prefers the HTTP-only session cookie and falls back to a Bearer
// header for API clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
