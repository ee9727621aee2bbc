package middleware

import (
	"net/http"
	"strings"

	"github.com/Bobur2828/Technical-assignment/pkg/jwt"
	"github.com/Bobur2828/Technical-assignment/pkg/session"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects the request with 401 unless it carries a valid bearer
// token whose session is still registered. On success the principal's id,
// role and session id are stored on the context.
func RequireAuth(jwtService *jwt.Service, sessions session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, jwtService, sessions)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status": "fail",
				"data":   gin.H{"message": "Authentication required"},
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Set("session_id", claims.ID)
		c.Next()
	}
}

// OptionalAuth resolves a principal when a valid live token is supplied and
// leaves the request anonymous otherwise. It never rejects.
func OptionalAuth(jwtService *jwt.Service, sessions session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveClaims(c, jwtService, sessions); ok {
			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			c.Set("session_id", claims.ID)
		}
		c.Next()
	}
}

func resolveClaims(c *gin.Context, jwtService *jwt.Service, sessions session.Registry) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}

	// A logged-out token still has a valid signature; the session registry
	// is the source of truth.
	if sessions != nil {
		alive, err := sessions.Exists(c.Request.Context(), claims.ID)
		if err != nil || !alive {
			return nil, false
		}
	}

	return claims, true
}
