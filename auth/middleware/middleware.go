package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qrforge/qrforge-backend/auth"
)

// AuthRequired blocks the request unless a valid Bearer access token is
// presented. Handlers behind it can rely on "userID" being set.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Sign in required",
				"code":  "AUTH_REQUIRED",
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// AuthOptional sets "userID" when a valid token is presented and continues
// unauthenticated otherwise.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func bearerUserID(c *gin.Context) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	userID, err := auth.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	parsed, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}
