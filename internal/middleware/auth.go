package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/michemobile/marketplace-api/internal/config"
)

const (
	ContextUserID      = "userID"
	ContextProfileType = "profileType"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return authMiddleware(cfg, false)
}

// DemoAwareAuthMiddleware lets demo=true requests through without a
// token. The demo dataset carries no real user data, so it is served
// regardless of auth state; everything else still needs a bearer token.
func DemoAwareAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return authMiddleware(cfg, true)
}

func authMiddleware(cfg *config.Config, allowDemo bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowDemo && c.Query("demo") == "true" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		profileType, _ := claims["type"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextProfileType, profileType)

		c.Next()
	}
}
