package middleware

import (
	"context"
	"strings"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/security"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and injects the user identity
// into the request context. Tokens revoked on logout are rejected through
// the redis blacklist.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "требуется вход")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "требуется вход")
			c.Abort()
			return
		}

		if redis.GetRdbClient() != nil {
			value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature)
			if err != nil {
				response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
				c.Abort()
				return
			}
			if value != "" {
				response.Fail(c, response.Unauthorized, "сессия завершена, войдите снова")
				c.Abort()
				return
			}
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "недействительный токен")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
