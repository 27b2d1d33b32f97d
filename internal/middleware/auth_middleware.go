package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
	// ContextActor is the identity written to status_changed_by.
	ContextActor    = "actor"
	ContextClientID = "client_id"
)

// AuthMiddleware validates an HS256 bearer token (or access_token cookie) and
// exposes its user_id, email and role claims on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.AbortWithError(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortWithError(c, ErrTokenExpired)
				return
			}
			response.AbortWithError(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortWithError(c, ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.AbortWithError(c, ErrInvalidToken.WithDetails("user_id not found in token"))
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		actor := email
		if actor == "" {
			actor = userID
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Set(ContextRole, strings.ToUpper(role))
		c.Set(ContextActor, actor)

		c.Next()
	}
}
