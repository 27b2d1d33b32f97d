package middleware

import (
	"context"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ClientOwnerChecker is satisfied by client.Repository.
type ClientOwnerChecker interface {
	IsOwnedBy(ctx context.Context, clientID, userID string) (bool, error)
}

// ClientOwnership rejects requests for a :client_id the caller does not own.
// Unknown and foreign clients both answer 404.
func ClientOwnership(checker ClientOwnerChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.Param("client_id")
		userID := c.GetString(ContextUserID)
		if clientID == "" || userID == "" {
			response.AbortWithError(c, ErrClientNotOwned)
			return
		}

		owned, err := checker.IsOwnedBy(c.Request.Context(), clientID, userID)
		if err != nil {
			response.AbortWithError(c, apperror.ErrInternal.WithCause(err))
			return
		}
		if !owned {
			response.AbortWithError(c, ErrClientNotOwned)
			return
		}

		c.Set(ContextClientID, clientID)
		c.Next()
	}
}
