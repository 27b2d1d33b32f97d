package middleware

import (
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is satisfied by rbac.Service.
type Enforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.AbortWithError(c, apperror.ErrInternal.WithCause(err))
			return
		}

		if !allowed {
			response.AbortWithError(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
