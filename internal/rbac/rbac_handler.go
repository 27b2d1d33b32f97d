package rbac

import (
	"net/http"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// MyPermissions lists what the caller's role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	role := c.GetString(middleware.ContextRole)
	if role == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.Permissions(role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        role,
		Permissions: perms,
	}, nil)
}
