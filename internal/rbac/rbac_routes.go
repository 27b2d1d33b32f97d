package rbac

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.GET("/permissions", handler.MyPermissions)
	}
}
