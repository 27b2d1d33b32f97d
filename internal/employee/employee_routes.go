package employee

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouteDeps struct {
	JWTSecret string
	Enforcer  middleware.Enforcer
	Owners    middleware.ClientOwnerChecker
	Logger    *zap.Logger
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, deps RouteDeps) {
	employees := r.Group("/clients/:client_id/employees")
	employees.Use(middleware.AuthMiddleware(deps.JWTSecret))
	employees.Use(middleware.ContextLogger(deps.Logger))
	employees.Use(middleware.ClientOwnership(deps.Owners))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(deps.Enforcer, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(deps.Enforcer, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(deps.Enforcer, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetById,
		)

		employees.GET("/:id/pay-estimate",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(deps.Enforcer, rbac.ResourceEmployee, rbac.ActionEstimate),
			handler.PayEstimate,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(deps.Enforcer, rbac.ResourceEmployee, rbac.ActionCreate),
			handler.Create,
		)
	}
}
