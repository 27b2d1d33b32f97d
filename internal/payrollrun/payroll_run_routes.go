package payrollrun

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouteDeps struct {
	JWTSecret string
	Enforcer  middleware.Enforcer
	Owners    middleware.ClientOwnerChecker
	Redis     *redis.Client
	Logger    *zap.Logger
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, deps RouteDeps) {
	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(deps.Enforcer, rbac.ResourcePayrollRun, action)
	}

	runs := r.Group("/clients/:client_id/payroll-runs")
	runs.Use(middleware.AuthMiddleware(deps.JWTSecret))
	runs.Use(middleware.ContextLogger(deps.Logger))
	runs.Use(middleware.ClientOwnership(deps.Owners))
	{
		runs.GET("", middleware.RateLimitByUser(3, 10), authorize(rbac.ActionRead), handler.GetAll)
		runs.GET("/:id", middleware.RateLimitByUser(3, 10), authorize(rbac.ActionRead), handler.GetById)
		runs.GET("/:id/totals", authorize(rbac.ActionRead), handler.Totals)
		runs.GET("/:id/readiness", authorize(rbac.ActionRead), handler.Readiness)
		runs.GET("/:id/entries/:employee_id/paystub",
			middleware.RateLimitByUser(1, 5),
			authorize(rbac.ActionRead),
			handler.DownloadPayStub,
		)

		if deps.Redis != nil {
			runs.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.Idempotency(deps.Redis),
				authorize(rbac.ActionCreate),
				handler.Create,
			)
		} else {
			runs.POST("", middleware.RateLimitByUser(0.5, 2), authorize(rbac.ActionCreate), handler.Create)
		}
		runs.PATCH("/:id", authorize(rbac.ActionUpdate), handler.Update)
		runs.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), authorize(rbac.ActionDelete), handler.Delete)

		runs.POST("/:id/employees", authorize(rbac.ActionUpdate), handler.AddEmployee)
		runs.DELETE("/:id/employees/:employee_id", authorize(rbac.ActionUpdate), handler.RemoveEmployee)
		runs.POST("/:id/recalculate", middleware.RateLimitByUser(0.5, 2), authorize(rbac.ActionUpdate), handler.Recalculate)
		runs.POST("/:id/entries/:employee_id/recalculate", authorize(rbac.ActionUpdate), handler.RecalculateEntry)

		runs.POST("/:id/transitions", authorize(rbac.ActionRead), handler.Transition)
		runs.POST("/:id/submit", authorize(StatusReview.Action()), handler.TransitionTo(StatusReview))
		runs.POST("/:id/return-to-draft", authorize(StatusDraft.Action()), handler.TransitionTo(StatusDraft))
		runs.POST("/:id/approve", authorize(StatusApproved.Action()), handler.TransitionTo(StatusApproved))
		runs.POST("/:id/process", authorize(StatusProcessed.Action()), handler.TransitionTo(StatusProcessed))
		runs.POST("/:id/void", authorize(StatusVoided.Action()), handler.TransitionTo(StatusVoided))
	}
}
