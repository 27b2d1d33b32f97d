package app

import (
	"context"
	"database/sql"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/client"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/paycalc"
	"go-payroll/internal/payrollrun"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRunRepo := payrollrun.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, cfg.RBACPolicyPath != "", logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Payroll math ---
	tables, err := paycalc.LoadTables(cfg.TaxTablesPath)
	if err != nil {
		return err
	}
	calculator := paycalc.NewCalculator(tables, logger)

	// --- Services ---
	employeeService := employee.NewService(employee.ServiceDeps{
		DB:         db,
		Repo:       employeeRepo,
		Clients:    clientRepo,
		Calculator: calculator,
		Outbox:     outboxRepo,
		Redis:      rdb,
	}, logger)
	payrollRunService := payrollrun.NewService(payrollrun.ServiceDeps{
		DB:         db,
		Repo:       payrollRunRepo,
		Employees:  employeeRepo,
		Clients:    clientRepo,
		Calculator: calculator,
		Outbox:     outboxRepo,
		Audit:      bootstrap.NewStdoutAuditLogger(logger),
	}, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollRunHandler := payrollrun.NewHandler(payrollRunService, payrollrun.HandlerOptions{
		Enforcer:   rbacService,
		Idempotent: middleware.NewIdempotent(rdb),
	}, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	{
		employee.RegisterRoutes(api, employeeHandler, employee.RouteDeps{
			JWTSecret: cfg.JWTSecret,
			Enforcer:  rbacService,
			Owners:    clientRepo,
			Logger:    logger,
		})
		payrollrun.RegisterRoutes(api, payrollRunHandler, payrollrun.RouteDeps{
			JWTSecret: cfg.JWTSecret,
			Enforcer:  rbacService,
			Owners:    clientRepo,
			Redis:     rdb,
			Logger:    logger,
		})
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWTSecret)
	}

	return nil
}
