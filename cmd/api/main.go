package main

import (
	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.DefaultServerConfig(cfg.Port),
		bootstrap.NewStdoutAuditLogger(logger),
	)
}
