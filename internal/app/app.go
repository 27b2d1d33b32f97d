package app

import (
	"go-payroll/internal/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewLogger builds the process logger for cfg's environment.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// BuildApp connects the stores and registers every route on router. The
// returned func closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.MaxConnectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	// Redis backs idempotent creates and the employee picker cache. Both
	// degrade to uncached behaviour without it.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxConnectRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency and caching disabled")
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, zap.L()); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
