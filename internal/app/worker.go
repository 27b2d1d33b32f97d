package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/config"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/producer"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.MaxConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	broker, err := connection.BrokerAddr(cfg.KafkaBroker)
	if err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(broker, cfg.MaxConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
