package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "go-payroll-audit"

// RunConsumer feeds payroll run and employee events into the audit trail
// until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	broker, err := connection.BrokerAddr(cfg.KafkaBroker)
	if err != nil {
		return err
	}

	newReader := func(topic string) *kafkago.Reader {
		return kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          topic,
			GroupID:        consumerGroupID,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
	}
	statusReader := newReader(events.PayrollRunStatusTopic)
	defer statusReader.Close()
	employeeReader := newReader(events.EmployeeCreatedTopic)
	defer employeeReader.Close()

	audit := bootstrap.NewStdoutAuditLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumePayrollRunStatus(ctx, statusReader, audit, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, employeeReader, audit, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
