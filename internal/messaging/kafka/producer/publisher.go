package producer

import (
	"context"

	"go-payroll/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the part of *kafkago.Writer the relay uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func newMessage(event kafka.OutboxEvent) kafkago.Message {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	// Keyed by aggregate so one run's status changes stay ordered.
	return kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	}
}

func publishEvent(ctx context.Context, writer Writer, event kafka.OutboxEvent) error {
	return writer.WriteMessages(ctx, newMessage(event))
}
