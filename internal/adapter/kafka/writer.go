package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/driftline/argo-geo-etl/internal/config"
	"github.com/driftline/argo-geo-etl/internal/domain"
)

// Writer produces filtered float events to the sink topic and implements
// pipeline.BatchLoader.
type Writer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	return &Writer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaSinkTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			BatchSize:    cfg.BatchSize,
		},
		logger: logger,
	}
}

// LoadBatch serializes the events and writes them in a single produce call.
// Either the whole batch is accepted or the call fails and the pipeline
// retries it; offsets stay uncommitted until the write succeeds.
func (w *Writer) LoadBatch(ctx context.Context, events []domain.FloatEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := serializeToMessage(event)
		if err != nil {
			return fmt.Errorf("serialize event %s: %w", event.ID, err)
		}
		messages = append(messages, msg)
	}

	if err := w.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(messages), err)
	}
	return nil
}

// serializeToMessage converts a float event to a Kafka message keyed by
// platform so each float's reports stay ordered within a partition.
func serializeToMessage(event domain.FloatEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.Platform),
		Value: value,
		Headers: []kafka.Header{
			{Key: "platform", Value: []byte(event.Platform)},
			{Key: "processed_at", Value: []byte(event.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}

// Close flushes and shuts down the underlying Kafka writer.
func (w *Writer) Close() error {
	return w.writer.Close()
}
