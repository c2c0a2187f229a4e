package worker

import (
	"context"
	"errors"
	"time"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Worker struct {
	logger    *logger.Logger
	reader    messageReader
	processor *processors.EventProcessor
}

func New(cfg *config.Config, logger *logger.Logger, stock processors.StockApplier) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokerList(),
		GroupID:        cfg.KafkaGroupID,
		Topic:          cfg.KafkaStockTopic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		logger:    logger,
		reader:    reader,
		processor: processors.NewEventProcessor(logger, stock),
	}
}

// Start consumes stock events until ctx is cancelled. Malformed or failing
// events are logged and skipped.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Worker started, listening for stock events...")

	for {
		message, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		event, err := events.Decode(message.Value)
		if err != nil {
			w.logger.Error("%v", err)
			continue
		}

		if err := w.processor.Process(ctx, event); err != nil {
			w.logger.Error("Failed to process event: %v", err)
			continue
		}
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
