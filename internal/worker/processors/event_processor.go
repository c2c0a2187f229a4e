package processors

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/events"
	"storefront/internal/logger"
)

// StockApplier receives decoded stock changes.
type StockApplier interface {
	ApplyStockChange(ctx context.Context, productID string, change events.StockChanged) error
}

type EventProcessor struct {
	logger *logger.Logger
	stock  StockApplier
}

func NewEventProcessor(logger *logger.Logger, stock StockApplier) *EventProcessor {
	return &EventProcessor{
		logger: logger,
		stock:  stock,
	}
}

// Process dispatches an event by type. Unknown types are skipped.
func (ep *EventProcessor) Process(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.TypeVariantStockChanged:
		var change events.StockChanged
		if err := json.Unmarshal(event.Data, &change); err != nil {
			return fmt.Errorf("invalid %s payload: %w", event.Type, err)
		}
		if event.ProductID == "" || change.VariantID == "" {
			return fmt.Errorf("%s event without product or variant id", event.Type)
		}
		if err := ep.stock.ApplyStockChange(ctx, event.ProductID, change); err != nil {
			return fmt.Errorf("failed to apply stock change: %w", err)
		}
		ep.logger.Debug("variant %s of product %s now has stock %d", change.VariantID, event.ProductID, change.Stock)
	default:
		ep.logger.Debug("skipping event type %s", event.Type)
	}
	return nil
}
