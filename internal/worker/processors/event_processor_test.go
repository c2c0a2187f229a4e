package processors

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/events"
	"storefront/internal/logger"
)

type recordingApplier struct {
	productID string
	change    events.StockChanged
	calls     int
	err       error
}

func (r *recordingApplier) ApplyStockChange(ctx context.Context, productID string, change events.StockChanged) error {
	r.calls++
	r.productID = productID
	r.change = change
	return r.err
}

func TestProcess_StockChanged(t *testing.T) {
	applier := &recordingApplier{}
	ep := NewEventProcessor(logger.Nop(), applier)

	event, _ := events.NewEvent(events.TypeVariantStockChanged, "prod-1", events.StockChanged{VariantID: "v1", Stock: 9})
	if err := ep.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if applier.calls != 1 || applier.productID != "prod-1" || applier.change.VariantID != "v1" || applier.change.Stock != 9 {
		t.Errorf("unexpected apply call %+v", applier)
	}
}

func TestProcess_SkipsOtherTypes(t *testing.T) {
	applier := &recordingApplier{}
	ep := NewEventProcessor(logger.Nop(), applier)

	event, _ := events.NewEvent(events.TypeCartItemAdded, "prod-1", map[string]int{"quantity": 1})
	if err := ep.Process(context.Background(), event); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if applier.calls != 0 {
		t.Error("expected cart events to be ignored")
	}
}

func TestProcess_Errors(t *testing.T) {
	boom := errors.New("db down")
	ep := NewEventProcessor(logger.Nop(), &recordingApplier{err: boom})

	event, _ := events.NewEvent(events.TypeVariantStockChanged, "prod-1", events.StockChanged{VariantID: "v1", Stock: 1})
	if err := ep.Process(context.Background(), event); !errors.Is(err, boom) {
		t.Errorf("expected wrapped apply error, got %v", err)
	}

	missing, _ := events.NewEvent(events.TypeVariantStockChanged, "prod-1", events.StockChanged{Stock: 1})
	if err := ep.Process(context.Background(), missing); err == nil {
		t.Error("expected error for missing variant id")
	}

	bad := events.Event{Type: events.TypeVariantStockChanged, ProductID: "prod-1", Data: []byte(`"nope"`)}
	if err := ep.Process(context.Background(), bad); err == nil {
		t.Error("expected error for malformed payload")
	}
}
