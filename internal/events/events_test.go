package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublish_KeysByProduct(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	event, err := NewEvent(TypeVariantStockChanged, "prod-1", StockChanged{VariantID: "v1", Stock: 4})
	if err != nil {
		t.Fatalf("NewEvent returned error: %v", err)
	}
	if err := p.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "prod-1" {
		t.Errorf("expected key prod-1, got %q", w.msgs[0].Key)
	}

	decoded, err := Decode(w.msgs[0].Value)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	var payload StockChanged
	if err := json.Unmarshal(decoded.Data, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if decoded.Type != TypeVariantStockChanged || payload.VariantID != "v1" || payload.Stock != 4 {
		t.Errorf("unexpected event %+v payload %+v", decoded, payload)
	}
}

func TestPublish_WrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &fakeWriter{err: boom}}

	event, _ := NewEvent(TypeCartItemAdded, "prod-1", map[string]int{"quantity": 1})
	if err := p.Publish(context.Background(), event); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestDecode_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"not json", `{"product_id":"p"}`} {
		if _, err := Decode([]byte(raw)); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
