package events

import (
	"context"
	"testing"
)

func TestNewWithoutBrokersIsNoop(t *testing.T) {
	p := New(nil, "booking-events")
	if _, ok := p.(NoopPublisher); !ok {
		t.Fatalf("expected NoopPublisher, got %T", p)
	}
	if err := p.PublishBookingDeleted(context.Background(), BookingDeleted{BookingID: 1}); err != nil {
		t.Fatalf("noop publish returned error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("noop close returned error: %v", err)
	}
}

func TestNewWithBrokersIsKafka(t *testing.T) {
	p := New([]string{"localhost:9092"}, "booking-events")
	kp, ok := p.(*KafkaPublisher)
	if !ok {
		t.Fatalf("expected *KafkaPublisher, got %T", p)
	}
	defer kp.Close()
	if kp.Topic() != "booking-events" {
		t.Fatalf("unexpected topic %q", kp.Topic())
	}
	if kp.writer.MaxAttempts != 1 || kp.writer.WriteTimeout != PublishTimeout {
		t.Fatalf("publisher must not retry on the request path: attempts=%d timeout=%s",
			kp.writer.MaxAttempts, kp.writer.WriteTimeout)
	}
}
