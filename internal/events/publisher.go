package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const TypeBookingDeleted = "booking.deleted"

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busbooking_events_published_total",
		Help: "The total number of booking events published to Kafka",
	})
	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "busbooking_event_publish_errors_total",
		Help: "The total number of failed event publish attempts",
	})
)

// BookingDeleted is emitted after a booking and its payments are removed.
type BookingDeleted struct {
	Type            string    `json:"type"`
	BookingID       int64     `json:"bookingId"`
	PaymentsRemoved int64     `json:"paymentsRemoved"`
	RequestID       string    `json:"requestId,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type Publisher interface {
	PublishBookingDeleted(ctx context.Context, evt BookingDeleted) error
	Close() error
}

// New returns a Kafka publisher, or a no-op one when no brokers are configured.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}

// PublishTimeout bounds a single publish. Publishes happen on the request path
// after the database work has committed, so they are never retried.
const PublishTimeout = 2 * time.Second

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            1,
		ReadTimeout:            PublishTimeout,
		WriteTimeout:           PublishTimeout,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// PublishBookingDeleted keys the message by booking id so events for one booking stay ordered.
func (p *KafkaPublisher) PublishBookingDeleted(ctx context.Context, evt BookingDeleted) error {
	if evt.Type == "" {
		evt.Type = TypeBookingDeleted
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", evt.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.BookingID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(evt.Type)},
		},
	})
	if err != nil {
		publishErrors.Inc()
		return fmt.Errorf("failed to write message: %w", err)
	}
	eventsPublished.Inc()
	return nil
}

func (p *KafkaPublisher) Topic() string {
	return p.writer.Topic
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingDeleted(context.Context, BookingDeleted) error { return nil }
func (NoopPublisher) Close() error                                                { return nil }
