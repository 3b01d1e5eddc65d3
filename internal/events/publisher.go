package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TripPlanned is published once a trip and its logs are stored.
type TripPlanned struct {
	TripID              string    `json:"trip_id"`
	PickupLocation      string    `json:"pickup_location"`
	DropoffLocation     string    `json:"dropoff_location"`
	StartDate           string    `json:"start_date"`
	Days                int       `json:"days"`
	TotalMiles          float64   `json:"total_miles"`
	ProjectedCycleHours float64   `json:"projected_cycle_hours"`
	Compliant           bool      `json:"compliant"`
	Violations          []string  `json:"violations"`
	PlannedAt           time.Time `json:"planned_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) PublishTripPlanned(ctx context.Context, event TripPlanned) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode trip planned event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.TripID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("trip.planned")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish trip %s: %w", event.TripID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishTripPlanned(context.Context, TripPlanned) error { return nil }

func (NopPublisher) Close() error { return nil }
