package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"airseat/pkg/model"
)

// BookingEventPublisher publishes seat-booked events keyed by
// flight/seat, so all events for one seat share a partition.
type BookingEventPublisher struct {
	producer *Producer
}

func NewBookingEventPublisher(producer *Producer) *BookingEventPublisher {
	return &BookingEventPublisher{producer: producer}
}

func (p *BookingEventPublisher) PublishSeatBooked(ctx context.Context, event model.SeatBookedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal seat-booked event: %w", err)
	}

	return p.producer.Publish(ctx, Message{
		Key:       event.FlightID + "/" + event.SeatID,
		Value:     value,
		Timestamp: event.OccurredAt,
		Headers: map[string]string{
			"event-id": event.EventID,
		},
	})
}

func (p *BookingEventPublisher) Close() error {
	return p.producer.Close()
}
