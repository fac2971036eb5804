// Package notify publishes booking events to NATS so downstream consumers
// (confirmation messages, staff dashboards) learn about new bookings without
// polling the sheet.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/pkordes/tourdesk/internal/domain"
)

// SubjectBookingCreated is published once per appended booking row.
const SubjectBookingCreated = "booking.created"

// BookingCreatedEvent is the JSON payload of SubjectBookingCreated.
type BookingCreatedEvent struct {
	RowID     uuid.UUID          `json:"row_id"`
	Sheet     string             `json:"sheet"`
	Booking   domain.BookingData `json:"booking"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewBookingCreatedEvent builds the event for a persisted row.
func NewBookingCreatedEvent(row domain.SheetRow, data domain.BookingData) BookingCreatedEvent {
	return BookingCreatedEvent{
		RowID:     row.ID,
		Sheet:     row.SheetName,
		Booking:   data,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

// NATSPublisher publishes booking events on a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
	log  *slog.Logger
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string, log *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("tourdesk-api"),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("notify.NewNATSPublisher: connect: %w", err)
	}
	return &NATSPublisher{conn: conn, log: log}, nil
}

// BookingCreated publishes a BookingCreatedEvent for row.
func (p *NATSPublisher) BookingCreated(ctx context.Context, row domain.SheetRow, data domain.BookingData) error {
	payload, err := json.Marshal(NewBookingCreatedEvent(row, data))
	if err != nil {
		return fmt.Errorf("notify.NATSPublisher.BookingCreated: marshal: %w", err)
	}

	p.log.DebugContext(ctx, "publishing event", "subject", SubjectBookingCreated, "row_id", row.ID)

	if err := p.conn.Publish(SubjectBookingCreated, payload); err != nil {
		return fmt.Errorf("notify.NATSPublisher.BookingCreated: publish: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("notify.NATSPublisher.Close: %w", err)
	}
	return nil
}

// Nop discards every event. Used when no NATS_URL is configured.
type Nop struct{}

// BookingCreated does nothing.
func (Nop) BookingCreated(context.Context, domain.SheetRow, domain.BookingData) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }
