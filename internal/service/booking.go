// Package service contains the business logic of the booking append endpoint.
// Services validate inputs and orchestrate repo and notifier calls.
// No SQL lives here; services depend on interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/repo"
)

// TimestampLayout formats the server-side "Time Submitted" cell.
const TimestampLayout = "2006-01-02 15:04:05"

// MsgMissingFields is the validation message for absent required fields.
const MsgMissingFields = "Missing required fields"

// Notifier announces persisted bookings. Failures are logged by the caller
// and never fail the submission.
type Notifier interface {
	BookingCreated(ctx context.Context, row domain.SheetRow, data domain.BookingData) error
}

// BookingService validates booking requests and appends them to the sheet.
type BookingService struct {
	sheets    repo.SheetRepo
	notifier  Notifier
	sheetName string
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// BookingOption customises a BookingService.
type BookingOption func(*BookingService)

// WithClock overrides the time source used for the submission timestamp.
func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) { s.now = now }
}

// WithLocation sets the zone the timestamp is rendered in. Defaults to UTC.
func WithLocation(loc *time.Location) BookingOption {
	return func(s *BookingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger sets the logger used for best-effort notification failures.
func WithLogger(log *slog.Logger) BookingOption {
	return func(s *BookingService) { s.log = log }
}

// NewBookingService constructs a BookingService writing to the sheet called
// sheetName. A nil notifier disables notifications.
func NewBookingService(sheets repo.SheetRepo, notifier Notifier, sheetName string, opts ...BookingOption) *BookingService {
	s := &BookingService{
		sheets:    sheets,
		notifier:  notifier,
		sheetName: sheetName,
		loc:       time.UTC,
		now:       time.Now,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates req, stamps it with the current time and appends one row.
// Returns a wrapped domain.ErrValidation when a required field is missing.
func (s *BookingService) Submit(ctx context.Context, req domain.BookingRequest) (domain.BookingData, error) {
	if missing := req.MissingRequired(); len(missing) > 0 {
		return domain.BookingData{}, fmt.Errorf("service.BookingService.Submit: %w: %s (%s)",
			domain.ErrValidation, MsgMissingFields, strings.Join(missing, ", "))
	}

	ts := s.now().In(s.loc).Format(TimestampLayout)

	row, err := s.sheets.Append(ctx, s.sheetName, req.Row(ts))
	if err != nil {
		return domain.BookingData{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}

	data := domain.BookingData{
		Tour:       req.Tour,
		Name:       req.Name,
		Phone:      req.Phone,
		Guests:     string(req.Guests),
		SelectDate: req.SelectDate,
		Timestamp:  ts,
	}

	if s.notifier != nil {
		if err := s.notifier.BookingCreated(ctx, row, data); err != nil {
			s.log.WarnContext(ctx, "booking notification failed", "row_id", row.ID, "error", err)
		}
	}
	return data, nil
}

// List returns the booking rows in append order.
func (s *BookingService) List(ctx context.Context) ([]domain.SheetRow, error) {
	rows, err := s.sheets.List(ctx, s.sheetName)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.List: %w", err)
	}
	return rows, nil
}
