// Package handler implements the HTTP handlers for the tour desk API.
// All handlers are methods on Server. They are split into files by resource
// (health.go, tour.go, booking.go, export.go) and registered by Routes.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tourdesk/api"
	"github.com/pkordes/tourdesk/internal/domain"
)

// TourCataloguer defines the read-only catalogue queries the tour handlers
// depend on. *catalogue.Catalogue satisfies it.
type TourCataloguer interface {
	All() []domain.Tour
	BySlugOrID(key string) (domain.Tour, bool)
	ByCity(city string) []domain.Tour
	Featured() []domain.Tour
	SpecialTrip() (domain.Tour, bool)
	Cities() []string
}

// BookingServicer defines the business operations the booking handlers
// depend on. Defining it here lets handler tests inject a mock without a
// database.
type BookingServicer interface {
	Submit(ctx context.Context, req domain.BookingRequest) (domain.BookingData, error)
	List(ctx context.Context) ([]domain.SheetRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	tours      TourCataloguer
	bookings   BookingServicer
	log        *slog.Logger
	exportable bool
	whatsApp   string
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the logger used for handler-level failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithExport mounts GET /bookings/export. It is off by default because the
// export contains customer phone numbers.
func WithExport(enabled bool) Option {
	return func(s *Server) { s.exportable = enabled }
}

// WithWhatsApp sets the agency number used to build contact_url links.
// Tours carry no contact_url without it.
func WithWhatsApp(number string) Option {
	return func(s *Server) { s.whatsApp = number }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tours TourCataloguer, bookings BookingServicer, opts ...Option) *Server {
	s := &Server{tours: tours, bookings: bookings, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns a router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/cities", s.ListCities)
	r.Route("/tours", func(r chi.Router) {
		r.Get("/", s.ListTours)
		r.Get("/featured", s.ListFeaturedTours)
		r.Get("/special", s.GetSpecialTour)
		r.Get("/{key}", s.GetTour)
	})

	r.Post("/bookings", s.CreateBooking)
	if s.exportable {
		r.Get("/bookings/export", s.GetBookingExport)
	}
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(api.OpenAPI)
}

// writeJSON encodes body as JSON with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
