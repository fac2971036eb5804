package handler

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/tourdesk/internal/domain"
)

// TourResponse is the JSON representation of a catalogue tour.
type TourResponse struct {
	ID                    string                  `json:"id"`
	Slug                  string                  `json:"slug"`
	Title                 string                  `json:"title"`
	Description           string                  `json:"description"`
	FullDescription       string                  `json:"full_description"`
	Image                 string                  `json:"image"`
	Price                 int                     `json:"price"`
	Currency              string                  `json:"currency"`
	PriceLabel            string                  `json:"price_label"`
	Duration              string                  `json:"duration"`
	Location              string                  `json:"location"`
	City                  string                  `json:"city"`
	Rating                float64                 `json:"rating"`
	MaxGuests             int                     `json:"max_guests"`
	Featured              bool                    `json:"featured"`
	Special               bool                    `json:"special"`
	RequiresDateSelection bool                    `json:"requires_date_selection"`
	Itinerary             []ItineraryLineResponse `json:"itinerary"`
	Includes              []string                `json:"includes"`
	Excludes              []string                `json:"excludes"`
	GalleryImages         []string                `json:"gallery_images,omitempty"`
	ContactURL            string                  `json:"contact_url,omitempty"`
}

// ItineraryLineResponse is one rendered itinerary line.
type ItineraryLineResponse struct {
	Kind   string `json:"kind"`
	Day    int    `json:"day,omitempty"`
	Number int    `json:"number,omitempty"`
	Text   string `json:"text"`
}

// TourPage is the body of GET /tours.
type TourPage struct {
	Data       []TourResponse `json:"data"`
	Pagination PageMeta       `json:"pagination"`
}

// PageMeta describes the window returned by a paginated endpoint.
type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListToursParams are the query parameters of GET /tours.
type ListToursParams struct {
	City  *string
	Page  *int
	Limit *int
}

// ListCities handles GET /cities.
func (s *Server) ListCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.tours.Cities())
}

// ListTours handles GET /tours?city=&page=&limit=.
// An omitted city means "All"; an unknown city yields an empty page.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	var params ListToursParams
	q := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "city", q, &params.City); err != nil {
		writeBadRequest(w, "invalid format for parameter city: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &params.Page); err != nil {
		writeBadRequest(w, "invalid format for parameter page: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &params.Limit); err != nil {
		writeBadRequest(w, "invalid format for parameter limit: "+err.Error())
		return
	}

	city := domain.CityAll
	if params.City != nil && *params.City != "" {
		city = *params.City
	}

	tours := s.tours.ByCity(city)
	p := domain.NewPaginationParams(params.Page, params.Limit)

	writeJSON(w, http.StatusOK, TourPage{
		Data:       s.toTourResponses(domain.Paginate(tours, p)),
		Pagination: PageMeta{Page: p.Page, Limit: p.Limit, Total: len(tours)},
	})
}

// ListFeaturedTours handles GET /tours/featured.
func (s *Server) ListFeaturedTours(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.toTourResponses(s.tours.Featured()))
}

// GetSpecialTour handles GET /tours/special.
func (s *Server) GetSpecialTour(w http.ResponseWriter, _ *http.Request) {
	t, ok := s.tours.SpecialTrip()
	if !ok {
		writeNotFound(w, "no special trip")
		return
	}
	writeJSON(w, http.StatusOK, s.toTourResponse(t))
}

// GetTour handles GET /tours/{key}, where key is a slug or a tour id.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	var key string
	err := runtime.BindStyledParameterWithOptions("simple", "key", chi.URLParam(r, "key"), &key,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeBadRequest(w, "invalid format for parameter key: "+err.Error())
		return
	}

	t, ok := s.tours.BySlugOrID(key)
	if !ok {
		writeNotFound(w, "tour not found")
		return
	}
	writeJSON(w, http.StatusOK, s.toTourResponse(t))
}

func (s *Server) toTourResponses(tours []domain.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, s.toTourResponse(t))
	}
	return out
}

// toTourResponse renders t. ContactURL is a WhatsApp inquiry link about t,
// set only when the server knows the agency number.
func (s *Server) toTourResponse(t domain.Tour) TourResponse {
	lines := make([]ItineraryLineResponse, 0, len(t.Itinerary))
	for _, l := range t.Itinerary {
		lines = append(lines, ItineraryLineResponse{
			Kind:   string(l.Kind),
			Day:    l.Day,
			Number: l.Number,
			Text:   l.Text,
		})
	}
	return TourResponse{
		ID:                    t.ID,
		Slug:                  t.DerivedSlug(),
		Title:                 t.Title,
		Description:           t.Description,
		FullDescription:       t.FullDescription,
		Image:                 t.Image,
		Price:                 t.Price,
		Currency:              t.Currency(),
		PriceLabel:            t.PriceLabel(),
		Duration:              t.Duration,
		Location:              t.Location,
		City:                  t.City,
		Rating:                t.Rating,
		MaxGuests:             t.MaxGuests,
		Featured:              t.Featured,
		Special:               t.Special,
		RequiresDateSelection: t.RequiresDateSelection,
		Itinerary:             lines,
		Includes:              nonNil(t.Includes),
		Excludes:              nonNil(t.Excludes),
		GalleryImages:         t.GalleryImages,
		ContactURL:            s.contactURL(domain.InquiryMessage(t.Title)),
	}
}

func (s *Server) contactURL(text string) string {
	if s.whatsApp == "" {
		return ""
	}
	return domain.WhatsAppURL(s.whatsApp, text)
}

// nonNil returns a copy of s that encodes as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
