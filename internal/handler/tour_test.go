package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/catalogue"
	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/handler"
)

// newTourHTTPHandler wires a Server backed by the static catalogue.
func newTourHTTPHandler() http.Handler {
	return handler.NewServer(catalogue.Default(), nil).Routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tourIDs(tours []handler.TourResponse) []string {
	ids := make([]string, 0, len(tours))
	for _, t := range tours {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestListCities(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/cities")

	require.Equal(t, http.StatusOK, rec.Code)
	var cities []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cities))
	assert.Equal(t, []string{"All", "Cairo", "Alexandria", "Luxor", "Aswan"}, cities)
}

func TestListTours_DefaultsToAllFirstPage(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.TourPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, handler.PageMeta{Page: 1, Limit: 20, Total: 13}, page.Pagination)
	assert.Len(t, page.Data, 13)
	assert.Equal(t, "1", page.Data[0].ID)
}

func TestListTours_CityFilterKeepsNewestFirstOrder(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?city=Aswan")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.TourPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, []string{"13", "12", "10", "9", "8", "7", "6"}, tourIDs(page.Data))
}

func TestListTours_Pagination(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?page=2&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.TourPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, tourIDs(page.Data))
	assert.Equal(t, 13, page.Pagination.Total)
}

func TestListTours_PastLastPageIsEmptyArray(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?page=9")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTours_HugePageIsEmptyArray(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?page=461168601842738792")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.TourPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Empty(t, page.Data)
	assert.Equal(t, 13, page.Pagination.Total)
}

func TestListTours_UnknownCityIsEmpty(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?city=Paris")

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.TourPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pagination.Total)
}

func TestListTours_MalformedPageIs400(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours?page=two")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)
}

func TestListFeaturedTours(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/featured")

	require.Equal(t, http.StatusOK, rec.Code)
	var tours []handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tours))
	assert.Equal(t, []string{"1", "2", "4", "7", "11", "12", "13"}, tourIDs(tours))
}

func TestGetSpecialTour(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/special")

	require.Equal(t, http.StatusOK, rec.Code)
	var tour handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	assert.Equal(t, "13", tour.ID)
	assert.True(t, tour.Special)
	assert.Equal(t, domain.CurrencyEGP, tour.Currency)
	assert.Equal(t, "11,500 EGP", tour.PriceLabel)
}

func TestGetSpecialTour_NoneIs404(t *testing.T) {
	cat := catalogue.MustNew([]domain.Tour{{ID: "1", Title: "Solo", City: "Cairo", MaxGuests: 2}})
	h := handler.NewServer(cat, nil).Routes()

	rec := get(t, h, "/tours/special")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
}

func TestGetTour_BySlug(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/nile-felucca-sunset-cruise-luxor")

	require.Equal(t, http.StatusOK, rec.Code)
	var tour handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	assert.Equal(t, "11", tour.ID)
	assert.Equal(t, "nile-felucca-sunset-cruise-luxor", tour.Slug)
	assert.Equal(t, "$", tour.PriceLabel[:1])
}

func TestGetTour_ByID(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/12")

	require.Equal(t, http.StatusOK, rec.Code)
	var tour handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	assert.Equal(t, "12", tour.ID)
	assert.True(t, tour.RequiresDateSelection)
	assert.NotEmpty(t, tour.GalleryImages)
}

func TestGetTour_RendersItineraryLines(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/8")

	require.Equal(t, http.StatusOK, rec.Code)
	var tour handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	require.NotEmpty(t, tour.Itinerary)
	for _, l := range tour.Itinerary {
		assert.Contains(t, []string{"day_header", "bullet", "section", "step"}, l.Kind)
		assert.NotEmpty(t, l.Text)
		if l.Kind == "step" {
			assert.Positive(t, l.Number)
		}
	}
}

func TestGetTour_UnknownIs404(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/atlantis")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "tour not found", body.Error.Message)
}

func TestGetSpecialTour_ContactURL(t *testing.T) {
	h := handler.NewServer(catalogue.Default(), nil, handler.WithWhatsApp("201507000720")).Routes()
	special, ok := catalogue.Default().SpecialTrip()
	require.True(t, ok)

	rec := get(t, h, "/tours/special")

	require.Equal(t, http.StatusOK, rec.Code)
	var tour handler.TourResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tour))
	assert.Equal(t, domain.WhatsAppURL("201507000720", domain.InquiryMessage(special.Title)), tour.ContactURL)
	assert.Contains(t, tour.ContactURL, "https://wa.me/201507000720?text=I%27m%20interested%20in%20booking%20the%20")
}

func TestGetTour_NoContactURLWithoutNumber(t *testing.T) {
	rec := get(t, newTourHTTPHandler(), "/tours/1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "contact_url")
}
