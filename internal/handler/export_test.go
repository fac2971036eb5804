package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/handler"
)

// newExportHTTPHandler wires a Server with the export route enabled.
func newExportHTTPHandler(svc handler.BookingServicer) http.Handler {
	return handler.NewServer(nil, svc, handler.WithExport(true)).Routes()
}

func listing(rows ...domain.SheetRow) *mockBookingServicer {
	return &mockBookingServicer{
		list: func(context.Context) ([]domain.SheetRow, error) { return rows, nil },
	}
}

func sheetRowFixture() domain.SheetRow {
	return domain.SheetRow{
		ID:        uuid.New(),
		SheetName: "Sheet1",
		Cells:     []string{"Nuba Experience", "Amira", "+20 100 000 0000", "3", "2025-12-31", "2025-06-01 11:30:00"},
		CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestGetBookingExport_DisabledByDefault(t *testing.T) {
	h := handler.NewServer(nil, listing()).Routes()

	rec := get(t, h, "/bookings/export")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingExport_DefaultJSON_EmptyResult(t *testing.T) {
	rec := get(t, newExportHTTPHandler(listing()), "/bookings/export")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetBookingExport_JSON_MapsCells(t *testing.T) {
	row := sheetRowFixture()
	rec := get(t, newExportHTTPHandler(listing(row)), "/bookings/export?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []handler.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID, rows[0].ID)
	assert.Equal(t, "Nuba Experience", rows[0].Tour)
	assert.Equal(t, "3", rows[0].Guests)
	assert.Equal(t, "2025-12-31", rows[0].SelectDate)
	assert.Equal(t, "2025-06-01 11:30:00", rows[0].Submitted)
	assert.True(t, rows[0].CreatedAt.Equal(row.CreatedAt))
}

func TestGetBookingExport_CSV(t *testing.T) {
	short := sheetRowFixture()
	short.Cells = []string{"Pyramids of Giza", "Omar"}
	rec := get(t, newExportHTTPHandler(listing(sheetRowFixture(), short)), "/bookings/export?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.BookingColumns, records[0])
	assert.Equal(t, sheetRowFixture().Cells, records[1])
	assert.Equal(t, []string{"Pyramids of Giza", "Omar", "", "", "", ""}, records[2], "short rows are padded")
}

func TestGetBookingExport_UnknownFormatIs400(t *testing.T) {
	rec := get(t, newExportHTTPHandler(listing()), "/bookings/export?format=xlsx")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)
}

func TestGetBookingExport_ServiceErrorIs500(t *testing.T) {
	svc := &mockBookingServicer{list: func(context.Context) ([]domain.SheetRow, error) {
		return nil, errors.New("service.BookingService.List: db down")
	}}

	rec := get(t, newExportHTTPHandler(svc), "/bookings/export")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal", body.Error.Code)
	assert.Equal(t, "db down", body.Error.Message)
}
