package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/pkordes/tourdesk/internal/domain"
)

// Envelope messages of POST /bookings.
const (
	MsgBookingSubmitted = "Booking submitted successfully"
	MsgBookingFailed    = "Failed to submit booking"
	MsgMissingFields    = "Missing required fields"
	MsgNoData           = "No data received"
	MsgBadJSON          = "Failed to parse JSON data"
	MsgBodyTooLarge     = "Request body too large"
)

// multipartMemory bounds the in-memory part of a multipart form; the body
// itself is already capped by the max-body-size middleware.
const multipartMemory = 1 << 20

var (
	errNoData   = errors.New(MsgNoData)
	errBadJSON  = errors.New(MsgBadJSON)
	errTooLarge = errors.New(MsgBodyTooLarge)
)

// CreateBooking handles POST /bookings.
// It accepts url-encoded, multipart or JSON bodies and always answers with a
// domain.Envelope:
//
//	200 {success:true,  message, data}
//	400 {success:false, error, message}  JSON body missing or unreadable
//	413 {success:false, error, message}  body over the configured limit
//	422 {success:false, error}           required field missing
//	500 {success:false, error, message}  storage failure
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBookingRequest(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, domain.Envelope{Success: false, Error: err.Error(), Message: MsgBookingFailed})
		return
	}

	data, err := s.bookings.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, domain.Envelope{Success: false, Error: MsgMissingFields})
			return
		}
		s.log.ErrorContext(r.Context(), "booking append failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, domain.Envelope{
			Success: false,
			Error:   unwrapMessage(err),
			Message: MsgBookingFailed,
		})
		return
	}

	writeJSON(w, http.StatusOK, domain.Envelope{Success: true, Message: MsgBookingSubmitted, Data: &data})
}

// decodeBookingRequest reads the booking fields from the request body.
//
// application/json and text/plain (sent by no-cors browser fetches) are
// decoded as JSON; an empty JSON body is "No data received". Form bodies,
// url-encoded or multipart, always yield a request, even an empty one, so
// missing fields are reported by Submit. Any other content type, including
// none, is sniffed: a body starting with '{' is JSON, anything else a form.
func decodeBookingRequest(r *http.Request) (domain.BookingRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json", "text/plain":
		return decodeJSONRequest(r.Body)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			switch {
			case isTooLarge(err):
				return domain.BookingRequest{}, errTooLarge
			case errors.Is(err, io.EOF):
				return formRequest(url.Values{}), nil
			default:
				return domain.BookingRequest{}, errNoData
			}
		}
		return formRequest(r.PostForm), nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			if isTooLarge(err) {
				return domain.BookingRequest{}, errTooLarge
			}
			return domain.BookingRequest{}, errNoData
		}
		return formRequest(r.PostForm), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		if isTooLarge(err) {
			return domain.BookingRequest{}, errTooLarge
		}
		return domain.BookingRequest{}, errNoData
	}
	body = bytes.TrimSpace(body)
	switch {
	case len(body) == 0:
		return domain.BookingRequest{}, errNoData
	case body[0] == '{':
		return decodeJSONRequest(bytes.NewReader(body))
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return domain.BookingRequest{}, errNoData
	}
	return formRequest(values), nil
}

func decodeJSONRequest(body io.Reader) (domain.BookingRequest, error) {
	var req domain.BookingRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		switch {
		case isTooLarge(err):
			return domain.BookingRequest{}, errTooLarge
		case errors.Is(err, io.EOF):
			return domain.BookingRequest{}, errNoData
		default:
			return domain.BookingRequest{}, errBadJSON
		}
	}
	return req, nil
}

func formRequest(v url.Values) domain.BookingRequest {
	return domain.BookingRequest{
		Tour:       v.Get("tour"),
		Name:       v.Get("name"),
		Phone:      v.Get("phone"),
		Guests:     domain.FlexString(v.Get("guests")),
		SelectDate: v.Get("selectDate"),
	}
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
