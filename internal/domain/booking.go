package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Booking sheet column headers, in the order cells are appended.
var BookingColumns = []string{"Tour", "Name", "Phone", "Guests", "Select Date", "Time Submitted"}

// BookingRequest is the transient value built from the booking form.
// The url tags drive form encoding on the client; the json tags are accepted
// by the append endpoint as an alternative body.
type BookingRequest struct {
	Tour       string     `url:"tour" json:"tour"`
	Name       string     `url:"name" json:"name"`
	Phone      string     `url:"phone" json:"phone"`
	Guests     FlexString `url:"guests" json:"guests"`
	SelectDate string     `url:"selectDate" json:"selectDate"`
}

// MissingRequired returns the names of the required fields
// (tour, name, phone, guests) that are empty or whitespace-only.
func (r BookingRequest) MissingRequired() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"tour", r.Tour},
		{"name", r.Name},
		{"phone", r.Phone},
		{"guests", string(r.Guests)},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Row returns the sheet cells for r, stamped with timestamp.
func (r BookingRequest) Row(timestamp string) []string {
	return []string{r.Tour, r.Name, r.Phone, string(r.Guests), r.SelectDate, timestamp}
}

// BookingData is the confirmation echoed back by the append endpoint.
type BookingData struct {
	Tour       string `json:"tour"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Guests     string `json:"guests"`
	SelectDate string `json:"selectDate"`
	Timestamp  string `json:"timestamp"`
}

// Envelope is the JSON body of every append endpoint response.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Data    *BookingData `json:"data,omitempty"`
}

// FlexString is a string that also unmarshals from a bare JSON number,
// so {"guests": 2} and {"guests": "2"} decode the same way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}
