package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/booking"
	"github.com/pkordes/tourdesk/internal/domain"
)

func TestClient_Send_FormEncodesFields(t *testing.T) {
	var got http.Header
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.Envelope{Success: true, Message: "ok"})
	}))
	defer srv.Close()

	env, err := booking.NewClient(srv.URL, srv.Client()).Send(context.Background(), domain.BookingRequest{
		Tour: "Nuba Experience", Name: "Mona", Phone: "0100", Guests: "2",
	})

	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "application/x-www-form-urlencoded", got.Get("Content-Type"))
	assert.Equal(t, map[string]string{
		"tour": "Nuba Experience", "name": "Mona", "phone": "0100", "guests": "2", "selectDate": "",
	}, form)
}

func TestClient_Send_DecodesEnvelopeOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"error":"Missing required fields"}`))
	}))
	defer srv.Close()

	env, err := booking.NewClient(srv.URL, srv.Client()).Send(context.Background(), domain.BookingRequest{})

	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing required fields", env.Error)
}

func TestClient_Send_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	client := booking.NewClient(srv.URL, srv.Client())
	_, err := client.Send(context.Background(), domain.BookingRequest{})
	assert.ErrorIs(t, err, booking.ErrMalformedResponse)

	res, err := booking.NewForm(tourFixture(), client).Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, booking.KindServerError, res.Kind)
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	_, err := booking.NewClient(endpoint, nil).Send(context.Background(), domain.BookingRequest{})

	assert.ErrorIs(t, err, booking.ErrTransport)
}
