// Package booking implements the client side of a tour booking: a form state
// machine that validates input, sends exactly one request to the append
// endpoint and classifies the outcome.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/pkordes/tourdesk/internal/domain"
)

// ErrTransport wraps failures where no response was received
// (connection refused, DNS, timeout).
var ErrTransport = errors.New("transport error")

// ErrMalformedResponse wraps responses whose body is not a JSON envelope.
var ErrMalformedResponse = errors.New("malformed response")

// maxResponseBytes bounds how much of the endpoint's reply is read.
const maxResponseBytes = 1 << 20

// Sender delivers a booking request to the append endpoint.
type Sender interface {
	Send(ctx context.Context, req domain.BookingRequest) (domain.Envelope, error)
}

// Client is the HTTP Sender. The request is form-encoded so browsers and
// proxies treat it as a simple request with no preflight.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a Client posting to endpoint. A nil httpClient gets a
// client with a 30 second timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Send POSTs req once and decodes the envelope whatever the HTTP status.
func (c *Client) Send(ctx context.Context, req domain.BookingRequest) (domain.Envelope, error) {
	values, err := query.Values(req)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("booking.Client.Send: encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("booking.Client.Send: %w: %w", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("booking.Client.Send: %w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("booking.Client.Send: %w: read body: %w", ErrTransport, err)
	}

	var env domain.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("booking.Client.Send: %w: status %d: %w", ErrMalformedResponse, resp.StatusCode, err)
	}
	return env, nil
}
