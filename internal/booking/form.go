package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/tourdesk/internal/domain"
)

// State is the lifecycle position of a Form.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Kind classifies the outcome of a submission attempt.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindValidationError
	KindServerError
	KindNetworkError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindValidationError:
		return "validation_error"
	case KindServerError:
		return "server_error"
	case KindNetworkError:
		return "network_error"
	default:
		return "none"
	}
}

// Result is the classified outcome of Submit.
//
//	KindSuccess          Confirmed holds the echoed booking
//	KindValidationError  Fields names the offending inputs; nothing was sent
//	KindServerError      the endpoint answered success=false (or garbage)
//	KindNetworkError     no response was received; Cause holds the error
//
// Message is always a user-facing string.
type Result struct {
	Kind      Kind
	Message   string
	Fields    []string
	Confirmed *domain.BookingData
	Cause     error
}

// User-facing messages.
const (
	MsgMissingFields = "Please fill in all required fields."
	MsgSelectDate    = "Please select a date for this trip."
	MsgSuccess       = "Booking submitted successfully! We will contact you soon."
	MsgServerError   = "Failed to submit booking. Please try again."
	MsgNetworkError  = "Network error. Please check your internet connection and try again."
)

// DefaultResetDelay is how long a successful form shows its confirmation
// before clearing itself.
const DefaultResetDelay = 3 * time.Second

var (
	// ErrBusy is returned by Submit while a previous request is in flight.
	ErrBusy = errors.New("booking: submission already in flight")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("booking: form closed")
)

// Input is the raw text the user typed into the form.
type Input struct {
	Name       string
	Phone      string
	Guests     string
	SelectDate string
}

// Form is the booking state machine for one tour:
//
//	Idle → Validating → Submitting → Succeeded | Failed
//
// Failed forms may be resubmitted; succeeded forms reset to Idle after the
// reset delay. At most one request is in flight per Form. Form is safe for
// concurrent use.
type Form struct {
	tour       domain.Tour
	sender     Sender
	log        *slog.Logger
	resetDelay time.Duration

	mu     sync.Mutex
	state  State
	input  Input
	result Result
	closed bool
	timer  *time.Timer
	gen    uint64 // bumped whenever a pending reset must be ignored
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithResetDelay overrides DefaultResetDelay.
func WithResetDelay(d time.Duration) FormOption {
	return func(f *Form) { f.resetDelay = d }
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) { f.log = l }
}

// NewForm returns an idle Form booking tour through sender.
func NewForm(tour domain.Tour, sender Sender, opts ...FormOption) *Form {
	f := &Form{
		tour:       tour,
		sender:     sender,
		log:        slog.Default(),
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit validates in and, when valid, sends exactly one request.
// Classified failures are reported in the Result, not as an error; the error
// is reserved for ErrBusy and ErrClosed.
func (f *Form) Submit(ctx context.Context, in Input) (Result, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return Result{}, ErrClosed
	}
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return Result{}, ErrBusy
	}
	f.cancelResetLocked()
	f.state = StateValidating
	f.input = in

	guests, res, ok := f.validate(in)
	if !ok {
		f.state = StateFailed
		f.result = res
		f.mu.Unlock()
		return res, nil
	}

	f.state = StateSubmitting
	f.result = Result{}
	req := domain.BookingRequest{
		Tour:       f.tour.Title,
		Name:       strings.TrimSpace(in.Name),
		Phone:      strings.TrimSpace(in.Phone),
		Guests:     domain.FlexString(strconv.Itoa(guests)),
		SelectDate: strings.TrimSpace(in.SelectDate),
	}
	f.mu.Unlock()

	env, err := f.sender.Send(ctx, req)
	res = classify(env, err)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		f.log.DebugContext(ctx, "booking response after form closed", "tour_id", f.tour.ID, "outcome", res.Kind.String())
		return res, nil
	}

	f.result = res
	if res.Kind == KindSuccess {
		f.state = StateSucceeded
		f.scheduleResetLocked()
		f.log.InfoContext(ctx, "booking submitted", "tour_id", f.tour.ID)
	} else {
		f.state = StateFailed
		f.log.WarnContext(ctx, "booking failed", "tour_id", f.tour.ID, "outcome", res.Kind.String(), "error", res.Cause)
	}
	return res, nil
}

// validate checks, in order: required fields, the date when the tour needs
// one, and the guest count range. The parsed guest count is returned in
// canonical form so "+3" or "03" reach the sheet as "3".
func (f *Form) validate(in Input) (int, Result, bool) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(in.Guests) == "" {
		missing = append(missing, "guests")
	}
	if len(missing) > 0 {
		return 0, Result{Kind: KindValidationError, Message: MsgMissingFields, Fields: missing}, false
	}

	if f.tour.RequiresDateSelection && strings.TrimSpace(in.SelectDate) == "" {
		return 0, Result{Kind: KindValidationError, Message: MsgSelectDate, Fields: []string{"selectDate"}}, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(in.Guests))
	if err != nil || n < 1 || n > f.tour.MaxGuests {
		return 0, Result{
			Kind:    KindValidationError,
			Message: fmt.Sprintf("Number of guests must be between 1 and %d.", f.tour.MaxGuests),
			Fields:  []string{"guests"},
		}, false
	}
	return n, Result{}, true
}

// classify maps the sender's answer onto a Result.
func classify(env domain.Envelope, err error) Result {
	switch {
	case err == nil && env.Success:
		msg := env.Message
		if msg == "" {
			msg = MsgSuccess
		}
		return Result{Kind: KindSuccess, Message: msg, Confirmed: env.Data}
	case err == nil:
		msg := env.Message
		if msg == "" {
			msg = MsgServerError
		}
		return Result{Kind: KindServerError, Message: msg}
	case errors.Is(err, ErrMalformedResponse):
		return Result{Kind: KindServerError, Message: MsgServerError, Cause: err}
	default:
		return Result{Kind: KindNetworkError, Message: MsgNetworkError, Cause: err}
	}
}

// Reset clears the form back to Idle. It is a no-op while a request is in
// flight; use Close to abandon one.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.cancelResetLocked()
	f.resetLocked()
}

// Close abandons the form. Any in-flight request runs to completion but its
// response no longer changes the form, and later Submits fail with ErrClosed.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cancelResetLocked()
	f.resetLocked()
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a request is in flight; UIs disable the submit
// button while it is true.
func (f *Form) Busy() bool {
	return f.State() == StateSubmitting
}

// Input returns the last submitted input; empty after a reset.
func (f *Form) Input() Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Result returns the outcome of the last submission.
func (f *Form) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Tour returns the tour this form books.
func (f *Form) Tour() domain.Tour {
	return f.tour
}

func (f *Form) resetLocked() {
	f.state = StateIdle
	f.input = Input{}
	f.result = Result{}
}

func (f *Form) scheduleResetLocked() {
	f.gen++
	gen := f.gen
	f.timer = time.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed || f.gen != gen || f.state != StateSucceeded {
			return
		}
		f.resetLocked()
	})
}

func (f *Form) cancelResetLocked() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
