// Command book submits one booking from the command line through the same
// form state machine the web client uses, and prints the classified outcome.
//
//	book -endpoint http://localhost:8080/bookings -tour pyramids-of-giza \
//	     -name Amira -phone "+20 100 000 0000" -guests 2
//
// The exit status is 0 on success and 1 on any failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkordes/tourdesk/internal/booking"
	"github.com/pkordes/tourdesk/internal/catalogue"
	"github.com/pkordes/tourdesk/internal/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(stderr)

	endpoint := fs.String("endpoint", os.Getenv("BOOKING_ENDPOINT"), "Booking endpoint URL (default $BOOKING_ENDPOINT)")
	tourKey := fs.String("tour", "", "Tour slug or id")
	name := fs.String("name", "", "Guest name")
	phone := fs.String("phone", "", "Contact phone number")
	guests := fs.String("guests", "1", "Number of guests")
	date := fs.String("date", "", "Trip date, required by some tours")
	timeout := fs.Duration("timeout", 30*time.Second, "Request timeout")
	verbose := fs.Bool("v", false, "Log state transitions to stderr")
	whatsApp := fs.String("whatsapp", os.Getenv("AGENCY_WHATSAPP"), "Agency WhatsApp number; prints a prefilled chat link on success (default $AGENCY_WHATSAPP)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *endpoint == "" {
		fmt.Fprintln(stderr, "book: -endpoint is required")
		return 1
	}

	if *whatsApp != "" && !domain.IsWhatsAppNumber(*whatsApp) {
		fmt.Fprintf(stderr, "book: -whatsapp %q must be an international number in digits only\n", *whatsApp)
		return 1
	}

	tour, ok := catalogue.Default().BySlugOrID(*tourKey)
	if !ok {
		fmt.Fprintf(stderr, "book: unknown tour %q\n", *tourKey)
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := booking.NewClient(*endpoint, &http.Client{Timeout: *timeout})
	form := booking.NewForm(tour, client, booking.WithLogger(logger))
	defer form.Close()

	res, err := form.Submit(context.Background(), booking.Input{
		Name:       *name,
		Phone:      *phone,
		Guests:     *guests,
		SelectDate: *date,
	})
	if err != nil {
		// ErrBusy and ErrClosed cannot happen for a single submission.
		fmt.Fprintf(stderr, "book: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s: %s\n", res.Kind, res.Message)
	if res.Kind != booking.KindSuccess {
		for _, f := range res.Fields {
			fmt.Fprintf(stdout, "  missing or invalid: %s\n", f)
		}
		if res.Cause != nil {
			fmt.Fprintf(stderr, "book: %v\n", res.Cause)
		}
		return 1
	}

	if c := res.Confirmed; c != nil {
		fmt.Fprintf(stdout, "  %s for %s (%s guests) at %s\n", c.Tour, c.Name, c.Guests, c.Timestamp)
	}
	if *whatsApp != "" {
		msg := domain.BookingMessage(tour.Title, strings.TrimSpace(*name), strings.TrimSpace(*phone))
		fmt.Fprintf(stdout, "  WhatsApp: %s\n", domain.WhatsAppURL(*whatsApp, msg))
	}
	return 0
}
