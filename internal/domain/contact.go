package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppURL returns a wa.me chat link for number with text prefilled.
// number is the international number in digits only, e.g. "201507000720".
// Spaces in text are encoded as %20, which every WhatsApp client decodes.
func WhatsAppURL(number, text string) string {
	u := "https://wa.me/" + number
	if text == "" {
		return u
	}
	return u + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// BookingMessage is the chat message handed to the agency after a booking.
func BookingMessage(tourTitle, name, phone string) string {
	return fmt.Sprintf("Hello!\nI want to book the following tour:\n\nTour: %s\nName: %s\nPhone: %s", tourTitle, name, phone)
}

// InquiryMessage asks the agency for details about a tour.
func InquiryMessage(tourTitle string) string {
	return fmt.Sprintf("I'm interested in booking the %s tour. Can you provide more details?", tourTitle)
}

// IsWhatsAppNumber reports whether s is usable as a wa.me number:
// 8 to 15 digits with no leading zero.
func IsWhatsAppNumber(s string) bool {
	if len(s) < 8 || len(s) > 15 || s[0] == '0' {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
