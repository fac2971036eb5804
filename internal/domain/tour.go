// Package domain contains the core data types for the tour desk.
// It is imported by every other internal package (catalogue, booking, repo,
// service, handler) and depends on nothing inside the module.
package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CityAll is the pseudo-city that selects the whole catalogue.
const CityAll = "All"

// Cities is the fixed set of cities a tour may belong to, in display order.
var Cities = []string{"Cairo", "Alexandria", "Luxor", "Aswan"}

// Currency codes. Standard tours are priced in dollars; the special trip is
// sold locally in Egyptian pounds.
const (
	CurrencyUSD = "USD"
	CurrencyEGP = "EGP"
)

// Tour is a read-only catalogue entry.
// Slug is optional; DerivedSlug falls back to the slugified Title.
type Tour struct {
	ID                    string
	Slug                  string
	Title                 string
	Description           string
	FullDescription       string
	Image                 string
	Price                 int
	Duration              string // display label, e.g. "6 hours"
	Location              string
	City                  string
	Rating                float64
	MaxGuests             int
	Featured              bool
	Special               bool
	RequiresDateSelection bool
	Itinerary             []ItineraryLine
	Includes              []string
	Excludes              []string
	GalleryImages         []string
}

// DerivedSlug returns the explicit slug when set, otherwise Slugify(Title).
func (t Tour) DerivedSlug() string {
	if t.Slug != "" {
		return t.Slug
	}
	return Slugify(t.Title)
}

// Currency reports the currency Price is expressed in.
func (t Tour) Currency() string {
	if t.Special {
		return CurrencyEGP
	}
	return CurrencyUSD
}

// PriceLabel formats Price for display: "$85" or "11,500 EGP".
func (t Tour) PriceLabel() string {
	p := message.NewPrinter(language.English)
	if t.Special {
		return p.Sprintf("%d EGP", t.Price)
	}
	return p.Sprintf("$%d", t.Price)
}

// Slugify lower-cases s, replaces every run of characters outside [a-z0-9]
// with a single hyphen and trims leading/trailing hyphens.
// Accented letters are folded to their base letter first ("Café" → "cafe").
func Slugify(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// IsURLSafeSlug reports whether s is non-empty and consists of lowercase
// alphanumeric words joined by single hyphens.
func IsURLSafeSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return true
}
