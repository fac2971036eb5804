package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// ItineraryKind tags an ItineraryLine so presentation code can switch on it
// instead of re-parsing the text.
type ItineraryKind string

const (
	ItineraryDayHeader ItineraryKind = "day_header"
	ItineraryBullet    ItineraryKind = "bullet"
	ItinerarySection   ItineraryKind = "section"
	ItineraryStep      ItineraryKind = "step"
)

// ItineraryLine is one parsed line of a tour itinerary.
// Day is set for day headers only. Number is the 1-based position of a step
// among all steps of the itinerary; bullets and section markers do not count.
type ItineraryLine struct {
	Kind   ItineraryKind
	Text   string
	Day    int
	Number int
}

var dayHeaderRE = regexp.MustCompile(`(?i)^day\s+(\d+)$`)

// ParseItinerary classifies raw itinerary lines:
//
//	"Day 2"            → day header
//	"• Nubian souq"    → bullet (also any line with leading whitespace)
//	"A visit to:"      → section marker
//	"Visit the Sphinx" → step
//
// Blank lines are dropped.
func ParseItinerary(raw []string) []ItineraryLine {
	out := make([]ItineraryLine, 0, len(raw))
	steps := 0
	for _, line := range raw {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		if m := dayHeaderRE.FindStringSubmatch(text); m != nil {
			day, _ := strconv.Atoi(m[1])
			out = append(out, ItineraryLine{Kind: ItineraryDayHeader, Text: text, Day: day})
			continue
		}

		if strings.HasPrefix(text, "•") || line[0] == ' ' || line[0] == '\t' {
			text = strings.TrimSpace(strings.TrimPrefix(text, "•"))
			out = append(out, ItineraryLine{Kind: ItineraryBullet, Text: text})
			continue
		}

		if strings.HasSuffix(text, ":") {
			out = append(out, ItineraryLine{Kind: ItinerarySection, Text: text})
			continue
		}

		steps++
		out = append(out, ItineraryLine{Kind: ItineraryStep, Text: text, Number: steps})
	}
	return out
}
