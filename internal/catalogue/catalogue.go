// Package catalogue holds the immutable, process-wide tour table and the pure
// queries presentation code runs over it. A Catalogue is validated once when
// it is built and never mutated afterwards, so it is safe for concurrent use.
package catalogue

import (
	"fmt"
	"slices"

	"github.com/pkordes/tourdesk/internal/domain"
)

// Catalogue is a read-only, ordered collection of tours.
type Catalogue struct {
	tours       []domain.Tour
	bySlug      map[string]int
	byID        map[string]int
	newestFirst string
}

// Option configures a Catalogue.
type Option func(*Catalogue)

// WithNewestFirst names the city whose listing is returned in reverse
// catalogue order, so tours appended last surface first.
func WithNewestFirst(city string) Option {
	return func(c *Catalogue) { c.newestFirst = city }
}

// New validates tours and returns a Catalogue over a private copy of them.
// It fails fast when any load-time invariant is broken: duplicate ids,
// duplicate or non URL-safe slugs, unknown cities, non-positive guest caps,
// ratings outside [0,5], or more than one special trip.
func New(tours []domain.Tour, opts ...Option) (*Catalogue, error) {
	c := &Catalogue{
		tours:  slices.Clone(tours),
		bySlug: make(map[string]int, len(tours)),
		byID:   make(map[string]int, len(tours)),
	}
	for _, opt := range opts {
		opt(c)
	}

	special := ""
	for i, t := range c.tours {
		if t.ID == "" {
			return nil, fmt.Errorf("catalogue.New: tour %q: %w: id is required", t.Title, domain.ErrValidation)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("catalogue.New: %w: duplicate tour id %q", domain.ErrValidation, t.ID)
		}

		slug := t.DerivedSlug()
		if !domain.IsURLSafeSlug(slug) {
			return nil, fmt.Errorf("catalogue.New: tour %s: %w: slug %q is not URL-safe", t.ID, domain.ErrValidation, slug)
		}
		if other, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("catalogue.New: %w: slug %q shared by tours %s and %s",
				domain.ErrValidation, slug, c.tours[other].ID, t.ID)
		}

		if !slices.Contains(domain.Cities, t.City) {
			return nil, fmt.Errorf("catalogue.New: tour %s: %w: unknown city %q", t.ID, domain.ErrValidation, t.City)
		}
		if t.MaxGuests < 1 {
			return nil, fmt.Errorf("catalogue.New: tour %s: %w: max guests must be positive", t.ID, domain.ErrValidation)
		}
		if t.Rating < 0 || t.Rating > 5 {
			return nil, fmt.Errorf("catalogue.New: tour %s: %w: rating %.1f outside [0,5]", t.ID, domain.ErrValidation, t.Rating)
		}
		if t.Special {
			if special != "" {
				return nil, fmt.Errorf("catalogue.New: %w: tours %s and %s are both marked special",
					domain.ErrValidation, special, t.ID)
			}
			special = t.ID
		}

		c.byID[t.ID] = i
		c.bySlug[slug] = i
	}
	return c, nil
}

// MustNew is like New but panics on error. Use it for static data only.
func MustNew(tours []domain.Tour, opts ...Option) *Catalogue {
	c, err := New(tours, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Slug returns the URL slug of t. It is total and never fails.
func Slug(t domain.Tour) string {
	return t.DerivedSlug()
}

// All returns every tour in catalogue order.
func (c *Catalogue) All() []domain.Tour {
	return slices.Clone(c.tours)
}

// Len returns the number of tours.
func (c *Catalogue) Len() int {
	return len(c.tours)
}

// BySlugOrID returns the tour whose slug equals key, else the tour whose id
// equals key. The boolean is false when neither matches.
func (c *Catalogue) BySlugOrID(key string) (domain.Tour, bool) {
	if i, ok := c.bySlug[key]; ok {
		return c.tours[i], true
	}
	if i, ok := c.byID[key]; ok {
		return c.tours[i], true
	}
	return domain.Tour{}, false
}

// ByCity returns the tours of city in catalogue order. domain.CityAll selects
// every tour. The newest-first city is returned in reverse catalogue order.
// An unknown city yields an empty slice.
func (c *Catalogue) ByCity(city string) []domain.Tour {
	if city == domain.CityAll {
		return c.All()
	}
	out := []domain.Tour{}
	for _, t := range c.tours {
		if t.City == city {
			out = append(out, t)
		}
	}
	if city == c.newestFirst {
		slices.Reverse(out)
	}
	return out
}

// Featured returns the featured tours in catalogue order.
func (c *Catalogue) Featured() []domain.Tour {
	out := []domain.Tour{}
	for _, t := range c.tours {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

// SpecialTrip returns the single tour flagged special, if any.
// New guarantees there is at most one.
func (c *Catalogue) SpecialTrip() (domain.Tour, bool) {
	for _, t := range c.tours {
		if t.Special {
			return t, true
		}
	}
	return domain.Tour{}, false
}

// Cities returns the city filter options, "All" first.
func (c *Catalogue) Cities() []string {
	return append([]string{domain.CityAll}, domain.Cities...)
}
