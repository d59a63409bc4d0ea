package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidReferenceTime is a client error: the caller's time could not be
// read.
var ErrInvalidReferenceTime = errors.New("invalid reference time")

// Source fetches the trips between two stations around a reference time.
type Source interface {
	Trips(ctx context.Context, query Query) ([]Trip, error)
}

// Finder looks up trips and applies the configured selection strategy.
type Finder struct {
	Source   Source
	Selector Selector
	// Location interprets reference times that carry no zone.
	Location *time.Location
}

func NewFinder(source Source, selector Selector, location *time.Location) *Finder {
	if location == nil {
		location = time.UTC
	}
	return &Finder{Source: source, Selector: selector, Location: location}
}

// Find returns the origin stop of the selected leg.
func (f *Finder) Find(ctx context.Context, query Query) (Stop, error) {
	reference, err := ParseReferenceTime(query.DateTime, f.Location)
	if err != nil {
		return Stop{}, err
	}

	found, err := f.Source.Trips(ctx, query)
	if err != nil {
		return Stop{}, err
	}

	return f.Selector.Select(found, reference)
}

var referenceLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseReferenceTime reads a caller-supplied local date-time in loc. Values
// with an explicit offset are accepted as well.
func ParseReferenceTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range referenceLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DDTHH:MM[:SS]", ErrInvalidReferenceTime, value)
}
