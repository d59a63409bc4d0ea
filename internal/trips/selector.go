package trips

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoDeparture means the upstream answered but nothing qualified. It is a
	// normal "not found" outcome, not a failure.
	ErrNoDeparture = errors.New("no qualifying departure")

	// ErrMissingLeg means the trip that had to be returned has no legs.
	ErrMissingLeg = errors.New("trip has no legs")

	ErrUnknownStrategy = errors.New("unknown selection strategy")
)

const (
	StrategyNext  = "next"
	StrategyFirst = "first"
)

// Selector picks the origin stop the caller should see out of the trips
// returned by the upstream. Implementations must not reorder trips.
type Selector interface {
	Select(trips []Trip, reference time.Time) (Stop, error)
	Name() string
}

// NewSelector returns the selector registered under name.
func NewSelector(name string) (Selector, error) {
	switch name {
	case StrategyNext:
		return NextDepartureSelector{}, nil
	case StrategyFirst:
		return FirstTripSelector{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// NextDepartureSelector returns the first trip, in upstream order, whose first
// leg departs strictly after the reference time. Later legs are never
// consulted and trips without legs are skipped.
type NextDepartureSelector struct{}

func (NextDepartureSelector) Name() string { return StrategyNext }

func (NextDepartureSelector) Select(trips []Trip, reference time.Time) (Stop, error) {
	for i, trip := range trips {
		if len(trip.Legs) == 0 {
			continue
		}

		origin := trip.Legs[0].Origin
		departure, err := origin.DepartureTime()
		if err != nil {
			return Stop{}, fmt.Errorf("trip %d: %w", i, err)
		}

		if departure.After(reference) {
			return origin, nil
		}
	}
	return Stop{}, ErrNoDeparture
}

// FirstTripSelector returns the first leg of the first trip regardless of
// its departure time.
type FirstTripSelector struct{}

func (FirstTripSelector) Name() string { return StrategyFirst }

func (FirstTripSelector) Select(trips []Trip, _ time.Time) (Stop, error) {
	if len(trips) == 0 {
		return Stop{}, ErrNoDeparture
	}
	if len(trips[0].Legs) == 0 {
		return Stop{}, fmt.Errorf("trip 0: %w", ErrMissingLeg)
	}
	return trips[0].Legs[0].Origin, nil
}
