package trips

import "time"

// Query describes one departure lookup. All fields are required.
type Query struct {
	// DateTime is the caller's reference time as a local date-time without a
	// zone, e.g. "2024-05-01T10:15".
	DateTime string
	From     string
	To       string
}

// Validate returns the missing fields keyed by query parameter name, or nil.
func (q Query) Validate() map[string][]string {
	fieldErrors := map[string][]string{}
	if q.DateTime == "" {
		fieldErrors["current_time_string"] = []string{"missing required field"}
	}
	if q.From == "" {
		fieldErrors["from"] = []string{"missing required field"}
	}
	if q.To == "" {
		fieldErrors["to"] = []string{"missing required field"}
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// Trip is one journey option: an ordered list of legs.
type Trip struct {
	Legs []Leg `json:"legs"`
}

// Leg is one segment of a trip.
type Leg struct {
	Origin      Stop `json:"origin"`
	Destination Stop `json:"destination"`
}

// Stop is the departure or arrival record of a leg. The origin Stop of the
// selected leg is returned to callers as-is.
type Stop struct {
	StationCode     string `json:"stationCode"`
	PlannedDateTime string `json:"plannedDateTime"`
	ActualDateTime  string `json:"actualDateTime,omitempty"`
	PlannedTrack    string `json:"plannedTrack"`
	ActualTrack     string `json:"actualTrack,omitempty"`
}

// DepartureTime is the normalized actual departure, or the planned one when
// the upstream has no actual time for this stop.
func (s Stop) DepartureTime() (time.Time, error) {
	if s.ActualDateTime != "" {
		return ParseTimestamp(s.ActualDateTime)
	}
	return ParseTimestamp(s.PlannedDateTime)
}
