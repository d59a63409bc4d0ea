package models

// StatsPush is the body of POST /stats.
type StatsPush struct {
	Heartrate *int64 `json:"heartrate"`
}
