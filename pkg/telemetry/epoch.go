// Package telemetry holds the record shapes written by the structured
// event log. The diagnostic logger formats its lines itself and the
// trace recorder uses its own Row type.
package telemetry

import (
	"encoding/json"
	"time"
)

// EpochTime wraps time.Time to marshal as float epoch seconds, keeping
// as much of the sub-second part as a float64 holds (the diagnostic
// logger prints the same epoch seconds rounded to milliseconds).
type EpochTime time.Time

// MarshalJSON implements custom JSON marshaling for EpochTime.
func (t EpochTime) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	epochSeconds := float64(tt.UnixNano()) / 1e9
	return json.Marshal(epochSeconds)
}

// UnmarshalJSON accepts either a float epoch or an RFC3339 string.
func (t *EpochTime) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		sec := int64(f)
		nsec := int64((f - float64(sec)) * 1e9)
		*t = EpochTime(time.Unix(sec, nsec).UTC())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := time.Parse(time.RFC3339, s); err == nil {
			*t = EpochTime(parsed)
			return nil
		}
	}
	return json.Unmarshal(data, (*time.Time)(t))
}
