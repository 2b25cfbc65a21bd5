// Package segment models property segments and the daily occupancy series the
// forecaster extends. A segment is a cohort of properties sharing a star
// rating, a property type category, and a distance-from-center bucket that are
// assumed to share a demand pattern.
package segment

import (
	"time"
)

// Fingerprint identifies a segment. Distance matching against history is done
// with a tolerance window by the dataset store; everywhere else distance is
// compared exactly.
type Fingerprint struct {
	StarRating         int     `json:"star_rating"`
	PropertyType       int     `json:"property_type_cat"`
	DistanceFromCenter float64 `json:"distance_from_center"`
}

// DailyObservation is a single day of occupancy, either ground truth or a
// model-produced estimate. The two are distinguished only by position relative
// to the cutoff date.
type DailyObservation struct {
	Date     time.Time `json:"date"`
	Occupied float64   `json:"occupied"`
}

// Midnight normalizes a time to midnight UTC, day granularity.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
