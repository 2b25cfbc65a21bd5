package staysync

import (
	"time"

	"github.com/mahadevpnair10/STAYSYNC/catalog"
)

// Provenance labels for result rows.
const (
	SourceActual   = "Actual"
	SourceForecast = "Forecast"
)

// Point is one displayed day of occupancy, tagged with its provenance.
type Point struct {
	Date     time.Time `json:"date"`
	Occupied float64   `json:"occupied"`
	Source   string    `json:"source"`
}

// Result is the outcome of one property forecast: the combined actual and
// forecast slices plus the derived totals. Derived, never persisted.
type Result struct {
	Property   catalog.Property `json:"property"`
	Cutoff     time.Time        `json:"cutoff"`
	Points     []Point          `json:"points"`
	RoomNights int              `json:"total_room_nights"`
	Revenue    int              `json:"total_revenue"`
}

// Slice returns the points carrying the given provenance label.
func (r *Result) Slice(source string) []Point {
	pts := make([]Point, 0, len(r.Points))
	for _, p := range r.Points {
		if p.Source == source {
			pts = append(pts, p)
		}
	}
	return pts
}
