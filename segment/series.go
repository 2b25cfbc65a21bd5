package segment

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoHistory        = errors.New("no history to seed series")
	ErrEndBeforeStart   = errors.New("series end date is before start date")
	ErrFinalizedWrite   = errors.New("write to an already finalized day")
	ErrOutOfOrderWrite  = errors.New("write ahead of the series frontier")
	ErrIndexOutOfRange  = errors.New("series index out of range")
	ErrNonMonotonicHist = errors.New("history dates are not ascending")
)

// Series is the extended occupancy series for one forecast invocation. It
// spans a gapless daily date spine from the earliest available history through
// the horizon end. Days with no historical observation hold NaN. Future days
// are finalized strictly in date order through Finalize; indices at or before
// the cutoff are never writable.
//
// A Series is owned by a single forecast invocation and must not be shared
// across concurrent requests.
type Series struct {
	start    time.Time
	occupied []float64

	// dailyChange is bookkeeping refreshed after each finalize. The feature
	// row for a day is assembled before that day's write, so this never
	// alters features already scored.
	dailyChange []float64

	cutoffIdx int
	frontier  int
}

// NewSeries builds the date spine from the first history date through end and
// merges the history onto it. Missing dates hold NaN. The cutoff marks the
// boundary between actual and to-be-predicted days.
func NewSeries(history []DailyObservation, cutoff, end time.Time) (*Series, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	start := Midnight(history[0].Date)
	cutoff = Midnight(cutoff)
	end = Midnight(end)
	if end.Before(start) {
		return nil, fmt.Errorf("start %s, end %s, %w", start.Format(time.DateOnly), end.Format(time.DateOnly), ErrEndBeforeStart)
	}

	n := int(end.Sub(start).Hours()/24) + 1
	s := &Series{
		start:       start,
		occupied:    make([]float64, n),
		dailyChange: make([]float64, n),
	}
	for i := range s.occupied {
		s.occupied[i] = math.NaN()
		s.dailyChange[i] = math.NaN()
	}

	var lastDate time.Time
	for i, obs := range history {
		d := Midnight(obs.Date)
		if i > 0 && !d.After(lastDate) {
			return nil, fmt.Errorf("at %s, %w", d.Format(time.DateOnly), ErrNonMonotonicHist)
		}
		lastDate = d
		idx := s.Index(d)
		if idx < 0 || idx >= n {
			continue
		}
		s.occupied[idx] = obs.Occupied
	}

	s.cutoffIdx = s.Index(cutoff)
	if s.cutoffIdx >= n {
		s.cutoffIdx = n - 1
	}
	s.frontier = s.cutoffIdx + 1
	return s, nil
}

// Len returns the number of days in the spine.
func (s *Series) Len() int {
	return len(s.occupied)
}

// Start returns the first date of the spine.
func (s *Series) Start() time.Time {
	return s.start
}

// Date returns the calendar date at index i.
func (s *Series) Date(i int) time.Time {
	return s.start.AddDate(0, 0, i)
}

// Index returns the spine index of date d. May be negative or past the end if
// d lies outside the spine.
func (s *Series) Index(d time.Time) int {
	return int(Midnight(d).Sub(s.start).Hours() / 24)
}

// At returns the occupancy at index i. NaN marks a day not yet computed or a
// gap in history.
func (s *Series) At(i int) float64 {
	if i < 0 || i >= len(s.occupied) {
		return math.NaN()
	}
	return s.occupied[i]
}

// CutoffIndex returns the last index holding actual history.
func (s *Series) CutoffIndex() int {
	return s.cutoffIdx
}

// Frontier returns the next index eligible for finalization.
func (s *Series) Frontier() int {
	return s.frontier
}

// Finalize writes the prediction for index i and advances the frontier. Writes
// are accepted only at the frontier, in date order, strictly after the cutoff.
func (s *Series) Finalize(i int, v float64) error {
	if i < 0 || i >= len(s.occupied) {
		return fmt.Errorf("index %d of %d, %w", i, len(s.occupied), ErrIndexOutOfRange)
	}
	if i < s.frontier {
		return fmt.Errorf("index %d behind frontier %d, %w", i, s.frontier, ErrFinalizedWrite)
	}
	if i > s.frontier {
		return fmt.Errorf("index %d ahead of frontier %d, %w", i, s.frontier, ErrOutOfOrderWrite)
	}
	s.occupied[i] = v
	if i > 0 && !math.IsNaN(s.occupied[i-1]) {
		s.dailyChange[i] = v - s.occupied[i-1]
	}
	s.frontier++
	return nil
}

// Occupied exposes the backing occupancy slice for feature synthesis. Callers
// must treat it as read-only; entries at or past the frontier hold NaN.
func (s *Series) Occupied() []float64 {
	return s.occupied
}

// DailyChange returns the bookkeeping day-over-day delta at index i.
func (s *Series) DailyChange(i int) float64 {
	if i < 0 || i >= len(s.dailyChange) {
		return math.NaN()
	}
	return s.dailyChange[i]
}

// Slice returns the observations between from and to inclusive, skipping days
// with no value.
func (s *Series) Slice(from, to time.Time) []DailyObservation {
	from = Midnight(from)
	to = Midnight(to)
	if to.Before(from) {
		return nil
	}
	obs := make([]DailyObservation, 0, int(to.Sub(from).Hours()/24)+1)
	for i := 0; i < len(s.occupied); i++ {
		d := s.Date(i)
		if d.Before(from) || d.After(to) {
			continue
		}
		if math.IsNaN(s.occupied[i]) {
			continue
		}
		obs = append(obs, DailyObservation{Date: d, Occupied: s.occupied[i]})
	}
	return obs
}
