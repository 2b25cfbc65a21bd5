// Package holiday provides a membership-testable set of holiday dates used as
// a model feature. Dates are normalized to midnight UTC so membership is day
// granular.
package holiday

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/mahadevpnair10/STAYSYNC/segment"
	"github.com/rickar/cal/v2"
)

var (
	ErrNoHolidayDates = errors.New("no holiday dates in artifact")
	ErrBadDateFormat  = errors.New("unparseable holiday date")
)

// Set holds normalized holiday dates.
type Set map[time.Time]struct{}

// NewSet builds a Set from explicit dates.
func NewSet(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[segment.Midnight(d)] = struct{}{}
	}
	return s
}

// Contains reports whether the day of t is a holiday.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[segment.Midnight(t)]
	return ok
}

// Add inserts the day of t into the set.
func (s Set) Add(t time.Time) {
	s[segment.Midnight(t)] = struct{}{}
}

type holidayArtifact struct {
	Date string `json:"date"`
}

// Load reads a holiday artifact, a JSON array of {"date": "YYYY-MM-DD"}
// records, into a Set.
func Load(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holiday artifact, %w", err)
	}
	var rows []holidayArtifact
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("parse holiday artifact, %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHolidayDates
	}
	s := make(Set, len(rows))
	for _, row := range rows {
		d, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%q, %w", row.Date, ErrBadDateFormat)
		}
		s.Add(d)
	}
	return s, nil
}

// FromCalendar computes observed dates for the given holidays across a span of
// years and collects them into a Set. Used when no holiday artifact is
// supplied.
func FromCalendar(holidays []*cal.Holiday, startYear, endYear int) Set {
	s := make(Set)
	for _, hol := range holidays {
		for year := startYear; year <= endYear; year++ {
			_, observed := hol.Calc(year)
			if observed.IsZero() {
				continue
			}
			s.Add(observed)
		}
	}
	return s
}
