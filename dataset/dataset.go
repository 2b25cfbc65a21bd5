// Package dataset holds the historical daily occupancy records the forecaster
// reads. The store is loaded once at process start and is read-only
// thereafter; concurrent forecast requests may query it without
// synchronization.
package dataset

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/mahadevpnair10/STAYSYNC/feature"
	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/segment"
)

var (
	ErrEmptyDataset  = errors.New("historical dataset has no rows")
	ErrNoSegmentData = errors.New("no historical data for segment")
)

// DefaultTolerance is the distance-from-center window used when matching a
// fingerprint against history. Exact equality applies everywhere else.
const DefaultTolerance = 0.1

// Row is one historical observation of a segment on a calendar day.
type Row struct {
	Date               time.Time
	StarRating         int
	PropertyType       int
	DistanceFromCenter float64
	OccupiedRooms      float64
}

type classKey struct {
	star     int
	propType int
}

// Store is the in-memory historical dataset.
type Store struct {
	rows    []Row
	minYear int
	byClass map[classKey][]int
}

// NewStore indexes the given rows. Rows are grouped by (star rating, property
// type) and kept date-sorted within each group.
func NewStore(rows []Row) (*Store, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &Store{
		rows:    make([]Row, len(rows)),
		minYear: math.MaxInt,
		byClass: make(map[classKey][]int),
	}
	copy(s.rows, rows)
	for i := range s.rows {
		s.rows[i].Date = segment.Midnight(s.rows[i].Date)
		if y := s.rows[i].Date.Year(); y < s.minYear {
			s.minYear = y
		}
		key := classKey{star: s.rows[i].StarRating, propType: s.rows[i].PropertyType}
		s.byClass[key] = append(s.byClass[key], i)
	}
	for _, idxs := range s.byClass {
		sort.SliceStable(idxs, func(a, b int) bool {
			return s.rows[idxs[a]].Date.Before(s.rows[idxs[b]].Date)
		})
	}
	return s, nil
}

// MinYear returns the minimum calendar year across the full dataset, the
// anchor for the year_scaled feature.
func (s *Store) MinYear() int {
	return s.minYear
}

// Len returns the number of rows in the store.
func (s *Store) Len() int {
	return len(s.rows)
}

// SegmentHistory returns the date-ascending occupancy history for a
// fingerprint up to and including cutoff. Star rating and property type match
// exactly; distance matches within tolerance. An empty match is a hard stop
// reported as ErrNoSegmentData, never a zero-filled series. Duplicate dates
// within the tolerance window collapse to the first row seen.
func (s *Store) SegmentHistory(fp segment.Fingerprint, cutoff time.Time, tolerance float64) ([]segment.DailyObservation, error) {
	cutoff = segment.Midnight(cutoff)
	idxs := s.byClass[classKey{star: fp.StarRating, propType: fp.PropertyType}]

	obs := make([]segment.DailyObservation, 0, len(idxs))
	var lastDate time.Time
	for _, i := range idxs {
		row := s.rows[i]
		if math.Abs(row.DistanceFromCenter-fp.DistanceFromCenter) > tolerance {
			continue
		}
		if row.Date.After(cutoff) {
			continue
		}
		if len(obs) > 0 && row.Date.Equal(lastDate) {
			continue
		}
		lastDate = row.Date
		obs = append(obs, segment.DailyObservation{Date: row.Date, Occupied: row.OccupiedRooms})
	}
	if len(obs) == 0 {
		return nil, ErrNoSegmentData
	}
	return obs, nil
}

// Actuals returns the observations for a fingerprint between from and to
// inclusive, using exact distance equality. Used for the displayed actual
// slice, not for forecasting input.
func (s *Store) Actuals(fp segment.Fingerprint, from, to time.Time) []segment.DailyObservation {
	from = segment.Midnight(from)
	to = segment.Midnight(to)
	idxs := s.byClass[classKey{star: fp.StarRating, propType: fp.PropertyType}]

	var obs []segment.DailyObservation
	for _, i := range idxs {
		row := s.rows[i]
		if row.DistanceFromCenter != fp.DistanceFromCenter {
			continue
		}
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		obs = append(obs, segment.DailyObservation{Date: row.Date, Occupied: row.OccupiedRooms})
	}
	return obs
}

// FeatureMeans computes the per-column mean of the full historical feature
// frame, skipping NaN entries. These are the reference imputation values for
// synthesized rows and are meant to be computed once at process start.
func (s *Store) FeatureMeans(holidays holiday.Set) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, group := range s.groupByFingerprint() {
		occ, start := group.spine()
		for i := range occ {
			if math.IsNaN(occ[i]) {
				continue
			}
			d := start.AddDate(0, 0, i)
			raw := feature.Raw(group.fp, d, occ, i, holidays, s.minYear)
			for col, v := range raw {
				if math.IsNaN(v) {
					continue
				}
				sums[col] += v
				counts[col]++
			}
		}
	}

	means := make(map[string]float64, len(sums))
	for col, sum := range sums {
		means[col] = sum / float64(counts[col])
	}
	return means
}

type fingerprintGroup struct {
	fp   segment.Fingerprint
	rows []Row
}

// spine lays the group's rows on a gapless daily spine with NaN for missing
// days so lag and rolling features line up with calendar offsets.
func (g fingerprintGroup) spine() ([]float64, time.Time) {
	start := g.rows[0].Date
	end := g.rows[len(g.rows)-1].Date
	n := int(end.Sub(start).Hours()/24) + 1
	occ := make([]float64, n)
	for i := range occ {
		occ[i] = math.NaN()
	}
	for _, row := range g.rows {
		occ[int(row.Date.Sub(start).Hours()/24)] = row.OccupiedRooms
	}
	return occ, start
}

func (s *Store) groupByFingerprint() []fingerprintGroup {
	grouped := make(map[segment.Fingerprint][]Row)
	for _, idxs := range s.byClass {
		for _, i := range idxs {
			row := s.rows[i]
			fp := segment.Fingerprint{
				StarRating:         row.StarRating,
				PropertyType:       row.PropertyType,
				DistanceFromCenter: row.DistanceFromCenter,
			}
			grouped[fp] = append(grouped[fp], row)
		}
	}

	groups := make([]fingerprintGroup, 0, len(grouped))
	for fp, rows := range grouped {
		groups = append(groups, fingerprintGroup{fp: fp, rows: rows})
	}
	sort.Slice(groups, func(a, b int) bool {
		if groups[a].fp.StarRating != groups[b].fp.StarRating {
			return groups[a].fp.StarRating < groups[b].fp.StarRating
		}
		if groups[a].fp.PropertyType != groups[b].fp.PropertyType {
			return groups[a].fp.PropertyType < groups[b].fp.PropertyType
		}
		return groups[a].fp.DistanceFromCenter < groups[b].fp.DistanceFromCenter
	})
	return groups
}
