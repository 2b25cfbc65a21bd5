package feature

import (
	"errors"
	"math"
	"time"

	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/segment"
)

var ErrNoSchema = errors.New("synthesizer has no schema")

// Synthesizer assembles scorer-ready feature rows: raw features re-indexed to
// the external schema with NaN entries imputed by reference column means. The
// means come from the full historical feature frame and are computed once per
// run, never per row.
type Synthesizer struct {
	Schema   Schema
	Means    map[string]float64
	Holidays holiday.Set
	MinYear  int
}

// NewSynthesizer returns a Synthesizer over the given read-only inputs.
func NewSynthesizer(schema Schema, means map[string]float64, holidays holiday.Set, minYear int) (*Synthesizer, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{
		Schema:   schema,
		Means:    means,
		Holidays: holidays,
		MinYear:  minYear,
	}, nil
}

// Row synthesizes the schema-ordered, imputed feature row for day d at index i
// of the series. Only finalized entries before i are read.
func (s *Synthesizer) Row(fp segment.Fingerprint, d time.Time, series *segment.Series, i int) ([]float64, error) {
	if len(s.Schema) == 0 {
		return nil, ErrNoSchema
	}
	raw := Raw(fp, d, series.Occupied(), i, s.Holidays, s.MinYear)
	row := s.Schema.Reindex(raw)
	s.impute(row)
	return row, nil
}

func (s *Synthesizer) impute(row []float64) {
	for i, v := range row {
		if !math.IsNaN(v) {
			continue
		}
		if mean, ok := s.Means[s.Schema[i]]; ok {
			row[i] = mean
		}
	}
}
