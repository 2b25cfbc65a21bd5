package feature

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"
)

var (
	ErrEmptySchema     = errors.New("schema has no columns")
	ErrDuplicateColumn = errors.New("schema has a duplicate column")
)

// Schema is the externally supplied ordered list of feature columns. Every row
// handed to the scorer is re-indexed to exactly this set and order, so the
// scorer sees an identical layout on every call within one run.
type Schema []string

// LoadSchema reads a schema artifact, a JSON array of column names.
func LoadSchema(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema artifact, %w", err)
	}
	var s Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse schema artifact, %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the schema is non-empty with unique columns.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchema
	}
	seen := make(map[string]struct{}, len(s))
	for _, col := range s {
		if _, exists := seen[col]; exists {
			return fmt.Errorf("%q, %w", col, ErrDuplicateColumn)
		}
		seen[col] = struct{}{}
	}
	return nil
}

// Reindex projects a raw feature map onto the schema order. Schema columns
// absent from the map are produced as NaN for downstream imputation; map
// entries not in the schema are dropped.
func (s Schema) Reindex(raw map[string]float64) []float64 {
	row := make([]float64, len(s))
	for i, col := range s {
		v, ok := raw[col]
		if !ok {
			v = math.NaN()
		}
		row[i] = v
	}
	return row
}
