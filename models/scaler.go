package models

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

var ErrZeroScale = errors.New("scaler artifact has a zero scale entry")

// StandardScaler applies the externally fitted standardization,
// (x - mean) / scale, per schema column.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadStandardScaler reads a fitted scaler artifact from a JSON file.
func LoadStandardScaler(path string) (*StandardScaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact, %w", err)
	}
	var s StandardScaler
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scaler artifact, %w", err)
	}
	if len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler artifact mean has %d entries, scale has %d, %w", len(s.Mean), len(s.Scale), ErrFeatureLenMismatch)
	}
	for _, v := range s.Scale {
		if v == 0 {
			return nil, ErrZeroScale
		}
	}
	return &s, nil
}

// Transform standardizes each row of x against the fitted means and scales.
func (s *StandardScaler) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	m, n := x.Dims()
	if n != len(s.Mean) {
		return nil, fmt.Errorf("design matrix has %d columns, artifact has %d, %w", n, len(s.Mean), ErrFeatureLenMismatch)
	}

	out := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, (x.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return out, nil
}

// IdentityScaler passes feature rows through unchanged. Used when the trained
// model was fit on unscaled features and in tests.
type IdentityScaler struct{}

// Transform returns x unchanged.
func (IdentityScaler) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	return x, nil
}
