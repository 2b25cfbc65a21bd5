package models

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// LinearScorer scores feature rows with a fitted linear model,
// y = intercept + x·coef. It is the serializable carrier for regression
// artifacts exported by the training pipeline.
type LinearScorer struct {
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
}

// LoadLinearScorer reads a fitted linear model artifact from a JSON file.
func LoadLinearScorer(path string) (*LinearScorer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact, %w", err)
	}
	var s LinearScorer
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse model artifact, %w", err)
	}
	if len(s.Coef) == 0 {
		return nil, fmt.Errorf("model artifact %s, %w", path, ErrFeatureLenMismatch)
	}
	return &s, nil
}

// Score returns one prediction per row of x.
func (s *LinearScorer) Score(x *mat.Dense) ([]float64, error) {
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	m, n := x.Dims()
	if n != len(s.Coef) {
		return nil, fmt.Errorf("design matrix has %d columns, artifact has %d coefficients, %w", n, len(s.Coef), ErrFeatureLenMismatch)
	}

	w := mat.NewDense(1, n, s.Coef)
	var resMx mat.Dense
	resMx.Mul(w, x.T())

	res := mat.Row(nil, 0, &resMx)
	for i := 0; i < m; i++ {
		res[i] += s.Intercept
	}
	return res, nil
}
