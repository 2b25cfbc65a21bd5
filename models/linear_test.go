package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLinearScorerScore(t *testing.T) {
	s := &LinearScorer{Intercept: 1.5, Coef: []float64{2, -1, 0.5}}

	x := mat.NewDense(2, 3, []float64{
		1, 2, 4,
		0, 1, 2,
	})
	preds, err := s.Score(x)
	require.Nil(t, err)
	require.Len(t, preds, 2)
	assert.InDelta(t, 1.5+2-2+2, preds[0], 1e-12)
	assert.InDelta(t, 1.5-1+1, preds[1], 1e-12)
}

func TestLinearScorerErrors(t *testing.T) {
	s := &LinearScorer{Intercept: 0, Coef: []float64{1, 2}}

	_, err := s.Score(nil)
	assert.ErrorIs(t, err, ErrNoDesignMatrix)

	_, err = s.Score(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)
}

func TestLoadLinearScorer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.Nil(t, os.WriteFile(path, []byte(`{"intercept": 2.5, "coef": [1, -0.5]}`), 0o644))

	s, err := LoadLinearScorer(path)
	require.Nil(t, err)
	assert.Equal(t, 2.5, s.Intercept)
	assert.Equal(t, []float64{1, -0.5}, s.Coef)

	require.Nil(t, os.WriteFile(path, []byte(`{"intercept": 2.5, "coef": []}`), 0o644))
	_, err = LoadLinearScorer(path)
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)
}
