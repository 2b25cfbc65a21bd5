package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScalerTransform(t *testing.T) {
	s := &StandardScaler{
		Mean:  []float64{10, 0},
		Scale: []float64{2, 4},
	}

	x := mat.NewDense(2, 2, []float64{
		12, 8,
		10, -4,
	})
	out, err := s.Transform(x)
	require.Nil(t, err)
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.Equal(t, 2.0, out.At(0, 1))
	assert.Equal(t, 0.0, out.At(1, 0))
	assert.Equal(t, -1.0, out.At(1, 1))
}

func TestStandardScalerErrors(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1}, Scale: []float64{1}}

	_, err := s.Transform(nil)
	assert.ErrorIs(t, err, ErrNoDesignMatrix)

	_, err = s.Transform(mat.NewDense(1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)
}

func TestLoadStandardScaler(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scaler.json")

	require.Nil(t, os.WriteFile(path, []byte(`{"mean": [1, 2], "scale": [3, 4]}`), 0o644))
	s, err := LoadStandardScaler(path)
	require.Nil(t, err)
	assert.Equal(t, []float64{1, 2}, s.Mean)

	require.Nil(t, os.WriteFile(path, []byte(`{"mean": [1, 2], "scale": [3]}`), 0o644))
	_, err = LoadStandardScaler(path)
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)

	require.Nil(t, os.WriteFile(path, []byte(`{"mean": [1, 2], "scale": [3, 0]}`), 0o644))
	_, err = LoadStandardScaler(path)
	assert.ErrorIs(t, err, ErrZeroScale)
}

func TestIdentityScaler(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{3, 4})
	out, err := IdentityScaler{}.Transform(x)
	require.Nil(t, err)
	assert.Equal(t, x, out)

	_, err = IdentityScaler{}.Transform(nil)
	assert.ErrorIs(t, err, ErrNoDesignMatrix)
}
