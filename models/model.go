// Package models carries the externally trained scoring and scaling artifacts
// the forecaster consumes. Training happens elsewhere; this package only loads
// fitted parameters and applies them. Both collaborators are pure and safe to
// call repeatedly from concurrent forecasts.
package models

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoDesignMatrix     = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch = errors.New("number of features does not match the fitted artifact")
)

// Scorer produces one occupancy prediction per feature row. Rows must already
// be re-indexed to the model's schema and scaled.
type Scorer interface {
	Score(x *mat.Dense) ([]float64, error)
}

// Scaler applies the externally fitted feature scaling transform. The output
// has the same shape as the input. No inverse transform is needed.
type Scaler interface {
	Transform(x *mat.Dense) (*mat.Dense, error)
}
