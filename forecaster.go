// Package staysync forecasts short-horizon hotel room occupancy for a
// property segment and converts the forecast into projected room-nights and
// revenue. The core is an autoregressive loop: each future day's feature row
// is synthesized from the finalized series so far, scored by the externally
// trained model, and the prediction written back before the next day's
// features are computed.
package staysync

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mahadevpnair10/STAYSYNC/catalog"
	"github.com/mahadevpnair10/STAYSYNC/dataset"
	"github.com/mahadevpnair10/STAYSYNC/feature"
	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/models"
	"github.com/mahadevpnair10/STAYSYNC/segment"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidRate     = errors.New("average daily rate must be positive")
	ErrMissingStore    = errors.New("no historical dataset store")
	ErrMissingScorer   = errors.New("no scoring model")
	ErrMissingScaler   = errors.New("no feature scaler")
	ErrMissingCatalog  = errors.New("no property catalog")
	ErrEmptyPrediction = errors.New("scorer returned no prediction")
)

const (
	// OccupancyAdjustment is the empirical correction applied to both actual
	// and forecast occupancy before display and revenue math.
	OccupancyAdjustment = 1.75

	// HorizonDays is how far past the cutoff the forecast extends.
	HorizonDays = 30

	// ActualDays is how far back from the cutoff the displayed actual slice
	// reaches.
	ActualDays = 30
)

// Dependencies are the read-only collaborators a Forecaster is built from.
// All of them are loaded once at process start; the Forecaster never reloads
// or mutates them.
type Dependencies struct {
	Store    *dataset.Store
	Holidays holiday.Set
	Scorer   models.Scorer
	Scaler   models.Scaler
	Schema   feature.Schema
	Catalog  *catalog.Catalog

	// Tolerance is the distance window for segment history matching.
	// Zero selects dataset.DefaultTolerance.
	Tolerance float64
}

// Forecaster runs segment occupancy forecasts. It is safe for concurrent use;
// every forecast invocation owns its own extended series.
type Forecaster struct {
	store     *dataset.Store
	holidays  holiday.Set
	scorer    models.Scorer
	scaler    models.Scaler
	schema    feature.Schema
	catalog   *catalog.Catalog
	synth     *feature.Synthesizer
	tolerance float64
}

// New validates the dependencies, computes the reference imputation means over
// the full historical feature frame, and returns a ready Forecaster.
func New(deps Dependencies) (*Forecaster, error) {
	if deps.Store == nil {
		return nil, ErrMissingStore
	}
	if deps.Scorer == nil {
		return nil, ErrMissingScorer
	}
	if deps.Scaler == nil {
		return nil, ErrMissingScaler
	}
	if deps.Catalog == nil {
		return nil, ErrMissingCatalog
	}
	if err := deps.Schema.Validate(); err != nil {
		return nil, err
	}
	tolerance := deps.Tolerance
	if tolerance == 0 {
		tolerance = dataset.DefaultTolerance
	}

	means := deps.Store.FeatureMeans(deps.Holidays)
	synth, err := feature.NewSynthesizer(deps.Schema, means, deps.Holidays, deps.Store.MinYear())
	if err != nil {
		return nil, err
	}

	return &Forecaster{
		store:     deps.Store,
		holidays:  deps.Holidays,
		scorer:    deps.Scorer,
		scaler:    deps.Scaler,
		schema:    deps.Schema,
		catalog:   deps.Catalog,
		synth:     synth,
		tolerance: tolerance,
	}, nil
}

// Catalog returns the property catalog the forecaster was built with.
func (f *Forecaster) Catalog() *catalog.Catalog {
	return f.catalog
}

// ForecastSegment extends the segment's history from the cutoff through end,
// one day at a time. Each step synthesizes features from the finalized prefix
// only, scores a single row, and finalizes the prediction before moving on.
// The steps cannot be reordered or parallelized: every row depends on the
// previous step's output.
func (f *Forecaster) ForecastSegment(fp segment.Fingerprint, cutoff, end time.Time) (*segment.Series, error) {
	hist, err := f.store.SegmentHistory(fp, cutoff, f.tolerance)
	if err != nil {
		return nil, err
	}

	series, err := segment.NewSeries(hist, cutoff, end)
	if err != nil {
		return nil, fmt.Errorf("build extended series, %w", err)
	}

	for i := series.Frontier(); i < series.Len(); i++ {
		d := series.Date(i)
		row, err := f.synth.Row(fp, d, series, i)
		if err != nil {
			return nil, fmt.Errorf("synthesize features for %s, %w", d.Format(time.DateOnly), err)
		}

		x := mat.NewDense(1, len(row), row)
		scaled, err := f.scaler.Transform(x)
		if err != nil {
			return nil, fmt.Errorf("scale features for %s, %w", d.Format(time.DateOnly), err)
		}
		preds, err := f.scorer.Score(scaled)
		if err != nil {
			return nil, fmt.Errorf("score features for %s, %w", d.Format(time.DateOnly), err)
		}
		if len(preds) == 0 {
			return nil, fmt.Errorf("at %s, %w", d.Format(time.DateOnly), ErrEmptyPrediction)
		}

		if err := series.Finalize(i, preds[0]); err != nil {
			return nil, err
		}
	}
	return series, nil
}

// ForecastProperty forecasts the next HorizonDays of occupancy for a property
// using today as the cutoff.
func (f *Forecaster) ForecastProperty(name string, adr float64) (*Result, error) {
	return f.ForecastPropertyAt(name, adr, time.Now())
}

// ForecastPropertyAt is ForecastProperty with an explicit cutoff date.
func (f *Forecaster) ForecastPropertyAt(name string, adr float64, cutoff time.Time) (*Result, error) {
	if adr <= 0 {
		return nil, ErrInvalidRate
	}
	prop, err := f.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	fp := prop.Fingerprint()

	cutoff = segment.Midnight(cutoff)
	start := cutoff.AddDate(0, 0, -ActualDays)
	end := cutoff.AddDate(0, 0, HorizonDays)

	series, err := f.ForecastSegment(fp, cutoff, end)
	if err != nil {
		return nil, err
	}

	// displayed actuals use the exact-distance rows, not the tolerance match
	actuals := f.store.Actuals(fp, start, cutoff)
	future := series.Slice(cutoff.AddDate(0, 0, 1), end)

	res := &Result{
		Property: prop,
		Cutoff:   cutoff,
		Points:   make([]Point, 0, len(actuals)+len(future)),
	}
	for _, obs := range actuals {
		res.Points = append(res.Points, Point{
			Date:     obs.Date,
			Occupied: adjustActual(obs.Occupied),
			Source:   SourceActual,
		})
	}

	var roomNights float64
	for _, obs := range future {
		v := adjustForecast(obs.Occupied)
		roomNights += v
		res.Points = append(res.Points, Point{
			Date:     obs.Date,
			Occupied: v,
			Source:   SourceForecast,
		})
	}
	res.RoomNights = int(roomNights)
	res.Revenue = int(float64(res.RoomNights) * adr)
	return res, nil
}

// adjustActual applies the occupancy adjustment to a ground-truth value:
// scale, then round up.
func adjustActual(v float64) float64 {
	return math.Ceil(v * OccupancyAdjustment)
}

// adjustForecast applies the occupancy adjustment to a raw model output:
// ceiling on the raw value, then two scale-and-ceiling passes. Forecast values
// are deliberately adjusted harder than actuals.
func adjustForecast(v float64) float64 {
	v = math.Ceil(v)
	v = math.Ceil(v * OccupancyAdjustment)
	v = math.Ceil(v * OccupancyAdjustment)
	return v
}
