// Package bootstrap loads the external artifacts and assembles the forecast
// core. Everything loaded here is read-only for the life of the process.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2/us"
	"github.com/rs/zerolog"

	staysync "github.com/mahadevpnair10/STAYSYNC"
	"github.com/mahadevpnair10/STAYSYNC/catalog"
	"github.com/mahadevpnair10/STAYSYNC/dataset"
	"github.com/mahadevpnair10/STAYSYNC/feature"
	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/internal/config"
	"github.com/mahadevpnair10/STAYSYNC/models"
)

// BuildForecaster loads the dataset, catalog, schema, model, scaler, and
// holiday artifacts named by the config and wires them into a Forecaster.
func BuildForecaster(cfg *config.Config, log zerolog.Logger) (*staysync.Forecaster, error) {
	store, err := dataset.LoadCSV(cfg.Artifacts.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Info().Int("rows", store.Len()).Int("min_year", store.MinYear()).Msg("dataset loaded")

	cat, err := catalog.LoadCSV(cfg.Artifacts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	schema, err := feature.LoadSchema(cfg.Artifacts.Schema)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	scorer, err := models.LoadLinearScorer(cfg.Artifacts.Model)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	var scaler models.Scaler = models.IdentityScaler{}
	if cfg.Artifacts.Scaler != "" {
		scaler, err = models.LoadStandardScaler(cfg.Artifacts.Scaler)
		if err != nil {
			return nil, fmt.Errorf("load scaler: %w", err)
		}
	}

	holidays, err := loadHolidays(cfg.Artifacts.Holidays, store.MinYear())
	if err != nil {
		return nil, err
	}

	return staysync.New(staysync.Dependencies{
		Store:     store,
		Holidays:  holidays,
		Scorer:    scorer,
		Scaler:    scaler,
		Schema:    schema,
		Catalog:   cat,
		Tolerance: cfg.Forecast.Tolerance,
	})
}

// loadHolidays reads the holiday artifact, or derives a calendar-based set
// spanning the dataset years through next year when no artifact is named.
func loadHolidays(path string, minYear int) (holiday.Set, error) {
	if path != "" {
		holidays, err := holiday.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load holidays: %w", err)
		}
		return holidays, nil
	}
	return holiday.FromCalendar(us.Holidays, minYear, time.Now().Year()+1), nil
}
