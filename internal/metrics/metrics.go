// Package metrics registers the Prometheus instruments for the forecast
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service instruments.
type Metrics struct {
	ForecastRequests  *prometheus.CounterVec
	ForecastDuration  prometheus.Histogram
	ProfileListSource *prometheus.CounterVec
}

// New creates and registers the instruments on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ForecastRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staysync_forecast_requests_total",
				Help: "Forecast requests by outcome.",
			},
			[]string{"outcome"},
		),
		ForecastDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "staysync_forecast_duration_seconds",
				Help:    "End-to-end forecast latency.",
				Buckets: prometheus.DefBuckets,
			},
		),
		ProfileListSource: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staysync_profile_list_source_total",
				Help: "Profile list fetches by source (supabase or catalog).",
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.ForecastRequests, m.ForecastDuration, m.ProfileListSource)
	return m
}
