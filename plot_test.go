package staysync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadevpnair10/STAYSYNC/catalog"
)

func testResult() *Result {
	cutoff := day(2024, 3, 1)
	res := &Result{
		Property: catalog.Property{
			Name:               "Seaside Inn",
			StarRating:         4,
			PropertyType:       "Hotel",
			DistanceFromCenter: 2.5,
		},
		Cutoff:     cutoff,
		RoomNights: 960,
		Revenue:    96000,
	}
	for i := -2; i <= 0; i++ {
		res.Points = append(res.Points, Point{
			Date:     cutoff.AddDate(0, 0, i),
			Occupied: 18,
			Source:   SourceActual,
		})
	}
	for i := 1; i <= 3; i++ {
		res.Points = append(res.Points, Point{
			Date:     cutoff.AddDate(0, 0, i),
			Occupied: 32,
			Source:   SourceForecast,
		})
	}
	return res
}

func TestPlotHTML(t *testing.T) {
	html, err := PlotHTML(testResult())
	require.Nil(t, err)

	assert.Contains(t, html, "Hotel Occupancy Forecast - Seaside Inn")
	assert.Contains(t, html, SourceActual)
	assert.Contains(t, html, SourceForecast)
	for i := -2; i <= 3; i++ {
		assert.Contains(t, html, day(2024, 3, 1).AddDate(0, 0, i).Format(time.DateOnly))
	}
}

func TestLineOccupancySeparatesSources(t *testing.T) {
	line := LineOccupancy(testResult())
	require.Len(t, line.MultiSeries, 2)
	assert.Equal(t, SourceActual, line.MultiSeries[0].Name)
	assert.Equal(t, SourceForecast, line.MultiSeries[1].Name)
}
