// Package feature synthesizes the fixed-schema feature vector consumed by the
// occupancy scoring model. The column set and its encodings mirror the
// training pipeline exactly: calendar values are lossy single-axis sine
// encodings, rolling standard deviations are population deviations, and the
// weekend flag follows the source data's Friday/Saturday convention.
package feature

import (
	"fmt"
	"math"
	"time"

	"github.com/mahadevpnair10/STAYSYNC/holiday"
	"github.com/mahadevpnair10/STAYSYNC/segment"
	"github.com/mahadevpnair10/STAYSYNC/stats"
)

// Column names shared with the externally trained model artifact.
const (
	ColStarRating   = "starRating"
	ColDistance     = "distanceFromCenter"
	ColDayOfWeekSin = "day_of_week_sin"
	ColDayOfYearSin = "day_of_year_sin"
	ColMonthSin     = "month_sin"
	ColYearScaled   = "year_scaled"
	ColIsWeekend    = "is_weekend"
	ColIsHoliday    = "is_holiday"
	ColDailyChange  = "daily_change"
)

// Encoding periods for the calendar sine features.
const (
	DaysPerWeek   = 7.0
	DaysPerYear   = 365.25
	MonthsPerYear = 12.0
)

// PropTypeSlots is the number of one-hot property type indicator columns.
// Category codes at or beyond this produce an all-zero indicator block.
const PropTypeSlots = 10

var (
	// Lags are the day offsets of the lag features.
	Lags = []int{1, 7, 15}
	// RollingWindows are the trailing window sizes for rolling mean/std.
	RollingWindows = []int{3, 7, 15}
)

// LagColumn returns the column name for a lag offset.
func LagColumn(offset int) string {
	return fmt.Sprintf("lag_%d", offset)
}

// RollingMeanColumn returns the column name for a rolling mean window.
func RollingMeanColumn(window int) string {
	return fmt.Sprintf("rolling_%d_mean", window)
}

// RollingStdColumn returns the column name for a rolling std window.
func RollingStdColumn(window int) string {
	return fmt.Sprintf("rolling_%d_std", window)
}

// PropTypeColumn returns the column name of a one-hot property type slot.
func PropTypeColumn(slot int) string {
	return fmt.Sprintf("prop_type_%d", slot)
}

// DayOfWeek returns the zero-based Monday-start weekday index of d.
func DayOfWeek(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// IsWeekend reports the source system's weekend convention: weekday indices 4
// and 5 (Friday/Saturday) under a Monday=0 week. Kept as-is to match the
// trained model.
func IsWeekend(d time.Time) bool {
	dow := DayOfWeek(d)
	return dow == 4 || dow == 5
}

// Raw computes the unimputed feature map for the day d at index i of the
// occupancy values occ. Only indices before i are read. Missing inputs
// produce NaN entries to be imputed against a reference mean downstream.
func Raw(fp segment.Fingerprint, d time.Time, occ []float64, i int, holidays holiday.Set, minYear int) map[string]float64 {
	d = segment.Midnight(d)
	dow := float64(DayOfWeek(d))
	doy := float64(d.YearDay())
	month := float64(d.Month())

	row := map[string]float64{
		ColStarRating:   float64(fp.StarRating),
		ColDistance:     fp.DistanceFromCenter,
		ColDayOfWeekSin: math.Sin(2 * math.Pi * dow / DaysPerWeek),
		ColDayOfYearSin: math.Sin(2 * math.Pi * doy / DaysPerYear),
		ColMonthSin:     math.Sin(2 * math.Pi * month / MonthsPerYear),
		ColYearScaled:   float64(d.Year() - minYear),
		ColIsWeekend:    0,
		ColIsHoliday:    0,
	}
	if IsWeekend(d) {
		row[ColIsWeekend] = 1
	}
	if holidays.Contains(d) {
		row[ColIsHoliday] = 1
	}

	for _, lag := range Lags {
		v := math.NaN()
		if i-lag >= 0 && i-lag < len(occ) {
			v = occ[i-lag]
		}
		row[LagColumn(lag)] = v
	}

	for _, window := range RollingWindows {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i
		if hi > len(occ) {
			hi = len(occ)
		}
		var windowData []float64
		if lo < hi {
			windowData = occ[lo:hi]
		}
		row[RollingMeanColumn(window)] = stats.NaNMean(windowData)
		row[RollingStdColumn(window)] = stats.NaNPopStdDev(windowData)
	}

	change := math.NaN()
	if i-2 >= 0 && i-1 < len(occ) && !math.IsNaN(occ[i-1]) && !math.IsNaN(occ[i-2]) {
		change = occ[i-1] - occ[i-2]
	}
	row[ColDailyChange] = change

	for slot := 0; slot < PropTypeSlots; slot++ {
		v := 0.0
		if fp.PropertyType == slot {
			v = 1.0
		}
		row[PropTypeColumn(slot)] = v
	}
	return row
}
