package fireplan

import (
	"math"
	"time"
)

// daysPerYear is the mean calendar year length, used only to scale working-day
// estimates. Growth math never uses it.
const daysPerYear = 365.25

// RealRate converts a nominal annual growth rate and an annual inflation rate,
// both in percent, into a real rate expressed as a fraction.
//
// Negative real rates are valid and expected: a 3% nominal return under 5%
// inflation loses purchasing power.
func RealRate(nominalPct, inflationPct float64) float64 {
	return (nominalPct - inflationPct) / 100
}

// DaysUntil counts the calendar days from now to January 1st of targetYear,
// rounded up. It returns 0 for the current or a past year, never a negative
// count.
func DaysUntil(targetYear int, now Date) int {
	jan1 := time.Date(targetYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := jan1.Sub(now.time())
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// YearsUntil is DaysUntil expressed as a fractional year count.
func YearsUntil(targetYear int, now Date) float64 {
	return float64(DaysUntil(targetYear, now)) / daysPerYear
}

// WorkingDays estimates the number of working days within totalDays, assuming
// a five day week and subtracting holidayDays of annual leave for each year
// remaining. The result is floored at 0.
func WorkingDays(totalDays int, yearsRemaining float64, holidayDays int) int {
	w := math.Round(float64(totalDays)*5/7 - float64(holidayDays)*yearsRemaining)
	if w < 0 {
		return 0
	}
	return int(w)
}
