// Package numeric provides small shared numeric helpers.
package numeric

import "math"

const defaultEpsilon = 1e-12

// dbFloor bounds decibel conversions so silent windows report a finite
// level instead of -Inf.
const dbFloor = -300

// AmplitudeDB converts a linear amplitude to decibels, 20*log10(|a|),
// with a floor at -300 dB.
func AmplitudeDB(a float64) float64 {
	a = math.Abs(a)
	if a <= 1e-15 {
		return dbFloor
	}

	db := 20 * math.Log10(a)
	if db < dbFloor {
		return dbFloor
	}

	return db
}

// NearlyEqual reports whether a and b are equal within eps, comparing
// absolutely for small values and relatively otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
