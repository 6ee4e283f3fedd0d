// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/debt-capacity/pkg/constants"
)

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinRelativeTolerance checks if two values agree within a tolerance
// scaled by the magnitude of the reference value. References smaller than
// one are compared absolutely.
func WithinRelativeTolerance(val, reference, tolerance float64) bool {
	scale := math.Max(math.Abs(reference), 1)
	return math.Abs(val-reference) <= tolerance*scale
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Finite returns val, or 0 when val is NaN or infinite.
func Finite(val float64) float64 {
	if !IsFinite(val) {
		return 0
	}
	return val
}
