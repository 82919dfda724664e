package services

import "math"

// Standard normal quantiles for the 10th and 90th percentile, used to derive
// the forecast band around the median.
const (
	Z10 = -1.2815515655446004
	Z90 = 1.2815515655446004
)

// FallbackZ is the z-score used when a service level is not present in the
// table (~90th percentile).
const FallbackZ = 1.2815516

// ZTable maps a cycle service level (rounded to two decimals) to the
// corresponding standard normal z-score.
type ZTable map[float64]float64

// DefaultZTable returns the built-in service-level table. Callers may supply
// their own table; entries are non-decreasing in service level.
func DefaultZTable() ZTable {
	return ZTable{
		0.50: 0.0,
		0.60: 0.2533471,
		0.70: 0.5244005,
		0.80: 0.8416212,
		0.85: 1.0364334,
		0.90: 1.2815516,
		0.95: 1.6448536,
		0.98: 2.0537489,
		0.99: 2.3263479,
	}
}

// Lookup returns the z-score for the given target cycle service level. The
// level is rounded to two decimals before lookup; unknown levels fall back to
// FallbackZ rather than erroring.
func (t ZTable) Lookup(targetCSL float64) float64 {
	key := math.Round(targetCSL*100) / 100
	if z, ok := t[key]; ok {
		return z
	}
	return FallbackZ
}
