// utils/filters.go
package utils

import "strings"

// ClampCoverageThreshold forces a minimum-coverage value into [0, 100].
// The UI slider already bounds its output, but the core must not misbehave
// when fed an out-of-range number directly.
func ClampCoverageThreshold(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NormalizeRegionSelector trims the raw selector value and maps the empty
// string to the "All Regions" sentinel. Unknown region names are returned
// as-is; filtering with one simply yields an empty result.
func NormalizeRegionSelector(raw, sentinel string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sentinel
	}
	return trimmed
}
