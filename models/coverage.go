// models/coverage.go
package models

import (
	"math"
	"strconv"
	"time"
)

// CoverageRecord represents the broadband coverage snapshot for a single
// Nigerian state. CSV tags match the export header EXACTLY; json tags are
// what the dashboard UI consumes.
type CoverageRecord struct {
	Region             Region    `csv:"Region" json:"region"`
	State              string    `csv:"State" json:"state"`
	Population         int       `csv:"Population" json:"population"`
	CoveragePercentage float64   `csv:"Coverage_Percentage" json:"coverage_percentage"`
	ConnectedUsers     int       `csv:"Connected_Users" json:"connected_users"`
	AvgSpeedMbps       float64   `csv:"Avg_Speed_Mbps" json:"avg_speed_mbps"`
	LatencyMs          float64   `csv:"Latency_ms" json:"latency_ms"`
	LastUpdate         time.Time `csv:"Last_Update" json:"last_update"`
}

// NullableFloat is a float64 that marshals NaN as JSON null instead of
// failing. Summary metrics over an empty filtered set are undefined, and the
// UI renders null as "n/a".
type NullableFloat float64

// MarshalJSON implements json.Marshaler.
func (f NullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// IsDefined reports whether the value carries a usable number.
func (f NullableFloat) IsDefined() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
