// models/api_models.go
package models

import "time"

// FilterParams carries the two sidebar filter inputs. Handlers parse these
// from query parameters; the service layer treats them as validated but
// still clamps MinCoverage defensively.
type FilterParams struct {
	Region      string  `json:"region"`       // "All Regions" or one of the 6 zone names
	MinCoverage float64 `json:"min_coverage"` // 0..100
}

// MetricValue pairs a summary scalar with its delta against the same metric
// computed over the unfiltered baseline dataset.
type MetricValue struct {
	Value NullableFloat `json:"value"`
	Delta NullableFloat `json:"delta"`
}

// SummaryMetrics are the four headline numbers at the top of the dashboard.
type SummaryMetrics struct {
	AvgCoverage    MetricValue `json:"avg_coverage"`
	ConnectedUsers MetricValue `json:"connected_users"`
	AvgSpeedMbps   MetricValue `json:"avg_speed_mbps"`
	AvgLatencyMs   MetricValue `json:"avg_latency_ms"`
}

// RegionAggregate is one row of the per-region group-by: mean coverage,
// total connected users, and how many states survived the current filter.
type RegionAggregate struct {
	Region         Region  `json:"region"`
	AvgCoverage    float64 `json:"avg_coverage"`
	ConnectedUsers int64   `json:"connected_users"`
	StateCount     int     `json:"state_count"`
}

// MapPoint is a coverage record placed at a jittered coordinate near its
// region centroid. Lat/Lon carry no meaning beyond visual de-overlap.
type MapPoint struct {
	CoverageRecord
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DashboardMeta feeds the sidebar: the selector options and the most recent
// Last_Update across the full (unfiltered) dataset.
type DashboardMeta struct {
	Regions      []Region  `json:"regions"`
	RecordCount  int       `json:"record_count"`
	LatestUpdate time.Time `json:"latest_update"`
}

// ChartSpec is a declarative chart description handed to the rendering
// collaborator: encoding fields plus the already-filtered rows to plot.
// The backend never renders anything itself.
type ChartSpec struct {
	Kind       string  `json:"kind"` // bar | pie | box | scatter
	Title      string  `json:"title"`
	XField     string  `json:"x_field,omitempty"`
	YField     string  `json:"y_field,omitempty"`
	ColorField string  `json:"color_field,omitempty"`
	SizeField  string  `json:"size_field,omitempty"`
	ColorScale string  `json:"color_scale,omitempty"`
	Hole       float64 `json:"hole,omitempty"`        // donut charts only
	ShowPoints bool    `json:"show_points,omitempty"` // box plots only
	Data       any     `json:"data"`
}

// MapConfig mirrors the scatter-map encoding of the original dashboard.
type MapConfig struct {
	SizeField  string  `json:"size_field"`
	ColorField string  `json:"color_field"`
	HoverField string  `json:"hover_field"`
	ColorScale string  `json:"color_scale"`
	SizeMax    float64 `json:"size_max"`
	Zoom       float64 `json:"zoom"`
}

// MapView is the /api/map payload: jittered points plus their encoding.
type MapView struct {
	Points []MapPoint `json:"points"`
	Config MapConfig  `json:"config"`
}
