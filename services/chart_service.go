// services/chart_service.go
package services

import "github.com/nigcomsat/coverage-dashboard/models"

// BuildChartSpecs assembles the four analysis charts over the filtered set
// as plain configuration values. The rendering collaborator owns everything
// visual; this backend only decides what is plotted against what.
func BuildChartSpecs(filtered []models.CoverageRecord) ([]models.ChartSpec, error) {
	aggregates, err := AggregateByRegion(filtered)
	if err != nil {
		return nil, err
	}

	return []models.ChartSpec{
		{
			Kind:       "bar",
			Title:      "Average Coverage Percentage by Region",
			XField:     "region",
			YField:     "avg_coverage",
			ColorField: "avg_coverage",
			ColorScale: "Blues",
			Data:       aggregates,
		},
		{
			Kind:   "pie",
			Title:  "Connected Users Distribution by Region",
			XField: "region",
			YField: "connected_users",
			Hole:   0.4,
			Data:   aggregates,
		},
		{
			Kind:       "box",
			Title:      "Internet Speed Distribution by Region (Mbps)",
			XField:     "region",
			YField:     "avg_speed_mbps",
			ColorField: "region",
			ShowPoints: true,
			Data:       filtered,
		},
		{
			Kind:       "scatter",
			Title:      "Speed vs Latency Correlation",
			XField:     "avg_speed_mbps",
			YField:     "latency_ms",
			ColorField: "region",
			SizeField:  "coverage_percentage",
			Data:       filtered,
		},
	}, nil
}
