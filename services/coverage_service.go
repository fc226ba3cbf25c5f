// services/coverage_service.go
package services

import (
	"math"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/models"
	"github.com/nigcomsat/coverage-dashboard/utils"
)

// FilterRecords applies the two sidebar filters: a region selector (the
// "All Regions" sentinel keeps everything) and a minimum coverage threshold.
// The filter is stable: surviving records keep their input order. An empty
// result is valid and expected for strict thresholds.
func FilterRecords(records []models.CoverageRecord, params models.FilterParams) []models.CoverageRecord {
	region := utils.NormalizeRegionSelector(params.Region, models.AllRegionsSentinel)
	minCoverage := utils.ClampCoverageThreshold(params.MinCoverage)

	filtered := make([]models.CoverageRecord, 0, len(records))
	linq.From(records).
		WhereT(func(rec models.CoverageRecord) bool {
			if region != models.AllRegionsSentinel && string(rec.Region) != region {
				return false
			}
			return rec.CoveragePercentage >= minCoverage
		}).
		ToSlice(&filtered)

	log.WithField("component", "service").Debugf(
		"Filter region=%q min_coverage=%.1f kept %d of %d records",
		region, minCoverage, len(filtered), len(records))
	return filtered
}

// Summarize computes the four headline metrics over the filtered set, each
// paired with a delta against the unfiltered baseline. Means over an empty
// set come back NaN (marshalled as null); sums come back 0.
func Summarize(filtered, baseline []models.CoverageRecord) models.SummaryMetrics {
	return models.SummaryMetrics{
		AvgCoverage:    metricPair(mean(filtered, coverageOf), mean(baseline, coverageOf)),
		ConnectedUsers: metricPair(float64(sumConnectedUsers(filtered)), float64(sumConnectedUsers(baseline))),
		AvgSpeedMbps:   metricPair(mean(filtered, speedOf), mean(baseline, speedOf)),
		AvgLatencyMs:   metricPair(mean(filtered, latencyOf), mean(baseline, latencyOf)),
	}
}

// AggregateByRegion groups the records by region and reports mean coverage,
// total connected users, and surviving state count per group. Regions with
// no surviving records are absent from the result. The data model forbids a
// state living under two regions; that is asserted here rather than assumed.
func AggregateByRegion(records []models.CoverageRecord) ([]models.RegionAggregate, error) {
	seen := make(map[string]models.Region, len(records))
	for _, rec := range records {
		if prev, ok := seen[rec.State]; ok && prev != rec.Region {
			return nil, errors.Errorf("state %q appears under both %q and %q", rec.State, prev, rec.Region)
		}
		seen[rec.State] = rec.Region
	}

	// models.Regions is already in the order the bar chart expects, so group
	// membership is resolved per region instead of via an unordered map.
	aggregates := make([]models.RegionAggregate, 0, len(models.Regions))
	for _, region := range models.Regions {
		var group []models.CoverageRecord
		linq.From(records).
			WhereT(func(rec models.CoverageRecord) bool { return rec.Region == region }).
			ToSlice(&group)
		if len(group) == 0 {
			continue
		}
		aggregates = append(aggregates, models.RegionAggregate{
			Region:         region,
			AvgCoverage:    mean(group, coverageOf),
			ConnectedUsers: sumConnectedUsers(group),
			StateCount:     len(group),
		})
	}
	return aggregates, nil
}

// SortByCoverageDesc orders records by coverage percentage, best first, for
// the raw-data table. The input slice is left untouched.
func SortByCoverageDesc(records []models.CoverageRecord) []models.CoverageRecord {
	sorted := make([]models.CoverageRecord, 0, len(records))
	linq.From(records).
		OrderByDescendingT(func(rec models.CoverageRecord) float64 { return rec.CoveragePercentage }).
		ToSlice(&sorted)
	return sorted
}

func metricPair(value, baselineValue float64) models.MetricValue {
	return models.MetricValue{
		Value: models.NullableFloat(value),
		Delta: models.NullableFloat(value - baselineValue),
	}
}

func mean(records []models.CoverageRecord, field func(models.CoverageRecord) float64) float64 {
	if len(records) == 0 {
		return math.NaN()
	}
	return linq.From(records).
		SelectT(func(rec models.CoverageRecord) float64 { return field(rec) }).
		Average()
}

func sumConnectedUsers(records []models.CoverageRecord) int64 {
	return linq.From(records).
		SelectT(func(rec models.CoverageRecord) int { return rec.ConnectedUsers }).
		SumInts()
}

func coverageOf(rec models.CoverageRecord) float64 { return rec.CoveragePercentage }
func speedOf(rec models.CoverageRecord) float64    { return rec.AvgSpeedMbps }
func latencyOf(rec models.CoverageRecord) float64  { return rec.LatencyMs }
