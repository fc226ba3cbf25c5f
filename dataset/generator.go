// dataset/generator.go
package dataset

import (
	"math/rand/v2"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/models"
)

// Value ranges for the synthetic draws. Bounds are half-open: [min, max).
const (
	populationMin = 500_000
	populationMax = 8_000_000

	coverageMin = 20.0
	coverageMax = 95.0

	speedMinMbps = 5.0
	speedMaxMbps = 50.0

	latencyMinMs = 20.0
	latencyMaxMs = 150.0

	maxUpdateAgeDays = 30
)

// Generate produces one synthetic coverage snapshot: exactly 37 records, one
// per (region, state) pair in the fixed order of models.Regions. Values are
// random per call; only the shape is deterministic.
func Generate(now time.Time, rng *rand.Rand) []models.CoverageRecord {
	records := make([]models.CoverageRecord, 0, models.TotalStates)

	for _, region := range models.Regions {
		for _, state := range models.RegionStates[region] {
			population := populationMin + rng.IntN(populationMax-populationMin)
			coverage := uniform(rng, coverageMin, coverageMax)
			speed := uniform(rng, speedMinMbps, speedMaxMbps)
			latency := uniform(rng, latencyMinMs, latencyMaxMs)

			records = append(records, models.CoverageRecord{
				Region:             region,
				State:              state,
				Population:         population,
				CoveragePercentage: coverage,
				// Truncation keeps the invariant connected_users <= population.
				ConnectedUsers: int(float64(population) * coverage / 100),
				AvgSpeedMbps:   speed,
				LatencyMs:      latency,
				LastUpdate:     now.AddDate(0, 0, -rng.IntN(maxUpdateAgeDays)),
			})
		}
	}

	log.WithField("component", "dataset").Debugf("Generated %d coverage records", len(records))
	return records
}

// uniform draws from [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
