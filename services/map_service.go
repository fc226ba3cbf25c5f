// services/map_service.go
package services

import (
	"math/rand/v2"

	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/models"
)

// jitterDegrees is the half-width of the uniform offset applied to each
// coordinate so same-region states do not stack on one point.
const jitterDegrees = 1.0

// MapPoints projects records onto approximate map coordinates: the region
// centroid plus independent jitter in [-1, 1) degrees on each axis. Jitter
// is re-drawn on every call; it is presentation-only and must never feed
// back into the dataset. A nil rng gets a fresh entropy-seeded source.
func MapPoints(records []models.CoverageRecord, rng *rand.Rand) []models.MapPoint {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	points := make([]models.MapPoint, 0, len(records))
	for _, rec := range records {
		centroid, ok := models.RegionCentroids[rec.Region]
		if !ok {
			log.WithField("component", "service").Warnf(
				"No centroid for region %q; dropping %s from the map", rec.Region, rec.State)
			continue
		}
		points = append(points, models.MapPoint{
			CoverageRecord: rec,
			Lat:            centroid.Lat + jitter(rng),
			Lon:            centroid.Lon + jitter(rng),
		})
	}
	return points
}

// DefaultMapConfig is the scatter-map encoding the dashboard renders with.
func DefaultMapConfig() models.MapConfig {
	return models.MapConfig{
		SizeField:  "coverage_percentage",
		ColorField: "coverage_percentage",
		HoverField: "state",
		ColorScale: "Viridis",
		SizeMax:    30,
		Zoom:       5,
	}
}

func jitter(rng *rand.Rand) float64 {
	return -jitterDegrees + rng.Float64()*2*jitterDegrees
}
