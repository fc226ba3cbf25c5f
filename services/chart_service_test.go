// services/chart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigcomsat/coverage-dashboard/models"
)

func TestBuildChartSpecs(t *testing.T) {
	records := sampleRecords(t)
	filtered := FilterRecords(records, models.FilterParams{Region: models.AllRegionsSentinel, MinCoverage: 0})

	specs, err := BuildChartSpecs(filtered)
	require.NoError(t, err)
	require.Len(t, specs, 4)

	kinds := []string{specs[0].Kind, specs[1].Kind, specs[2].Kind, specs[3].Kind}
	assert.Equal(t, []string{"bar", "pie", "box", "scatter"}, kinds)

	// Bar and pie plot the region aggregation; box and scatter plot rows.
	barData, ok := specs[0].Data.([]models.RegionAggregate)
	require.True(t, ok)
	assert.Len(t, barData, len(models.Regions))

	boxData, ok := specs[2].Data.([]models.CoverageRecord)
	require.True(t, ok)
	assert.Len(t, boxData, len(filtered))

	assert.Equal(t, 0.4, specs[1].Hole)
	assert.True(t, specs[2].ShowPoints)
	assert.Equal(t, "coverage_percentage", specs[3].SizeField)
}

func TestBuildChartSpecsEmptySet(t *testing.T) {
	specs, err := BuildChartSpecs([]models.CoverageRecord{})
	require.NoError(t, err)
	require.Len(t, specs, 4)

	barData, ok := specs[0].Data.([]models.RegionAggregate)
	require.True(t, ok)
	assert.Empty(t, barData)
}
