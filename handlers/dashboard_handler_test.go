// handlers/dashboard_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigcomsat/coverage-dashboard/dataset"
	"github.com/nigcomsat/coverage-dashboard/models"
)

func testDashboard() *Dashboard {
	store := dataset.NewStore(dataset.Options{
		Seed: 5,
		Now:  func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	return NewDashboard(store)
}

func doGet(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHealthHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.HealthHandler, "/api/health")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, models.TotalStates, body["records"])
}

func TestMetaHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.MetaHandler, "/api/meta")
	require.Equal(t, http.StatusOK, rr.Code)

	var meta models.DashboardMeta
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meta))
	assert.Len(t, meta.Regions, 6)
	assert.Equal(t, models.TotalStates, meta.RecordCount)
	assert.False(t, meta.LatestUpdate.IsZero())
}

func TestSummaryHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.SummaryHandler, "/api/summary?region=All+Regions&min_coverage=0")
	require.Equal(t, http.StatusOK, rr.Code)

	var summary struct {
		AvgCoverage struct {
			Value *float64 `json:"value"`
			Delta *float64 `json:"delta"`
		} `json:"avg_coverage"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.NotNil(t, summary.AvgCoverage.Value)
	assert.InDelta(t, 0, *summary.AvgCoverage.Delta, 1e-9)
}

func TestSummaryHandlerEmptySetMarshalsNull(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.SummaryHandler, "/api/summary?min_coverage=100")
	require.Equal(t, http.StatusOK, rr.Code)

	var summary struct {
		AvgCoverage struct {
			Value *float64 `json:"value"`
		} `json:"avg_coverage"`
		ConnectedUsers struct {
			Value *float64 `json:"value"`
		} `json:"connected_users"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Nil(t, summary.AvgCoverage.Value, "undefined mean must serialize as null")
	require.NotNil(t, summary.ConnectedUsers.Value)
	assert.Equal(t, 0.0, *summary.ConnectedUsers.Value)
}

func TestSummaryHandlerRejectsBadThreshold(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.SummaryHandler, "/api/summary?min_coverage=plenty")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "min_coverage")
}

func TestSummaryHandlerMethodNotAllowed(t *testing.T) {
	dash := testDashboard()

	req := httptest.NewRequest(http.MethodPost, "/api/summary", nil)
	rr := httptest.NewRecorder()
	dash.SummaryHandler(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRegionsHandlerFiltersByRegion(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.RegionsHandler, "/api/regions?region=South+East")
	require.Equal(t, http.StatusOK, rr.Code)

	var aggregates []models.RegionAggregate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &aggregates))
	require.Len(t, aggregates, 1)
	assert.Equal(t, models.RegionSouthEast, aggregates[0].Region)
	assert.Equal(t, 5, aggregates[0].StateCount)
}

func TestMapHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.MapHandler, "/api/map")
	require.Equal(t, http.StatusOK, rr.Code)

	var view models.MapView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Len(t, view.Points, models.TotalStates)
	assert.Equal(t, "Viridis", view.Config.ColorScale)
}

func TestChartsHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.ChartsHandler, "/api/charts?min_coverage=40")
	require.Equal(t, http.StatusOK, rr.Code)

	var specs []models.ChartSpec
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &specs))
	require.Len(t, specs, 4)
	assert.Equal(t, "bar", specs[0].Kind)
}

func TestRecordsHandlerSortsByCoverage(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.RecordsHandler, "/api/records")
	require.Equal(t, http.StatusOK, rr.Code)

	var records []models.CoverageRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, models.TotalStates)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].CoveragePercentage, records[i].CoveragePercentage)
	}
}

func TestExportHandler(t *testing.T) {
	dash := testDashboard()

	rr := doGet(t, dash.ExportHandler, "/api/export?region=North+West&min_coverage=0")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))

	disposition := rr.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "nigcomsat_coverage_")
	assert.Contains(t, disposition, ".csv")

	lines := strings.Split(strings.TrimRight(rr.Body.String(), "\n"), "\n")
	// North West has 7 states; header plus one row each.
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "Region,State,"))
}

func TestWithCORS(t *testing.T) {
	wrapped := WithCORS("http://localhost:3000", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := doGet(t, wrapped, "/api/meta")
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/meta", nil)
	preflight := httptest.NewRecorder()
	wrapped(preflight, req)
	assert.Equal(t, http.StatusNoContent, preflight.Code)
}
