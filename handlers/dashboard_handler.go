// handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/config"
	"github.com/nigcomsat/coverage-dashboard/dataset"
	"github.com/nigcomsat/coverage-dashboard/models"
	"github.com/nigcomsat/coverage-dashboard/services"
	"github.com/nigcomsat/coverage-dashboard/utils"
)

// Dashboard bundles the HTTP surface around the session dataset store.
// The store is injected once at startup so the pure pipeline never touches
// global state.
type Dashboard struct {
	store *dataset.Store
}

// NewDashboard creates the handler set over the given store.
func NewDashboard(store *dataset.Store) *Dashboard {
	return &Dashboard{store: store}
}

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.WithField("component", "handler").Errorf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.WithField("component", "handler").Warnf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// parseFilterParams reads the two sidebar filters from query parameters.
// Absent values fall back to "All Regions" and the configured default
// threshold; a non-numeric min_coverage is a client error, out-of-range
// numbers are clamped.
func parseFilterParams(r *http.Request) (models.FilterParams, error) {
	q := r.URL.Query()

	params := models.FilterParams{
		Region:      utils.NormalizeRegionSelector(q.Get("region"), models.AllRegionsSentinel),
		MinCoverage: config.AppConfig.Dashboard.DefaultMinCoverage,
	}

	if raw := q.Get("min_coverage"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("invalid min_coverage %q: must be a number between 0 and 100", raw)
		}
		params.MinCoverage = utils.ClampCoverageThreshold(v)
	}

	return params, nil
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return false
	}
	return true
}

// HealthHandler reports liveness and dataset readiness.
// GET /api/health
func (d *Dashboard) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"message": "NIGCOMSAT coverage dashboard backend is healthy",
		"records": d.store.Len(),
	})
}

// MetaHandler returns the sidebar reference data: selector options, dataset
// cardinality, and the most recent Last_Update over the full dataset.
// GET /api/meta
func (d *Dashboard) MetaHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	respondWithJSON(w, http.StatusOK, models.DashboardMeta{
		Regions:      models.Regions,
		RecordCount:  d.store.Len(),
		LatestUpdate: d.store.LatestUpdate(),
	})
}

// SummaryHandler returns the four headline metrics for the current filters,
// with deltas against the unfiltered baseline.
// GET /api/summary?region=...&min_coverage=...
func (d *Dashboard) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	baseline := d.store.Records()
	filtered := services.FilterRecords(baseline, params)
	respondWithJSON(w, http.StatusOK, services.Summarize(filtered, baseline))
}

// RegionsHandler returns the per-region aggregation of the filtered set.
// GET /api/regions?region=...&min_coverage=...
func (d *Dashboard) RegionsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := services.FilterRecords(d.store.Records(), params)
	aggregates, err := services.AggregateByRegion(filtered)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to aggregate records: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, aggregates)
}

// MapHandler returns the jittered map points plus their encoding config.
// Jitter is fresh on every request.
// GET /api/map?region=...&min_coverage=...
func (d *Dashboard) MapHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := services.FilterRecords(d.store.Records(), params)
	respondWithJSON(w, http.StatusOK, models.MapView{
		Points: services.MapPoints(filtered, nil),
		Config: services.DefaultMapConfig(),
	})
}

// ChartsHandler returns the four analysis chart specs over the filtered set.
// GET /api/charts?region=...&min_coverage=...
func (d *Dashboard) ChartsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := services.FilterRecords(d.store.Records(), params)
	specs, err := services.BuildChartSpecs(filtered)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to build chart specs: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, specs)
}

// RecordsHandler returns the raw-data table view, sorted by coverage
// percentage descending.
// GET /api/records?region=...&min_coverage=...
func (d *Dashboard) RecordsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := services.FilterRecords(d.store.Records(), params)
	respondWithJSON(w, http.StatusOK, services.SortByCoverageDesc(filtered))
}

// ExportHandler streams the filtered set as a CSV attachment named after the
// export date.
// GET /api/export?region=...&min_coverage=...
func (d *Dashboard) ExportHandler(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	params, err := parseFilterParams(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := services.FilterRecords(d.store.Records(), params)
	data, err := services.ExportCSV(filtered)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to export CSV: %v", err))
		return
	}

	filename := services.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
