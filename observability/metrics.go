// observability/metrics.go
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics for the dashboard backend and
// provides helpers to wire them into HTTP handlers.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests *prometheus.CounterVec

	DatasetRecords       prometheus.Gauge
	DatasetUpdateAgeDays prometheus.Gauge
}

// NewCollector registers the dashboard metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "Total number of handled dashboard API requests, labeled by path and status code.",
	}, []string{"path", "code"})
	if err := reg.Register(requests); err != nil {
		return nil, err
	}

	records := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_records",
		Help: "Number of coverage records in the memoized session dataset.",
	})
	if err := reg.Register(records); err != nil {
		return nil, err
	}

	updateAge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_latest_update_age_days",
		Help: "Age in days of the most recent Last_Update in the dataset.",
	})
	if err := reg.Register(updateAge); err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:             gatherer,
		HTTPRequests:         requests,
		DatasetRecords:       records,
		DatasetUpdateAgeDays: updateAge,
	}, nil
}

// ObserveDataset records the dataset gauges once the store has warmed.
func (c *Collector) ObserveDataset(recordCount int, latestUpdate, now time.Time) {
	c.DatasetRecords.Set(float64(recordCount))
	c.DatasetUpdateAgeDays.Set(now.Sub(latestUpdate).Hours() / 24)
}

// InstrumentHandler wraps an http.HandlerFunc and counts requests by path
// and response status code.
func (c *Collector) InstrumentHandler(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		c.HTTPRequests.WithLabelValues(path, strconv.Itoa(rec.code)).Inc()
	}
}

// Handler exposes the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}
