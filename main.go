// main.go
package main

import (
	"net/http"
	"time"

	"github.com/alexflint/go-arg"
	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"

	"github.com/nigcomsat/coverage-dashboard/config"
	"github.com/nigcomsat/coverage-dashboard/dataset"
	"github.com/nigcomsat/coverage-dashboard/handlers"
	"github.com/nigcomsat/coverage-dashboard/observability"
)

type cliArgs struct {
	Config    string    `arg:"-c,--config" help:"path to config.yaml (default: probe standard locations)"`
	Port      string    `arg:"-p,--port" help:"override the configured server port"`
	Verbosity log.Level `arg:"-v,--verbosity" help:"log level: debug, info, warn, error"`
}

func main() {
	args := cliArgs{Verbosity: log.InfoLevel}
	arg.MustParse(&args)

	log.SetLevel(args.Verbosity)
	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component"},
	})

	log.Info("Starting NIGCOMSAT Coverage Dashboard backend...")

	if err := config.LoadConfig(args.Config); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if args.Port != "" {
		config.AppConfig.Server.Port = args.Port
	}
	log.Infof("Configuration loaded. Server port: %s, default min coverage: %.0f%%",
		config.AppConfig.Server.Port, config.AppConfig.Dashboard.DefaultMinCoverage)

	// The session dataset is generated once up front; filter changes only
	// ever re-filter and re-aggregate this snapshot.
	store := dataset.NewStore(dataset.Options{Seed: config.AppConfig.Dataset.Seed})
	store.Warm()

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatalf("Error registering metrics: %v", err)
	}
	collector.ObserveDataset(store.Len(), store.LatestUpdate(), time.Now())

	dash := handlers.NewDashboard(store)
	allowOrigin := config.AppConfig.Dashboard.AllowOrigin

	route := func(path string, h http.HandlerFunc) {
		http.HandleFunc(path, collector.InstrumentHandler(path, handlers.WithCORS(allowOrigin, h)))
	}

	route("/api/health", dash.HealthHandler)
	route("/api/meta", dash.MetaHandler)
	route("/api/summary", dash.SummaryHandler)
	route("/api/regions", dash.RegionsHandler)
	route("/api/map", dash.MapHandler)
	route("/api/charts", dash.ChartsHandler)
	route("/api/records", dash.RecordsHandler)
	route("/api/export", dash.ExportHandler)
	http.Handle("/metrics", collector.Handler())

	serverAddr := config.AppConfig.Server.Host + ":" + config.AppConfig.Server.Port
	log.Infof("Server starting on http://localhost:%s", config.AppConfig.Server.Port)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
