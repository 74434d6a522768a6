package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/optimalsteep/teagraph/pkg/catalog"
	"github.com/optimalsteep/teagraph/pkg/config"
	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/logging"
	"github.com/optimalsteep/teagraph/pkg/metrics"
	"github.com/optimalsteep/teagraph/pkg/recommend"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	catalogPath := flag.String("catalog", "", "Override catalog JSON path")
	benefitsPath := flag.String("benefits", "", "Override benefits CSV path")
	metricsAddr := flag.String("metrics", "", "Serve prometheus metrics on this address (e.g. :9090)")
	logLevel := flag.String("log-level", "", "Override log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *benefitsPath != "" {
		cfg.BenefitsPath = *benefitsPath
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Logs go to stderr so they never tear the TUI on stdout.
	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	cat, err := catalog.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", logging.Error(err))
		os.Exit(1)
	}
	associations, err := catalog.LoadAssociations(cfg.BenefitsPath, logger)
	if err != nil {
		logger.Error("failed to load associations", logging.Error(err))
		os.Exit(1)
	}

	g := graph.NewBuilder(logger).Build(cat, associations)

	registry := metrics.NewRegistry()
	registry.UpdateGraphMetrics(g)
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, registry, logger)
	}

	engine := recommend.NewEngine(g, logger, registry)

	program := tea.NewProgram(initialModel(engine, cfg.MaxRecommendations), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("console exited with error", logging.Error(err))
		os.Exit(1)
	}
}

func serveMetrics(addr string, registry *metrics.Registry, logger *logging.JSONLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.Prometheus(), promhttp.HandlerOpts{}))
	logger.Info("serving metrics", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", logging.Error(err))
	}
}
