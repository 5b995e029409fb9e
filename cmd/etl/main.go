package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/driftline/argo-geo-etl/internal/adapter/http"
	kafkaadapter "github.com/driftline/argo-geo-etl/internal/adapter/kafka"
	"github.com/driftline/argo-geo-etl/internal/config"
	"github.com/driftline/argo-geo-etl/internal/geo"
	"github.com/driftline/argo-geo-etl/internal/observability"
	"github.com/driftline/argo-geo-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	classifier, err := buildClassifier(cfg, metrics, logger)
	if err != nil {
		logger.Error("failed to build classifier", "error", err)
		os.Exit(1)
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(classifier, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// buildClassifier selects the ocean-plausibility classifier: a cached polygon
// land mask when LAND_GEOJSON is set, the configured zone table otherwise.
func buildClassifier(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (geo.Classifier, error) {
	if cfg.LandGeoJSON != "" {
		polygon, err := geo.LoadPolygonClassifier(cfg.LandGeoJSON)
		if err != nil {
			return nil, err
		}
		cached := geo.NewCachedClassifier(polygon, cfg.GeoCacheSize, func(hit bool) {
			if hit {
				metrics.ClassifierCache.WithLabelValues("hit").Inc()
			} else {
				metrics.ClassifierCache.WithLabelValues("miss").Inc()
			}
		})
		logger.Info("polygon land mask enabled", "path", cfg.LandGeoJSON, "cache_size", cfg.GeoCacheSize)
		return cached, nil
	}

	table, err := geo.TableByVersion(cfg.ZoneTable)
	if err != nil {
		return nil, err
	}
	logger.Info("zone table classifier enabled", "version", cfg.ZoneTable, "zones", len(table))
	return geo.NewZoneClassifier(table), nil
}
