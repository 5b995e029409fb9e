package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	minBatchSize = 1
	maxBatchSize = 1000
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Geo classification configuration.
	ZoneTable    string // exclusion-zone table version: "v1" or "v2"
	LandGeoJSON  string // path to a GeoJSON land mask; empty selects the zone table
	GeoCacheSize int    // LRU entries for the polygon classifier cache
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	flushInterval, err := parseDurationEnv("BATCH_FLUSH_INTERVAL", "500ms")
	if err != nil {
		return nil, err
	}

	batchSize, err := parseBatchSize()
	if err != nil {
		return nil, err
	}

	geoCacheSize, err := parseGeoCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   envOrDefault("KAFKA_SOURCE_TOPIC", "argo-float-reports"),
		KafkaSinkTopic:     envOrDefault("KAFKA_SINK_TOPIC", "ocean-filtered-floats"),
		KafkaGroupID:       envOrDefault("KAFKA_GROUP_ID", "argo-geo-etl"),
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		ZoneTable:    envOrDefault("ZONE_TABLE", "v2"),
		LandGeoJSON:  os.Getenv("LAND_GEOJSON"),
		GeoCacheSize: geoCacheSize,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.ZoneTable != "v1" && cfg.ZoneTable != "v2" {
		return nil, fmt.Errorf("invalid ZONE_TABLE %q: must be v1 or v2", cfg.ZoneTable)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, raw)
	}
	return d, nil
}

func parseBatchSize() (int, error) {
	raw := envOrDefault("BATCH_SIZE", "50")
	n, err := strconv.Atoi(raw)
	if err != nil || n < minBatchSize || n > maxBatchSize {
		return 0, fmt.Errorf("invalid BATCH_SIZE %q: must be an integer in [%d, %d]", raw, minBatchSize, maxBatchSize)
	}
	return n, nil
}

func parseGeoCacheSize() (int, error) {
	raw := envOrDefault("GEO_CACHE_SIZE", "10000")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid GEO_CACHE_SIZE %q: must be a positive integer", raw)
	}
	return n, nil
}
