package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/driftline/argo-geo-etl/internal/pipeline"
)

// ReadinessChecker reports whether the pipeline is ready to serve.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// SnapshotProvider exposes the latest viewport snapshot, or nil before the
// first batch has been processed.
type SnapshotProvider interface {
	LatestSnapshot() *pipeline.Snapshot
}

// Server exposes health, readiness, metrics, and viewport endpoints.
type Server struct {
	server    *http.Server
	logger    *slog.Logger
	readiness ReadinessChecker
	snapshots SnapshotProvider
}

// NewServer creates the HTTP server on the given address.
func NewServer(addr string, readiness ReadinessChecker, snapshots SnapshotProvider, logger *slog.Logger) *Server {
	s := &Server{
		logger:    logger,
		readiness: readiness,
		snapshots: snapshots,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/viewport", s.handleViewport)
	mux.HandleFunc("GET /v1/floats", s.handleFloats)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP makes the server testable with httptest without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.readiness.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleViewport serves the fitted viewport for the most recent batch.
func (s *Server) handleViewport(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshots.LatestSnapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no batch processed yet",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"viewport":   snap.Viewport,
		"updated_at": snap.UpdatedAt,
	})
}

// handleFloats serves the surviving float positions from the most recent batch.
func (s *Server) handleFloats(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshots.LatestSnapshot()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no batch processed yet",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"points":     snap.Points,
		"count":      len(snap.Points),
		"updated_at": snap.UpdatedAt,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
