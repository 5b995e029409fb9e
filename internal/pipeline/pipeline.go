package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/driftline/argo-geo-etl/internal/domain"
	"github.com/driftline/argo-geo-etl/internal/geo"
	"github.com/driftline/argo-geo-etl/internal/observability"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw event into a float event. A transformer may
// return domain.ErrLandExcluded to signal that the event should be dropped
// by the land filter rather than treated as a failure.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.FloatEvent, error)
}

// BatchLoader writes multiple float events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.FloatEvent) error
}

// Snapshot is the rolling display state computed from the most recent
// loaded batch: the surviving points and the viewport that frames them.
type Snapshot struct {
	Viewport  geo.Viewport `json:"viewport"`
	Points    []geo.Point  `json:"points"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Pipeline orchestrates the extract-transform-load loop and maintains the
// viewport snapshot for the HTTP layer.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	snapshot    atomic.Pointer[Snapshot]
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil if the pipeline has processed at least one message,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any messages yet")
	}
	return nil
}

// LatestSnapshot returns the snapshot from the most recent loaded batch,
// or nil before the first batch has been loaded.
func (p *Pipeline) LatestSnapshot() *Snapshot {
	return p.snapshot.Load()
}

// Run executes the batch ETL loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	// Keeps retry storms short while avoiding tight loops during Kafka outages.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx, &backoff, maxBackoff) {
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.backoffOrStop(ctx, backoff, maxBackoff)
	}

	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	*backoff = 200 * time.Millisecond

	loaded, ok := p.transformAndLoad(ctx, rawBatch, backoff, maxBackoff)
	if !ok {
		return false
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
		p.ready.Store(true)
	}
	return true
}

// transformAndLoad transforms each message in the batch, loads the survivors,
// publishes the viewport snapshot, and commits offsets. Returns the number of
// loaded messages and false if the pipeline should stop.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawEvent, backoff *time.Duration, maxBackoff time.Duration) (int, bool) {
	events := make([]domain.FloatEvent, 0, len(rawBatch))
	successfulRaws := make([]domain.RawEvent, 0, len(rawBatch))

	for _, raw := range rawBatch {
		event, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			if errors.Is(err, domain.ErrLandExcluded) {
				// Expected filtering, not a failure: count, commit, move on.
				p.logger.Debug("position excluded by land filter",
					"topic", raw.Topic,
					"partition", raw.Partition,
					"offset", raw.Offset,
				)
				p.metrics.PointsExcluded.Inc()
			} else {
				p.logger.Warn("transform failed, skipping message",
					"error", err,
					"topic", raw.Topic,
					"partition", raw.Partition,
					"offset", raw.Offset,
				)
				p.metrics.TransformErrors.Inc()
			}
			p.commitOffset(ctx, raw)
			continue
		}
		events = append(events, event)
		successfulRaws = append(successfulRaws, raw)
	}

	if len(events) == 0 {
		return 0, true
	}

	if err := p.loader.LoadBatch(ctx, events); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(events))
		return 0, p.backoffOrStop(ctx, backoff, maxBackoff)
	}

	p.metrics.MessagesProduced.Add(float64(len(events)))
	p.publishSnapshot(events)

	for _, raw := range successfulRaws {
		p.commitOffset(ctx, raw)
	}

	return len(events), true
}

// publishSnapshot fits a viewport around the batch survivors and swaps it in
// for the HTTP layer. The snapshot reflects only the latest batch: the map
// view tracks where floats are surfacing now, not the full history.
func (p *Pipeline) publishSnapshot(events []domain.FloatEvent) {
	points := make([]geo.Point, len(events))
	for i, e := range events {
		points[i] = geo.Point{Lat: e.Geo.Lat, Lon: e.Geo.Lon}
	}

	viewport := geo.FitViewport(points)
	p.metrics.ViewportSpanKm.Observe(geo.SpanKm(viewport))

	p.snapshot.Store(&Snapshot{
		Viewport:  viewport,
		Points:    points,
		UpdatedAt: time.Now().UTC(),
	})
}

// backoffOrStop checks for context cancellation, sleeps with the current backoff,
// and advances the backoff. Returns false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
