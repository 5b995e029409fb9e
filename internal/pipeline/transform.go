package pipeline

import (
	"context"
	"log/slog"

	"github.com/driftline/argo-geo-etl/internal/domain"
	"github.com/driftline/argo-geo-etl/internal/geo"
)

// FloatTransformer implements Transformer using domain transform functions
// with ocean-plausibility classification.
type FloatTransformer struct {
	classifier geo.Classifier
	logger     *slog.Logger
}

// NewTransformer creates a FloatTransformer. Pass a nil classifier to disable
// land filtering (every parseable report passes through).
func NewTransformer(classifier geo.Classifier, logger *slog.Logger) *FloatTransformer {
	return &FloatTransformer{
		classifier: classifier,
		logger:     logger,
	}
}

func (t *FloatTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.FloatEvent, error) {
	event, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.FloatEvent{}, err
	}

	event = domain.EnrichFloatEvent(event)

	if t.classifier != nil && !t.classifier.OceanPlausible(event.Geo.Lat, event.Geo.Lon) {
		return domain.FloatEvent{}, domain.ErrLandExcluded
	}

	return event, nil
}
