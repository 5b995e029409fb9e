package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/argo-geo-etl/internal/domain"
	"github.com/driftline/argo-geo-etl/internal/geo"
)

func floatReport(t *testing.T) domain.RawEvent {
	t.Helper()
	return domain.RawEvent{
		Value: []byte(`{
			"Platform": "4902916",
			"Cycle": "87",
			"Date": "1510",
			"Lat": "0.0",
			"Lon": "-140.0",
			"Position_QC": "1",
			"Temp": "24.1",
			"Psal": "35.2",
			"Pres": "5.1"
		}`),
		Timestamp: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransform_OceanReportPasses(t *testing.T) {
	tr := NewTransformer(geo.NewZoneClassifier(geo.ZoneTableV2), discardLogger())

	event, err := tr.Transform(context.Background(), floatReport(t))
	require.NoError(t, err)

	assert.Equal(t, "4902916", event.Platform)
	assert.Equal(t, 87, event.Cycle)
	assert.Equal(t, "good", event.PositionQC)
	assert.Equal(t, "pacific", event.Basin)
	assert.Equal(t, 15, event.EventTime.Hour())
	require.NotNil(t, event.Measurement.TempC)
	assert.InDelta(t, 24.1, *event.Measurement.TempC, 1e-9)
}

func TestTransform_LandReportExcluded(t *testing.T) {
	tr := NewTransformer(geo.NewZoneClassifier(geo.ZoneTableV2), discardLogger())

	raw := floatReport(t)
	raw.Value = []byte(`{"Platform":"4902916","Cycle":"87","Lat":"45.0","Lon":"90.0"}`)

	_, err := tr.Transform(context.Background(), raw)
	require.ErrorIs(t, err, domain.ErrLandExcluded)
}

func TestTransform_NilClassifierDisablesFiltering(t *testing.T) {
	tr := NewTransformer(nil, discardLogger())

	raw := floatReport(t)
	raw.Value = []byte(`{"Platform":"4902916","Cycle":"87","Lat":"45.0","Lon":"90.0"}`)

	event, err := tr.Transform(context.Background(), raw)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, event.Geo.Lat, 1e-9)
}

func TestTransform_InvalidPayload(t *testing.T) {
	tr := NewTransformer(geo.NewZoneClassifier(geo.ZoneTableV2), discardLogger())

	raw := floatReport(t)
	raw.Value = []byte("not json")

	_, err := tr.Transform(context.Background(), raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLandExcluded)
}

func TestTransform_MissingCoordinatesDegradeToNullIsland(t *testing.T) {
	// Coordinates that fail to parse degrade to (0, 0), which sits in open
	// ocean off the Gulf of Guinea. The zone table keeps it; only a polygon
	// land mask could tell null island from a real fix there.
	tr := NewTransformer(geo.NewZoneClassifier(geo.ZoneTableV2), discardLogger())

	raw := floatReport(t)
	raw.Value = []byte(`{"Platform":"4902916","Cycle":"87","Lat":"","Lon":""}`)

	event, err := tr.Transform(context.Background(), raw)
	require.NoError(t, err)
	assert.Zero(t, event.Geo.Lat)
	assert.Zero(t, event.Geo.Lon)
}
