package geo

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// PolygonClassifier implements Classifier against a real land geometry
// instead of the rectangular zone tables. A point is ocean-plausible when it
// is a valid coordinate and falls outside every land polygon. Containment is
// planar, which is adequate for marker filtering away from the antimeridian.
type PolygonClassifier struct {
	land orb.MultiPolygon
}

// NewPolygonClassifier creates a classifier over the given land geometry.
func NewPolygonClassifier(land orb.MultiPolygon) *PolygonClassifier {
	return &PolygonClassifier{land: land}
}

// LoadPolygonClassifier reads a GeoJSON land mask (FeatureCollection of
// Polygon/MultiPolygon features) from path. Non-polygonal features are
// rejected rather than skipped so a mispackaged mask fails at startup.
func LoadPolygonClassifier(path string) (*PolygonClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read land geojson: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse land geojson: %w", err)
	}

	var land orb.MultiPolygon
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			land = append(land, g)
		case orb.MultiPolygon:
			land = append(land, g...)
		default:
			return nil, fmt.Errorf("land geojson feature %d: unsupported geometry %T", i, g)
		}
	}
	if len(land) == 0 {
		return nil, fmt.Errorf("land geojson %s contains no polygons", path)
	}

	return NewPolygonClassifier(land), nil
}

// OceanPlausible reports whether the coordinate lies outside the land mask.
func (c *PolygonClassifier) OceanPlausible(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	// orb points are [lon, lat].
	return !planar.MultiPolygonContains(c.land, orb.Point{lon, lat})
}
