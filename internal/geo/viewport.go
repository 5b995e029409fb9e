package geo

import "math"

const (
	// padRatio is the proportional margin applied to the point extent.
	padRatio = 0.1
	// fallbackPadDegrees frames degenerate extents (single point, or all
	// points on one parallel/meridian) with a non-zero-area viewport.
	fallbackPadDegrees = 5.0
)

// FitViewport computes a bounding viewport that frames the given points with
// a proportional margin. Empty input, or input whose extrema are not finite
// (a single NaN or Inf coordinate poisons the extrema), yields
// DefaultViewport. The result depends only on the extrema, so it is
// idempotent and independent of point order.
func FitViewport(points []Point) Viewport {
	if len(points) == 0 {
		return DefaultViewport
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}

	if !isFinite(minLat) || !isFinite(maxLat) || !isFinite(minLon) || !isFinite(maxLon) {
		return DefaultViewport
	}

	latPad := (maxLat - minLat) * padRatio
	if latPad == 0 {
		latPad = fallbackPadDegrees
	}
	lonPad := (maxLon - minLon) * padRatio
	if lonPad == 0 {
		lonPad = fallbackPadDegrees
	}

	return Viewport{
		SouthWest: Point{Lat: minLat - latPad, Lon: minLon - lonPad},
		NorthEast: Point{Lat: maxLat + latPad, Lon: maxLon + lonPad},
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
