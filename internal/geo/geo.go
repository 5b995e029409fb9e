package geo

// Point is a WGS-84 latitude/longitude coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Viewport is the geographic bounding region used to frame a map display,
// expressed as its south-west and north-east corners.
type Viewport struct {
	SouthWest Point `json:"south_west"`
	NorthEast Point `json:"north_east"`
}

// DefaultViewport is the whole-world fallback used when no valid points are
// available: centered on (0, 0) with the inhabited-latitude band visible.
var DefaultViewport = Viewport{
	SouthWest: Point{Lat: -60, Lon: -150},
	NorthEast: Point{Lat: 60, Lon: 150},
}

// Classifier decides whether a coordinate plausibly lies in open ocean.
// Implementations must be safe for concurrent use.
type Classifier interface {
	OceanPlausible(lat, lon float64) bool
}
