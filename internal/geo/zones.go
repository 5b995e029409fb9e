package geo

import (
	"fmt"
	"math"
)

// Zone is an axis-aligned latitude/longitude rectangle treated as non-ocean:
// a coarse approximation of a continent, enclosed sea, or polar region.
type Zone struct {
	Name   string
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// contains reports whether the coordinate falls strictly inside the zone.
// Boundaries are exclusive: a point exactly on a zone edge is not contained.
func (z Zone) contains(lat, lon float64) bool {
	return z.LatMin < lat && lat < z.LatMax &&
		z.LonMin < lon && lon < z.LonMax
}

// Table is an ordered list of exclusion zones. A point inside any zone is
// excluded; evaluation short-circuits on the first match.
type Table []Zone

// ZoneTableV1 is the original coarse table: one box per landmass group.
// Superseded by ZoneTableV2, whose split continental boxes stop the combined
// Africa/Eurasia box from swallowing the equatorial Atlantic around the
// Gulf of Guinea. Kept for callers that tuned marker output against it.
var ZoneTableV1 = Table{
	{Name: "americas", LatMin: -56, LatMax: 72, LonMin: -168, LonMax: -34},
	{Name: "africa-eurasia", LatMin: -35, LatMax: 77, LonMin: -17, LonMax: 180},
	{Name: "australia", LatMin: -45, LatMax: -10, LonMin: 110, LonMax: 155},
	{Name: "antarctica", LatMin: -90, LatMax: -60, LonMin: -180, LonMax: 180},
}

// ZoneTableV2 is the refined table: separate continental boxes, the enclosed
// seas that most often leak through rectangular filters, and polar cutoffs.
// Corners are hand-tuned against ARGO surfacing positions, not derived from
// coastline data.
var ZoneTableV2 = Table{
	{Name: "north-america", LatMin: 15, LatMax: 72, LonMin: -168, LonMax: -52},
	{Name: "south-america", LatMin: -56, LatMax: 13, LonMin: -81, LonMax: -34},
	{Name: "greenland", LatMin: 60, LatMax: 84, LonMin: -73, LonMax: -12},
	{Name: "africa-north", LatMin: 4, LatMax: 37, LonMin: -17, LonMax: 51},
	{Name: "africa-south", LatMin: -35, LatMax: 4, LonMin: 8, LonMax: 51},
	{Name: "europe", LatMin: 36, LatMax: 71, LonMin: -10, LonMax: 60},
	{Name: "asia", LatMin: 5, LatMax: 75, LonMin: 60, LonMax: 140},
	{Name: "mediterranean", LatMin: 30, LatMax: 46, LonMin: -6, LonMax: 37},
	{Name: "red-sea", LatMin: 12, LatMax: 30, LonMin: 32, LonMax: 44},
	{Name: "se-asia-archipelago", LatMin: -11, LatMax: 20, LonMin: 95, LonMax: 155},
	{Name: "australia", LatMin: -39, LatMax: -11, LonMin: 113, LonMax: 154},
	{Name: "antarctica", LatMin: -90, LatMax: -60, LonMin: -180, LonMax: 180},
	{Name: "arctic-ice", LatMin: 78, LatMax: 90, LonMin: -180, LonMax: 180},
}

// TableByVersion resolves a zone table version string ("v1" or "v2").
// There is no implicit default: the two tables diverge, so callers must pick.
func TableByVersion(version string) (Table, error) {
	switch version {
	case "v1":
		return ZoneTableV1, nil
	case "v2":
		return ZoneTableV2, nil
	default:
		return nil, fmt.Errorf("unknown zone table version %q", version)
	}
}

// ZoneClassifier implements Classifier using a zone exclusion table.
// The zero value excludes nothing except invalid coordinates; construct with
// NewZoneClassifier and a versioned table.
type ZoneClassifier struct {
	table Table
}

// NewZoneClassifier creates a classifier over the given zone table.
// The table is shared, not copied; it must not be mutated afterwards.
func NewZoneClassifier(table Table) *ZoneClassifier {
	return &ZoneClassifier{table: table}
}

// OceanPlausible reports whether the coordinate plausibly lies in open ocean.
// NaN or out-of-range coordinates are never ocean-plausible. The NaN check is
// explicit rather than relying on NaN comparisons evaluating false.
func (c *ZoneClassifier) OceanPlausible(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	for _, z := range c.table {
		if z.contains(lat, lon) {
			return false
		}
	}
	return true
}
