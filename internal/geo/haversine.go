package geo

import "math"

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two
// coordinates. Used to report viewport spans; not part of classification.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// SpanKm returns the diagonal great-circle span of a viewport in kilometres.
func SpanKm(v Viewport) float64 {
	return Haversine(v.SouthWest.Lat, v.SouthWest.Lon, v.NorthEast.Lat, v.NorthEast.Lon)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
