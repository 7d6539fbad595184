package domain

// GeoPoint is a user position. Both coordinates are required together;
// a request carrying only one is treated as having no location.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeoPointFrom builds a GeoPoint from optional request fields.
func GeoPointFrom(latitude, longitude *float64) *GeoPoint {
	if latitude == nil || longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *latitude, Longitude: *longitude}
}
