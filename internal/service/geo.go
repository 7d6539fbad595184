package service

import (
	"fmt"
	"math"
	"strconv"
)

// Query is a finished retrieval specification: SQL text with named
// binds. User-derived values are always bound, never interpolated.
type Query struct {
	SQL  string
	Args map[string]interface{}
}

// binder allocates sequential named binds for a query under
// construction.
type binder struct {
	args map[string]interface{}
	n    int
}

func newBinder() *binder {
	return &binder{args: make(map[string]interface{})}
}

// bind registers a value and returns its placeholder, e.g. "@p0".
func (b *binder) bind(value interface{}) string {
	name := "p" + strconv.Itoa(b.n)
	b.n++
	b.args[name] = value
	return "@" + name
}

// boundingBox returns the latitude/longitude half-ranges in degrees for
// a radius around the given latitude. One degree of latitude is about
// 111 km; longitude degrees shrink with the cosine of the latitude.
func boundingBox(latitude, radiusKm float64) (latRange, lngRange float64) {
	latRange = radiusKm / 111.0
	lngRange = radiusKm / (111.0 * math.Abs(math.Cos(latitude*math.Pi/180)))
	return latRange, lngRange
}

// haversineExpr emits the great-circle distance in km between the bound
// user position and the given column expressions. Spherical Earth,
// radius 6371 km; symmetric and zero at identical points.
func haversineExpr(latBind, lngBind, latExpr, lngExpr string) string {
	return fmt.Sprintf(`6371.0 * 2 * ASIN(
        SQRT(
            POWER(SIN(RADIANS(%[1]s - %[3]s) / 2), 2) +
            COS(RADIANS(%[1]s)) * COS(RADIANS(%[3]s)) *
            POWER(SIN(RADIANS(%[2]s - %[4]s) / 2), 2)
        )
    )`, latBind, lngBind, latExpr, lngExpr)
}
