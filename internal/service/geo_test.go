package service

import (
	"math"
	"strings"
	"testing"
)

func TestBinder(t *testing.T) {
	b := newBinder()

	if got := b.bind("first"); got != "@p0" {
		t.Errorf("expected @p0, got %q", got)
	}
	if got := b.bind(42); got != "@p1" {
		t.Errorf("expected @p1, got %q", got)
	}

	if len(b.args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(b.args))
	}
	if b.args["p0"] != "first" || b.args["p1"] != 42 {
		t.Errorf("unexpected args: %v", b.args)
	}
}

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		latitude float64
		radiusKm float64
		latRange float64
		lngRange float64
	}{
		{"equator", 0, 111, 1, 1},
		{"sixty degrees doubles longitude range", 60, 11.1, 0.1, 0.2},
		{"ho chi minh city", 10.7769, 10, 10.0 / 111.0, 10.0 / (111.0 * math.Cos(10.7769*math.Pi/180))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latRange, lngRange := boundingBox(tt.latitude, tt.radiusKm)
			if math.Abs(latRange-tt.latRange) > 1e-9 {
				t.Errorf("expected latRange %f, got %f", tt.latRange, latRange)
			}
			if math.Abs(lngRange-tt.lngRange) > 1e-9 {
				t.Errorf("expected lngRange %f, got %f", tt.lngRange, lngRange)
			}
		})
	}
}

func TestHaversineExpr(t *testing.T) {
	expr := haversineExpr("@p0", "@p1", "latitude", "longitude")

	for _, want := range []string{"6371.0", "ASIN", "@p0", "@p1", "latitude", "longitude"} {
		if !strings.Contains(expr, want) {
			t.Errorf("expected expression to contain %q:\n%s", want, expr)
		}
	}
}
