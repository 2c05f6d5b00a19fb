package geo

import (
	"math"
	"testing"

	"locshare/internal/models"
)

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		expects  bool
	}{
		{"origin", 0, 0, true},
		{"bounds", 90, -180, true},
		{"lat too large", 90.0001, 0, false},
		{"lng too small", 0, -180.5, false},
		{"nan", math.NaN(), 0, false},
		{"inf", 0, math.Inf(1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCoordinates(tc.lat, tc.lng); got != tc.expects {
				t.Fatalf("ValidCoordinates(%v, %v) = %v; want %v", tc.lat, tc.lng, got, tc.expects)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	a := models.LocationPoint{Lat: 0, Lng: 0}
	b := models.LocationPoint{Lat: 0, Lng: 1}

	// one degree of longitude at the equator is roughly 111 km
	d := Distance(a, b)
	if d < 110_000 || d > 112_500 {
		t.Fatalf("Distance = %f; want about 111km", d)
	}
	if Distance(a, a) != 0 {
		t.Fatalf("Distance to self should be 0")
	}
}

func TestFeature(t *testing.T) {
	f := Feature(models.LocationPoint{Lat: 12.34, Lng: 56.78}, map[string]any{"userId": "42"})

	if f.Geometry.GeoJSONType() != "Point" {
		t.Fatalf("geometry type = %s", f.Geometry.GeoJSONType())
	}
	p := f.Point()
	if p.Lon() != 56.78 || p.Lat() != 12.34 {
		t.Fatalf("point = %v; want lng first", p)
	}
	if f.Properties["userId"] != "42" {
		t.Fatalf("properties = %v", f.Properties)
	}
}
