// Package geo holds coordinate helpers shared by the backend and the page
// controller: validation, great-circle distance, GeoJSON conversion and
// country name normalization.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"locshare/internal/models"
)

// ValidCoordinates reports whether lat/lng are finite WGS84 degrees.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ToOrb converts a point to orb's [lng, lat] ordering.
func ToOrb(p models.LocationPoint) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b models.LocationPoint) float64 {
	return orbgeo.Distance(ToOrb(a), ToOrb(b))
}

// Feature wraps a point as a GeoJSON feature carrying props.
func Feature(p models.LocationPoint, props map[string]any) *geojson.Feature {
	f := geojson.NewFeature(ToOrb(p))
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}
