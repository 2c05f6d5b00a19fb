package geolocation

import (
	"context"
	"fmt"

	"locshare/internal/models"
	"locshare/pkg/location"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*location.Place, error)
}

// GeocodeLocator reports the position of a named place. It stands in for a
// device fix when the user types where they are.
type GeocodeLocator struct {
	geocoder Geocoder
	query    string
}

func NewGeocodeLocator(geocoder Geocoder, query string) *GeocodeLocator {
	return &GeocodeLocator{geocoder: geocoder, query: query}
}

func (g *GeocodeLocator) Locate(ctx context.Context, _ Options) (models.LocationPoint, error) {
	place, err := g.geocoder.Geocode(ctx, g.query)
	if err != nil {
		return models.LocationPoint{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}
	return models.LocationPoint{Lat: place.Latitude, Lng: place.Longitude}, nil
}
