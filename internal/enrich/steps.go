package enrich

import (
	"context"
	"errors"
	"fmt"

	"locshare/internal/keys"
	"locshare/internal/models"
	"locshare/internal/storage"
	"locshare/pkg/geo"
	"locshare/pkg/location"
)

// Result keys written by the location steps.
const (
	ResultPlace       = "place"
	ResultArchiveKey  = "archive_key"
	ResultCountryCode = "country_code"
)

// ReverseGeocoder resolves coordinates to an address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (*location.Place, error)
}

// ArchiveStore writes JSON documents to object storage.
type ArchiveStore interface {
	PutJSON(ctx context.Context, bucket, key string, v any, opts storage.PutOptions) (bool, error)
}

// LocationPipeline builds the enricher's stages: reverse geocoding, then
// country normalization, then archiving.
func LocationPipeline(geocoder ReverseGeocoder, archive ArchiveStore, bucket string) *Pipeline[models.EnrichedLocation] {
	return NewPipeline(
		NewStage(ReverseGeocode(geocoder)),
		NewStage(NormalizeCountry),
		NewStage(Archive(archive, bucket)),
	)
}

// ReverseGeocode fills the item's Address from its coordinates.
func ReverseGeocode(geocoder ReverseGeocoder) Step[models.EnrichedLocation] {
	return func(ctx context.Context, item *models.EnrichedLocation) error {
		place, err := geocoder.Reverse(ctx, item.Event.Lat, item.Event.Lng)
		if err != nil {
			if errors.Is(err, location.ErrNoPlace) {
				return nil
			}
			return fmt.Errorf("reverse geocode %s: %w", item.Event.ID, err)
		}
		item.Address = models.Address{
			DisplayName: place.DisplayName,
			Road:        place.Road,
			City:        place.City,
			Country:     place.Country,
			CountryCode: place.CountryCode,
		}
		item.Results[ResultPlace] = place.DisplayName
		return nil
	}
}

// NormalizeCountry rewrites the country to its canonical English name.
func NormalizeCountry(_ context.Context, item *models.EnrichedLocation) error {
	if item.Address.Country == "" {
		return nil
	}
	item.Address.Country = geo.NormalizeCountry(item.Address.Country)
	if !geo.IsCountry(item.Address.Country) {
		return fmt.Errorf("unknown country %q for %s", item.Address.Country, item.Event.ID)
	}
	if item.Address.CountryCode != "" {
		item.Results[ResultCountryCode] = item.Address.CountryCode
	}
	return nil
}

// Archive stores the item as a GeoJSON feature. Re-delivered events keep the
// first archived copy.
func Archive(store ArchiveStore, bucket string) Step[models.EnrichedLocation] {
	return func(ctx context.Context, item *models.EnrichedLocation) error {
		key := keys.LocationArchive(item.Event.UserID, item.Event.ID)
		feature := geo.Feature(models.LocationPoint{Lat: item.Event.Lat, Lng: item.Event.Lng}, map[string]any{
			"id":          item.Event.ID,
			"userId":      item.Event.UserID,
			"savedAt":     item.Event.SavedAt,
			"displayName": item.Address.DisplayName,
			"road":        item.Address.Road,
			"city":        item.Address.City,
			"country":     item.Address.Country,
			"countryCode": item.Address.CountryCode,
		})
		if _, err := store.PutJSON(ctx, bucket, key, feature, storage.PutOptions{ContentType: "application/geo+json"}); err != nil {
			return fmt.Errorf("archive %s: %w", item.Event.ID, err)
		}
		item.Results[ResultArchiveKey] = key
		return nil
	}
}
