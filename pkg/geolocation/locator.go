// Package geolocation provides the device-position sources the page
// controller captures a location from.
package geolocation

import (
	"context"
	"errors"
	"time"

	"locshare/internal/models"
)

// DefaultTimeout bounds a single position request.
const DefaultTimeout = 10 * time.Second

var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("geolocation request timed out")
)

// Options mirrors the position request options of a browser.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
}

// DefaultOptions asks for a high accuracy fix within DefaultTimeout.
func DefaultOptions() Options {
	return Options{HighAccuracy: true, Timeout: DefaultTimeout}
}

// Locator resolves the current position. Implementations must honour ctx.
type Locator interface {
	Locate(ctx context.Context, opts Options) (models.LocationPoint, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context, opts Options) (models.LocationPoint, error)

func (f LocatorFunc) Locate(ctx context.Context, opts Options) (models.LocationPoint, error) {
	return f(ctx, opts)
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Point models.LocationPoint
}

func NewStaticLocator(lat, lng float64) *StaticLocator {
	return &StaticLocator{Point: models.LocationPoint{Lat: lat, Lng: lng}}
}

func (s *StaticLocator) Locate(ctx context.Context, _ Options) (models.LocationPoint, error) {
	if err := ctx.Err(); err != nil {
		return models.LocationPoint{}, err
	}
	return s.Point, nil
}
