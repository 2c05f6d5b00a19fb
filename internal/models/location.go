package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationPoint is a WGS84 coordinate in degrees.
type LocationPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SubmissionRequest is the body posted to the location endpoint.
type SubmissionRequest struct {
	UserID string  `json:"userId"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// Point returns the coordinate carried by the request.
func (r SubmissionRequest) Point() LocationPoint {
	return LocationPoint{Lat: r.Lat, Lng: r.Lng}
}

// SavedLocation is a submission persisted by the backend.
type SavedLocation struct {
	ID        uuid.UUID
	UserID    string
	Lat       float64
	Lng       float64
	CreatedAt time.Time
}

// LocationEvent is published on the message bus after a location is saved.
type LocationEvent struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	SavedAt time.Time `json:"savedAt"`
}

// Event builds the bus message for a saved location.
func (l SavedLocation) Event() LocationEvent {
	return LocationEvent{
		ID:      l.ID.String(),
		UserID:  l.UserID,
		Lat:     l.Lat,
		Lng:     l.Lng,
		SavedAt: l.CreatedAt,
	}
}

// Address is the reverse-geocoded description of a point.
type Address struct {
	DisplayName string `json:"displayName,omitempty"`
	Road        string `json:"road,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// EnrichedLocation accumulates enrichment results for a LocationEvent.
type EnrichedLocation struct {
	Event   LocationEvent
	Address Address
	Results map[string]any
}

func NewEnrichedLocation(event LocationEvent) *EnrichedLocation {
	return &EnrichedLocation{
		Event:   event,
		Results: make(map[string]any),
	}
}
