package service

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"

	"locshare/internal/models"
)

var errMissingEventID = errors.New("location event without id")

// NewLocationIterator streams LocationEvents published by the backend.
// Messages without an event id are dropped.
func NewLocationIterator(source MessageIterator) *Iterator[models.LocationEvent] {
	decodeJSON := JSONDecoder[models.LocationEvent]()
	return NewIterator(source, func(ctx context.Context, msg kafka.Message) (models.LocationEvent, error) {
		event, err := decodeJSON(ctx, msg)
		if err != nil {
			return event, err
		}
		if event.ID == "" {
			return event, errMissingEventID
		}
		return event, nil
	})
}
