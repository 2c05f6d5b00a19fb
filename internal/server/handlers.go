package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"locshare/internal/models"
	"locshare/internal/telemetry"
	"locshare/pkg/geo"
)

const maxBodyBytes = 1 << 16

var (
	errMissingCoordinates = errors.New("lat and lng are required")
	errOutOfRange         = errors.New("coordinates out of range")
)

type locationBody struct {
	UserID string   `json:"userId"`
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
}

type locationResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func (s *Server) handleI18n(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	table := s.strings.Strings(r.Context(), userID)
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(w, r)
	if err != nil {
		telemetry.LocationsSaved.WithLabelValues("invalid").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loc := models.SavedLocation{
		ID:        s.newID(),
		UserID:    sub.UserID,
		Lat:       sub.Lat,
		Lng:       sub.Lng,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SaveLocation(r.Context(), loc); err != nil {
		httplog.LogEntrySetField(r.Context(), "error", slog.StringValue(err.Error()))
		telemetry.LocationsSaved.WithLabelValues("error").Inc()
		http.Error(w, "failed to save location", http.StatusInternalServerError)
		return
	}
	telemetry.LocationsSaved.WithLabelValues("ok").Inc()

	s.publish(r.Context(), loc)
	writeJSON(w, http.StatusCreated, locationResponse{Status: "ok", ID: loc.ID.String()})
}

// publish is best effort; the location is already stored.
func (s *Server) publish(ctx context.Context, loc models.SavedLocation) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, loc.UserID, loc.Event()); err != nil {
		telemetry.PublishFailures.Inc()
		s.logger.Warn("failed to publish location event",
			slog.String("id", loc.ID.String()), slog.Any("error", err))
	}
}

func decodeSubmission(w http.ResponseWriter, r *http.Request) (models.SubmissionRequest, error) {
	var body locationBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		return models.SubmissionRequest{}, fmt.Errorf("invalid JSON body: %w", err)
	}
	if body.Lat == nil || body.Lng == nil {
		return models.SubmissionRequest{}, errMissingCoordinates
	}
	if !geo.ValidCoordinates(*body.Lat, *body.Lng) {
		return models.SubmissionRequest{}, fmt.Errorf("%w: lat=%v lng=%v", errOutOfRange, *body.Lat, *body.Lng)
	}
	return models.SubmissionRequest{UserID: body.UserID, Lat: *body.Lat, Lng: *body.Lng}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
