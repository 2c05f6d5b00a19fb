// Package page drives the share-your-location page: it loads translated
// strings once, captures a position, lets the marker be moved and submits the
// chosen coordinates, reflecting every step as status text on a View.
package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"locshare/internal/models"
	"locshare/pkg/geo"
	"locshare/pkg/geolocation"
	"locshare/pkg/i18n"
)

// StringsSource loads the translation table for a user.
type StringsSource interface {
	FetchStrings(ctx context.Context, userID string) (models.StringTable, error)
}

// LocationSink accepts a location submission.
type LocationSink interface {
	SaveLocation(ctx context.Context, sub models.SubmissionRequest) error
}

// LocateResult is the outcome of a successful capture.
type LocateResult struct {
	Point  models.LocationPoint
	Status string
}

// SubmitResult is the outcome of a submission attempt.
type SubmitResult struct {
	Request models.SubmissionRequest
	Status  string
}

// Snapshot is a copy of the controller's observable state.
type Snapshot struct {
	State         State
	Status        string
	SubmitEnabled bool
	Marker        *models.LocationPoint
	Language      string
}

// Controller owns all mutable page state. It is safe for concurrent use.
type Controller struct {
	params  Params
	source  StringsSource
	sink    LocationSink
	locator geolocation.Locator
	opts    geolocation.Options
	view    View
	logger  *slog.Logger

	initOnce sync.Once

	mu            sync.Mutex
	strings       models.StringTable
	language      string
	state         State
	status        string
	statusKey     string
	marker        *models.LocationPoint
	detected      *models.LocationPoint
	submitEnabled bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithView sets the view the controller renders into.
func WithView(v View) Option {
	return func(c *Controller) { c.view = v }
}

// WithLocator sets the position source. Without one, capture reports that
// geolocation is unsupported.
func WithLocator(l geolocation.Locator) Option {
	return func(c *Controller) { c.locator = l }
}

// WithLocateOptions overrides the default high accuracy, 10 second request.
func WithLocateOptions(opts geolocation.Options) Option {
	return func(c *Controller) { c.opts = opts }
}

// WithLogger sets the logger for load, capture and save failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New builds a controller in the idle state with an empty string table and
// the submit control disabled.
func New(params Params, source StringsSource, sink LocationSink, opts ...Option) *Controller {
	c := &Controller{
		params:  params,
		source:  source,
		sink:    sink,
		opts:    geolocation.DefaultOptions(),
		view:    nopView{},
		logger:  slog.New(slog.DiscardHandler),
		strings: models.StringTable{},
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.view.SetSubmitEnabled(false)
	return c
}

// Init loads the translation table and applies it to the page. Only the first
// call issues a request. A load failure is logged, the page falls back to
// English, and the returned error wraps ErrLocalizationUnavailable. A status
// already on screen is re-rendered from the loaded table.
func (c *Controller) Init(ctx context.Context) error {
	var err error
	c.initOnce.Do(func() {
		err = c.loadStrings(ctx)
	})
	return err
}

func (c *Controller) loadStrings(ctx context.Context) error {
	table, fetchErr := c.source.FetchStrings(ctx, c.params.UserID)
	if fetchErr != nil {
		c.logger.Warn("Failed to load translations", "userId", c.params.UserID, "error", fetchErr)
		table = models.StringTable{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.strings = table
	for _, key := range i18n.Elements {
		c.view.SetText(key, i18n.Text(table, key))
	}
	if lang, ok := i18n.LanguageTag(table[i18n.KeyLanguage]); ok {
		c.language = lang.String()
		c.view.SetLanguage(c.language)
	}
	if c.statusKey != "" {
		c.setStatusLocked(c.statusKey)
	}

	if fetchErr != nil {
		return fmt.Errorf("%w: %w", ErrLocalizationUnavailable, fetchErr)
	}
	return nil
}

// Text returns the current text for key with the English fallback applied.
func (c *Controller) Text(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return i18n.Text(c.strings, key)
}

// Locate requests the device position and places the marker on success.
// It is rejected while a capture or a submission is in flight.
func (c *Controller) Locate(ctx context.Context) (LocateResult, error) {
	c.mu.Lock()
	if c.locator == nil {
		c.setStatusLocked(i18n.StatusUnsupported)
		c.mu.Unlock()
		return LocateResult{}, ErrGeolocationUnsupported
	}
	if c.state == StateLocating {
		c.mu.Unlock()
		return LocateResult{}, ErrLocateInProgress
	}
	if c.state == StateSaving {
		c.mu.Unlock()
		return LocateResult{}, ErrSubmitInProgress
	}
	previous := c.state
	c.state = StateLocating
	c.setStatusLocked(i18n.StatusLocating)
	opts := c.opts
	c.mu.Unlock()

	locateCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		locateCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	point, err := c.locator.Locate(locateCtx, opts)
	if err == nil && !geo.ValidCoordinates(point.Lat, point.Lng) {
		err = fmt.Errorf("%w: invalid coordinates %v,%v", geolocation.ErrPositionUnavailable, point.Lat, point.Lng)
	}
	if err != nil && errors.Is(locateCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", geolocation.ErrTimeout, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Info("Location request failed", "userId", c.params.UserID, "error", err)
		c.state = StateIdle
		if c.marker != nil {
			c.state = previous
			if previous == StateIdle || previous == StateLocating {
				c.state = StateLocated
			}
		}
		c.setStatusLocked(i18n.StatusError)
		return LocateResult{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	}

	c.state = StateLocated
	c.setStatusLocked(i18n.StatusDetected)
	c.placeMarkerLocked(point)
	detected := point
	c.detected = &detected

	return LocateResult{Point: point, Status: c.status}, nil
}

// DragMarker moves an existing marker and enables submission without
// changing the status text. It reports false when no marker exists.
func (c *Controller) DragMarker(p models.LocationPoint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.marker == nil {
		return false
	}
	c.placeMarkerLocked(p)
	return true
}

// Submit sends the current marker position to the backend.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	c.mu.Lock()
	if c.marker == nil {
		c.mu.Unlock()
		return SubmitResult{}, ErrNoMarker
	}
	if c.state == StateSaving {
		c.mu.Unlock()
		return SubmitResult{}, ErrSubmitInProgress
	}
	sub := models.SubmissionRequest{
		UserID: c.params.UserID,
		Lat:    c.marker.Lat,
		Lng:    c.marker.Lng,
	}
	if c.detected != nil {
		c.logger.Debug("Submitting location",
			"userId", sub.UserID,
			"adjustedMeters", geo.Distance(*c.detected, sub.Point()),
		)
	}
	c.state = StateSaving
	c.setStatusLocked(i18n.StatusSaving)
	c.mu.Unlock()

	err := c.sink.SaveLocation(ctx, sub)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Failed to save location", "userId", sub.UserID, "error", err)
		c.state = StateSaveError
		c.setStatusLocked(i18n.StatusSaveError)
		return SubmitResult{Request: sub, Status: c.status}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	c.state = StateSaved
	c.setStatusLocked(i18n.StatusSaved)
	return SubmitResult{Request: sub, Status: c.status}, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		State:         c.state,
		Status:        c.status,
		SubmitEnabled: c.submitEnabled,
		Language:      c.language,
	}
	if c.marker != nil {
		m := *c.marker
		s.Marker = &m
	}
	return s
}

func (c *Controller) setStatusLocked(key string) {
	c.statusKey = key
	c.status = i18n.Text(c.strings, key)
	c.view.SetStatus(c.status)
}

func (c *Controller) placeMarkerLocked(p models.LocationPoint) {
	c.marker = &p
	c.view.PlaceMarker(p)
	c.submitEnabled = true
	c.view.SetSubmitEnabled(true)
}
