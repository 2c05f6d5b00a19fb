package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"locshare/internal/models"
)

const DefaultIPEndpoint = "http://ip-api.com/json"

// ipResponse is the subset of the ip-api.com payload we read.
type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// IPLocator estimates the position from the caller's public IP address.
// The fix is city-level at best; HighAccuracy cannot be honoured and is ignored.
type IPLocator struct {
	httpClient *http.Client
	endpoint   string
}

func NewIPLocator(endpoint string) *IPLocator {
	if endpoint == "" {
		endpoint = DefaultIPEndpoint
	}
	return &IPLocator{
		httpClient: &http.Client{Timeout: 2 * DefaultTimeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
	}
}

func (l *IPLocator) Locate(ctx context.Context, opts Options) (models.LocationPoint, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint+"?fields=status,message,lat,lon", nil)
	if err != nil {
		return models.LocationPoint{}, err
	}

	start := time.Now()
	resp, err := l.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return models.LocationPoint{}, fmt.Errorf("%w after %s", ErrTimeout, time.Since(start).Round(time.Millisecond))
		}
		return models.LocationPoint{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.LocationPoint{}, fmt.Errorf("%w: unexpected status %s", ErrPositionUnavailable, resp.Status)
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.LocationPoint{}, fmt.Errorf("%w: %w", ErrPositionUnavailable, err)
	}
	if body.Status != "success" {
		return models.LocationPoint{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, body.Message)
	}
	return models.LocationPoint{Lat: body.Lat, Lng: body.Lon}, nil
}
