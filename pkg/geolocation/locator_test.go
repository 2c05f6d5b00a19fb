package geolocation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locshare/internal/models"
	"locshare/pkg/location"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.HighAccuracy || opts.Timeout != 10*time.Second {
		t.Errorf("unexpected defaults %+v", opts)
	}
}

func TestStaticLocator(t *testing.T) {
	l := NewStaticLocator(12.34, 56.78)

	p, err := l.Locate(context.Background(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (models.LocationPoint{Lat: 12.34, Lng: 56.78}); p != want {
		t.Errorf("expected %v, got %v", want, p)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Locate(ctx, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type fakeGeocoder struct {
	place *location.Place
	err   error
	query string
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (*location.Place, error) {
	f.query = query
	return f.place, f.err
}

func TestGeocodeLocator(t *testing.T) {
	g := &fakeGeocoder{place: &location.Place{Latitude: 48.85, Longitude: 2.35}}
	p, err := NewGeocodeLocator(g, "Paris").Locate(context.Background(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.query != "Paris" {
		t.Errorf("expected query Paris, got %q", g.query)
	}
	if want := (models.LocationPoint{Lat: 48.85, Lng: 2.35}); p != want {
		t.Errorf("expected %v, got %v", want, p)
	}

	g = &fakeGeocoder{err: errors.New("no results for Atlantis")}
	_, err = NewGeocodeLocator(g, "Atlantis").Locate(context.Background(), DefaultOptions())
	if !errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("expected ErrPositionUnavailable, got %v", err)
	}
}

func TestIPLocator(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    models.LocationPoint
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"status":"success","lat":19.07,"lon":72.87}`,
			want:   models.LocationPoint{Lat: 19.07, Lng: 72.87},
		},
		{
			name:    "lookup failed",
			status:  http.StatusOK,
			body:    `{"status":"fail","message":"private range"}`,
			wantErr: ErrPositionUnavailable,
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    `oops`,
			wantErr: ErrPositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewIPLocator(srv.URL).Locate(context.Background(), DefaultOptions())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIPLocator_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewIPLocator(srv.URL).Locate(context.Background(), Options{Timeout: 50 * time.Millisecond})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
