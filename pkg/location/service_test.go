package location_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"locshare/pkg/location"
)

const searchBody = `[{"place_id":1,"osm_type":"way","osm_id":42,"lat":"48.8606","lon":"2.3376","type":"museum",
"name":"Louvre","display_name":"Louvre, Paris, France",
"address":{"road":"Rue de Rivoli","city":"Paris","country":"France","country_code":"fr"}}]`

const reverseBody = `{"place_id":2,"osm_id":7,"lat":"12.34","lon":"56.78","type":"village","display_name":"Somewhere",
"address":{"village":"Hamlet","country":"India","country_code":"in"}}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Query().Get("q") {
		case "Louvre":
			_, _ = w.Write([]byte(searchBody))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "0" {
			_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
			return
		}
		_, _ = w.Write([]byte(reverseBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGeocode(t *testing.T) {
	srv := newServer(t)
	c := location.NewClient(srv.URL, "test-agent")

	tests := []struct {
		name        string
		query       string
		wantCity    string
		wantCountry string
		wantType    string
		wantErr     bool
	}{
		{name: "Louvre", query: "Louvre", wantCity: "Paris", wantCountry: "France", wantType: "museum"},
		{name: "unknown place", query: "Atlantis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Geocode(context.Background(), tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Geocode(%q) expected error", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("Geocode(%q) returned error: %v", tt.query, err)
			}
			if got.City != tt.wantCity {
				t.Errorf("City = %s, want %s", got.City, tt.wantCity)
			}
			if got.Country != tt.wantCountry {
				t.Errorf("Country = %s, want %s", got.Country, tt.wantCountry)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", got.Type, tt.wantType)
			}
			if got.Latitude != 48.8606 || got.Longitude != 2.3376 {
				t.Errorf("coordinates = %v,%v", got.Latitude, got.Longitude)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	srv := newServer(t)
	c := location.NewClient(srv.URL, "test-agent")

	got, err := c.Reverse(context.Background(), 12.34, 56.78)
	if err != nil {
		t.Fatalf("Reverse returned error: %v", err)
	}
	if got.City != "Hamlet" {
		t.Errorf("City = %s, want village fallback Hamlet", got.City)
	}
	if got.CountryCode != "IN" {
		t.Errorf("CountryCode = %s, want IN", got.CountryCode)
	}

	_, err = c.Reverse(context.Background(), 0, 0)
	if !errors.Is(err, location.ErrNoPlace) {
		t.Errorf("Reverse(0,0) error = %v, want ErrNoPlace", err)
	}
}

func TestReverse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := location.NewClient(srv.URL, "").Reverse(context.Background(), 1, 1); err == nil {
		t.Fatal("expected error for 429 response")
	}
}
