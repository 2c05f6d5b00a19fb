package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Place holds the fields of a Nominatim result the application uses.
type Place struct {
	Name        string
	DisplayName string
	Latitude    float64
	Longitude   float64
	Road        string
	City        string
	Country     string
	CountryCode string
	Type        string
	OsmID       int64
}

// nominatimAddress is the "address" block shared by search and reverse responses.
type nominatimAddress struct {
	Road        string `json:"road"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// nominatimPlace is shaped for a single search or reverse result.
type nominatimPlace struct {
	PlaceID     int64            `json:"place_id"`
	OsmType     string           `json:"osm_type"`
	OsmID       int64            `json:"osm_id"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
	Error       string           `json:"error"`
}

func (p nominatimPlace) toPlace() (*Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("error parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("error parsing longitude: %w", err)
	}

	city := p.Address.City
	if city == "" {
		city = p.Address.Town
	}
	if city == "" {
		city = p.Address.Village
	}

	return &Place{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
		Road:        p.Address.Road,
		City:        city,
		Country:     p.Address.Country,
		CountryCode: strings.ToUpper(p.Address.CountryCode),
		Type:        p.Type,
		OsmID:       p.OsmID,
	}, nil
}

// Client talks to a Nominatim server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
}

func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "locshare-nominatim-client/1.0"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		language:   "en",
	}
}

// Geocode looks up a free-form place name and returns the best match.
func (c *Client) Geocode(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	params.Set("accept-language", c.language)

	var results []nominatimPlace
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results for %s", query)
	}
	return results[0].toPlace()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
