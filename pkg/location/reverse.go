package location

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrNoPlace is returned when Nominatim has nothing at the given coordinates,
// typically for points at sea.
var ErrNoPlace = errors.New("no place at coordinates")

// Reverse resolves coordinates to the closest address.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("zoom", "18")
	params.Set("accept-language", c.language)

	var result nominatimPlace
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoPlace, result.Error)
	}
	return result.toPlace()
}
