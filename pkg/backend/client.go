// Package backend is the HTTP client the location page uses to talk to its
// backend: one endpoint for translated strings, one for saving a location.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"locshare/internal/models"
	"locshare/pkg/i18n"
)

const (
	I18nPath     = "/maps/api/i18n"
	LocationPath = "/maps/api/location"
)

// ErrUnexpectedStatus is wrapped into errors for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client calls the page backend rooted at baseURL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "locshare-client/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchStrings loads the translation table for userID.
//
// The body is decoded even for non-2xx responses; only a body that is not a
// JSON object makes the call fail.
func (c *Client) FetchStrings(ctx context.Context, userID string) (models.StringTable, error) {
	params := url.Values{}
	params.Set("userId", userID)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, I18nPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch translations: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}

	table, err := i18n.Decode(body)
	if err != nil {
		if !success(resp.StatusCode) {
			return nil, fmt.Errorf("fetch translations: %w: %s", ErrUnexpectedStatus, resp.Status)
		}
		return nil, err
	}
	return table, nil
}

// SaveLocation posts a submission. Any 2xx response is success; the
// response body is discarded.
func (c *Client) SaveLocation(ctx context.Context, sub models.SubmissionRequest) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LocationPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return fmt.Errorf("save location: %w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}
