package page

import (
	"errors"
	"net/url"
	"strings"
)

// State is the position of the controller in the capture and submit flow.
type State int

const (
	StateIdle State = iota
	StateLocating
	StateLocated
	StateSaving
	StateSaved
	StateSaveError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocating:
		return "locating"
	case StateLocated:
		return "located"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateSaveError:
		return "save_error"
	default:
		return "unknown"
	}
}

var (
	// ErrLocalizationUnavailable is recovered by falling back to English.
	ErrLocalizationUnavailable = errors.New("localization unavailable")
	// ErrLocationUnavailable is shown to the user; they retry by capturing again.
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrSaveFailed is shown to the user; they retry by submitting again.
	ErrSaveFailed = errors.New("save failed")

	ErrGeolocationUnsupported = errors.New("geolocation not supported")
	ErrNoMarker               = errors.New("no marker placed")
	ErrLocateInProgress       = errors.New("location request already in progress")
	ErrSubmitInProgress       = errors.New("submission already in progress")
)

// Params are the query parameters the page is opened with.
type Params struct {
	UserID  string
	Backend string
}

// ParseParams reads id and backend from a raw query string. Missing values
// default to "".
func ParseParams(rawQuery string) Params {
	q, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return Params{
		UserID:  q.Get("id"),
		Backend: q.Get("backend"),
	}
}

// ParsePageURL reads Params from a full page URL and resolves an empty
// backend to the page's own origin.
func ParsePageURL(raw string) (Params, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, err
	}
	p := ParseParams(u.RawQuery)
	if p.Backend == "" && u.Scheme != "" && u.Host != "" {
		p.Backend = u.Scheme + "://" + u.Host
	}
	return p, nil
}
