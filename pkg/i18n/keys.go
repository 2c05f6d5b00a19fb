// Package i18n holds the translation keys shown on the location page and
// the English text used whenever a key is missing from a loaded table.
package i18n

import "locshare/internal/models"

// Translatable page elements.
const (
	KeyTitle     = "title"
	KeySubtitle  = "subtitle"
	KeyConsent   = "consent"
	KeyBtnLocate = "btn_locate"
	KeyBtnShare  = "btn_share"
)

// Status message keys.
const (
	StatusLocating    = "status_locating"
	StatusDetected    = "status_detected"
	StatusError       = "status_error"
	StatusSaving      = "status_saving"
	StatusSaved       = "status_saved"
	StatusSaveError   = "status_save_error"
	StatusUnsupported = "status_unsupported"
)

// KeyLanguage carries the user's language; it is never displayed.
const KeyLanguage = "language"

// Elements lists the translatable elements in page order.
var Elements = []string{KeyTitle, KeySubtitle, KeyConsent, KeyBtnLocate, KeyBtnShare}

var defaults = map[string]string{
	KeyTitle:     "Share Your Location",
	KeySubtitle:  "We use your location to find the nearest job opportunities.",
	KeyConsent:   "By sharing, you consent to store your location for matching jobs.",
	KeyBtnLocate: "Use My Current Location",
	KeyBtnShare:  "Share Location",

	StatusLocating:    "Locating...",
	StatusDetected:    "Location detected. Adjust marker if needed, then share.",
	StatusError:       "Unable to retrieve your location. Please allow permissions.",
	StatusSaving:      "Saving your location...",
	StatusSaved:       "Location saved. You can close this page now.",
	StatusSaveError:   "Error saving location. Please try again.",
	StatusUnsupported: "Geolocation is not supported by your browser.",
}

// Default returns the English text for key, or "" for unknown keys.
func Default(key string) string {
	return defaults[key]
}

// Defaults returns a copy of the English table.
func Defaults() models.StringTable {
	table := make(models.StringTable, len(defaults))
	for k, v := range defaults {
		table[k] = v
	}
	return table
}

// Text returns the translated text for key, falling back to the English
// default when the table lacks the key or maps it to an empty string.
func Text(table models.StringTable, key string) string {
	if v := table[key]; v != "" {
		return v
	}
	return defaults[key]
}
