package keys

import (
	"fmt"
	"strings"
)

// sanitizeKey replaces spaces with hyphens and lowercases the string.
func sanitizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}

// Catalog returns the object key of the translation catalog for a language.
func Catalog(language string) string {
	return fmt.Sprintf("i18n/%s.json", sanitizeKey(language))
}

// LocationArchive returns the object key of the archived GeoJSON for a saved location.
func LocationArchive(userID, eventID string) string {
	user := sanitizeKey(userID)
	if user == "" {
		user = "anonymous"
	}
	return fmt.Sprintf("locations/%s/%s.geojson", user, sanitizeKey(eventID))
}
