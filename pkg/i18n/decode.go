package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"locshare/internal/models"
)

// ErrNotObject is returned when a translation payload is valid JSON but not an object.
var ErrNotObject = errors.New("translation payload is not a JSON object")

// Decode parses a translation payload. Entries whose values are not strings
// are dropped.
func Decode(body []byte) (models.StringTable, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	table := make(models.StringTable, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			table[k] = s
		}
	}
	return table, nil
}

// languageNames maps the language names the backend stores for users to tags.
var languageNames = map[string]language.Tag{
	"english":    language.English,
	"spanish":    language.Spanish,
	"french":     language.French,
	"german":     language.German,
	"portuguese": language.Portuguese,
	"hindi":      language.Hindi,
	"tamil":      language.Tamil,
	"telugu":     language.Telugu,
	"bengali":    language.Bengali,
	"marathi":    language.Marathi,
	"kannada":    language.Kannada,
	"gujarati":   language.Gujarati,
	"arabic":     language.Arabic,
}

// LanguageTag normalizes a language name ("english") or BCP 47 tag ("es-MX")
// to its base tag. The bool is false when the value is not recognised.
func LanguageTag(value string) (language.Tag, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return language.Und, false
	}
	if tag, ok := languageNames[value]; ok {
		return tag, true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	return language.Make(base.String()), true
}

// LanguageName returns the backend's name for tag ("en" → "english"), or the
// tag itself when it has no registered name.
func LanguageName(tag language.Tag) string {
	base, _ := tag.Base()
	for name, t := range languageNames {
		if b, _ := t.Base(); b == base {
			return name
		}
	}
	return base.String()
}
