// Package catalog resolves the translation table served to a user. Catalogs
// live in object storage as i18n/<language>.json and are cached in memory.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"locshare/internal/keys"
	"locshare/internal/models"
	"locshare/internal/storage"
	"locshare/internal/telemetry"
	"locshare/pkg/i18n"
)

const (
	defaultCacheExpiry  = 30 * time.Minute
	defaultCacheCleanup = 90 * time.Minute
)

// UserStore resolves a user's preferred language.
type UserStore interface {
	UserLanguage(ctx context.Context, userID string) (string, error)
}

// ObjectStore loads JSON documents from object storage.
type ObjectStore interface {
	GetJSON(ctx context.Context, bucket, key string, out any) error
}

// Service builds merged translation tables.
type Service struct {
	users           UserStore
	objects         ObjectStore
	bucket          string
	defaultLanguage string
	cache           *cache.Cache
	logger          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultLanguage sets the language used for unknown users.
func WithDefaultLanguage(language string) Option {
	return func(s *Service) {
		if tag, ok := i18n.LanguageTag(language); ok {
			s.defaultLanguage = i18n.LanguageName(tag)
		}
	}
}

// WithLogger sets the logger for catalog fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithCacheExpiry overrides how long a loaded catalog is kept.
func WithCacheExpiry(d time.Duration) Option {
	return func(s *Service) { s.cache = cache.New(d, 3*d) }
}

// NewService creates a catalog service. users and objects may be nil, in
// which case every user gets the default language and builtin catalogs.
func NewService(users UserStore, objects ObjectStore, bucket string, opts ...Option) *Service {
	s := &Service{
		users:           users,
		objects:         objects,
		bucket:          bucket,
		defaultLanguage: BaseLanguage,
		cache:           cache.New(defaultCacheExpiry, defaultCacheCleanup),
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strings returns the base catalog overlaid with the user's language catalog
// plus the "language" entry. It never fails; lookup problems degrade to the
// base text.
func (s *Service) Strings(ctx context.Context, userID string) models.StringTable {
	lang := s.Language(ctx, userID)

	table := i18n.Defaults()
	for k, v := range s.Catalog(ctx, lang) {
		if v != "" {
			table[k] = v
		}
	}
	table[i18n.KeyLanguage] = lang

	telemetry.I18nRequests.WithLabelValues(lang).Inc()
	return table
}

// Language resolves the catalog name for userID.
func (s *Service) Language(ctx context.Context, userID string) string {
	if s.users == nil || userID == "" {
		return s.defaultLanguage
	}
	raw, err := s.users.UserLanguage(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warn("user language lookup failed", slog.String("userId", userID), slog.Any("error", err))
			telemetry.CatalogFallbacks.WithLabelValues("user_lookup").Inc()
		}
		return s.defaultLanguage
	}
	tag, ok := i18n.LanguageTag(raw)
	if !ok {
		s.logger.Warn("unrecognised user language", slog.String("userId", userID), slog.String("language", raw))
		return s.defaultLanguage
	}
	return i18n.LanguageName(tag)
}

// Catalog returns the catalog for language, consulting the cache, object
// storage and the builtin catalogs in that order. It returns an empty table
// when none of them has the language.
func (s *Service) Catalog(ctx context.Context, language string) models.StringTable {
	if cached, found := s.cache.Get(language); found {
		return cached.(models.StringTable)
	}

	if s.objects != nil {
		var table models.StringTable
		err := s.objects.GetJSON(ctx, s.bucket, keys.Catalog(language), &table)
		if err == nil {
			s.cache.Set(language, table, cache.DefaultExpiration)
			return table
		}
		if errors.Is(err, storage.ErrNotFound) {
			telemetry.CatalogFallbacks.WithLabelValues("not_found").Inc()
		} else {
			s.logger.Warn("catalog load failed", slog.String("language", language), slog.Any("error", err))
			telemetry.CatalogFallbacks.WithLabelValues("storage_error").Inc()
			// transient; do not cache the fallback
			table, _ := Builtin(language)
			return table
		}
	}

	table, ok := Builtin(language)
	if !ok {
		telemetry.CatalogFallbacks.WithLabelValues("unknown_language").Inc()
		table = models.StringTable{}
	}
	s.cache.Set(language, table, cache.DefaultExpiration)
	return table
}
