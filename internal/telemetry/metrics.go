// Package telemetry defines the Prometheus metrics exported by locshare.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// I18nRequests counts translation lookups by resolved language
	I18nRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "locshare",
			Name:      "i18n_requests_total",
			Help:      "Total number of translation tables served",
		},
		[]string{"language"},
	)

	// CatalogFallbacks counts lookups that degraded to builtin or English text
	CatalogFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "locshare",
			Name:      "catalog_fallbacks_total",
			Help:      "Total number of catalog lookups served from a fallback",
		},
		[]string{"reason"},
	)

	// LocationsSaved counts submitted locations by outcome
	LocationsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "locshare",
			Name:      "locations_saved_total",
			Help:      "Total number of location submissions",
		},
		[]string{"result"},
	)

	// PublishFailures counts location events that could not be published
	PublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "locshare",
			Name:      "publish_failures_total",
			Help:      "Total number of location events that failed to publish",
		},
	)

	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// It is idempotent.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(I18nRequests)
		prometheus.DefaultRegisterer.Register(CatalogFallbacks)
		prometheus.DefaultRegisterer.Register(LocationsSaved)
		prometheus.DefaultRegisterer.Register(PublishFailures)
	})
}
