package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_insights"

// Metrics holds the Prometheus collectors for provider traffic and analysis results.
type Metrics struct {
	// Outbound provider traffic.
	ProviderRequests *prometheus.CounterVec   // labels: provider, outcome={success,error,rejected}
	ProviderDuration *prometheus.HistogramVec // labels: provider
	CacheLookups     *prometheus.CounterVec   // labels: cache, result={hit,miss}

	// Engine results.
	Analyses          *prometheus.CounterVec // labels: risk_level
	ForecastYearsUsed prometheus.Histogram
	DigestAlerts      prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ProviderRequests,
		m.ProviderDuration,
		m.CacheLookups,
		m.Analyses,
		m.ForecastYearsUsed,
		m.DigestAlerts,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Outbound provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Outbound provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Provider response cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed weather analyses by risk level.",
		}, []string{"risk_level"}),
		ForecastYearsUsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forecast_years_used",
			Help:      "Lookback years that contributed samples to a forecast.",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 10, 15, 20},
		}),
		DigestAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_alerts_total",
			Help:      "High-risk days flagged by the daily digest.",
		}),
	}
}
