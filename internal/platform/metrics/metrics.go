package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts served requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currex_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "currex_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
		},
		[]string{"route", "method"},
	)

	// ProviderRequestsTotal counts outbound currencyapi calls.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currex_provider_requests_total",
			Help: "Total number of requests sent to the currency rate provider",
		},
		[]string{"endpoint", "outcome"},
	)

	ImportEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currex_currency_import_entries_total",
			Help: "Currency import entries by outcome",
		},
		[]string{"outcome"},
	)

	// ExchangeRatesCreatedTotal counts persisted rates; source is "provided" or "fetched".
	ExchangeRatesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currex_exchange_rates_created_total",
			Help: "Exchange rates created by rate source",
		},
		[]string{"source"},
	)
)

// Provider request outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeHTTPError     = "http_error"
	OutcomeUnprocessable = "unprocessable"
	OutcomeTransport     = "transport_error"
	OutcomeDecode        = "decode_error"
)

// RecordProviderRequest increments the provider request counter.
func RecordProviderRequest(endpoint, outcome string) {
	ProviderRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordImportEntry increments the import counter for outcome.
func RecordImportEntry(outcome string) {
	ImportEntriesTotal.WithLabelValues(outcome).Inc()
}

// RecordExchangeRateCreated increments the created rates counter.
func RecordExchangeRateCreated(fetched bool) {
	source := "provided"
	if fetched {
		source = "fetched"
	}
	ExchangeRatesCreatedTotal.WithLabelValues(source).Inc()
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
