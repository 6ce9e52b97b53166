package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// HTTP request counter by endpoint and status
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Content write counter by entity and operation
	ContentWriteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_content_writes_total",
			Help: "Total number of content mutations by entity and operation",
		},
		[]string{"entity", "operation"}, // operation is "create", "update", "delete" or "upsert"
	)

	// Lead capture counters
	LeadCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_leads_total",
			Help: "Total number of captured contact-form leads",
		},
	)

	LeadMailWarningCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_lead_mail_warnings_total",
			Help: "Leads persisted without a successful email notification",
		},
		[]string{"reason"}, // reason is "no_recipient", "not_configured" or "send_failed"
	)

	// AI copy suggestion counters
	GenerateCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_generate_content_total",
			Help: "Total number of AI copy suggestion requests",
		},
	)

	GenerateErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_generate_content_errors_total",
			Help: "Total number of failed AI copy suggestion requests",
		},
		[]string{"type"},
	)

	// Page cache counters
	PageCacheCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_page_cache_total",
			Help: "Rendered-page cache activity by page and result",
		},
		[]string{"page", "result"}, // result is "hit", "miss" or "invalidate"
	)

	// Auth error counter
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

func init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ContentWriteCounter)
	prometheus.MustRegister(LeadCounter)
	prometheus.MustRegister(LeadMailWarningCounter)
	prometheus.MustRegister(GenerateCounter)
	prometheus.MustRegister(GenerateErrorCounter)
	prometheus.MustRegister(PageCacheCounter)
	prometheus.MustRegister(AuthErrorCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
}

// RecordAuthError increments the auth error counter for a failure type.
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// RecordCache increments the page cache counter.
func RecordCache(page, result string) {
	PageCacheCounter.WithLabelValues(page, result).Inc()
}

// TrackDBOperation measures database operation durations:
//
//	defer prometheus.TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(time.Time) {
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
	}
}

// Middleware records request count and duration for every HTTP request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			path := c.Path()

			RequestCounter.WithLabelValues(method, path, status).Inc()
			RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
