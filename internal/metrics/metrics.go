// Package metrics exposes Prometheus collectors for the HTTP API, the failure
// classifier and domain event publishing.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"arenaserver/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelType   = "type"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arena_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)

	FailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_failures_total",
			Help: "Failed requests by failure kind.",
		},
		[]string{LabelKind},
	)
)

// Event metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_events_published_total",
			Help: "Domain events published to the broker.",
		},
		[]string{LabelType},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_event_publish_errors_total",
			Help: "Domain events that could not be published.",
		},
		[]string{LabelType},
	)
)

// Middleware records the count and latency of every request. Routes are
// labelled by their template, e.g. /api/item/:code.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}
		route := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// The error handler runs after the middleware chain unwinds, so the status of
// a failed request is derived from the error itself.
func statusOf(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	status, _ := apperrors.Classify(err)
	return status
}

// RecordFailure counts a failed request under its failure kind.
func RecordFailure(kind apperrors.Kind) {
	FailuresTotal.WithLabelValues(kind.String()).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
