package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "songsuggest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "songsuggest_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	authRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "songsuggest_auth_rejects_total",
			Help: "Requests rejected by the API key check",
		},
	)
)

// metricsMiddleware records rate, errors and duration per route.
func metricsMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	path := c.Route().Path
	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
	return err
}
