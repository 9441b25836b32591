package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method", "path"},
	)
)

// unmatchedPath labels requests that hit no route so scanners cannot blow up label cardinality.
const unmatchedPath = "unmatched"

// normalizePath prefers the matched route pattern (/api/v1/supplements/:id) over the raw path.
func normalizePath(route, path string) string {
	if route != "" && route != "/" && !strings.HasSuffix(route, "*") {
		return route
	}
	if path == "/" || route == "/" {
		return "/"
	}
	return unmatchedPath
}

func statusOf(err error, fallback int) int {
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return fiberError.Code
	}
	if fallback == http.StatusOK {
		return http.StatusInternalServerError
	}
	return fallback
}

// MetricsMiddlewareFiber records request counts and latencies.
func MetricsMiddlewareFiber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = statusOf(err, statusCode)
		}
		path := normalizePath(c.Route().Path, c.Path())
		code := strconv.Itoa(statusCode)

		httpRequestsTotal.WithLabelValues(code, c.Method(), path).Inc()
		httpRequestDuration.WithLabelValues(code, c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsMiddlewareGin records request counts and latencies.
func MetricsMiddlewareGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := normalizePath(c.FullPath(), c.Request.URL.Path)
		code := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(code, c.Request.Method, path).Inc()
		httpRequestDuration.WithLabelValues(code, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandlerFiber serves the Prometheus exposition format.
func MetricsHandlerFiber() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// MetricsHandlerGin serves the Prometheus exposition format.
func MetricsHandlerGin() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
