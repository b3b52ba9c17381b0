package server

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docassist_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docassist_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	chatOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docassist_chat_completions_total",
		Help: "Chat completions by outcome.",
	}, []string{"outcome"})
)

// requestMetrics records per-request counters and latency. Path labels
// use the registered route, not the raw URL, to bound cardinality.
func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		timer := prometheus.NewTimer(httpDuration.WithLabelValues(c.Request().Method, c.Path()))
		err := next(c)
		timer.ObserveDuration()

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		httpRequests.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
		return err
	}
}

func observeChat(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	chatOutcomes.WithLabelValues(outcome).Inc()
}
