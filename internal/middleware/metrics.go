package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request latency and count labelled by route template,
// method and status code.
func Metrics(reg prometheus.Registerer) (ginext.HandlerFunc, error) {
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tennishub",
		Subsystem: "http",
		Name:      "request_latency_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tennishub",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served.",
	}, []string{"route", "method", "code"})

	for _, c := range []prometheus.Collector{latency, requests} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register http metrics: %w", err)
		}
	}

	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"route":  route,
			"method": c.Request.Method,
			"code":   strconv.Itoa(c.Writer.Status()),
		}
		latency.With(labels).Observe(time.Since(start).Seconds())
		requests.With(labels).Inc()
	}, nil
}
