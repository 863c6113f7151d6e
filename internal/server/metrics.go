package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	checks   *prometheus.CounterVec
	scores   prometheus.Histogram
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "styleguard",
			Name:      "checks_total",
			Help:      "Documents scored, by endpoint and verdict.",
		}, []string{"endpoint", "verdict"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "styleguard",
			Name:      "aggregate_score",
			Help:      "Aggregate scores of checked documents.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "styleguard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.checks, m.scores, m.duration)
	return m
}

func (m *metrics) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.duration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) observe(endpoint string, valid bool) {
	verdict := "fail"
	if valid {
		verdict = "pass"
	}
	m.checks.WithLabelValues(endpoint, verdict).Inc()
}
