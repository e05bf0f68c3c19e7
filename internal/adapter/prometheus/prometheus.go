package prometheus

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kasarab/user_directory_service/internal/core/ports"
)

type PrometheusAdapter struct {
	appName             string
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	ruleRejections      *prometheus.CounterVec
}

func NewPrometheusAdapter(appName string, reg prometheus.Registerer) *PrometheusAdapter {
	adapter := &PrometheusAdapter{
		appName: appName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status", "app_name"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    ports.MetricAPIRequestDuration,
				Help:    "Duration API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method", "status", "app_name"},
		),
		ruleRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricUserRuleRejections,
				Help: "Requests rejected by a user business rule, by error kind",
			},
			[]string{"kind", "app_name"},
		),
	}

	reg.MustRegister(adapter.httpRequestsTotal, adapter.httpRequestDuration, adapter.ruleRejections)

	adapter.httpRequestsTotal.WithLabelValues("/health", "GET", "200", appName).Add(0)
	return adapter
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)

func (p *PrometheusAdapter) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case ports.MetricUserRuleRejections:
		p.ruleRejections.WithLabelValues(labels["kind"], p.appName).Inc()
	default:
		p.httpRequestsTotal.WithLabelValues(
			labels["path"],
			labels["method"],
			labels["status"],
			p.appName,
		).Inc()
	}
}

func (p *PrometheusAdapter) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	p.httpRequestDuration.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Observe(duration.Seconds())
}

// RecordMetrics labels by route template so /api/users/1 and /api/users/2 share a series.
func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	labels := map[string]string{
		"path":   path,
		"method": c.Request.Method,
		"status": fmt.Sprintf("%d", c.Writer.Status()),
	}

	p.IncrementCounter(ports.MetricHTTPRequestsTotal, labels)
	p.RecordDuration(ports.MetricAPIRequestDuration, time.Since(start), labels)
}
