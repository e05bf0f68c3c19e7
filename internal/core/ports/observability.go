package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	MetricHTTPRequestsTotal  = "http_requests_total"
	MetricAPIRequestDuration = "api_request_duration_seconds"
	MetricUserRuleRejections = "user_rule_rejections_total"
)

type MetricsPort interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(name string, duration time.Duration, labels map[string]string)
	RecordMetrics(c *gin.Context, start time.Time)
}
