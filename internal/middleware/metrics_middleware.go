package middleware

// File: admin_server/middleware/metrics_middleware.go
// Description: 请求指标中间件，按路由统计请求次数与耗时

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "admin_server",
		Name:      "http_requests_total",
		Help:      "按方法、路由和状态码统计的请求数",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "admin_server",
		Name:      "http_request_duration_seconds",
		Help:      "按方法和路由统计的请求耗时",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// MetricsMiddleware 记录请求次数和耗时，未匹配路由统一记为unmatched
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	requestTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
