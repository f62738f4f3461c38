package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todoboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoboard_http_requests_rejected_total",
			Help: "Requests rejected before reaching a handler",
		},
		[]string{"reason"}, // rate_limited
	)

	TasksCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todoboard_tasks_created_total",
			Help: "Tasks created through POST /todos/add",
		},
	)
)

// RecordHTTPRequest observes one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
