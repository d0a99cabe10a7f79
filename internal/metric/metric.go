// Package metric exposes the Prometheus metrics of the service.
package metric

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pick_a_date"

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "The latency of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	eventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "The number of events created",
	})

	participantsJoined = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "participants_joined_total",
		Help:      "The number of participants who joined an event",
	})

	availabilityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_writes_total",
		Help:      "The number of availability entries written by operation",
	}, []string{"operation"})
)

// Availability write operations.
const (
	OperationUpsert = "upsert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

func EventCreated() {
	eventsCreated.Inc()
}

func ParticipantJoined() {
	participantsJoined.Inc()
}

func AvailabilityWritten(operation string) {
	availabilityWrites.WithLabelValues(operation).Inc()
}

// RequestDuration is a Gin middleware observing the latency of every request. Requests are labeled
// by route template rather than path so access tokens never end up in a label.
func RequestDuration() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the metrics of the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
