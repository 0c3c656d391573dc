package gcalendar

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gcal_relay",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Google Calendar API operations by operation and result.",
	}, []string{"op", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gcal_relay",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of Google Calendar API operations, session setup included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

func observe(op string, start time.Time, err error) {
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, resultLabel(err)).Inc()
}

// resultLabel is "success", the remote HTTP status, or "error" when Google never answered.
func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		if code := remoteErr.StatusCode(); code != 0 {
			return strconv.Itoa(code)
		}
	}
	return "error"
}
