package fyyur

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//////////////////////////////////////////////////

const (
	outcomeSucceeded = "succeeded"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSucceeded
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return outcomeRejected
	}

	return outcomeFailed
}

// Deletion metrics, namespaced "fyyur". A nil *metrics records nothing.
type metrics struct {
	deletions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (m *metrics, err error) {
	defer func() {
		// promauto panics on duplicate registration.
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
			} else {
				err = errors.New("metrics registration failed")
			}
			m = nil
		}
	}()

	factory := promauto.With(registerer)

	m = &metrics{
		deletions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fyyur",
			Name:      "venue_deletions_total",
			Help:      "Venue deletion requests by outcome (succeeded, rejected, failed).",
		}, []string{"outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fyyur",
			Name:      "venue_deletion_duration_seconds",
			Help:      "Time from sending a venue deletion request to its outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	return m, nil
}

func (m *metrics) observe(outcome string, d time.Duration) {
	if m == nil {
		return
	}

	m.deletions.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(d.Seconds())
}
