package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	emailLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_email_lookups_total",
			Help: "Total email lookup count by outcome",
		},
		[]string{"outcome"},
	)

	lookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchmaker_email_lookup_duration_seconds",
			Help:    "Time spent loading and scanning the dataset per lookup",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	initOnce sync.Once
)

// Init registers the collectors with the default registry.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(emailLookups, lookupDuration)
	})
}

// RecordLookup counts a lookup outcome.
func RecordLookup(outcome string) {
	emailLookups.WithLabelValues(outcome).Inc()
}

// ObserveLookupDuration records how long a lookup against source took.
func ObserveLookupDuration(source string, d time.Duration) {
	lookupDuration.WithLabelValues(source).Observe(d.Seconds())
}
