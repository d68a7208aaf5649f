// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics instruments the signer: how many sign requests each
// session served, broken down by outcome, and how long request handling
// took.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every metric the signer reports.
type Metrics struct {
	Registry prometheus.Registerer

	// SignRequests counts handled sign requests by outcome ("ok",
	// "unknown_key", "decode_error").
	SignRequests *prometheus.CounterVec
	// SessionsActive is the number of sessions currently in Serving or
	// Signing state.
	SessionsActive prometheus.Gauge
	// RequestDuration observes wall-clock time spent handling one
	// request, from frame-read to response-write.
	RequestDuration prometheus.Histogram
}

// NewMetrics registers and returns the signer's metrics against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Registry: reg,
		SignRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kms_sign_requests_total",
			Help: "Total sign requests handled, by outcome.",
		}, []string{"outcome"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kms_sessions_active",
			Help: "Number of sessions currently connected.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kms_request_duration_seconds",
			Help:    "Time spent handling one session request.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.SignRequests, m.SessionsActive, m.RequestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register registers an additional prometheus collector against the same
// registry, for callers with their own metrics (e.g. a keyring
// implementation that wants to expose load/cache counters).
func (m *Metrics) Register(collector prometheus.Collector) error {
	return m.Registry.Register(collector)
}
