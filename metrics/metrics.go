// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "delegates"
)

var (
	// RequestDuration measures handler latency per route pattern
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"method", "route"},
	)

	// PercentageUpdates counts percentage edits
	PercentageUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "percentage_updates_total",
			Help:      "Total number of candidate percentage edits",
		},
		[]string{"party", "outcome"}, // outcome: applied/clamped/rejected
	)

	// StateLoads counts dataset load attempts
	StateLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_loads_total",
			Help:      "Total number of state dataset loads",
		},
		[]string{"party", "status"}, // status: success/error
	)

	// ScenarioWrites counts scenario saves and overwrites
	ScenarioWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenario_writes_total",
			Help:      "Total number of scenario writes",
		},
		[]string{"op"}, // op: create/update/restore
	)

	// CandidateDelegates tracks each candidate's running delegate total
	CandidateDelegates = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "candidate_delegates",
			Help:      "Delegates currently allocated to a candidate",
		},
		[]string{"party", "candidate"},
	)
)

// Outcome labels for PercentageUpdates
const (
	OutcomeApplied  = "applied"
	OutcomeClamped  = "clamped"
	OutcomeRejected = "rejected"
)

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
