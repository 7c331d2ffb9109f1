// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AbuseDecisions counts adaptive abuse gate outcomes by action.
	AbuseDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kura",
		Subsystem: "abuse_gate",
		Name:      "decisions_total",
		Help:      "Adaptive abuse gate decisions by action and profile.",
	}, []string{"action", "profile"})

	// WriteOutcomes counts write-with-proof results by claim status.
	WriteOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kura",
		Subsystem: "write_path",
		Name:      "outcomes_total",
		Help:      "Write pipeline outcomes by claim status.",
	}, []string{"claim_status"})

	// AttestationResults counts model attestation verification results.
	AttestationResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kura",
		Subsystem: "attestation",
		Name:      "results_total",
		Help:      "Model attestation verification results by source.",
	}, []string{"source"})

	// ReadAfterWriteChecks counts verifier terminal states.
	ReadAfterWriteChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kura",
		Subsystem: "read_after_write",
		Name:      "checks_total",
		Help:      "Read-after-write check terminal states.",
	}, []string{"status"})
)
