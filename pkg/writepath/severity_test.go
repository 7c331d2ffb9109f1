package writepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMismatchSeverity(t *testing.T) {
	t.Run("no mismatch and no echo requirement is none", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(false, false, "not_applicable")
		assert.Equal(t, SeverityNone, severity)
		assert.Empty(t, reasons)
	})

	t.Run("complete echo without mismatch is none", func(t *testing.T) {
		severity, _ := ClassifyMismatchSeverity(false, true, "complete")
		assert.Equal(t, SeverityNone, severity)
	})

	t.Run("mismatch without echo requirement is protocol info", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(true, false, "not_applicable")
		assert.Equal(t, SeverityInfo, severity)
		assert.Equal(t, []string{"proof_verification_pending_without_save_echo_requirement"}, reasons)
	})

	t.Run("missing echo on a persisted write is critical", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(false, true, "missing")
		assert.Equal(t, SeverityCritical, severity)
		assert.Equal(t, []string{"save_echo_missing"}, reasons)
	})

	t.Run("partial echo is warning", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(false, true, "partial")
		assert.Equal(t, SeverityWarning, severity)
		assert.Equal(t, []string{"save_echo_partial"}, reasons)
	})

	t.Run("proof failure with complete echo is info", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(true, true, "complete")
		assert.Equal(t, SeverityInfo, severity)
		assert.Equal(t, []string{"proof_verification_failed_but_echo_complete"}, reasons)
	})

	t.Run("proof failure with unassessed echo is critical", func(t *testing.T) {
		severity, reasons := ClassifyMismatchSeverity(true, true, "not_assessed")
		assert.Equal(t, SeverityCritical, severity)
		assert.Equal(t, []string{"proof_verification_failed_echo_not_assessed"}, reasons)
	})

	t.Run("unassessed echo without mismatch stays neutral", func(t *testing.T) {
		severity, _ := ClassifyMismatchSeverity(false, true, "not_assessed")
		assert.Equal(t, SeverityNone, severity)
	})

	t.Run("weights rank by risk", func(t *testing.T) {
		assert.Greater(t, SeverityCritical.Weight, SeverityWarning.Weight)
		assert.Greater(t, SeverityWarning.Weight, SeverityInfo.Weight)
		assert.Greater(t, SeverityInfo.Weight, SeverityNone.Weight)
	})
}

func TestClassifyActionClass(t *testing.T) {
	t.Run("set logging is low impact", func(t *testing.T) {
		events := []testEventList{{eventType: "set.logged"}, {eventType: "meal.logged"}}
		assert.Equal(t, "low_impact_write", ClassifyActionClass(toRequests(events)))
	})

	t.Run("plan update escalates the batch", func(t *testing.T) {
		events := []testEventList{{eventType: "set.logged"}, {eventType: "training_plan.updated"}}
		assert.Equal(t, "high_impact_write", ClassifyActionClass(toRequests(events)))
	})

	t.Run("workflow onboarding transitions are high impact", func(t *testing.T) {
		assert.True(t, IsHighImpactEventType("workflow.onboarding.closed"))
		assert.True(t, IsHighImpactEventType("Workflow.Onboarding.Override_Granted"))
		assert.False(t, IsHighImpactEventType("set.logged"))
	})
}
