package writepath

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// Learning telemetry constants.
const (
	LearningTelemetrySchemaVersion = 1
	SaveHandshakeInvariantID       = "INV-002"
)

// PseudonymizeOwnerID derives the stable learning-telemetry owner
// reference from the salt. Never reversible to the raw owner id.
func PseudonymizeOwnerID(ownerID uuid.UUID, salt string) string {
	seed := fmt.Sprintf("%s:%s", salt, ownerID)
	return "u_" + attest.StableHashSuffix(seed, 24)
}

// LearningSignalCategory buckets a signal type.
func LearningSignalCategory(signalType string) string {
	switch signalType {
	case "save_handshake_verified":
		return "outcome_signal"
	case "save_handshake_pending", "save_claim_mismatch_attempt":
		return "friction_signal"
	default:
		return "quality_signal"
	}
}

// BuildSaveClaimCheckedEvent assembles the quality.save_claim.checked
// event appended after the primary write. Save-echo is a
// tier-independent data-integrity contract: always required when the
// claim status indicates persisted data, and completeness starts at
// not_assessed until the response layer evaluates the user-facing echo.
func BuildSaveClaimCheckedEvent(
	requestedEventCount int,
	receipts []models.WriteReceipt,
	verification models.VerificationSummary,
	guard models.ClaimGuard,
	sessionAudit models.SessionAuditSummary,
	identity models.ResolvedModelIdentity,
) models.CreateEventRequest {
	mismatchDetected := !guard.AllowSavedClaim
	saveEchoRequired := guard.ClaimStatus == models.ClaimStatusSavedVerified ||
		guard.ClaimStatus == models.ClaimStatusInferred
	saveEchoCompleteness := "not_applicable"
	if saveEchoRequired {
		saveEchoCompleteness = "not_assessed"
	}
	severity, reasonCodes := ClassifyMismatchSeverity(mismatchDetected, saveEchoRequired, saveEchoCompleteness)
	if reasonCodes == nil {
		reasonCodes = []string{}
	}

	idempotencyKey := fmt.Sprintf("quality-save-claim-checked-%s", newEventUUID())

	return models.CreateEventRequest{
		Timestamp: time.Now().UTC(),
		EventType: "quality.save_claim.checked",
		Data: map[string]any{
			"requested_event_count":            requestedEventCount,
			"receipt_count":                    len(receipts),
			"allow_saved_claim":                guard.AllowSavedClaim,
			"claim_status":                     guard.ClaimStatus,
			"verification_status":              verification.Status,
			"write_path":                       verification.WritePath,
			"required_checks":                  verification.RequiredChecks,
			"verified_checks":                  verification.VerifiedChecks,
			"mismatch_detected":                mismatchDetected,
			"mismatch_severity":                severity.Severity,
			"mismatch_weight":                  severity.Weight,
			"mismatch_domain":                  severity.Domain,
			"mismatch_reason_codes":            reasonCodes,
			"save_echo_required":               saveEchoRequired,
			"save_echo_present":                nil,
			"save_echo_completeness":           saveEchoCompleteness,
			"runtime_model_identity":           identity.ModelIdentity,
			"model_identity_source":            identity.Source,
			"model_attestation_request_id":     identity.AttestationRequestID,
			"next_action_confirmation_prompt":  guard.NextActionConfirmationPrompt,
			"uncertainty_markers":              guard.UncertaintyMarkers,
			"deferred_markers":                 guard.DeferredMarkers,
			"autonomy_policy": map[string]any{
				"slo_status":                 guard.AutonomyPolicy.SLOStatus,
				"calibration_status":         guard.AutonomyPolicy.CalibrationStatus,
				"model_identity":             guard.AutonomyPolicy.ModelIdentity,
				"capability_tier":            guard.AutonomyPolicy.CapabilityTier,
				"throttle_active":            guard.AutonomyPolicy.ThrottleActive,
				"max_scope_level":            guard.AutonomyPolicy.MaxScopeLevel,
				"interaction_verbosity":      guard.AutonomyPolicy.InteractionVerbosity,
				"confirmation_strictness":    guard.AutonomyPolicy.ConfirmationStrictness,
				"user_requested_scope_level": guard.AutonomyPolicy.UserRequestedScopeLevel,
			},
			"autonomy_gate": map[string]any{
				"decision":                 guard.AutonomyGate.Decision,
				"action_class":             guard.AutonomyGate.ActionClass,
				"model_tier":               guard.AutonomyGate.ModelTier,
				"effective_quality_status": guard.AutonomyGate.EffectiveQualityStatus,
				"reason_codes":             guard.AutonomyGate.ReasonCodes,
			},
			"session_audit": map[string]any{
				"status":                 sessionAudit.Status,
				"mismatch_detected":      sessionAudit.MismatchDetected,
				"mismatch_repaired":      sessionAudit.MismatchRepaired,
				"mismatch_unresolved":    sessionAudit.MismatchUnresolved,
				"mismatch_classes":       sessionAudit.MismatchClasses,
				"clarification_question": sessionAudit.ClarificationQuestion,
			},
		},
		Metadata: models.EventMetadata{
			Source:         "agent_write_with_proof",
			Agent:          "api",
			SessionID:      "quality:save-claim",
			IdempotencyKey: idempotencyKey,
		},
	}
}

func buildLearningSignalEvent(
	ownerID uuid.UUID,
	salt string,
	signalType string,
	guard models.ClaimGuard,
	verification models.VerificationSummary,
	requestedEventCount, receiptCount int,
	identity models.ResolvedModelIdentity,
	severity MismatchSeverity,
	mismatchReasonCodes []string,
) models.CreateEventRequest {
	capturedAt := time.Now().UTC()
	confidenceBand := SaveClaimConfidenceBand(guard)
	agentVersion := os.Getenv("KURA_AGENT_VERSION")
	if agentVersion == "" {
		agentVersion = "api_agent_v1"
	}
	signatureSeed := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s",
		signalType, signalType, SaveHandshakeInvariantID, agentVersion,
		"agent_write_with_proof", "chat", confidenceBand)
	clusterSignature := "ls_" + attest.StableHashSuffix(signatureSeed, 20)
	if mismatchReasonCodes == nil {
		mismatchReasonCodes = []string{}
	}

	return models.CreateEventRequest{
		Timestamp: capturedAt,
		EventType: "learning.signal.logged",
		Data: map[string]any{
			"schema_version": LearningTelemetrySchemaVersion,
			"signal_type":    signalType,
			"category":       LearningSignalCategory(signalType),
			"captured_at":    capturedAt.Format(time.RFC3339),
			"user_ref": map[string]any{
				"pseudonymized_user_id": PseudonymizeOwnerID(ownerID, salt),
			},
			"signature": map[string]any{
				"issue_type":      signalType,
				"invariant_id":    SaveHandshakeInvariantID,
				"agent_version":   agentVersion,
				"workflow_phase":  "agent_write_with_proof",
				"modality":        "chat",
				"confidence_band": confidenceBand,
			},
			"cluster_signature": clusterSignature,
			"attributes": map[string]any{
				"requested_event_count":        requestedEventCount,
				"receipt_count":                receiptCount,
				"allow_saved_claim":            guard.AllowSavedClaim,
				"claim_status":                 guard.ClaimStatus,
				"verification_status":          verification.Status,
				"write_path":                   verification.WritePath,
				"required_checks":              verification.RequiredChecks,
				"verified_checks":              verification.VerifiedChecks,
				"mismatch_detected":            !guard.AllowSavedClaim,
				"mismatch_severity":            severity.Severity,
				"mismatch_weight":              severity.Weight,
				"mismatch_domain":              severity.Domain,
				"mismatch_reason_codes":        mismatchReasonCodes,
				"runtime_model_identity":       identity.ModelIdentity,
				"model_identity_source":        identity.Source,
				"model_attestation_request_id": identity.AttestationRequestID,
			},
		},
		Metadata: models.EventMetadata{
			Source:         "agent_write_with_proof",
			Agent:          "api",
			SessionID:      "learning:save-handshake",
			IdempotencyKey: fmt.Sprintf("learning-signal-%s", newEventUUID()),
		},
	}
}

// BuildSaveHandshakeLearningSignals keys the learning signals off the
// write outcome: one verified signal on success, pending + mismatch
// attempt otherwise.
func BuildSaveHandshakeLearningSignals(
	ownerID uuid.UUID,
	salt string,
	requestedEventCount int,
	receipts []models.WriteReceipt,
	verification models.VerificationSummary,
	guard models.ClaimGuard,
	identity models.ResolvedModelIdentity,
) []models.CreateEventRequest {
	saveEchoRequired := guard.ClaimStatus == models.ClaimStatusSavedVerified ||
		guard.ClaimStatus == models.ClaimStatusInferred
	saveEchoCompleteness := "not_applicable"
	if saveEchoRequired {
		saveEchoCompleteness = "not_assessed"
	}
	severity, reasonCodes := ClassifyMismatchSeverity(!guard.AllowSavedClaim, saveEchoRequired, saveEchoCompleteness)

	if guard.AllowSavedClaim {
		return []models.CreateEventRequest{
			buildLearningSignalEvent(ownerID, salt, "save_handshake_verified",
				guard, verification, requestedEventCount, len(receipts), identity, severity, reasonCodes),
		}
	}

	return []models.CreateEventRequest{
		buildLearningSignalEvent(ownerID, salt, "save_handshake_pending",
			guard, verification, requestedEventCount, len(receipts), identity, severity, reasonCodes),
		buildLearningSignalEvent(ownerID, salt, "save_claim_mismatch_attempt",
			guard, verification, requestedEventCount, len(receipts), identity, severity, reasonCodes),
	}
}

func newEventUUID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
