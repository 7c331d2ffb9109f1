package writepath

import (
	"fmt"
	"strings"

	"github.com/jonzim-cmd/kura/pkg/autonomy"
	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/verify"
)

func phraseByVerbosity(verbosity, concise, balanced, detailed string) string {
	switch strings.ToLower(strings.TrimSpace(verbosity)) {
	case "concise":
		return concise
	case "detailed":
		return detailed
	default:
		return balanced
	}
}

// BuildClaimGuard composes the truth envelope from receipts, checks,
// warnings, and the autonomy posture. allow_saved_claim holds exactly
// when receipts are complete and every requested check verified.
func BuildClaimGuard(
	receipts []models.WriteReceipt,
	requestedEventCount int,
	checks []models.ReadAfterWriteCheck,
	warnings []models.BatchEventWarning,
	policy models.AutonomyPolicy,
	gate models.AutonomyGate,
) models.ClaimGuard {
	uncertaintyMarkers := []string{}
	deferredMarkers := []string{}
	requiresConfirmation := autonomy.RequiresConfirmation(policy) ||
		gate.Decision == models.GateDecisionConfirmFirst

	receiptsComplete := len(receipts) == requestedEventCount
	for _, receipt := range receipts {
		if strings.TrimSpace(receipt.IdempotencyKey) == "" {
			receiptsComplete = false
		}
	}
	if !receiptsComplete {
		uncertaintyMarkers = append(uncertaintyMarkers, models.MarkerWriteReceiptIncomplete)
		deferredMarkers = append(deferredMarkers, "defer_saved_claim_until_receipt_complete")
	}

	readOK := verify.AllVerified(checks)
	if !readOK {
		uncertaintyMarkers = append(uncertaintyMarkers, models.MarkerReadAfterWriteUnverified)
		deferredMarkers = append(deferredMarkers, "defer_saved_claim_until_projection_readback")
	}

	if len(warnings) > 0 {
		uncertaintyMarkers = append(uncertaintyMarkers, models.MarkerPlausibilityWarningsPresent)
	}

	if requiresConfirmation {
		uncertaintyMarkers = append(uncertaintyMarkers, models.MarkerAutonomyThrottledByIntegrity)
		deferredMarkers = append(deferredMarkers, "confirm_non_trivial_actions_due_to_slo_regression")
	}
	if gate.Decision == models.GateDecisionConfirmFirst {
		uncertaintyMarkers = append(uncertaintyMarkers, models.MarkerAutonomyConfirmFirstByTier)
		deferredMarkers = append(deferredMarkers, "confirm_high_impact_action_due_to_model_tier")
	}

	nextActionPrompt := ""
	if requiresConfirmation {
		nextActionPrompt = policy.ConfirmationTemplates["non_trivial_action"]
	}

	allowSavedClaim := receiptsComplete && readOK

	var claimStatus, recommendedPhrase string
	switch {
	case allowSavedClaim && requiresConfirmation:
		claimStatus = models.ClaimStatusSavedVerified
		recommendedPhrase = policy.ConfirmationTemplates["post_save_followup"]
		if recommendedPhrase == "" {
			recommendedPhrase = phraseByVerbosity(policy.InteractionVerbosity,
				"Saved. Nächste nicht-triviale Schritte nur mit Bestätigung.",
				fmt.Sprintf(
					"Saved and verified in the read model. Integrity/model status requires explicit confirmation before non-trivial follow-up actions (tier='%s', quality='%s').",
					gate.ModelTier, gate.EffectiveQualityStatus),
				fmt.Sprintf(
					"Saved and verified (durable receipt + read-after-write). Because current integrity/model guardrails are active (tier='%s', quality='%s'), non-trivial follow-up actions require explicit user confirmation.",
					gate.ModelTier, gate.EffectiveQualityStatus),
			)
		}
	case allowSavedClaim:
		claimStatus = models.ClaimStatusSavedVerified
		recommendedPhrase = phraseByVerbosity(policy.InteractionVerbosity,
			"Saved.",
			"Saved and verified in the read model.",
			"Saved and verified in the read model (durable receipt + read-after-write check).",
		)
	case !receiptsComplete:
		claimStatus = models.ClaimStatusFailed
		recommendedPhrase = phraseByVerbosity(policy.InteractionVerbosity,
			"Saved claim failed: missing durable receipts.",
			"Write proof incomplete (missing durable receipts). Avoid a saved claim and retry with the same idempotency keys.",
			"Write proof is incomplete because durable receipts are missing. Do not claim 'saved'; retry using the same idempotency keys so the write remains idempotent.",
		)
	default:
		claimStatus = models.ClaimStatusPending
		recommendedPhrase = phraseByVerbosity(policy.InteractionVerbosity,
			"Saved claim pending verification.",
			"Write accepted; verification still pending, so avoid a definitive 'saved' claim.",
			"Write was accepted, but read-after-write verification is still pending. Avoid any definitive 'saved' claim until projection readback is verified.",
		)
	}

	return models.ClaimGuard{
		AllowSavedClaim:              allowSavedClaim,
		ClaimStatus:                  claimStatus,
		UncertaintyMarkers:           uncertaintyMarkers,
		DeferredMarkers:              deferredMarkers,
		RecommendedUserPhrase:        recommendedPhrase,
		NextActionConfirmationPrompt: nextActionPrompt,
		AutonomyGate:                 gate,
		AutonomyPolicy:               policy,
	}
}

// SaveClaimConfidenceBand buckets the claim outcome for learning
// signal clustering.
func SaveClaimConfidenceBand(guard models.ClaimGuard) string {
	if guard.AllowSavedClaim {
		return "high"
	}
	for _, marker := range guard.UncertaintyMarkers {
		if marker == models.MarkerReadAfterWriteUnverified {
			return "medium"
		}
	}
	return "low"
}
