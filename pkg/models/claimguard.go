package models

// Claim statuses. The claim guard is the sole artifact agents may
// quote when reporting persistence outcomes.
const (
	ClaimStatusSavedVerified = "saved_verified"
	ClaimStatusPending       = "pending"
	ClaimStatusFailed        = "failed"
	ClaimStatusInferred      = "inferred"
)

// Uncertainty markers attached by the claim guard builder.
const (
	MarkerWriteReceiptIncomplete       = "write_receipt_incomplete"
	MarkerReadAfterWriteUnverified     = "read_after_write_unverified"
	MarkerPlausibilityWarningsPresent  = "plausibility_warnings_present"
	MarkerAutonomyThrottledByIntegrity = "autonomy_throttled_by_integrity_slo"
	MarkerAutonomyConfirmFirstByTier   = "autonomy_confirm_first_by_model_tier"
)

// ClaimGuard is the machine-generated truth envelope describing what
// the agent may assert about a just-completed write.
type ClaimGuard struct {
	AllowSavedClaim              bool           `json:"allow_saved_claim"`
	ClaimStatus                  string         `json:"claim_status"`
	UncertaintyMarkers           []string       `json:"uncertainty_markers"`
	DeferredMarkers              []string       `json:"deferred_markers"`
	RecommendedUserPhrase        string         `json:"recommended_user_phrase"`
	NextActionConfirmationPrompt string         `json:"next_action_confirmation_prompt,omitempty"`
	AutonomyGate                 AutonomyGate   `json:"autonomy_gate"`
	AutonomyPolicy               AutonomyPolicy `json:"autonomy_policy"`
}
