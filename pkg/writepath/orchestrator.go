package writepath

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/autonomy"
	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/handshake"
	"github.com/jonzim-cmd/kura/pkg/invariant"
	"github.com/jonzim-cmd/kura/pkg/metrics"
	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
	"github.com/jonzim-cmd/kura/pkg/tier"
	"github.com/jonzim-cmd/kura/pkg/verify"
)

// WritePath labels stamped into verification summaries.
const (
	WritePathAgentProof = "agent_write_with_proof"
	WritePathLegacy     = "events_api"
)

// Projection identifiers consulted by the pipeline.
const (
	qualityHealthProjection = "quality_health"
	userProfileProjection   = "user_profile"
	currentProjectionKey    = "current"
)

// Orchestrator runs the write pipeline:
//
//	identity → tier → policy → gate → intent? → confirmation?
//	→ invariants → append → read_after_write → claim_guard
//
// The abuse gate runs earlier, as middleware. Stages fail fast with a
// typed error; nothing is appended on any rejection.
type Orchestrator struct {
	cfg         *config.Config
	events      *services.EventService
	projections *services.ProjectionService
	attestor    *attest.Verifier
	tiers       *tier.Engine
	verifier    *verify.Verifier
}

// NewOrchestrator wires the pipeline collaborators.
func NewOrchestrator(
	cfg *config.Config,
	events *services.EventService,
	projections *services.ProjectionService,
	attestor *attest.Verifier,
	tiers *tier.Engine,
	verifier *verify.Verifier,
) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		events:      events,
		projections: projections,
		attestor:    attestor,
		tiers:       tiers,
		verifier:    verifier,
	}
}

// Tiers exposes the tier engine for read-side surfaces (capabilities).
func (o *Orchestrator) Tiers() *tier.Engine {
	return o.tiers
}

// Attestor exposes the attestation verifier for read-side surfaces.
func (o *Orchestrator) Attestor() *attest.Verifier {
	return o.attestor
}

// Execute runs the full pipeline for one write-with-proof request.
func (o *Orchestrator) Execute(ctx context.Context, ownerID uuid.UUID, clientID string, req *models.WriteWithProofRequest) (*models.WriteWithProofResponse, error) {
	now := time.Now().UTC()

	if len(req.Events) == 0 {
		return nil, &apperror.Validation{
			Message:  "events array must not be empty",
			Field:    "events",
			DocsHint: "Provide at least one event in the batch",
		}
	}
	if len(req.Events) > services.MaxBatchSize {
		return nil, &apperror.Validation{
			Message:  fmt.Sprintf("Batch size %d exceeds maximum of %d", len(req.Events), services.MaxBatchSize),
			Field:    "events",
			Received: len(req.Events),
			DocsHint: fmt.Sprintf("Split large batches into chunks of %d or fewer", services.MaxBatchSize),
		}
	}

	actionClass := ClassifyActionClass(req.Events)

	// Identity and tier.
	identity := o.attestor.ResolveForWrite(req, actionClass, clientID, ownerID, now)
	metrics.AttestationResults.WithLabelValues(identity.Source).Inc()

	tierPolicy, tierReasons, err := o.tiers.ResolveForWrite(ctx, ownerID, identity.ModelIdentity)
	if err != nil {
		return nil, &apperror.Internal{Cause: fmt.Errorf("tier resolution: %w", err)}
	}

	// Autonomy policy: quality health, tier overlay, user preferences.
	qualityHealth := o.projection(ctx, ownerID, qualityHealthProjection)
	userProfile := o.projection(ctx, ownerID, userProfileProjection)

	policy := autonomy.FromQualityHealth(qualityHealth, o.cfg.ConfirmationTemplates)
	policy = autonomy.ApplyModelTierPolicy(policy, identity.ModelIdentity, tierPolicy, identity.ReasonCodes)
	policy = autonomy.ApplyUserPreferences(policy, userProfile)

	gate := autonomy.EvaluateGate(actionClass, policy, tierPolicy, tierReasons)
	gate = autonomy.ApplyPrinciplesMemoryGuard(gate, actionClass, userProfile, now)

	// Intent handshake: mandatory for high-impact writes.
	var intentConfirmation *models.IntentHandshakeConfirmation
	if actionClass == models.ActionClassHighImpactWrite {
		if req.IntentHandshake == nil {
			return nil, &apperror.Validation{
				Message:  "intent_handshake is required for high-impact writes",
				Field:    "intent_handshake",
				DocsHint: "Declare goal, planned_action, assumptions, non_goals, success_criteria, and impact_class before executing.",
			}
		}
		if err := handshake.ValidateIntent(req.IntentHandshake, actionClass, now); err != nil {
			return nil, err
		}
		confirmation := handshake.BuildIntentConfirmation(req.IntentHandshake)
		intentConfirmation = &confirmation
	}

	// High-impact confirmation: required whenever the gate says
	// confirm-first. The digest excludes the confirmation block itself.
	if gate.Decision == models.GateDecisionConfirmFirst {
		confirmationDigest := attest.ConfirmationRequestDigest(req, actionClass)
		if err := handshake.ValidateConfirmation(
			req.HighImpactConfirmation,
			req.Events,
			IsHighImpactEventType,
			gate,
			ownerID,
			actionClass,
			confirmationDigest,
			o.cfg.Process.AttestationSecret,
			now,
		); err != nil {
			return nil, err
		}
	}

	// Invariants, soft warnings, session audit.
	if err := invariant.ValidateBatch(req.Events); err != nil {
		return nil, err
	}
	warnings, err := o.collectWarnings(ctx, ownerID, req.Events)
	if err != nil {
		return nil, err
	}
	sessionAudit := invariant.AuditSession(req.Events)

	// Atomic append.
	receipts, err := o.events.AppendAtomic(ctx, ownerID, req.Events)
	if err != nil {
		return nil, err
	}

	// Read-after-write verification.
	timeout := verify.ClampTimeout(req.VerifyTimeoutMs)
	checks := o.verifier.Verify(ctx, ownerID, req.ReadAfterWriteTargets, maxReceiptID(receipts), timeout)
	verification := summarizeVerification(checks, WritePathAgentProof)

	// Claim guard.
	guard := BuildClaimGuard(receipts, len(req.Events), checks, warnings, policy, gate)
	metrics.WriteOutcomes.WithLabelValues(guard.ClaimStatus).Inc()

	// Derived events: evidence claims, quality check, learning signals.
	// Best-effort; a failure here never invalidates the primary write.
	evidenceEvents := BuildEvidenceClaimEvents(ownerID, req.Events, receipts)
	derived := append([]models.CreateEventRequest{}, evidenceEvents...)
	derived = append(derived, BuildSaveClaimCheckedEvent(len(req.Events), receipts, verification, guard, sessionAudit, identity))
	derived = append(derived, BuildSaveHandshakeLearningSignals(
		ownerID, o.cfg.Process.TelemetrySalt, len(req.Events), receipts, verification, guard, identity)...)
	o.appendDerived(ctx, ownerID, derived)

	reliability := BuildReliabilityUX(guard, sessionAudit, CollectInferredFacts(evidenceEvents))

	return &models.WriteWithProofResponse{
		Receipts:     receipts,
		Verification: verification,
		ClaimGuard:   guard,
		Warnings:     warnings,
		SessionAudit: sessionAudit,
		Intent:       intentConfirmation,
		Reliability:  reliability,
	}, nil
}

// ValidateAndWarn runs invariants and soft checks without appending.
// Shared by the legacy event endpoints and the simulate endpoint.
func (o *Orchestrator) ValidateAndWarn(ctx context.Context, ownerID uuid.UUID, events []models.CreateEventRequest) ([]models.BatchEventWarning, error) {
	if err := invariant.ValidateBatch(events); err != nil {
		return nil, err
	}
	return o.collectWarnings(ctx, ownerID, events)
}

func (o *Orchestrator) collectWarnings(ctx context.Context, ownerID uuid.UUID, events []models.CreateEventRequest) ([]models.BatchEventWarning, error) {
	knownIDs, err := o.events.KnownExerciseIDs(ctx, ownerID)
	if err != nil {
		return nil, &apperror.Internal{Cause: fmt.Errorf("exercise id lookup: %w", err)}
	}

	warnings := []models.BatchEventWarning{}
	for i, evt := range events {
		for _, w := range invariant.CheckPlausibility(evt.EventType, evt.Data) {
			warnings = append(warnings, models.BatchEventWarning{
				EventIndex: i, Field: w.Field, Message: w.Message, Severity: w.Severity,
			})
		}
		for _, w := range invariant.CheckExerciseIDSimilarity(evt.EventType, evt.Data, knownIDs) {
			warnings = append(warnings, models.BatchEventWarning{
				EventIndex: i, Field: w.Field, Message: w.Message, Severity: w.Severity,
			})
		}
		// Later events in the batch see ids introduced by earlier ones.
		if raw, ok := evt.Data["exercise_id"].(string); ok {
			if normalized := normalizeID(raw); normalized != "" {
				knownIDs[normalized] = struct{}{}
			}
		}
	}
	return warnings, nil
}

func (o *Orchestrator) projection(ctx context.Context, ownerID uuid.UUID, projectionType string) *models.Projection {
	projection, err := o.projections.Get(ctx, ownerID, projectionType, currentProjectionKey)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("projection read failed; using defaults",
				"projection_type", projectionType, "owner_id", ownerID, "error", err)
		}
		return nil
	}
	return projection
}

func (o *Orchestrator) appendDerived(ctx context.Context, ownerID uuid.UUID, derived []models.CreateEventRequest) {
	// A large batch can draft more derived events than one append
	// allows; chunk to stay inside the batch bound.
	for start := 0; start < len(derived); start += services.MaxBatchSize {
		end := start + services.MaxBatchSize
		if end > len(derived) {
			end = len(derived)
		}
		if _, err := o.events.AppendAtomic(ctx, ownerID, derived[start:end]); err != nil {
			var conflict *apperror.IdempotencyConflict
			if errors.As(err, &conflict) {
				// Stable evidence-claim keys make re-runs collide on purpose.
				continue
			}
			slog.Warn("failed to append derived events",
				"owner_id", ownerID, "count", end-start, "error", err)
		}
	}
}

func summarizeVerification(checks []models.ReadAfterWriteCheck, writePath string) models.VerificationSummary {
	verified := 0
	failed := 0
	for _, check := range checks {
		switch check.Status {
		case models.CheckStatusVerified:
			verified++
		case models.CheckStatusFailed:
			failed++
		}
	}

	status := models.CheckStatusVerified
	switch {
	case failed > 0:
		status = models.CheckStatusFailed
	case verified < len(checks):
		status = models.CheckStatusPending
	}

	if checks == nil {
		checks = []models.ReadAfterWriteCheck{}
	}
	return models.VerificationSummary{
		Status:         status,
		WritePath:      writePath,
		RequiredChecks: len(checks),
		VerifiedChecks: verified,
		Checks:         checks,
	}
}

func maxReceiptID(receipts []models.WriteReceipt) uuid.UUID {
	var maxID uuid.UUID
	for _, receipt := range receipts {
		if bytes.Compare(receipt.EventID[:], maxID[:]) > 0 {
			maxID = receipt.EventID
		}
	}
	return maxID
}

func normalizeID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
