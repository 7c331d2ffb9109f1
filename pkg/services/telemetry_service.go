package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/ent"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// AbuseDecisionRecord is one adaptive abuse gate decision, persisted
// for tuning and false-positive review.
type AbuseDecisionRecord struct {
	OwnerID           uuid.UUID
	Profile           string
	Path              string
	Method            string
	Action            string
	RiskScore         int
	CooldownActive    bool
	CooldownUntil     *time.Time
	Snapshot          models.AccessSignalSnapshot
	DeniedRatio       float64
	Signals           []string
	FalsePositiveHint bool
	UXImpactHint      string
	ResponseStatus    int
	ResponseTimeMs    int
}

// TelemetryService persists abuse gate decisions.
type TelemetryService struct {
	client *database.Client
}

// NewTelemetryService creates a new TelemetryService.
func NewTelemetryService(client *database.Client) *TelemetryService {
	return &TelemetryService{client: client}
}

// RecordAbuseDecision inserts one telemetry row.
func (s *TelemetryService) RecordAbuseDecision(httpCtx context.Context, record AbuseDecisionRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	signals := record.Signals
	if signals == nil {
		signals = []string{}
	}

	return withOwnerScope(ctx, s.client.Client, record.OwnerID, func(tx *ent.Tx) error {
		builder := tx.AbuseTelemetry.Create().
			SetOwnerID(record.OwnerID).
			SetProfile(record.Profile).
			SetPath(record.Path).
			SetMethod(record.Method).
			SetAction(record.Action).
			SetRiskScore(record.RiskScore).
			SetCooldownActive(record.CooldownActive).
			SetTotalRequests60s(record.Snapshot.TotalRequests60s).
			SetDeniedRequests60s(record.Snapshot.DeniedRequests60s).
			SetUniquePaths60s(record.Snapshot.UniquePaths60s).
			SetContextReads60s(record.Snapshot.ContextReads60s).
			SetDeniedRatio60s(record.DeniedRatio).
			SetSignals(signals).
			SetFalsePositiveHint(record.FalsePositiveHint).
			SetUxImpactHint(record.UXImpactHint).
			SetResponseStatusCode(record.ResponseStatus).
			SetResponseTimeMs(record.ResponseTimeMs)

		if record.CooldownUntil != nil {
			builder = builder.SetCooldownUntil(*record.CooldownUntil)
		}

		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to record abuse telemetry: %w", err)
		}
		return nil
	})
}

// DeleteOlderThan removes telemetry rows past their TTL. Maintenance
// path: runs over all owners via the privileged handle.
func (s *TelemetryService) DeleteOlderThan(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -ttlDays)

	count, err := s.client.AbuseTelemetry.Delete().
		Where(abusetelemetry.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old abuse telemetry: %w", err)
	}
	return count, nil
}
