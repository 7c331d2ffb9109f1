package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/ent"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// AccessLogService records per-request observations and computes the
// 60-second signal snapshot the adaptive abuse gate scores.
type AccessLogService struct {
	client *database.Client
}

// NewAccessLogService creates a new AccessLogService.
func NewAccessLogService(client *database.Client) *AccessLogService {
	return &AccessLogService{client: client}
}

// Record inserts one access log row.
func (s *AccessLogService) Record(httpCtx context.Context, record models.AccessLogRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	occurredAt := record.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return withOwnerScope(ctx, s.client.Client, record.OwnerID, func(tx *ent.Tx) error {
		_, err := tx.AccessLogEntry.Create().
			SetOwnerID(record.OwnerID).
			SetPath(record.Path).
			SetMethod(record.Method).
			SetStatusCode(record.StatusCode).
			SetResponseTimeMs(record.ResponseTimeMs).
			SetOccurredAt(occurredAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to record access log entry: %w", err)
		}
		return nil
	})
}

// Snapshot aggregates the owner's agent-path rows from the last 60
// seconds. Unique-path counting collapses the per-event evidence path
// into a single bucket so enumerating event ids does not look like
// endpoint enumeration by itself.
func (s *AccessLogService) Snapshot(ctx context.Context, ownerID uuid.UUID) (models.AccessSignalSnapshot, error) {
	row := s.client.DB().QueryRowContext(ctx,
		`SELECT
			COUNT(*)::int,
			COUNT(*) FILTER (WHERE status_code IN (401, 403, 404))::int,
			COUNT(*) FILTER (WHERE status_code IN (401, 403))::int,
			COUNT(*) FILTER (WHERE status_code = 404)::int,
			COUNT(DISTINCT CASE
				WHEN path LIKE '/v1/agent/evidence/event/%' THEN '/v1/agent/evidence/event/{event_id}'
				ELSE path
			END)::int,
			COUNT(*) FILTER (WHERE path = '/v1/agent/context')::int,
			COUNT(*) FILTER (WHERE path = '/v1/agent/write-with-proof')::int
		FROM access_log_entries
		WHERE owner_id = $1
		  AND path LIKE '/v1/agent/%'
		  AND occurred_at >= NOW() - INTERVAL '60 seconds'`,
		ownerID)

	var snapshot models.AccessSignalSnapshot
	if err := row.Scan(
		&snapshot.TotalRequests60s,
		&snapshot.DeniedRequests60s,
		&snapshot.DeniedAuthzRequests60s,
		&snapshot.DeniedNotFoundRequests60s,
		&snapshot.UniquePaths60s,
		&snapshot.ContextReads60s,
		&snapshot.WriteRequests60s,
	); err != nil {
		return models.AccessSignalSnapshot{}, fmt.Errorf("failed to aggregate access snapshot: %w", err)
	}

	return snapshot, nil
}

// DeleteOlderThan removes access log rows past their TTL. Maintenance
// path: runs over all owners via the privileged handle.
func (s *AccessLogService) DeleteOlderThan(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -ttlDays)

	count, err := s.client.AccessLogEntry.Delete().
		Where(accesslogentry.OccurredAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old access log entries: %w", err)
	}
	return count, nil
}
