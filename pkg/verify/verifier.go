// Package verify polls projection snapshots until they reflect a just
// appended batch, with a bounded deadline. It never mutates projections.
package verify

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/metrics"
	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// Timeout bounds.
const (
	DefaultTimeout = 2 * time.Second
	MaxTimeout     = 10 * time.Second

	initialPollInterval = 50 * time.Millisecond
	maxPollInterval     = 400 * time.Millisecond
	pollBackoffFactor   = 1.5
)

// SnapshotReader is the projection read surface the verifier needs.
type SnapshotReader interface {
	Get(ctx context.Context, ownerID uuid.UUID, projectionType, key string) (*models.Projection, error)
}

// Verifier runs read-after-write checks.
type Verifier struct {
	projections SnapshotReader
}

// NewVerifier creates a Verifier over the given snapshot reader.
func NewVerifier(projections SnapshotReader) *Verifier {
	return &Verifier{projections: projections}
}

// ClampTimeout resolves the caller-requested timeout against the
// default and cap.
func ClampTimeout(requestedMs *int) time.Duration {
	if requestedMs == nil || *requestedMs <= 0 {
		return DefaultTimeout
	}
	timeout := time.Duration(*requestedMs) * time.Millisecond
	if timeout > MaxTimeout {
		return MaxTimeout
	}
	return timeout
}

// Verify polls every target concurrently until it reaches a terminal
// state or the deadline elapses. Per target:
//   - verified once projection.last_event_id >= max appended id
//   - failed when the projection still does not exist at the deadline
//   - pending when it exists but has not caught up in time
//
// Check order mirrors target order.
func (v *Verifier) Verify(ctx context.Context, ownerID uuid.UUID, targets []models.ReadAfterWriteTarget, maxAppendedID uuid.UUID, timeout time.Duration) []models.ReadAfterWriteCheck {
	checks := make([]models.ReadAfterWriteCheck, len(targets))
	if len(targets) == 0 {
		return checks
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	requestedAt := time.Now()

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(index int, target models.ReadAfterWriteTarget) {
			defer wg.Done()
			checks[index] = v.verifyTarget(deadlineCtx, ownerID, target, maxAppendedID, requestedAt)
			metrics.ReadAfterWriteChecks.WithLabelValues(checks[index].Status).Inc()
		}(i, target)
	}
	wg.Wait()

	return checks
}

func (v *Verifier) verifyTarget(ctx context.Context, ownerID uuid.UUID, target models.ReadAfterWriteTarget, maxAppendedID uuid.UUID, requestedAt time.Time) models.ReadAfterWriteCheck {
	check := models.ReadAfterWriteCheck{
		ProjectionType: target.ProjectionType,
		Key:            target.Key,
		RequestedAt:    requestedAt,
		Status:         models.CheckStatusPending,
	}

	interval := initialPollInterval
	exists := false

	for {
		projection, err := v.projections.Get(ctx, ownerID, target.ProjectionType, target.Key)
		switch {
		case err == nil:
			exists = true
			version := projection.Version
			check.ObservedVersion = &version
			if projection.LastEventID != nil && !idBefore(*projection.LastEventID, maxAppendedID) {
				check.Status = models.CheckStatusVerified
				return check
			}
		case errors.Is(err, services.ErrNotFound):
			// Keep polling; the worker may create it momentarily.
		default:
			// Transient read failure; retry until the deadline.
		}

		select {
		case <-ctx.Done():
			if !exists {
				check.Status = models.CheckStatusFailed
			}
			return check
		case <-time.After(interval):
		}

		interval = time.Duration(float64(interval) * pollBackoffFactor)
		if interval > maxPollInterval {
			interval = maxPollInterval
		}
	}
}

// AllVerified reports whether every check reached verified.
func AllVerified(checks []models.ReadAfterWriteCheck) bool {
	for _, check := range checks {
		if check.Status != models.CheckStatusVerified {
			return false
		}
	}
	return true
}

// idBefore compares UUIDv7 ids bytewise; v7 ids are time-ordered so
// bytewise order is append order.
func idBefore(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
