// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes access log rows past their TTL
//   - Removes abuse telemetry rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	retention config.RetentionConfig
	interval  time.Duration
	accessLog *services.AccessLogService
	telemetry *services.TelemetryService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	retention config.RetentionConfig,
	interval time.Duration,
	accessLog *services.AccessLogService,
	telemetry *services.TelemetryService,
) *Service {
	return &Service{
		retention: retention,
		interval:  interval,
		accessLog: accessLog,
		telemetry: telemetry,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"access_log_ttl_days", s.retention.AccessLogTTLDays,
		"telemetry_ttl_days", s.retention.TelemetryTTLDays,
		"interval", s.interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll()
		}
	}
}

func (s *Service) runAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if count, err := s.accessLog.DeleteOlderThan(ctx, s.retention.AccessLogTTLDays); err != nil {
		slog.Error("Retention: access log cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: removed old access log rows", "count", count)
	}

	if count, err := s.telemetry.DeleteOlderThan(ctx, s.retention.TelemetryTTLDays); err != nil {
		slog.Error("Retention: abuse telemetry cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: removed old abuse telemetry rows", "count", count)
	}
}
