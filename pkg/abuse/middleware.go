package abuse

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/config"
	"github.com/jonzim-cmd/kura/pkg/metrics"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// OwnerResolver extracts the authenticated owner from the request
// context. Unauthenticated requests bypass the gate (they fail auth
// later anyway).
type OwnerResolver func(c *echo.Context) (uuid.UUID, bool)

// Gate is the adaptive abuse gate middleware. One cooperative task per
// request: snapshot query, pure scoring, cooldown decision, then either
// a synthesized 429, a throttle sleep, or pass-through.
type Gate struct {
	security  config.SecurityConfig
	cooldowns *CooldownRegistry
	accessLog *services.AccessLogService
	telemetry *services.TelemetryService
	owner     OwnerResolver
}

// NewGate creates the gate with its collaborators. The cooldown
// registry is owned by the caller so tests can inspect it.
func NewGate(
	security config.SecurityConfig,
	cooldowns *CooldownRegistry,
	accessLog *services.AccessLogService,
	telemetry *services.TelemetryService,
	owner OwnerResolver,
) *Gate {
	return &Gate{
		security:  security,
		cooldowns: cooldowns,
		accessLog: accessLog,
		telemetry: telemetry,
		owner:     owner,
	}
}

// Middleware returns the echo middleware evaluated on the agent path
// prefix only.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/v1/agent/") {
				return next(c)
			}
			ownerID, ok := g.owner(c)
			if !ok {
				return next(c)
			}

			start := time.Now()
			now := start

			resolved := ResolveProfile(g.security, ownerID)

			snapshot, err := g.accessLog.Snapshot(req.Context(), ownerID)
			if err != nil {
				// The gate is a dampening layer; never fail the request
				// because the snapshot query did.
				slog.Warn("abuse gate snapshot failed; allowing request",
					"owner_id", ownerID, "error", err)
				return next(c)
			}

			assessment := EvaluateRisk(snapshot, resolved.Name, resolved.Tuning)
			decision := g.cooldowns.Apply(ownerID, assessment, resolved.Tuning, now)

			metrics.AbuseDecisions.WithLabelValues(decision.Action, resolved.Name).Inc()
			g.annotateHeaders(c, resolved, assessment, decision)

			if decision.Action == ActionBlock {
				response := blockBody(assessment, decision)
				c.Response().Header().Set("retry-after", strconv.FormatInt(maxInt64(decision.RetryAfterSecs, 1), 10))
				g.persistDecision(ownerID, resolved, assessment, decision, req, http.StatusTooManyRequests, start, "blocked")
				return c.JSON(http.StatusTooManyRequests, response)
			}

			if decision.Action == ActionThrottle && decision.ThrottleDelayMs > 0 {
				select {
				case <-time.After(time.Duration(decision.ThrottleDelayMs) * time.Millisecond):
				case <-req.Context().Done():
					return req.Context().Err()
				}
			}

			if decision.RecoveredFromCooldown {
				recovery := decision
				recovery.Action = ActionRecovery
				g.persistDecision(ownerID, resolved, RiskAssessment{
					Snapshot:   assessment.Snapshot,
					Profile:    assessment.Profile,
					Score:      assessment.Score,
					Signals:    []string{SignalCooldownRecovered},
					BaseAction: ActionAllow,
				}, recovery, req, http.StatusOK, start, "recovered")
			}

			err = next(c)

			if shouldPersist(assessment, decision, resolved.RolloutBucket) && decision.Action != ActionBlock && !decision.RecoveredFromCooldown {
				status := c.Response().(*echo.Response).Status
				hint := "none"
				if decision.Action == ActionThrottle {
					hint = "delayed"
				}
				g.persistDecision(ownerID, resolved, assessment, decision, req, status, start, hint)
			}

			return err
		}
	}
}

func (g *Gate) annotateHeaders(c *echo.Context, resolved ResolvedProfile, assessment RiskAssessment, decision Decision) {
	h := c.Response().Header()
	h.Set("x-kura-security-profile", resolved.Name)
	h.Set("x-kura-security-profile-source", resolved.Source)
	h.Set("x-kura-security-profile-bucket", strconv.Itoa(resolved.RolloutBucket))
	h.Set("x-kura-abuse-action", decision.Action)
	h.Set("x-kura-abuse-score", strconv.Itoa(assessment.Score))
	if len(assessment.Signals) > 0 {
		h.Set("x-kura-abuse-signals", strings.Join(assessment.Signals, ","))
	}
	if decision.CooldownUntil != nil {
		h.Set("x-kura-abuse-cooldown-until", decision.CooldownUntil.UTC().Format(time.RFC3339))
	}
}

func blockBody(assessment RiskAssessment, decision Decision) map[string]any {
	retryAfter := maxInt64(decision.RetryAfterSecs, 1)
	requestID := uuid.NewString()
	if id, err := uuid.NewV7(); err == nil {
		requestID = id.String()
	}
	return map[string]any{
		"error":   "rate_limited",
		"message": "Adaptive abuse protection active. Retry after " + strconv.FormatInt(retryAfter, 10) + " seconds.",
		"field":   "security_abuse",
		"received": map[string]any{
			"risk_score": assessment.Score,
			"signals":    assessment.Signals,
			"window": map[string]any{
				"total_requests_60s":  assessment.Snapshot.TotalRequests60s,
				"denied_requests_60s": assessment.Snapshot.DeniedRequests60s,
				"unique_paths_60s":    assessment.Snapshot.UniquePaths60s,
				"context_reads_60s":   assessment.Snapshot.ContextReads60s,
			},
		},
		"request_id": requestID,
		"docs_hint":  "Reduce high-frequency or enumeration-like agent calls and retry after cooldown.",
	}
}

func shouldPersist(assessment RiskAssessment, decision Decision, rolloutBucket int) bool {
	allowSampled := decision.Action == ActionAllow && rolloutBucket < allowTelemetrySampleBucketThreshold
	return decision.Action != ActionAllow ||
		decision.RecoveredFromCooldown ||
		len(assessment.Signals) > 0 ||
		allowSampled
}

func (g *Gate) persistDecision(
	ownerID uuid.UUID,
	resolved ResolvedProfile,
	assessment RiskAssessment,
	decision Decision,
	req *http.Request,
	status int,
	start time.Time,
	uxHint string,
) {
	record := services.AbuseDecisionRecord{
		OwnerID:        ownerID,
		Profile:        resolved.Name,
		Path:           NormalizeAgentPath(req.URL.Path),
		Method:         req.Method,
		Action:         decision.Action,
		RiskScore:      assessment.Score,
		CooldownActive: decision.CooldownActive,
		CooldownUntil:  decision.CooldownUntil,
		Snapshot:       assessment.Snapshot,
		DeniedRatio:    DeniedRatio(assessment.Snapshot),
		Signals:        assessment.Signals,
		UXImpactHint:   uxHint,
		ResponseStatus: status,
		ResponseTimeMs: int(time.Since(start).Milliseconds()),
	}

	// Telemetry must never block or fail the request.
	go func() {
		if err := g.telemetry.RecordAbuseDecision(context.Background(), record); err != nil {
			slog.Warn("failed to persist abuse telemetry",
				"owner_id", ownerID, "error", err)
		}
	}()
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
