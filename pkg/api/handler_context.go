package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/attest"
	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/tier"
)

// Capabilities manifest constants.
const (
	capabilitiesSchemaVersion = "agent_capabilities.v2.self_model"
	protocolVersion           = "2026-02-11.agent-contract.v1"
	selfModelSchemaVersion    = "agent_self_model.v1"
	readEndpoint              = "/v1/agent/context"
	writeEndpoint             = "/v1/agent/write-with-proof"
)

// contextHandler handles GET /v1/agent/context.
func (s *Server) contextHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	bundle, err := s.bundles.Build(c.Request().Context(), ownerID, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, bundle)
}

// capabilitiesHandler handles GET /v1/agent/capabilities.
func (s *Server) capabilitiesHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	// The manifest's self-model reflects the fallback identity and the
	// owner's current auto-tier, so an agent can see its envelope
	// before attempting any write.
	identity := fallbackIdentity(s, c)
	tierPolicy, _, err := s.orchestrator.Tiers().ResolveForWrite(c.Request().Context(), ownerID, identity.ModelIdentity)
	if err != nil {
		return respondError(c, &apperror.Internal{Cause: err})
	}

	selfModel := buildSelfModel(identity, tierPolicy)

	return c.JSON(http.StatusOK, &models.AgentCapabilities{
		SchemaVersion:          capabilitiesSchemaVersion,
		ProtocolVersion:        protocolVersion,
		PreferredReadEndpoint:  readEndpoint,
		PreferredWriteEndpoint: writeEndpoint,
		SelfModel:              selfModel,
		VerificationContract: models.VerificationContract{
			RequiresReceipts:        true,
			RequiresReadAfterWrite:  true,
			RequiredClaimGuardField: "claim_guard.allow_saved_claim",
		},
		UpgradePolicy: "auto_tier_on_observed_quality",
	})
}

func fallbackIdentity(s *Server, c *echo.Context) models.ResolvedModelIdentity {
	// Capabilities reads carry no attestation; resolve via the same
	// fallback chain a write without attestation would use.
	ownerID, _ := ownerFromContext(c)
	return s.orchestrator.Attestor().ResolveForWrite(&models.WriteWithProofRequest{},
		models.ActionClassLowImpactWrite, clientIDFromContext(c), ownerID, time.Now())
}

func buildSelfModel(identity models.ResolvedModelIdentity, tierPolicy models.ModelTierPolicy) models.AgentSelfModel {
	var knownLimitations []string
	switch tierPolicy.CapabilityTier {
	case models.TierStrict:
		knownLimitations = []string{
			"High-impact writes require confirm-first + mandatory intent_handshake in strict tier.",
			"Repair auto-apply is confirmation-gated in strict tier.",
			"Tier was reduced by auto-tiering due to observed quality issues.",
		}
	case models.TierModerate:
		knownLimitations = []string{
			"High-impact writes require confirm-first in moderate tier.",
			"Repair auto-apply remains confirmation-gated in moderate tier.",
			"All models start at moderate; advancement to trusted requires consistent quality.",
		}
	default:
		knownLimitations = []string{
			"Autonomy can still be reduced by calibration or integrity regressions.",
		}
	}

	for _, code := range identity.ReasonCodes {
		if code == attest.ReasonIdentityUnknownFallback {
			knownLimitations = append(knownLimitations,
				"Model identity could not be resolved; used as audit label only, does not affect tier.")
			break
		}
	}

	return models.AgentSelfModel{
		SchemaVersion:    selfModelSchemaVersion,
		ModelIdentity:    identity.ModelIdentity,
		CapabilityTier:   tierPolicy.CapabilityTier,
		KnownLimitations: knownLimitations,
		PreferredContracts: models.AgentSelfModelContracts{
			Read:  readEndpoint,
			Write: writeEndpoint,
		},
		FallbackBehavior: models.AgentSelfModelFallback{
			UnknownIdentityAction: "fallback_moderate",
			UnknownPolicyAction:   "auto_tier",
		},
		Docs: models.AgentSelfModelDocs{
			RuntimePolicy: "system.conventions." + tier.RegistryVersion,
			UpgradeHint:   "/v1/agent/capabilities",
		},
	}
}
