package models

// Session audit statuses.
const (
	AuditStatusClean              = "clean"
	AuditStatusNeedsClarification = "needs_clarification"
)

// SessionAuditSummary reports the batch-wide session audit outcome.
type SessionAuditSummary struct {
	Status                string   `json:"status"`
	MismatchDetected      int      `json:"mismatch_detected"`
	MismatchRepaired      int      `json:"mismatch_repaired"`
	MismatchUnresolved    int      `json:"mismatch_unresolved"`
	MismatchClasses       []string `json:"mismatch_classes"`
	ClarificationQuestion string   `json:"clarification_question,omitempty"`
}

// EvidenceClaimDraft is a mention extracted from narrative text,
// pending persistence as an evidence.claim.logged event.
type EvidenceClaimDraft struct {
	ClaimType     string  `json:"claim_type"`
	Field         string  `json:"field"`
	Value         any     `json:"value"`
	Confidence    float64 `json:"confidence"`
	SourceText    string  `json:"source_text"`
	SourceSpan    [2]int  `json:"source_span"`
	SourceField   string  `json:"source_field"`
	ParserVersion string  `json:"parser_version"`
}
