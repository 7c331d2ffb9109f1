// Package apperror defines the typed error set surfaced to API callers.
// Pipeline stages fail fast with one of these kinds; the HTTP layer maps
// each kind to a fixed status code and the wire error shape.
package apperror

import "fmt"

// Stable error codes carried in the response body's "error" field.
const (
	CodeValidation          = "validation"
	CodePolicyViolation     = "policy_violation"
	CodeIdempotencyConflict = "idempotency_conflict"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeRateLimited         = "rate_limited"
	CodeInternal            = "internal"
)

// Validation indicates the shape or size of the request is wrong.
// Attestation and confirmation failures also surface as Validation
// payloads whose Received carries the accumulated reason_codes, so a
// client can recover deterministically.
type Validation struct {
	Message  string
	Field    string
	Received any
	DocsHint string
}

func (e *Validation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s (field %s)", e.Message, e.Field)
	}
	return "validation: " + e.Message
}

// PolicyViolation indicates a semantic invariant of the event contract
// is broken. Code is a stable inv_* identifier.
type PolicyViolation struct {
	Code     string
	Message  string
	Field    string
	Received any
	DocsHint string
}

func (e *PolicyViolation) Error() string {
	return fmt.Sprintf("policy violation %s: %s", e.Code, e.Message)
}

// IdempotencyConflict indicates (owner, idempotency_key) collides with
// an existing event.
type IdempotencyConflict struct {
	IdempotencyKey string
}

func (e *IdempotencyConflict) Error() string {
	return fmt.Sprintf("idempotency conflict on key %q", e.IdempotencyKey)
}

// Forbidden indicates the caller is authenticated but lacks privilege.
type Forbidden struct {
	Message string
}

func (e *Forbidden) Error() string { return "forbidden: " + e.Message }

// NotFound indicates the resource is not visible under the owner scope.
type NotFound struct {
	Resource string
}

func (e *NotFound) Error() string { return e.Resource + " not found" }

// Conflict indicates the resource exists in an incompatible state.
type Conflict struct {
	Message string
}

func (e *Conflict) Error() string { return "conflict: " + e.Message }

// Internal wraps unexpected downstream failures. The cause is logged;
// callers see a generic message.
type Internal struct {
	Cause error
}

func (e *Internal) Error() string {
	if e.Cause != nil {
		return "internal error: " + e.Cause.Error()
	}
	return "internal error"
}

func (e *Internal) Unwrap() error { return e.Cause }

// Internalf builds an Internal error with a formatted cause.
func Internalf(format string, args ...any) error {
	return &Internal{Cause: fmt.Errorf(format, args...)}
}
