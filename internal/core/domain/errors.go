// Package domain defines the core domain models for redisgate.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a gateway error with a structured error code.
// The numeric suffix of a code mirrors the HTTP status it maps to
// (e.g. "RG-AUTH-4010" surfaces as 401).
type DomainError struct {
	Code    string // Error code (e.g., "RG-REQ-4000")
	Message string // Human-readable message, safe for response bodies
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// UserMessage returns the message a client may see for err. DomainError
// exposes its Message field only; any other error exposes Error().
func UserMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrUnauthorized indicates a missing or mismatched bearer token.
	// The message is part of the public HTTP contract.
	ErrUnauthorized = NewDomainError("RG-AUTH-4010", "Unauthorized")
)

// ============================================================================
// Request-Shape Errors (REQ)
// ============================================================================

var (
	// ErrBodyNotJSON indicates a non-blank body that failed to parse as JSON.
	ErrBodyNotJSON = NewDomainError("RG-REQ-4000", "unable to parse body as JSON")

	// ErrNoCommand indicates neither body nor path yielded a command name.
	ErrNoCommand = NewDomainError("RG-REQ-4001", "no command provided")

	// ErrEmptyCommand indicates an empty array where a command was expected.
	ErrEmptyCommand = NewDomainError("RG-REQ-4002", "empty command array")

	// ErrCommandName indicates the first array element is not a string.
	ErrCommandName = NewDomainError("RG-REQ-4003", "command name must be a string")

	// ErrBatchShape indicates a batch body that is not an array of command
	// arrays. The message is part of the public HTTP contract.
	ErrBatchShape = NewDomainError("RG-REQ-4004", "Expected a JSON array of command arrays")

	// ErrBatchToSingle indicates an array of command arrays was sent to the
	// single-command path.
	ErrBatchToSingle = NewDomainError("RG-REQ-4005", "use /pipeline or /multi-exec for arrays of commands")
)

// ============================================================================
// Batch Execution Errors (BATCH)
// ============================================================================

var (
	// ErrPipelineFailed indicates the pipeline produced no result at all.
	ErrPipelineFailed = NewDomainError("RG-BATCH-4006", "pipeline failed")

	// ErrTransactionFailed indicates the transaction produced no result at all.
	ErrTransactionFailed = NewDomainError("RG-BATCH-4007", "transaction failed")
)

// ============================================================================
// Store Errors (STORE)
// ============================================================================

var (
	// ErrStoreUnavailable indicates the backing store cannot be reached.
	ErrStoreUnavailable = NewDomainError("RG-STORE-5030", "store unavailable")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrConfigInvalid indicates the configuration failed verification.
	ErrConfigInvalid = NewDomainError("RG-CONF-1000", "invalid configuration")

	// ErrSentinelEntry indicates a sentinel address that does not split into
	// a non-empty host and a numeric port. Details carry the entry.
	ErrSentinelEntry = NewDomainError("RG-CONF-1001", "malformed sentinel address")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an unexpected server-side failure.
	ErrInternalServer = NewDomainError("RG-SYS-5000", "internal server error")

	// ErrRateLimited indicates too many requests from one client.
	ErrRateLimited = NewDomainError("RG-SYS-4290", "too many requests")
)
