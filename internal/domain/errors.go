package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrSessionNotFound is returned when an audit session id is unknown.
var ErrSessionNotFound = errors.New("audit session not found")

// ValidationError rejects user input before any state is changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CollaboratorError wraps a failure of the external narrative service.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("narrative service %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// DiscrepancyError reports adjusted book and bank balances that fail to converge.
type DiscrepancyError struct {
	AdjustedBook decimal.Decimal
	AdjustedBank decimal.Decimal
}

func (e *DiscrepancyError) Error() string {
	return fmt.Sprintf("reconciliation does not balance: adjusted book %s, adjusted bank %s (difference %s)",
		e.AdjustedBook, e.AdjustedBank, e.Difference())
}

// Difference is adjusted book minus adjusted bank.
func (e *DiscrepancyError) Difference() decimal.Decimal {
	return e.AdjustedBook.Sub(e.AdjustedBank)
}
