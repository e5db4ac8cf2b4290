package model

import "fmt"

// AssemblyError represents a fatal assembly failure: the invoice request
// is missing data a printed document cannot do without. Assembly fails as
// a whole; no partial document is produced.
type AssemblyError struct {
	Field   string
	Message string
	Cause   error
}

func (e *AssemblyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invoice assembly failed: %s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invoice assembly failed: %s: %s", e.Field, e.Message)
}

func (e *AssemblyError) Unwrap() error {
	return e.Cause
}

// NewAssemblyError creates a new assembly error
func NewAssemblyError(field, message string, cause error) *AssemblyError {
	return &AssemblyError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}
