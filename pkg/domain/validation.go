package domain

import "strings"

// ValidationResult classifies findings from the compliance and render plan
// validators. Fatal errors block progression; warnings do not.
type ValidationResult struct {
	OK          bool     `json:"ok"`
	FatalErrors []string `json:"fatal_errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// NewValidationResult returns a passing, empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{OK: true}
}

// AddError records a fatal finding and marks the result failed.
func (r *ValidationResult) AddError(msg string) {
	r.OK = false
	r.FatalErrors = append(r.FatalErrors, msg)
}

// AddWarning records an advisory finding.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ErrorSummary concatenates all fatal messages for user display. Empty when
// the result passed.
func (r *ValidationResult) ErrorSummary() string {
	return strings.Join(r.FatalErrors, "; ")
}
