package validator

import "fmt"

// ValidationResult is the outcome of validating one agent definition file.
// Errors block validity; warnings are advisory and never affect Valid.
// Both lists preserve discovery order.
type ValidationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// newResult creates an empty result for the given file. Accumulators start
// empty on every call so nothing leaks between successive validations.
func newResult(file string) *ValidationResult {
	return &ValidationResult{
		File:     file,
		Errors:   []string{},
		Warnings: []string{},
	}
}

// ReadFailure builds the result the runner reports when a file cannot be
// read. No content checks run in that case.
func ReadFailure(file string, err error) *ValidationResult {
	r := newResult(file)
	r.addErrorf("Failed to read file: %v", err)
	return r
}

func (r *ValidationResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) addErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) addWarningf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// finish computes the validity invariant: valid iff no errors.
func (r *ValidationResult) finish() *ValidationResult {
	r.Valid = len(r.Errors) == 0
	return r
}
