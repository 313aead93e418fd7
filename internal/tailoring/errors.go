package tailoring

import "fmt"

// APICallError represents a failure calling the language model
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// RewriteError represents tailored model output that broke the record schema
// or dropped required sections. When the rewrite itself is unusable the
// pipeline falls back to the original record instead of aborting, so callers
// treat this error as a warning when it accompanies a usable record.
type RewriteError struct {
	Message     string
	RawResponse string
	Cause       error
}

func (e *RewriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rewrite error: %s", e.Message)
}

func (e *RewriteError) Unwrap() error {
	return e.Cause
}
