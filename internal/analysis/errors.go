package analysis

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

// AnalysisError represents model output that is not schema-conformant
// during job description analysis.
type AnalysisError struct {
	Message     string
	RawResponse string
	Cause       error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// InputError represents an unreadable or unsupported job description input
type InputError struct {
	Input   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job description input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job description input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
