// Package tailoring rewrites a structured resume record to better match a
// set of job requirements, while keeping factual fields untouched.
package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TailorResume produces a rewritten copy of the resume record: skills
// reordered to foreground overlap with the requirements, responsibilities
// rephrased in the posting's terminology, factual fields unchanged.
//
// Degradation policy: if the model's output breaks the schema or drops
// required sections, TailorResume returns the ORIGINAL record together with a
// *RewriteError. Callers that receive both a record and a RewriteError should
// continue with the original content and surface the error as a warning.
// A transport-level failure returns (nil, *APICallError) and is fatal.
func TailorResume(ctx context.Context, client llm.Client, record *types.ResumeRecord, requirements *types.JobRequirements, report *types.MatchReport) (*types.ResumeRecord, error) {
	prompt, err := buildTailoringPrompt(record, requirements, report)
	if err != nil {
		return nil, err
	}

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate tailored resume",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateResumeRecord(responseText); err != nil {
		return record, &RewriteError{
			Message:     "tailored resume does not match the record schema",
			RawResponse: responseText,
			Cause:       err,
		}
	}

	var rewritten types.ResumeRecord
	if err := json.Unmarshal([]byte(responseText), &rewritten); err != nil {
		return record, &RewriteError{
			Message:     "failed to decode tailored resume JSON",
			RawResponse: responseText,
			Cause:       err,
		}
	}
	rewritten.Normalize()

	if err := checkStructure(record, &rewritten); err != nil {
		return record, err
	}

	realignSections(record, &rewritten)
	EnforceFacts(record, &rewritten)
	return &rewritten, nil
}

// checkStructure rejects rewrites that invent or drop education and
// experience entries. Reordering within a section is fine; changing the entry
// count is not.
func checkStructure(original, rewritten *types.ResumeRecord) error {
	if len(rewritten.Education) != len(original.Education) {
		return &RewriteError{
			Message: fmt.Sprintf("tailored resume has %d education entries, original has %d",
				len(rewritten.Education), len(original.Education)),
		}
	}
	if len(rewritten.Experience) != len(original.Experience) {
		return &RewriteError{
			Message: fmt.Sprintf("tailored resume has %d experience entries, original has %d",
				len(rewritten.Experience), len(original.Experience)),
		}
	}
	if len(rewritten.AcademicProjects) > len(original.AcademicProjects) {
		return &RewriteError{
			Message: fmt.Sprintf("tailored resume has %d projects, original has only %d",
				len(rewritten.AcademicProjects), len(original.AcademicProjects)),
		}
	}
	return nil
}

func buildTailoringPrompt(record *types.ResumeRecord, requirements *types.JobRequirements, report *types.MatchReport) (string, error) {
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resume record: %w", err)
	}

	requirementsJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	score := "0.00"
	missing := "none identified"
	if report != nil {
		score = fmt.Sprintf("%.2f", report.Score)
		if len(report.MissingSkills) > 0 {
			missing = strings.Join(report.MissingSkills, ", ")
		}
	}

	template := prompts.MustGet("tailoring.json", "tailor-resume")
	return prompts.Format(template, map[string]string{
		"ResumeJSON":       string(recordJSON),
		"RequirementsJSON": string(requirementsJSON),
		"MatchScore":       score,
		"MissingSkills":    missing,
	}), nil
}
