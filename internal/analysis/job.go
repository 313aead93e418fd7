// Package analysis provides functionality to extract structured requirements
// from a job description and to score the lexical overlap between a resume
// and the job description.
package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// AnalyzeJob extracts a structured JobRequirements record from job description text
func AnalyzeJob(ctx context.Context, client llm.Client, jobText string) (*types.JobRequirements, error) {
	template := prompts.MustGet("analysis.json", "extract-job-requirements")
	prompt := prompts.Format(template, map[string]string{
		"JobText": jobText,
	})

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract job requirements",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateJobRequirements(responseText); err != nil {
		return nil, &AnalysisError{
			Message:     "job requirements do not match the expected schema",
			RawResponse: responseText,
			Cause:       err,
		}
	}

	var requirements types.JobRequirements
	if err := json.Unmarshal([]byte(responseText), &requirements); err != nil {
		return nil, &AnalysisError{
			Message:     "failed to decode job requirements JSON",
			RawResponse: responseText,
			Cause:       err,
		}
	}

	requirements.Normalize()
	requirements.RequiredSkills = dedupeSkills(requirements.RequiredSkills)
	requirements.PreferredSkills = dedupeSkills(requirements.PreferredSkills)
	requirements.Keywords = dedupeSkills(requirements.Keywords)

	return &requirements, nil
}

// dedupeSkills trims entries and removes case-insensitive duplicates while
// preserving the original casing and order of first occurrence.
func dedupeSkills(skills []string) []string {
	result := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, trimmed)
	}
	return result
}
