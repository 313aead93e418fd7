// Package parsing provides functionality to turn a resume PDF into a
// structured ResumeRecord via LLM extraction.
package parsing

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ParseResume extracts a structured ResumeRecord from raw resume text.
// The model gets one stricter re-prompt if its first response is not
// schema-conformant; after that the failure surfaces as a ParseError
// carrying the raw response.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*types.ResumeRecord, error) {
	prompt := buildExtractionPrompt(resumeText)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract resume record",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	record, validationErr := decodeRecord(responseText)
	if validationErr == nil {
		return record, nil
	}

	// One repair attempt with a stricter instruction
	repaired, err := repairResponse(ctx, client, responseText)
	if err != nil {
		return nil, &ParseError{
			Message:     "resume extraction produced malformed JSON and repair failed",
			RawResponse: responseText,
			Cause:       validationErr,
		}
	}

	record, validationErr = decodeRecord(repaired)
	if validationErr != nil {
		return nil, &ParseError{
			Message:     "resume extraction produced malformed JSON after repair attempt",
			RawResponse: repaired,
			Cause:       validationErr,
		}
	}

	return record, nil
}

// decodeRecord validates the JSON against the resume record schema and then
// decodes it. Validation first: never proceed with partially-validated data.
func decodeRecord(jsonText string) (*types.ResumeRecord, error) {
	if err := schemas.ValidateResumeRecord(jsonText); err != nil {
		return nil, err
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonText), &record); err != nil {
		return nil, err
	}

	record.Normalize()
	return &record, nil
}

func buildExtractionPrompt(resumeText string) string {
	template := prompts.MustGet("extraction.json", "extract-resume-record")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}

func repairResponse(ctx context.Context, client llm.Client, badResponse string) (string, error) {
	template := prompts.MustGet("extraction.json", "repair-resume-json")
	prompt := prompts.Format(template, map[string]string{
		"Response": badResponse,
	})

	repaired, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(repaired), nil
}
