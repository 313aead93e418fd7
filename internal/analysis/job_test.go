package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) Close() error { return nil }

func containsSkillFold(skills []string, want string) bool {
	for _, skill := range skills {
		if strings.EqualFold(skill, want) {
			return true
		}
	}
	return false
}

func TestAnalyzeJob_SeniorFrontendPosting(t *testing.T) {
	jobText := "Seeking a Senior Frontend Engineer with React, Redux, and TypeScript experience"

	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			assert.Equal(t, llm.TierLite, tier)
			assert.Contains(t, prompt, jobText)
			return `{
				"required_skills": ["React", "Redux", "TypeScript"],
				"preferred_skills": [],
				"keywords": ["frontend", "engineer"],
				"seniority": "senior",
				"role_summary": "Senior frontend engineer working with the React ecosystem"
			}`, nil
		},
	}

	requirements, err := AnalyzeJob(context.Background(), client, jobText)
	require.NoError(t, err)

	for _, want := range []string{"react", "redux", "typescript"} {
		assert.True(t, containsSkillFold(requirements.RequiredSkills, want), "required skills should contain %s", want)
	}
	assert.Equal(t, "senior", requirements.Seniority)
}

func TestAnalyzeJob_DedupesSkills(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"required_skills": ["Go", "go", "  Go  ", "Kubernetes"],
				"preferred_skills": [""],
				"keywords": []
			}`, nil
		},
	}

	requirements, err := AnalyzeJob(context.Background(), client, "job text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, requirements.RequiredSkills)
	assert.Empty(t, requirements.PreferredSkills)
}

func TestAnalyzeJob_SchemaViolation(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"seniority": "senior"}`, nil
		},
	}

	_, err := AnalyzeJob(context.Background(), client, "job text")
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.NotEmpty(t, analysisErr.RawResponse)
}

func TestAnalyzeJob_APIError(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	_, err := AnalyzeJob(context.Background(), client, "job text")
	require.Error(t, err)

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
}
