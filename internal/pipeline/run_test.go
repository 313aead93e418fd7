package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/rendering"
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

// missingEngineLocator simulates a machine without a TeX distribution
type missingEngineLocator struct{}

func (l *missingEngineLocator) Locate() (string, error) {
	return "", &rendering.MissingEngineError{Searched: []string{"/nowhere"}}
}

const recordJSON = `{
	"personal_information": {"name": "Jane Doe", "email": "jane@example.com"},
	"education": [{"institution": "State University", "degree": "B.S. Computer Science"}],
	"technical_knowledge": {"Languages": ["Go", "Python"]},
	"professional_experience": [{"company": "Acme", "title": "Engineer", "responsibilities": ["Built services"]}],
	"academic_projects": [],
	"personal_accomplishments": []
}`

const requirementsJSON = `{
	"required_skills": ["Go", "Kubernetes"],
	"preferred_skills": ["Rust"],
	"keywords": ["microservices"],
	"seniority": "Senior",
	"role_summary": "Backend engineer"
}`

// tierClient dispatches mock responses by model tier: resume extraction uses
// the standard tier, job analysis the lite tier, tailoring the advanced tier.
func tierClient(t *testing.T, tailorResponse string, calls map[llm.ModelTier]int) *MockLLMClient {
	t.Helper()
	return &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
			calls[tier]++
			switch tier {
			case llm.TierStandard:
				return recordJSON, nil
			case llm.TierLite:
				return requirementsJSON, nil
			case llm.TierAdvanced:
				return tailorResponse, nil
			default:
				return "", fmt.Errorf("unexpected tier %q", tier)
			}
		},
	}
}

// writeMinimalPDF builds a one-page PDF by hand, computing xref offsets as it
// goes, so extraction runs against a real file.
func writeMinimalPDF(t *testing.T, dir, text string) string {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	add := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	buf.WriteString("%PDF-1.4\n")
	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	add("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	add("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	add(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for _, offset := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offset))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref))

	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestRunPipeline_InvalidOptions(t *testing.T) {
	err := RunPipeline(context.Background(), Options{
		ResumePath:     "resume.pdf",
		JobDescription: "some job",
		Format:         "html",
	})

	var configErr *config.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestRunPipeline_MissingAPIKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	err := RunPipeline(context.Background(), Options{
		ResumePath:     filepath.Join(t.TempDir(), "resume.pdf"),
		JobDescription: "some job",
		Format:         FormatDOCX,
	})

	// fails on configuration, before any file or network access
	var configErr *config.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), config.EnvAPIKey)
}

func TestRunPipeline_DOCXEndToEnd(t *testing.T) {
	dir := t.TempDir()
	calls := map[llm.ModelTier]int{}
	outputPath := filepath.Join(dir, "out.docx")

	err := RunPipeline(context.Background(), Options{
		ResumePath:     writeMinimalPDF(t, dir, "Jane Doe Engineer at Acme"),
		JobDescription: "Seeking a Senior Backend Engineer with Go and Kubernetes experience.",
		Format:         FormatDOCX,
		OutputPath:     outputPath,
		Client:         tierClient(t, recordJSON, calls),
	})

	require.NoError(t, err)
	assert.FileExists(t, outputPath)
	assert.Equal(t, 1, calls[llm.TierStandard])
	assert.Equal(t, 1, calls[llm.TierLite])
	assert.Equal(t, 1, calls[llm.TierAdvanced])
}

func TestRunPipeline_ParseFailureAborts(t *testing.T) {
	dir := t.TempDir()
	tiersSeen := map[llm.ModelTier]int{}
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
			tiersSeen[tier]++
			return "this is not json", nil
		},
	}

	err := RunPipeline(context.Background(), Options{
		ResumePath:     writeMinimalPDF(t, dir, "Jane Doe"),
		JobDescription: "some job",
		Format:         FormatDOCX,
		OutputPath:     filepath.Join(dir, "out.docx"),
		Client:         client,
	})

	require.Error(t, err)
	// the parser tried once plus one repair attempt, then aborted:
	// the analyzer and tailor never ran
	assert.Equal(t, 2, tiersSeen[llm.TierStandard])
	assert.Zero(t, tiersSeen[llm.TierLite])
	assert.Zero(t, tiersSeen[llm.TierAdvanced])
	assert.NoFileExists(t, filepath.Join(dir, "out.docx"))
}

func TestRunPipeline_RewriteFailureFallsBack(t *testing.T) {
	dir := t.TempDir()
	calls := map[llm.ModelTier]int{}
	outputPath := filepath.Join(dir, "out.docx")

	// the tailoring stage returns garbage; the pipeline keeps the original
	err := RunPipeline(context.Background(), Options{
		ResumePath:     writeMinimalPDF(t, dir, "Jane Doe Engineer at Acme"),
		JobDescription: "Seeking a Senior Backend Engineer.",
		Format:         FormatDOCX,
		OutputPath:     outputPath,
		Client:         tierClient(t, "not json at all", calls),
	})

	require.NoError(t, err)
	assert.FileExists(t, outputPath)
}

func TestRunPipeline_PDFSoftDegradesWithoutEngine(t *testing.T) {
	dir := t.TempDir()
	calls := map[llm.ModelTier]int{}
	outputPath := filepath.Join(dir, "out.pdf")

	err := RunPipeline(context.Background(), Options{
		ResumePath:     writeMinimalPDF(t, dir, "Jane Doe Engineer at Acme"),
		JobDescription: "Seeking a Senior Backend Engineer.",
		Format:         FormatPDF,
		OutputPath:     outputPath,
		Client:         tierClient(t, recordJSON, calls),
		Locator:        &missingEngineLocator{},
	})

	// a missing TeX distribution is not fatal: the .tex source is kept
	require.NoError(t, err)
	assert.NoFileExists(t, outputPath)
	assert.FileExists(t, filepath.Join(dir, "out.tex"))
}

func TestRunPipeline_APIErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("transport failure")
		},
	}

	err := RunPipeline(context.Background(), Options{
		ResumePath:     writeMinimalPDF(t, dir, "Jane Doe"),
		JobDescription: "some job",
		Format:         FormatDOCX,
		OutputPath:     filepath.Join(dir, "out.docx"),
		Client:         client,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume parsing failed")
}

func TestResolveOutputPath(t *testing.T) {
	assert.Equal(t, "tailored_resume.pdf", resolveOutputPath(&Options{}, ".pdf"))
	assert.Equal(t, "out.docx", resolveOutputPath(&Options{OutputPath: "out.docx"}, ".docx"))
	assert.Equal(t, "out.docx", resolveOutputPath(&Options{OutputPath: "out"}, ".docx"))
}
