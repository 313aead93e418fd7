package rendering

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

// readDocumentXML opens the generated .docx as a zip archive and returns the
// raw word/document.xml content for text-level assertions.
func readDocumentXML(t *testing.T, path string) string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}

	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestRenderDOCX_FullRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, RenderDOCX(fullRecord(), path))

	document := readDocumentXML(t, path)

	// every record field survives the round trip verbatim
	assert.Contains(t, document, "Jane Doe")
	assert.Contains(t, document, "jane@example.com")
	assert.Contains(t, document, "State University")
	assert.Contains(t, document, "B.S. Computer Science")
	assert.Contains(t, document, "Acme Corp")
	assert.Contains(t, document, "Built internal services")
	assert.Contains(t, document, "Compiler Project")
	assert.Contains(t, document, "List 2021")
}

func TestRenderDOCX_SectionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, RenderDOCX(fullRecord(), path))

	document := readDocumentXML(t, path)

	markers := []string{
		"EDUCATION",
		"TECHNICAL KNOWLEDGE",
		"PROFESSIONAL EXPERIENCE",
		"ACADEMIC PROJECTS",
		"PERSONAL ACCOMPLISHMENTS",
	}
	previous := -1
	for _, marker := range markers {
		index := strings.Index(document, marker)
		require.GreaterOrEqual(t, index, 0, "section %q missing", marker)
		assert.Greater(t, index, previous, "section %q out of order", marker)
		previous = index
	}
}

func TestRenderDOCX_MissingSectionsSkipped(t *testing.T) {
	record := fullRecord()
	record.Education = []types.Education{}
	record.Accomplishments = []string{}

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, RenderDOCX(record, path))

	document := readDocumentXML(t, path)
	assert.NotContains(t, document, "EDUCATION")
	assert.NotContains(t, document, "PERSONAL ACCOMPLISHMENTS")
	assert.Contains(t, document, "PROFESSIONAL EXPERIENCE")
}

func TestRenderDOCX_EmptyRecord(t *testing.T) {
	record := &types.ResumeRecord{
		PersonalInformation: types.PersonalInformation{Name: "Jane Doe"},
	}
	record.Normalize()

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, RenderDOCX(record, path))

	document := readDocumentXML(t, path)
	assert.Contains(t, document, "Jane Doe")
}

func TestRenderDOCX_BadPath(t *testing.T) {
	err := RenderDOCX(fullRecord(), filepath.Join(t.TempDir(), "missing", "resume.docx"))

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}
