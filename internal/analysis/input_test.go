package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJobDescription_LiteralString(t *testing.T) {
	input := "Seeking a Senior Frontend Engineer with React, Redux, and TypeScript experience"

	text, err := ReadJobDescription(input)
	require.NoError(t, err)
	assert.Equal(t, input, text)
}

func TestReadJobDescription_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend engineer role.\nGo required.\n"), 0644))

	text, err := ReadJobDescription(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer role.\nGo required.", text)
}

func TestReadJobDescription_EmptyInput(t *testing.T) {
	_, err := ReadJobDescription("   ")
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
}

func TestReadJobDescription_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	_, err := ReadJobDescription(path)
	require.Error(t, err)
}

func TestReadJobDescription_DocxUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.docx")
	require.NoError(t, os.WriteFile(path, []byte("irrelevant"), 0644))

	_, err := ReadJobDescription(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestReadJobDescription_ExistingFileWithoutExtensionIsLiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0644))

	// Collides with a real file but has no recognized extension: literal
	text, err := ReadJobDescription(path)
	require.NoError(t, err)
	assert.Equal(t, path, text)
}

func TestReadJobDescription_NonexistentPathIsLiteral(t *testing.T) {
	// A string that merely looks like a path is treated as literal text
	input := "roles/senior-engineer.txt experience required"

	text, err := ReadJobDescription(input)
	require.NoError(t, err)
	assert.Equal(t, input, text)
}
