package analysis

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/parsing"
)

// ReadJobDescription resolves the job description input, which is either a
// literal string or a path to a file. A path is only treated as a file when it
// actually exists with a recognized extension; everything else is taken as
// literal job description text.
func ReadJobDescription(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &InputError{Input: input, Message: "job description is empty"}
	}

	if _, err := os.Stat(trimmed); err != nil {
		return trimmed, nil
	}

	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".txt", ".text", ".md":
		data, err := os.ReadFile(trimmed)
		if err != nil {
			return "", &InputError{
				Input:   trimmed,
				Message: "failed to read job description file",
				Cause:   err,
			}
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			return "", &InputError{Input: trimmed, Message: "job description file is empty"}
		}
		return content, nil
	case ".pdf":
		return parsing.ExtractText(trimmed)
	case ".docx":
		return "", &InputError{
			Input:   trimmed,
			Message: "docx job descriptions are not supported; provide plain text or PDF",
		}
	default:
		// A short literal job description can collide with an existing file
		// name (e.g. "README"); unrecognized extensions fall back to literal
		// text like the stat-failure branch.
		return trimmed, nil
	}
}
