package parsing

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the plain text content of a PDF file, page by page.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", &ExtractionError{
			Path:    path,
			Message: "file not found",
			Cause:   err,
		}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{
			Path:    path,
			Message: "failed to open PDF",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the whole resume
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", &ExtractionError{
			Path:    path,
			Message: fmt.Sprintf("no extractable text in %d pages", numPages),
		}
	}

	return content, nil
}
