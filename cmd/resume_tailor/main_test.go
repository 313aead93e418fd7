package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the prebuilt CLI binary, skipping the
// test when it has not been built yet.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_tailor")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_tailor ./cmd/resume_tailor'", binaryPath)
	}

	return binaryPath
}
