package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultCompileTimeout is the maximum time to wait for each pdflatex pass
const DefaultCompileTimeout = 30 * time.Second

// compilePasses is how many times pdflatex runs to resolve references
const compilePasses = 2

// Compiler invokes the typesetting engine on a generated LaTeX file.
// The locator is injectable so tests can substitute a fake engine.
type Compiler struct {
	Locator EngineLocator
	Timeout time.Duration
}

// NewCompiler creates a Compiler with the platform PathLocator and default timeout
func NewCompiler(locator EngineLocator) *Compiler {
	if locator == nil {
		locator = &PathLocator{}
	}
	return &Compiler{
		Locator: locator,
		Timeout: DefaultCompileTimeout,
	}
}

// Compile runs pdflatex on texPath, writing output next to the source file.
// On success it returns the PDF path and the engine log. A missing engine
// surfaces as *MissingEngineError so the caller can soft-degrade; other
// failures are *CompilationError carrying the engine log.
func (c *Compiler) Compile(ctx context.Context, texPath string) (pdfPath string, logOutput string, err error) {
	engine, err := c.Locator.Locate()
	if err != nil {
		return "", "", err
	}

	outDir := filepath.Dir(texPath)
	var log strings.Builder
	var lastRunErr error

	for pass := 1; pass <= compilePasses; pass++ {
		passLog, runErr := c.runEngine(ctx, engine, texPath, outDir)
		log.WriteString(passLog)
		lastRunErr = runErr
	}

	logOutput = log.String()

	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	pdfPath = filepath.Join(outDir, base+".pdf")
	if _, statErr := os.Stat(pdfPath); os.IsNotExist(statErr) {
		return "", logOutput, &CompilationError{
			Message:   "pdflatex did not produce a PDF",
			LogOutput: logOutput,
			Cause:     lastRunErr,
		}
	}

	// LaTeX can exit nonzero while still producing a usable document;
	// report that as a partial success.
	if lastRunErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "pdflatex completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     lastRunErr,
		}
	}

	return pdfPath, logOutput, nil
}

// runEngine executes a single pdflatex pass with a timeout
func (c *Compiler) runEngine(ctx context.Context, engine, texPath, outDir string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCompileTimeout
	}
	passCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(passCtx, engine, "-interaction=nonstopmode", "-output-directory", outDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if passCtx.Err() == context.DeadlineExceeded {
		runErr = fmt.Errorf("pdflatex timed out after %s", timeout)
	}

	return stdout.String() + stderr.String(), runErr
}

// CleanupAuxFiles removes the auxiliary files pdflatex leaves beside the PDF
func CleanupAuxFiles(texPath string) {
	base := strings.TrimSuffix(texPath, ".tex")
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(base + ext)
	}
}
