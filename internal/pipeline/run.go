// Package pipeline provides the high-level orchestration for the resume tailoring process.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/analysis"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// FormatPDF and FormatDOCX are the supported output formats
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

const totalSteps = 5

// Options holds configuration for running the pipeline
type Options struct {
	ResumePath     string `validate:"required"`
	JobDescription string `validate:"required"`
	Format         string `validate:"required,oneof=pdf docx"`
	OutputPath     string
	APIKey         string
	Debug          bool
	Verbose        bool

	// Client overrides the Gemini client; tests inject a mock here.
	Client llm.Client
	// Locator overrides pdflatex discovery for the PDF renderer.
	Locator rendering.EngineLocator
}

var validate = validator.New()

// RunPipeline orchestrates the full tailoring pipeline: resume extraction,
// job analysis, keyword matching, LLM rewriting, and rendering. Stages run
// strictly in order; a failure in an early stage aborts before any later
// stage starts. Two failures are deliberately non-fatal: a rewrite that
// produces an unusable record falls back to the original resume, and a
// missing pdflatex leaves the .tex source behind with instructions.
func RunPipeline(ctx context.Context, opts Options) error {
	if err := validate.Struct(opts); err != nil {
		return &config.ConfigurationError{
			Message: "invalid pipeline options",
			Cause:   err,
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run ID: %s\n", runID)
	}

	client := opts.Client
	if client == nil {
		apiKey, err := config.ResolveAPIKey(opts.APIKey)
		if err != nil {
			return err
		}
		gemini, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("creating LLM client failed: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		client = gemini
	}

	// Step 1: Extract text from the resume PDF
	fmt.Printf("Step 1/%d: Extracting text from %s...\n", totalSteps, opts.ResumePath)
	resumeText, err := parsing.ExtractText(opts.ResumePath)
	if err != nil {
		return fmt.Errorf("resume text extraction failed: %w", err)
	}

	// Step 2: Parse the resume into a structured record
	fmt.Printf("Step 2/%d: Parsing resume structure...\n", totalSteps)
	record, err := parsing.ParseResume(ctx, client, resumeText)
	if err != nil {
		return fmt.Errorf("resume parsing failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintResumeRecord(record)
	}
	if opts.Debug {
		writeDebugJSON(outputDir(&opts), "debug_resume_record.json", record)
	}

	// Step 3: Read and analyze the job description
	fmt.Printf("Step 3/%d: Analyzing job description...\n", totalSteps)
	jobText, err := analysis.ReadJobDescription(opts.JobDescription)
	if err != nil {
		return fmt.Errorf("reading job description failed: %w", err)
	}
	requirements, err := analysis.AnalyzeJob(ctx, client, jobText)
	if err != nil {
		return fmt.Errorf("job analysis failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintJobRequirements(requirements)
	}
	if opts.Debug {
		writeDebugJSON(outputDir(&opts), "debug_job_requirements.json", requirements)
	}

	// Step 4: Score the match locally, then rewrite the resume
	fmt.Printf("Step 4/%d: Tailoring resume to the role...\n", totalSteps)
	report := analysis.BuildMatchReport(resumeText, jobText)
	if opts.Verbose {
		printer.PrintMatchReport(report)
	}

	tailored, err := tailoring.TailorResume(ctx, client, record, requirements, report)
	if err != nil {
		var rewriteErr *tailoring.RewriteError
		if !errors.As(err, &rewriteErr) {
			return fmt.Errorf("tailoring failed: %w", err)
		}
		// Fall back to the original record rather than losing the run.
		fmt.Printf("Warning: %v\n", rewriteErr)
		fmt.Printf("Continuing with the original resume content...\n")
	}
	if opts.Debug {
		writeDebugJSON(outputDir(&opts), "debug_tailored_record.json", tailored)
	}

	// Step 5: Render the final document
	fmt.Printf("Step 5/%d: Rendering %s output...\n", totalSteps, strings.ToUpper(opts.Format))
	outputPath, err := render(ctx, &opts, tailored)
	if err != nil {
		return err
	}
	if outputPath == "" {
		// Soft degrade: the .tex source was kept for manual compilation.
		return nil
	}

	fmt.Printf("Done! Tailored resume saved to %s\n", outputPath)
	return nil
}

// render writes the tailored record in the requested format and returns the
// final output path. An empty path with a nil error means the PDF step
// degraded to a kept .tex source.
func render(ctx context.Context, opts *Options, record *types.ResumeRecord) (string, error) {
	switch opts.Format {
	case FormatDOCX:
		outputPath := resolveOutputPath(opts, ".docx")
		if err := rendering.RenderDOCX(record, outputPath); err != nil {
			return "", fmt.Errorf("rendering DOCX failed: %w", err)
		}
		return outputPath, nil

	case FormatPDF:
		return renderPDF(ctx, opts, record)

	default:
		return "", &config.ConfigurationError{
			Message: fmt.Sprintf("unsupported output format %q", opts.Format),
		}
	}
}

func renderPDF(ctx context.Context, opts *Options, record *types.ResumeRecord) (string, error) {
	latex, err := rendering.RenderLaTeX(record)
	if err != nil {
		return "", fmt.Errorf("rendering LaTeX failed: %w", err)
	}

	outputPath := resolveOutputPath(opts, ".pdf")
	texPath := strings.TrimSuffix(outputPath, ".pdf") + ".tex"
	if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
		return "", fmt.Errorf("writing LaTeX source failed: %w", err)
	}

	compiler := rendering.NewCompiler(opts.Locator)
	pdfPath, logOutput, err := compiler.Compile(ctx, texPath)
	if err != nil {
		var missingErr *rendering.MissingEngineError
		if errors.As(err, &missingErr) {
			fmt.Printf("Warning: %v\n", missingErr)
			fmt.Printf("%s\n", missingErr.Guidance())
			fmt.Printf("LaTeX source saved to %s\n", texPath)
			return "", nil
		}

		var compErr *rendering.CompilationError
		if errors.As(err, &compErr) && pdfPath != "" {
			// pdflatex reported errors but still produced a document
			fmt.Printf("Warning: %v\n", compErr)
		} else {
			if opts.Debug && logOutput != "" {
				fmt.Printf("pdflatex log:\n%s\n", logOutput)
			}
			return "", fmt.Errorf("compiling PDF failed: %w", err)
		}
	}

	rendering.CleanupAuxFiles(texPath)
	if !opts.Debug {
		_ = os.Remove(texPath)
	}
	return pdfPath, nil
}

// resolveOutputPath returns the user-provided output path, normalizing the
// extension, or a default name next to the working directory.
func resolveOutputPath(opts *Options, ext string) string {
	if opts.OutputPath == "" {
		return "tailored_resume" + ext
	}
	path := opts.OutputPath
	if !strings.EqualFold(filepath.Ext(path), ext) {
		path += ext
	}
	return path
}

func outputDir(opts *Options) string {
	if opts.OutputPath == "" {
		return "."
	}
	return filepath.Dir(opts.OutputPath)
}

// writeDebugJSON saves an intermediate artifact for inspection in debug mode
func writeDebugJSON(dir, name string, value any) {
	content, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Printf("Warning: failed to serialize %s: %v\n", name, err)
		return
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		fmt.Printf("Warning: failed to write %s: %v\n", path, err)
		return
	}
	fmt.Printf("[DEBUG] Wrote %s\n", path)
}
