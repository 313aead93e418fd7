package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a saved ResumeRecord JSON to PDF or DOCX",
	Long:  "Render a previously saved ResumeRecord JSON file (for example a debug artifact from a pipeline run) to a PDF or Word document without calling the LLM.",
	RunE:  runRender,
}

var (
	renderInput   string
	renderFormat  string
	renderOutput  string
	renderKeepTex bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to ResumeRecord JSON file (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "pdf", "Output format: pdf or docx")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default tailored_resume.<format>)")
	renderCmd.Flags().BoolVar(&renderKeepTex, "keep-tex", false, "Keep the intermediate LaTeX source file")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeRecord(string(content)); err != nil {
		return fmt.Errorf("input is not a valid resume record: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return fmt.Errorf("failed to decode resume record: %w", err)
	}
	record.Normalize()

	switch renderFormat {
	case "docx":
		outputPath := defaultOutput(renderOutput, ".docx")
		if err := rendering.RenderDOCX(&record, outputPath); err != nil {
			return err
		}
		fmt.Printf("Done! Resume saved to %s\n", outputPath)
		return nil

	case "pdf":
		return renderToPDF(&record)

	default:
		return fmt.Errorf("invalid format %q: must be pdf or docx", renderFormat)
	}
}

func renderToPDF(record *types.ResumeRecord) error {
	latex, err := rendering.RenderLaTeX(record)
	if err != nil {
		return err
	}

	outputPath := defaultOutput(renderOutput, ".pdf")
	texPath := strings.TrimSuffix(outputPath, ".pdf") + ".tex"
	if err := os.WriteFile(texPath, []byte(latex), 0644); err != nil {
		return fmt.Errorf("failed to write LaTeX source: %w", err)
	}

	compiler := rendering.NewCompiler(nil)
	pdfPath, _, err := compiler.Compile(context.Background(), texPath)
	if err != nil {
		var missingErr *rendering.MissingEngineError
		if errors.As(err, &missingErr) {
			fmt.Printf("Warning: %v\n", missingErr)
			fmt.Printf("%s\n", missingErr.Guidance())
			fmt.Printf("LaTeX source saved to %s\n", texPath)
			return nil
		}

		var compErr *rendering.CompilationError
		if errors.As(err, &compErr) && pdfPath != "" {
			fmt.Printf("Warning: %v\n", compErr)
		} else {
			return err
		}
	}

	rendering.CleanupAuxFiles(texPath)
	if !renderKeepTex {
		_ = os.Remove(texPath)
	}
	fmt.Printf("Done! Resume saved to %s\n", pdfPath)
	return nil
}

func defaultOutput(path, ext string) string {
	if path == "" {
		return "tailored_resume" + ext
	}
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		path += ext
	}
	return path
}
