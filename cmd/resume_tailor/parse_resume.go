package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/parsing"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a resume PDF into structured ResumeRecord JSON",
	Long:  "Extract the text of a resume PDF and parse it into a structured ResumeRecord JSON that validates against the resume_record schema.",
	RunE:  runParseResume,
}

var (
	parseResumeFile   string
	parseResumeOutput string
	parseResumeAPIKey string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume PDF (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = parseResumeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	apiKey, err := config.ResolveAPIKey(parseResumeAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	resumeText, err := parsing.ExtractText(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	record, err := parsing.ParseResume(ctx, client, resumeText)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseResumeOutput == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseResumeOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote resume record to %s\n", parseResumeOutput)
	return nil
}
