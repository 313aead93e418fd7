package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/analysis"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job description into structured JobRequirements JSON",
	Long:  "Analyze a job description (literal text or a .txt/.md/.pdf file) into structured JobRequirements JSON: required skills, preferred skills, keywords, and seniority.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobInput  string
	analyzeJobOutput string
	analyzeJobAPIKey string
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobInput, "job_description", "j", "", "Job description text, or path to a .txt/.md/.pdf file (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = analyzeJobCmd.MarkFlagRequired("job_description")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	apiKey, err := config.ResolveAPIKey(analyzeJobAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	jobText, err := analysis.ReadJobDescription(analyzeJobInput)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	requirements, err := analysis.AnalyzeJob(ctx, client, jobText)
	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeJobOutput == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(analyzeJobOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote job requirements to %s\n", analyzeJobOutput)
	return nil
}
