package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Orchestrates the entire tailoring process: resume extraction -> job analysis -> keyword matching -> rewriting -> rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runResume     string
	runJob        string
	runFormat     string
	runOutput     string
	runAPIKey     string
	runDebug      bool
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume PDF")
	runCommand.Flags().StringVarP(&runJob, "job_description", "j", "", "Job description text, or path to a .txt/.md/.pdf file")
	runCommand.Flags().StringVarP(&runFormat, "format", "f", "", "Output format: pdf or docx (default pdf)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Output file path (default tailored_resume.<format>)")
	runCommand.Flags().BoolVar(&runDebug, "debug", false, "Keep intermediate artifacts (JSON records, LaTeX source)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed stage summaries")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Printf("Loaded config from: %s\n", runConfigPath)
		}
	}

	// Apply CLI overrides; only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("job_description") {
		cfg.JobDescription = runJob
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = runFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = runDebug
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{Format: pipeline.FormatPDF})

	// Validate required fields after merging
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.JobDescription == "" {
		return fmt.Errorf("--job_description is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.RunPipeline(ctx, pipeline.Options{
		ResumePath:     cfg.Resume,
		JobDescription: cfg.JobDescription,
		Format:         cfg.Format,
		OutputPath:     cfg.Output,
		APIKey:         cfg.APIKey,
		Debug:          cfg.Debug,
		Verbose:        cfg.Verbose,
	})
}
