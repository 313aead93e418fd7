// Package main provides the entry point for the resume tailoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Tailor a resume to a job description",
	Long:  "resume_tailor reads a resume PDF and a job description, rewrites the resume content to emphasize the role's requirements without changing any facts, and renders the result as a PDF or Word document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
