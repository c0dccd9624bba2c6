// Package main provides the entry point for the resume-match CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-match",
	Short: "Resume to job-description matching and scoring",
	Long:  "resume-match scores a resume against a job description: keyword saturation, impact quantification, weak-phrase detection, contact extraction, and an overall ATS compatibility score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
