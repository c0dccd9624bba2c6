package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match-engine/internal/config"
	"github.com/jonathan/resume-match-engine/internal/engine"
	"github.com/jonathan/resume-match-engine/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Runs the full analysis pipeline over a resume text file and a job description text file, printing the compatibility score, keyword saturation, impact metrics, suggestions, weak phrases, and contact info.",
	RunE:  runAnalyze,
}

var (
	analyzeResume     string
	analyzeJob        string
	analyzeConfig     string
	analyzeIndustry   string
	analyzePremium    bool
	analyzeMLBoost    float64
	analyzeMaxSuggest int
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to engine config JSON")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Industry keyword catalogue tag (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzePremium, "premium", false, "Use the premium scoring weight table")
	analyzeCmd.Flags().Float64Var(&analyzeMLBoost, "ml-boost", 0, "External model score in [0,100], blended on premium tier")
	analyzeCmd.Flags().IntVar(&analyzeMaxSuggest, "max-suggestions", 0, "Maximum keyword suggestions (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print every report section, not just the score")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resume, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	job, err := os.ReadFile(analyzeJob)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	cfg, err := config.Load(analyzeConfig)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	report, err := eng.Analyze(string(resume), string(job), engine.Options{
		Industry:       analyzeIndustry,
		Premium:        analyzePremium,
		MLBoost:        analyzeMLBoost,
		MaxSuggestions: analyzeMaxSuggest,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer := observability.NewPrinter(out)
	if analyzeVerbose {
		printer.PrintReport(&report)
		return nil
	}

	printer.PrintScore(&report)
	return nil
}
