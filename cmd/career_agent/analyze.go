package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careersphere/career-advisor/internal/advisor"
	"github.com/careersphere/career-advisor/internal/logger"
	"github.com/careersphere/career-advisor/internal/types"
)

var analyzeVerbose bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <profile.json>",
	Short: "Analyze a candidate profile from a JSON file",
	Long: `Run a one-shot analysis of a candidate profile without starting the server.
Uses the static fallback recommendation path; no API key is required.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print debug logs")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	log, err := logger.New(false, analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	adv := advisor.New(advisor.Options{Logger: log})
	result, err := adv.Produce(context.Background(), &profile)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
