// Package main provides the entry point for the recruit-matcher CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate/job matching service",
	Long:  "match_agent scores candidate CVs against job requirements using semantic similarity, multi-tier skill matching, and experience/education comparison, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
