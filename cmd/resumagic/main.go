// Package main implements the resumagic CLI for generating styled resume
// and cover-letter documents from structured data.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumagic",
	Short: "Resume and cover letter document generator",
	Long:  "Resumagic converts structured resume and cover-letter data into styled Word documents, with lightweight inline markup for bold, italic, and hyperlinks.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
