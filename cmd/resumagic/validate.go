package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonamar/resumagic/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate input files against the bundled schemas",
	Long:  "Checks resume and cover-letter JSON files against the bundled JSON Schemas without generating any output.",
	RunE:  runValidate,
}

var (
	validateResumeFile string
	validateCoverFile  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateResumeFile, "resume", "r", "", "Path to resume JSON file")
	validateCmd.Flags().StringVarP(&validateCoverFile, "cover-letter", "l", "", "Path to cover-letter JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateResumeFile == "" && validateCoverFile == "" {
		return fmt.Errorf("must provide --resume, --cover-letter, or both")
	}

	if validateResumeFile != "" {
		if err := validateFile(validateResumeFile, schemas.ValidateResume); err != nil {
			return err
		}
		fmt.Printf("✓ %s is a valid resume\n", validateResumeFile)
	}

	if validateCoverFile != "" {
		if err := validateFile(validateCoverFile, schemas.ValidateCoverLetter); err != nil {
			return err
		}
		fmt.Printf("✓ %s is a valid cover letter\n", validateCoverFile)
	}

	return nil
}

func validateFile(path string, validate func([]byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
