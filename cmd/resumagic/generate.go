package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonamar/resumagic/internal/config"
	"github.com/jonamar/resumagic/internal/document"
	"github.com/jonamar/resumagic/internal/docx"
	"github.com/jonamar/resumagic/internal/observability"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/schemas"
	"github.com/jonamar/resumagic/internal/theme"
	"github.com/jonamar/resumagic/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resume and/or cover letter documents",
	Long: "Generates styled .docx documents from structured resume and cover-letter JSON. " +
		"With both inputs, --combined merges them into a single document (cover letter first, " +
		"then the resume on a new page); without --combined, the two documents are written separately.",
	RunE: runGenerate,
}

// generateOut receives all generate output; swappable in tests.
var generateOut io.Writer = os.Stdout

var (
	generateResumeFile     string
	generateCoverFile      string
	generateThemeFile      string
	generateConfigFile     string
	generateOutPath        string
	generateCombined       bool
	generateVerbose        bool
	generateSkipValidation bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateResumeFile, "resume", "r", "", "Path to resume JSON file")
	generateCmd.Flags().StringVarP(&generateCoverFile, "cover-letter", "l", "", "Path to cover-letter JSON file")
	generateCmd.Flags().StringVarP(&generateThemeFile, "theme", "t", "", "Path to theme JSON file (default: built-in theme, or $RESUMAGIC_THEME)")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to CLI config JSON file")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Output .docx path (directory when writing two documents)")
	generateCmd.Flags().BoolVar(&generateCombined, "combined", false, "Merge the cover letter and resume into one document")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a summary of the rendered documents")
	generateCmd.Flags().BoolVar(&generateSkipValidation, "skip-validation", false, "Skip JSON Schema validation of input files")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if err := mergeConfig(); err != nil {
		return err
	}

	if generateResumeFile == "" && generateCoverFile == "" {
		return fmt.Errorf("must provide --resume, --cover-letter, or both")
	}
	if generateCombined && (generateResumeFile == "" || generateCoverFile == "") {
		return fmt.Errorf("--combined requires both --resume and --cover-letter")
	}

	th, err := loadTheme()
	if err != nil {
		return err
	}

	var resume *types.Resume
	if generateResumeFile != "" {
		if resume, err = loadResume(generateResumeFile); err != nil {
			return err
		}
	}

	var coverLetter *types.CoverLetter
	if generateCoverFile != "" {
		if coverLetter, err = loadCoverLetter(generateCoverFile); err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(generateOut)
	writer := docx.NewWriter(th)

	report := func(label string, blocks []render.Block, path string) {
		if generateVerbose {
			printer.PrintDocumentSummary(label, blocks)
		}
		printer.PrintOutput(path)
	}

	writeDoc := func(label string, blocks []render.Block, path string) error {
		if err := writer.Write(blocks, path); err != nil {
			return err
		}
		report(label, blocks, path)
		return nil
	}

	switch {
	case generateCombined:
		blocks := document.BuildCombined(coverLetter, resume, th)
		return writeDoc("combined", blocks, outPath("application.docx"))

	case resume != nil && coverLetter != nil:
		// Two independent documents; rendering is pure, so write them
		// concurrently. Reporting waits for both writes so the printer
		// never interleaves output from the two goroutines.
		dir := generateOutPath
		if dir == "" {
			dir = "."
		}
		resumeBlocks := document.BuildResume(resume, th)
		coverBlocks := document.BuildCoverLetter(coverLetter, th)
		resumePath := filepath.Join(dir, "resume.docx")
		coverPath := filepath.Join(dir, "cover-letter.docx")

		var g errgroup.Group
		g.Go(func() error { return writer.Write(resumeBlocks, resumePath) })
		g.Go(func() error { return writer.Write(coverBlocks, coverPath) })
		if err := g.Wait(); err != nil {
			return err
		}

		report("resume", resumeBlocks, resumePath)
		report("cover letter", coverBlocks, coverPath)
		return nil

	case resume != nil:
		return writeDoc("resume", document.BuildResume(resume, th), outPath("resume.docx"))

	default:
		return writeDoc("cover letter", document.BuildCoverLetter(coverLetter, th), outPath("cover-letter.docx"))
	}
}

// mergeConfig fills unset flags from the optional config file.
func mergeConfig() error {
	if generateConfigFile == "" {
		return nil
	}

	cfg, err := config.LoadConfig(generateConfigFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if generateResumeFile == "" {
		generateResumeFile = cfg.Resume
	}
	if generateCoverFile == "" {
		generateCoverFile = cfg.CoverLetter
	}
	if generateThemeFile == "" {
		generateThemeFile = cfg.Theme
	}
	if generateOutPath == "" {
		generateOutPath = cfg.Out
	}
	generateCombined = generateCombined || cfg.Combined
	generateVerbose = generateVerbose || cfg.Verbose
	generateSkipValidation = generateSkipValidation || cfg.SkipValidation

	return nil
}

func loadTheme() (*theme.Theme, error) {
	path := generateThemeFile
	if path == "" {
		path = os.Getenv("RESUMAGIC_THEME")
	}
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if !generateSkipValidation {
		if err := schemas.ValidateResume(data); err != nil {
			return nil, fmt.Errorf("resume %s: %w", path, err)
		}
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &r, nil
}

func loadCoverLetter(path string) (*types.CoverLetter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover-letter file: %w", err)
	}
	if !generateSkipValidation {
		if err := schemas.ValidateCoverLetter(data); err != nil {
			return nil, fmt.Errorf("cover letter %s: %w", path, err)
		}
	}

	var cl types.CoverLetter
	if err := json.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("failed to parse cover-letter JSON: %w", err)
	}
	return &cl, nil
}

func outPath(defaultName string) string {
	if generateOutPath == "" {
		return defaultName
	}
	return generateOutPath
}
