// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonamar/resumagic/internal/render"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxLinesToShow is the default number of content lines to preview
	maxLinesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs block counts and a short content preview for
// an assembled document.
func (p *Printer) PrintDocumentSummary(label string, blocks []render.Block) {
	if len(blocks) == 0 {
		return
	}

	var paragraphs, bullets, spacers, pageBreaks int
	for _, b := range blocks {
		switch b.Kind {
		case render.Bullet:
			bullets++
		case render.Spacer:
			spacers++
		case render.PageBreak:
			pageBreaks++
		default:
			paragraphs++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Blocks:      %d\n", len(blocks)))
	sb.WriteString(fmt.Sprintf("Paragraphs:  %d\n", paragraphs))
	sb.WriteString(fmt.Sprintf("Bullets:     %d\n", bullets))
	sb.WriteString(fmt.Sprintf("Spacers:     %d\n", spacers))
	if pageBreaks > 0 {
		sb.WriteString(fmt.Sprintf("Page breaks: %d\n", pageBreaks))
	}
	sb.WriteString("\n")

	shown := 0
	for _, b := range blocks {
		if shown == maxLinesToShow {
			sb.WriteString("  ...\n")
			break
		}
		text := b.PlainText()
		if text == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s\n", text))
		shown++
	}

	p.printBox(strings.ToUpper(label), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutput reports a written document file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintOutput(path string) {
	fmt.Fprintf(p.out, "✓ wrote %s\n", path)
}
