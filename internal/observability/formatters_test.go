package observability

import (
	"bytes"
	"testing"

	"github.com/jonamar/resumagic/internal/markup"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	blocks := []render.Block{
		{Kind: render.Paragraph, Spans: []markup.Span{{Text: "Jo Anders"}}},
		{Kind: render.Bullet, Spans: []markup.Span{{Text: "Did a thing"}}},
		{Kind: render.Spacer},
		{Kind: render.PageBreak},
	}

	p.PrintDocumentSummary("resume", blocks)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Blocks:      4")
	assert.Contains(t, output, "Paragraphs:  1")
	assert.Contains(t, output, "Bullets:     1")
	assert.Contains(t, output, "Jo Anders")
}

func TestPrintDocumentSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocumentSummary("resume", nil)

	assert.Empty(t, buf.String())
}

func TestPrintOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutput("out/resume.docx")

	assert.Contains(t, buf.String(), "out/resume.docx")
}
