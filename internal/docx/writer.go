// Package docx serializes the abstract block sequence into a Word document
// using the go-docx library. It is the only package that knows about the
// file format; the rendering core never imports it.
package docx

import (
	"fmt"
	"os"
	"strconv"

	godocx "github.com/fumiama/go-docx"

	"github.com/jonamar/resumagic/internal/markup"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/theme"
)

// WriteError represents a failure serializing or writing the document.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx write error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("docx write error: %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Writer maps blocks onto go-docx paragraphs and runs with theme defaults
// filled in. go-docx exposes a subset of paragraph properties; spacing and
// keep-next hints beyond that subset are carried by spacer blocks.
type Writer struct {
	theme *theme.Theme
}

// NewWriter returns a Writer styled by th.
func NewWriter(th *theme.Theme) *Writer {
	return &Writer{theme: th}
}

// Write serializes blocks into a .docx file at path.
func (w *Writer) Write(blocks []render.Block, path string) error {
	doc := godocx.New().WithDefaultTheme()

	for _, b := range blocks {
		w.addBlock(doc, b)
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to create output file", Cause: err}
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return &WriteError{Path: path, Message: "failed to serialize document", Cause: err}
	}
	return nil
}

func (w *Writer) addBlock(doc *godocx.Docx, b render.Block) {
	switch b.Kind {
	case render.PageBreak:
		doc.AddParagraph().AddPageBreaks()
	case render.Spacer:
		doc.AddParagraph()
	default:
		p := doc.AddParagraph()
		if b.Alignment != "" {
			p.Justification(b.Alignment)
		}
		if b.Kind == render.Bullet {
			// go-docx does not expose numbering definitions, so
			// bulleted items carry the glyph inline.
			w.addRun(p, b, markup.Span{Text: w.theme.Bullet + " "})
		}
		for _, s := range b.Spans {
			w.addRun(p, b, s)
		}
	}
}

func (w *Writer) addRun(p *godocx.Paragraph, b render.Block, s markup.Span) {
	if s.LinkURL != "" {
		// The hyperlink's inner run still carries the span's styling;
		// link text inherits bold/italic from enclosing markers.
		link := p.AddLink(s.Text, s.LinkURL)
		w.styleRun(&link.Run, b, s, w.theme.Color.Link)
		return
	}

	color := b.Color
	if color == "" {
		color = w.theme.Color.Text
	}
	w.styleRun(p.AddText(s.Text), b, s, color)
}

func (w *Writer) styleRun(run *godocx.Run, b render.Block, s markup.Span, color string) {
	family := w.theme.FontFamily
	run.Font(family, family, family, "")
	run.Size(strconv.Itoa(w.halfPoints(b.FontSize)))
	run.Color(color)
	if s.Bold {
		run.Bold()
	}
	if s.Italic {
		run.Italic()
	}
}

// halfPoints converts a point size (theme default when zero) to the
// half-point unit go-docx expects.
func (w *Writer) halfPoints(points int) int {
	if points == 0 {
		points = w.theme.Size.Body
	}
	return points * 2
}
