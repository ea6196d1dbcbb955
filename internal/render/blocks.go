// Package render implements the declarative section-templating engine that
// turns structured resume entries into an ordered sequence of styled
// document blocks. Blocks are abstract: paragraph, bulleted item, blank
// spacer, or page break, each carrying spacing and pagination metadata for
// the document writer. The engine is pure; it never mutates its inputs and
// never fails.
package render

import "github.com/jonamar/resumagic/internal/markup"

// BlockKind discriminates the renderable block variants.
type BlockKind int

const (
	// Paragraph is a styled run of spans on its own line.
	Paragraph BlockKind = iota
	// Bullet is a single bulleted list item.
	Bullet
	// Spacer is a zero-content block carrying only trailing spacing.
	Spacer
	// PageBreak forces the following block onto a new page.
	PageBreak
)

// Block is one renderable unit of output.
type Block struct {
	Kind  BlockKind
	Spans []markup.Span

	// Style overrides; zero values defer to the writer's theme defaults.
	FontSize  int    // points
	Color     string // RRGGBB hex, no '#'
	Alignment string // "" or "center"

	// SpacingAfter is the trailing spacing in twips.
	SpacingAfter int
	// KeepNext asks the renderer not to break the page between this
	// block and the next.
	KeepNext bool
}

// Text is a convenience constructor for a single-span paragraph.
func Text(s string) Block {
	return Block{Kind: Paragraph, Spans: []markup.Span{{Text: s}}}
}

// PlainText concatenates the text of every span in the block, without
// styling. Used by summaries and tests.
func (b Block) PlainText() string {
	var out string
	for _, s := range b.Spans {
		out += s.Text
	}
	return out
}
