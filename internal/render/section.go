package render

import (
	"strings"

	"github.com/jonamar/resumagic/internal/markup"
	"github.com/jonamar/resumagic/internal/theme"
)

// FieldPart resolves one field of a joined header line. Format, when set, is
// applied to the resolved value (date normalization, region abbreviation).
type FieldPart[T any] struct {
	Value  func(T) string
	Format func(string) string
}

// ConditionalSpacing switches a header line's trailing spacing on whether
// the item has a description or highlights following it. Standalone may be
// position-dependent to give the final entry in a section different trailing
// space.
type ConditionalSpacing struct {
	WithContent int
	Standalone  Spacing
}

// HeaderLine declares one header line of a structured item: an ordered list
// of field parts joined by Separator, optionally followed by a location
// field joined by LocationSeparator. A line whose resolved text is empty
// renders nothing.
type HeaderLine[T any] struct {
	Parts             []FieldPart[T]
	Separator         string
	Location          func(T) string
	LocationSeparator string

	// Style overrides; zero values defer to the theme.
	FontSize int
	Color    string
	Bold     bool

	KeepNext    bool
	Spacing     Spacing
	Conditional *ConditionalSpacing
}

// SectionConfig declares how one category of resume entries is laid out.
// Field access is through typed accessor closures; Description and
// Highlights are optional.
type SectionConfig[T any] struct {
	Title       string
	HeaderLines []HeaderLine[T]

	Description func(T) string
	Highlights  func(T) []string

	DescriptionSpacing Spacing
	HighlightSpacing   Spacing
	ItemSpacing        Spacing
}

// Section renders items into a titled block sequence: a heading block, then
// per-item header/description/highlight blocks in input order, then an
// inter-item spacer when configured. Items are never filtered or reordered
// here; callers decide what to pass in.
func Section[T any](items []T, cfg SectionConfig[T], th *theme.Theme) []Block {
	blocks := []Block{Heading(cfg.Title, th)}

	for i, item := range items {
		isLast := i == len(items)-1
		blocks = append(blocks, renderItem(item, cfg, th, isLast, i)...)
	}

	return blocks
}

// Heading builds the section title block. It keeps with the first item block
// so a section never ends a page with a bare title.
func Heading(title string, th *theme.Theme) Block {
	return Block{
		Kind:         Paragraph,
		Spans:        []markup.Span{{Text: title, Bold: true}},
		FontSize:     th.Size.Heading,
		Color:        th.Color.Heading,
		SpacingAfter: th.Spacing.AfterHeading,
		KeepNext:     true,
	}
}

func renderItem[T any](item T, cfg SectionConfig[T], th *theme.Theme, isLast bool, index int) []Block {
	var blocks []Block

	description := ""
	if cfg.Description != nil {
		description = strings.TrimSpace(cfg.Description(item))
	}
	hasDescription := description != ""

	var highlights []string
	if cfg.Highlights != nil {
		highlights = cfg.Highlights(item)
	}
	hasHighlights := len(highlights) > 0
	hasContent := hasDescription || hasHighlights

	for li, hl := range cfg.HeaderLines {
		text := resolveHeaderText(hl, item)
		if text == "" {
			continue
		}

		b := Block{
			Kind:     Paragraph,
			Spans:    markup.ParseInline(text),
			FontSize: hl.FontSize,
			Color:    hl.Color,
			KeepNext: hl.KeepNext,
		}
		if hl.Bold {
			for si := range b.Spans {
				b.Spans[si].Bold = true
			}
		}

		if li == len(cfg.HeaderLines)-1 {
			// The last header line stays attached to the page only
			// when more content follows it.
			b.KeepNext = hasContent
			if hl.Conditional != nil {
				if hasContent {
					b.SpacingAfter = hl.Conditional.WithContent
				} else {
					b.SpacingAfter = hl.Conditional.Standalone.Resolve(isLast, index)
				}
			} else {
				b.SpacingAfter = hl.Spacing.ResolveOr(th.Spacing.AfterHeaderLine, isLast, index)
			}
		} else {
			b.SpacingAfter = hl.Spacing.ResolveOr(th.Spacing.AfterHeaderLine, isLast, index)
		}

		blocks = append(blocks, b)
	}

	if hasDescription {
		blocks = append(blocks, Block{
			Kind:         Paragraph,
			Spans:        markup.Parse(description),
			FontSize:     th.Size.Body,
			SpacingAfter: cfg.DescriptionSpacing.ResolveOr(th.Spacing.AfterDescription, isLast, index),
			KeepNext:     hasHighlights,
		})
	}

	for hi, highlight := range highlights {
		b := Block{
			Kind:     Bullet,
			Spans:    markup.Parse(highlight),
			FontSize: th.Size.Body,
		}
		if hi < len(highlights)-1 {
			b.KeepNext = true
			b.SpacingAfter = th.Spacing.AfterHighlight
		} else {
			b.SpacingAfter = cfg.HighlightSpacing.ResolveOr(th.Spacing.AfterHighlight, isLast, index)
		}
		blocks = append(blocks, b)
	}

	if cfg.ItemSpacing.IsSet() {
		blocks = append(blocks, Block{
			Kind:         Spacer,
			SpacingAfter: cfg.ItemSpacing.Resolve(isLast, index),
		})
	}

	return blocks
}

// resolveHeaderText joins the non-empty formatted parts of a header line
// with its separator, then appends the location field when present.
func resolveHeaderText[T any](hl HeaderLine[T], item T) string {
	parts := make([]string, 0, len(hl.Parts))
	for _, p := range hl.Parts {
		v := strings.TrimSpace(p.Value(item))
		if v == "" {
			continue
		}
		if p.Format != nil {
			v = p.Format(v)
		}
		parts = append(parts, v)
	}
	text := strings.Join(parts, hl.Separator)

	if hl.Location != nil {
		if loc := strings.TrimSpace(hl.Location(item)); loc != "" {
			if text == "" {
				return loc
			}
			return text + hl.LocationSeparator + loc
		}
	}
	return text
}
