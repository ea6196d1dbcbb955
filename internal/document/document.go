// Package document assembles complete documents: it orders rendered sections
// into the final block sequence for resume-only, cover-letter-only, or
// combined output. The ordering is a fixed contract; only which optional
// sections appear varies with the input.
package document

import (
	"strings"

	"github.com/jonamar/resumagic/internal/markup"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/sections"
	"github.com/jonamar/resumagic/internal/theme"
	"github.com/jonamar/resumagic/internal/types"
)

// BuildResume produces the full resume block sequence: header, optional
// summary, experience, skills, education, then projects, publications, and
// languages when non-empty, and finally the footer note when present.
func BuildResume(r *types.Resume, th *theme.Theme) []render.Block {
	blocks := header(r.Basics, th)

	if strings.TrimSpace(r.Basics.Summary) != "" {
		blocks = append(blocks, render.Heading("Summary", th))
		blocks = append(blocks, render.Block{
			Kind:         render.Paragraph,
			Spans:        markup.Parse(r.Basics.Summary),
			FontSize:     th.Size.Body,
			SpacingAfter: th.Spacing.ItemGap,
		})
	}

	blocks = append(blocks, render.Section(r.Work, sections.Experience(th), th)...)
	blocks = append(blocks, skillBlocks(r.Skills, th)...)
	blocks = append(blocks, render.Section(r.Education, sections.Education(th), th)...)

	if len(r.Projects) > 0 {
		blocks = append(blocks, render.Section(r.Projects, sections.Projects(th), th)...)
	}
	if len(r.Publications) > 0 {
		blocks = append(blocks, render.Section(r.Publications, sections.Publications(th), th)...)
	}
	if len(r.Languages) > 0 {
		blocks = append(blocks, languageBlocks(r.Languages, th)...)
	}

	if strings.TrimSpace(r.Meta.FooterNote) != "" {
		blocks = append(blocks, footerNote(r.Meta.FooterNote, th)...)
	}

	return blocks
}

// BuildCoverLetter produces the cover-letter block sequence: body content,
// closing, contact footer, and footer note.
func BuildCoverLetter(cl *types.CoverLetter, th *theme.Theme) []render.Block {
	return buildCoverLetter(cl, th, true, true)
}

// BuildCombined produces a cover letter followed by the full resume on a new
// page. The letter's contact footer and footer note are omitted: contact
// info appears once in the resume header, and the resume's own footer note
// (when present) closes the document.
func BuildCombined(cl *types.CoverLetter, r *types.Resume, th *theme.Theme) []render.Block {
	blocks := buildCoverLetter(cl, th, false, false)
	blocks = append(blocks, render.Block{Kind: render.PageBreak})
	blocks = append(blocks, BuildResume(r, th)...)
	return blocks
}

func buildCoverLetter(cl *types.CoverLetter, th *theme.Theme, withFooter, withFooterNote bool) []render.Block {
	var blocks []render.Block

	for _, cb := range cl.Content {
		switch cb.Type {
		case types.BlockList:
			for i, item := range cb.Items {
				b := render.Block{
					Kind:     render.Bullet,
					Spans:    markup.Parse(item),
					FontSize: th.Size.Body,
				}
				if i < len(cb.Items)-1 {
					b.KeepNext = true
					b.SpacingAfter = th.Spacing.AfterHighlight
				} else {
					b.SpacingAfter = th.Spacing.AfterParagraph
				}
				blocks = append(blocks, b)
			}
		default: // paragraph
			blocks = append(blocks, render.Block{
				Kind:         render.Paragraph,
				Spans:        markup.Parse(cb.Text),
				FontSize:     th.Size.Body,
				SpacingAfter: th.Spacing.AfterParagraph,
			})
		}
	}

	blocks = append(blocks, closing(cl.Metadata, th)...)

	if withFooter {
		contact := contactLine(cl.Metadata.Email, cl.Metadata.Phone, "", cl.Metadata.Location)
		if contact != "" {
			blocks = append(blocks,
				render.Block{Kind: render.Spacer, SpacingAfter: th.Spacing.BeforeFooter},
				render.Block{
					Kind:         render.Paragraph,
					Spans:        []markup.Span{{Text: contact}},
					FontSize:     th.Size.Footer,
					Color:        th.Color.Muted,
					SpacingAfter: th.Spacing.AfterHeaderLine,
				},
			)
		}
	}

	if withFooterNote && strings.TrimSpace(cl.FooterNote) != "" {
		blocks = append(blocks, footerNote(cl.FooterNote, th)...)
	}

	return blocks
}

// closing renders the signature: "Sincerely," then the author's name and an
// optional pronouns line.
func closing(meta types.CoverLetterMetadata, th *theme.Theme) []render.Block {
	blocks := []render.Block{
		{Kind: render.Spacer, SpacingAfter: th.Spacing.BeforeClosing},
		{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: "Sincerely,"}},
			FontSize:     th.Size.Body,
			SpacingAfter: th.Spacing.AfterHeaderLine,
			KeepNext:     true,
		},
		{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: meta.Name}},
			FontSize:     th.Size.Body,
			SpacingAfter: th.Spacing.AfterHeaderLine,
		},
	}
	if strings.TrimSpace(meta.Pronouns) != "" {
		blocks[len(blocks)-1].KeepNext = true
		blocks = append(blocks, render.Block{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: meta.Pronouns}},
			FontSize:     th.Size.Detail,
			Color:        th.Color.Muted,
			SpacingAfter: th.Spacing.AfterHeaderLine,
		})
	}
	return blocks
}

// header renders the resume's identity block: name, label, and a single
// centered contact line.
func header(b types.Basics, th *theme.Theme) []render.Block {
	blocks := []render.Block{{
		Kind:         render.Paragraph,
		Spans:        []markup.Span{{Text: b.Name, Bold: true}},
		FontSize:     th.Size.Name,
		Alignment:    "center",
		SpacingAfter: th.Spacing.AfterHeaderLine,
		KeepNext:     true,
	}}

	if strings.TrimSpace(b.Label) != "" {
		blocks = append(blocks, render.Block{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: b.Label}},
			FontSize:     th.Size.Body,
			Color:        th.Color.Muted,
			Alignment:    "center",
			SpacingAfter: th.Spacing.AfterHeaderLine,
			KeepNext:     true,
		})
	}

	if contact := contactLine(b.Email, b.Phone, b.URL, b.Location); contact != "" {
		blocks = append(blocks, render.Block{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: contact}},
			FontSize:     th.Size.Detail,
			Alignment:    "center",
			SpacingAfter: th.Spacing.ItemGap,
		})
	}

	return blocks
}

// contactLine joins the present contact fields with a bullet separator,
// abbreviating the location's region.
func contactLine(email, phone, url string, loc types.Location) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{email, phone, url} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if place := sections.FormatLocation(locationString(loc)); place != "" {
		parts = append(parts, place)
	}
	return strings.Join(parts, " • ")
}

func locationString(loc types.Location) string {
	switch {
	case loc.City != "" && loc.Region != "":
		return loc.City + ", " + loc.Region
	case loc.City != "":
		return loc.City
	default:
		return loc.Region
	}
}

// skillBlocks renders the skills section as one paragraph per group: the
// group name in bold followed by its keywords.
func skillBlocks(groups []types.SkillGroup, th *theme.Theme) []render.Block {
	blocks := []render.Block{render.Heading("Skills", th)}

	kept := sections.NonEmptySkillGroups(groups)
	for i, g := range kept {
		spacing := th.Spacing.AfterHighlight
		if i == len(kept)-1 {
			spacing = th.Spacing.LastItemGap
		}
		blocks = append(blocks, render.Block{
			Kind: render.Paragraph,
			Spans: []markup.Span{
				{Text: g.Name + ": ", Bold: true},
				{Text: strings.Join(g.Keywords, ", ")},
			},
			FontSize:     th.Size.Body,
			SpacingAfter: spacing,
			KeepNext:     i < len(kept)-1,
		})
	}

	return blocks
}

// languageBlocks renders all languages on a single paragraph.
func languageBlocks(langs []types.LanguageEntry, th *theme.Theme) []render.Block {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		if strings.TrimSpace(l.Language) == "" {
			continue
		}
		if strings.TrimSpace(l.Fluency) != "" {
			parts = append(parts, l.Language+" ("+l.Fluency+")")
		} else {
			parts = append(parts, l.Language)
		}
	}

	return []render.Block{
		render.Heading("Languages", th),
		{
			Kind:         render.Paragraph,
			Spans:        []markup.Span{{Text: strings.Join(parts, " • ")}},
			FontSize:     th.Size.Body,
			SpacingAfter: th.Spacing.LastItemGap,
		},
	}
}

// footerNote renders a small muted italic note at the very end of a
// document.
func footerNote(note string, th *theme.Theme) []render.Block {
	spans := markup.Parse(note)
	for i := range spans {
		spans[i].Italic = true
	}
	return []render.Block{
		{Kind: render.Spacer, SpacingAfter: th.Spacing.BeforeFooter},
		{
			Kind:     render.Paragraph,
			Spans:    spans,
			FontSize: th.Size.Footer,
			Color:    th.Color.Muted,
		},
	}
}
