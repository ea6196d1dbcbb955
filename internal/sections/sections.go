// Package sections declares how each category of resume entries is laid out,
// as SectionConfig values consumed by the render engine. It also owns the
// caller-side filtering the engine deliberately does not do.
package sections

import (
	"strings"

	"github.com/jonamar/resumagic/internal/format"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/theme"
	"github.com/jonamar/resumagic/internal/types"
)

// itemGap returns the trailing-gap function shared by every section: a full
// gap between entries, a reduced one after the section's final entry. The
// index parameter is unused today but part of the spacing interface.
func itemGap(th *theme.Theme) func(isLast bool, index int) int {
	return func(isLast bool, _ int) int {
		if isLast {
			return th.Spacing.LastItemGap
		}
		return th.Spacing.ItemGap
	}
}

// Experience lays out the work history: position, employer with location,
// then a muted date line that carries the inter-item gap when nothing
// follows it.
func Experience(th *theme.Theme) render.SectionConfig[types.WorkEntry] {
	gap := itemGap(th)
	return render.SectionConfig[types.WorkEntry]{
		Title: "Experience",
		HeaderLines: []render.HeaderLine[types.WorkEntry]{
			{
				Parts:    []render.FieldPart[types.WorkEntry]{{Value: func(w types.WorkEntry) string { return w.Position }}},
				Bold:     true,
				KeepNext: true,
			},
			{
				Parts:             []render.FieldPart[types.WorkEntry]{{Value: func(w types.WorkEntry) string { return w.Name }}},
				Location:          func(w types.WorkEntry) string { return FormatLocation(w.Location) },
				LocationSeparator: " • ",
				KeepNext:          true,
			},
			{
				Parts: []render.FieldPart[types.WorkEntry]{
					{Value: func(w types.WorkEntry) string { return w.StartDate }, Format: format.FormatDate},
					{Value: presentIfEmpty(func(w types.WorkEntry) string { return w.EndDate }), Format: format.FormatDate},
				},
				Separator: " – ",
				FontSize:  th.Size.Detail,
				Color:     th.Color.Muted,
				Conditional: &render.ConditionalSpacing{
					WithContent: th.Spacing.AfterHeaderLine,
					Standalone:  render.Computed(gap),
				},
			},
		},
		Description:      func(w types.WorkEntry) string { return w.Summary },
		Highlights:       func(w types.WorkEntry) []string { return w.Highlights },
		HighlightSpacing: render.Computed(gap),
	}
}

// Education lays out credentials: institution, degree line, muted date line.
// Honors render as the entry's highlights.
func Education(th *theme.Theme) render.SectionConfig[types.EducationEntry] {
	gap := itemGap(th)
	return render.SectionConfig[types.EducationEntry]{
		Title: "Education",
		HeaderLines: []render.HeaderLine[types.EducationEntry]{
			{
				Parts:    []render.FieldPart[types.EducationEntry]{{Value: func(e types.EducationEntry) string { return e.Institution }}},
				Bold:     true,
				KeepNext: true,
			},
			{
				Parts: []render.FieldPart[types.EducationEntry]{
					{Value: func(e types.EducationEntry) string { return e.StudyType }},
					{Value: func(e types.EducationEntry) string { return e.Area }},
				},
				Separator:         ", ",
				Location:          func(e types.EducationEntry) string { return FormatLocation(e.Location) },
				LocationSeparator: " • ",
				KeepNext:          true,
			},
			{
				Parts: []render.FieldPart[types.EducationEntry]{
					{Value: func(e types.EducationEntry) string { return e.StartDate }, Format: format.FormatDate},
					{Value: func(e types.EducationEntry) string { return e.EndDate }, Format: format.FormatDate},
				},
				Separator: " – ",
				FontSize:  th.Size.Detail,
				Color:     th.Color.Muted,
				Conditional: &render.ConditionalSpacing{
					WithContent: th.Spacing.AfterHeaderLine,
					Standalone:  render.Computed(gap),
				},
			},
		},
		Highlights:       func(e types.EducationEntry) []string { return e.Honors },
		HighlightSpacing: render.Computed(gap),
	}
}

// Projects lays out portfolio projects: name, muted date line, description,
// highlights.
func Projects(th *theme.Theme) render.SectionConfig[types.Project] {
	gap := itemGap(th)
	return render.SectionConfig[types.Project]{
		Title: "Projects",
		HeaderLines: []render.HeaderLine[types.Project]{
			{
				Parts:    []render.FieldPart[types.Project]{{Value: func(p types.Project) string { return p.Name }}},
				Bold:     true,
				KeepNext: true,
			},
			{
				Parts: []render.FieldPart[types.Project]{
					{Value: func(p types.Project) string { return p.StartDate }, Format: format.FormatDate},
					{Value: func(p types.Project) string { return p.EndDate }, Format: format.FormatDate},
				},
				Separator: " – ",
				FontSize:  th.Size.Detail,
				Color:     th.Color.Muted,
				Conditional: &render.ConditionalSpacing{
					WithContent: th.Spacing.AfterHeaderLine,
					Standalone:  render.Computed(gap),
				},
			},
		},
		Description:      func(p types.Project) string { return p.Description },
		Highlights:       func(p types.Project) []string { return p.Highlights },
		HighlightSpacing: render.Computed(gap),
	}
}

// Publications lays out published work: title, then publisher and release
// date on one muted line, with the summary as the description. Publications
// have no highlights, so the trailing gap rides on the description spacing.
func Publications(th *theme.Theme) render.SectionConfig[types.Publication] {
	gap := itemGap(th)
	return render.SectionConfig[types.Publication]{
		Title: "Publications",
		HeaderLines: []render.HeaderLine[types.Publication]{
			{
				Parts:    []render.FieldPart[types.Publication]{{Value: func(p types.Publication) string { return p.Name }}},
				Bold:     true,
				KeepNext: true,
			},
			{
				Parts: []render.FieldPart[types.Publication]{
					{Value: func(p types.Publication) string { return p.Publisher }},
					{Value: func(p types.Publication) string { return p.ReleaseDate }, Format: format.FormatDate},
				},
				Separator: " • ",
				FontSize:  th.Size.Detail,
				Color:     th.Color.Muted,
				Conditional: &render.ConditionalSpacing{
					WithContent: th.Spacing.AfterHeaderLine,
					Standalone:  render.Computed(gap),
				},
			},
		},
		Description:        func(p types.Publication) string { return p.Summary },
		DescriptionSpacing: render.Computed(gap),
	}
}

// presentIfEmpty wraps an end-date accessor so an empty value renders as
// "Present".
func presentIfEmpty[T any](get func(T) string) func(T) string {
	return func(item T) string {
		if strings.TrimSpace(get(item)) == "" {
			return "Present"
		}
		return get(item)
	}
}

// FormatLocation abbreviates the region segment of a "City, Region" location
// string. Strings without a comma pass through unchanged.
func FormatLocation(loc string) string {
	i := strings.LastIndex(loc, ", ")
	if i < 0 {
		return loc
	}
	return loc[:i+2] + format.AbbreviateRegion(loc[i+2:])
}

// NonEmptySkillGroups filters out skill groups with no keywords; the render
// engine never filters, so this happens before assembly.
func NonEmptySkillGroups(groups []types.SkillGroup) []types.SkillGroup {
	out := make([]types.SkillGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Keywords) > 0 {
			out = append(out, g)
		}
	}
	return out
}
