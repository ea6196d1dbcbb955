package sections

import (
	"testing"

	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/theme"
	"github.com/jonamar/resumagic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainTexts(blocks []render.Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == render.Paragraph || b.Kind == render.Bullet {
			out = append(out, b.PlainText())
		}
	}
	return out
}

func TestExperience_HeaderLines(t *testing.T) {
	th := theme.Default()
	work := []types.WorkEntry{{
		Name:      "Acme Corp",
		Position:  "Staff Engineer",
		Location:  "Toronto, Ontario",
		StartDate: "2020-03",
		EndDate:   "",
		Highlights: []string{
			"Shipped the **flagship** product",
		},
	}}

	blocks := render.Section(work, Experience(th), th)
	texts := plainTexts(blocks)
	require.Len(t, texts, 5)
	assert.Equal(t, "Experience", texts[0])
	assert.Equal(t, "Staff Engineer", texts[1])
	assert.Equal(t, "Acme Corp • Toronto, ON", texts[2])
	assert.Equal(t, "March 2020 – Present", texts[3])
	assert.Equal(t, "Shipped the flagship product", texts[4])
}

func TestExperience_StandaloneEntryCarriesItemGap(t *testing.T) {
	th := theme.Default()
	work := []types.WorkEntry{
		{Name: "A", Position: "Dev", StartDate: "2018", EndDate: "2019"},
		{Name: "B", Position: "Dev", StartDate: "2019", EndDate: "2020"},
	}

	blocks := render.Section(work, Experience(th), th)
	var dateLines []render.Block
	for _, b := range blocks {
		if b.Color == th.Color.Muted {
			dateLines = append(dateLines, b)
		}
	}
	require.Len(t, dateLines, 2)
	assert.Equal(t, th.Spacing.ItemGap, dateLines[0].SpacingAfter)
	assert.Equal(t, th.Spacing.LastItemGap, dateLines[1].SpacingAfter)
	assert.False(t, dateLines[0].KeepNext)
}

func TestEducation_DegreeLine(t *testing.T) {
	th := theme.Default()
	edu := []types.EducationEntry{{
		Institution: "University of Waterloo",
		StudyType:   "BASc",
		Area:        "Systems Design Engineering",
		StartDate:   "2010",
		EndDate:     "2015",
	}}

	blocks := render.Section(edu, Education(th), th)
	texts := plainTexts(blocks)
	require.Len(t, texts, 4)
	assert.Equal(t, "University of Waterloo", texts[1])
	assert.Equal(t, "BASc, Systems Design Engineering", texts[2])
	assert.Equal(t, "2010 – 2015", texts[3])
}

func TestPublications_PublisherAndDateJoined(t *testing.T) {
	th := theme.Default()
	pubs := []types.Publication{{
		Name:        "On Document Assembly",
		Publisher:   "ACM Queue",
		ReleaseDate: "2021-06",
		Summary:     "A study of declarative layout.",
	}}

	blocks := render.Section(pubs, Publications(th), th)
	texts := plainTexts(blocks)
	require.Len(t, texts, 4)
	assert.Equal(t, "On Document Assembly", texts[1])
	assert.Equal(t, "ACM Queue • June 2021", texts[2])
	assert.Equal(t, "A study of declarative layout.", texts[3])
}

func TestFormatLocation(t *testing.T) {
	assert.Equal(t, "Toronto, ON", FormatLocation("Toronto, Ontario"))
	assert.Equal(t, "Oakland, CA", FormatLocation("Oakland, California"))
	assert.Equal(t, "Remote", FormatLocation("Remote"))
	assert.Equal(t, "Lisbon, Portugal", FormatLocation("Lisbon, Portugal"))
}

func TestNonEmptySkillGroups(t *testing.T) {
	groups := []types.SkillGroup{
		{Name: "Languages", Keywords: []string{"Go"}},
		{Name: "Empty"},
		{Name: "Tools", Keywords: []string{"Docker", "k8s"}},
	}
	filtered := NonEmptySkillGroups(groups)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Languages", filtered[0].Name)
	assert.Equal(t, "Tools", filtered[1].Name)
}
