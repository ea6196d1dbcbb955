package docx

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonamar/resumagic/internal/markup"
	"github.com/jonamar/resumagic/internal/render"
	"github.com/jonamar/resumagic/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentXML extracts word/document.xml from a written .docx archive.
func documentXML(t *testing.T, path string) string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestWriter_WritesFile(t *testing.T) {
	blocks := []render.Block{
		{Kind: render.Paragraph, Spans: []markup.Span{{Text: "Jo Anders", Bold: true}}, FontSize: 22, Alignment: "center"},
		{Kind: render.Bullet, Spans: []markup.Span{{Text: "Did a thing"}}},
		{Kind: render.Paragraph, Spans: []markup.Span{{Text: "docs", LinkURL: "https://example.com"}}},
		{Kind: render.Spacer, SpacingAfter: 120},
		{Kind: render.PageBreak},
		{Kind: render.Paragraph, Spans: []markup.Span{{Text: "Second page", Italic: true}}, Color: "666666"},
	}

	path := filepath.Join(t.TempDir(), "out.docx")
	err := NewWriter(theme.Default()).Write(blocks, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriter_AppliesThemeFont(t *testing.T) {
	th := theme.Default()
	th.FontFamily = "Georgia"

	path := filepath.Join(t.TempDir(), "out.docx")
	blocks := []render.Block{
		{Kind: render.Paragraph, Spans: []markup.Span{{Text: "hello"}}},
	}
	require.NoError(t, NewWriter(th).Write(blocks, path))

	assert.Contains(t, documentXML(t, path), "Georgia")
}

func TestWriter_StylesLinkRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	blocks := []render.Block{{
		Kind:     render.Paragraph,
		Spans:    []markup.Span{{Text: "bold docs", Bold: true, LinkURL: "https://example.com"}},
		FontSize: 11,
	}}
	require.NoError(t, NewWriter(theme.Default()).Write(blocks, path))

	doc := documentXML(t, path)
	start := strings.Index(doc, "<w:hyperlink")
	require.NotEqual(t, -1, start, "expected a hyperlink element")
	end := strings.Index(doc[start:], "</w:hyperlink>")
	require.NotEqual(t, -1, end)
	link := doc[start : start+end]

	assert.Contains(t, link, "<w:b", "link run keeps the span's bold flag")
	assert.Contains(t, link, "<w:sz", "link run carries the block's size")
	assert.Contains(t, link, theme.Default().Color.Link)
}

func TestWriter_CreateFailure(t *testing.T) {
	err := NewWriter(theme.Default()).Write(nil, filepath.Join(t.TempDir(), "missing", "out.docx"))
	require.Error(t, err)
	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}
