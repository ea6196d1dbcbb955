//nolint:revive // types is a standard Go package name pattern
package types

// CoverLetter is the structured cover-letter input: metadata plus an ordered
// list of freeform content blocks.
type CoverLetter struct {
	Metadata   CoverLetterMetadata `json:"metadata"`
	Content    []ContentBlock      `json:"content"`
	FooterNote string              `json:"footerNote,omitempty"`
}

// CoverLetterMetadata identifies the author and carries the contact details
// rendered in the letter's footer.
type CoverLetterMetadata struct {
	Name     string   `json:"name"`
	Pronouns string   `json:"pronouns,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location Location `json:"location,omitempty"`
}

// ContentBlock is one author-side unit of cover-letter body content: either
// a paragraph of markup text or a bulleted list of markup items.
type ContentBlock struct {
	Type  string   `json:"type"` // "paragraph" or "list"
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Content block types.
const (
	BlockParagraph = "paragraph"
	BlockList      = "list"
)
