// Package markup parses the lightweight inline markup used in resume and
// cover-letter text fields (**bold**, *italic*, [label](url)) into styled
// spans.
package markup

import "strings"

// Span is a maximal run of text sharing the same style flags.
type Span struct {
	Text    string `json:"text"`
	Bold    bool   `json:"bold,omitempty"`
	Italic  bool   `json:"italic,omitempty"`
	LinkURL string `json:"linkUrl,omitempty"`
}

// Parse scans text left to right and splits it into styled spans. Marker
// pairs must be matched; an unterminated opening marker is kept as literal
// text. Bold and italic may wrap the same substring. Link labels inherit the
// bold/italic flags of any enclosing markers. Parse never fails: malformed
// markup degrades to literal text.
func Parse(text string) []Span {
	return scan(text, true)
}

// ParseInline behaves like Parse but treats [label](url) as literal text.
// It is used for fields where hyperlinks are structurally disallowed, such
// as header lines.
func ParseInline(text string) []Span {
	return scan(text, false)
}

func scan(text string, links bool) []Span {
	var spans []Span
	var buf strings.Builder
	bold, italic := false, false
	boldEnd, italicEnd := -1, -1

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, Span{Text: buf.String(), Bold: bold, Italic: italic})
		buf.Reset()
	}

	i := 0
	for i < len(text) {
		if i == boldEnd {
			flush()
			bold = false
			boldEnd = -1
			i += 2
			// An italic closer swallowed by the bold marker can no
			// longer match; degrade it rather than style the rest.
			if italicEnd != -1 && italicEnd < i {
				italic = false
				italicEnd = -1
			}
			continue
		}
		if i == italicEnd {
			flush()
			italic = false
			italicEnd = -1
			i++
			if boldEnd != -1 && boldEnd < i {
				bold = false
				boldEnd = -1
			}
			continue
		}

		// "***text***" opens bold and italic together.
		if !bold && !italic && strings.HasPrefix(text[i:], "***") {
			if end := strings.Index(text[i+3:], "***"); end > 0 {
				flush()
				bold, italic = true, true
				boldEnd = i + 3 + end
				italicEnd = boldEnd + 2
				i += 3
				continue
			}
		}

		if !bold && strings.HasPrefix(text[i:], "**") {
			end := strings.Index(text[i+2:], "**")
			switch {
			case end > 0:
				flush()
				bold = true
				boldEnd = i + 2 + end
				i += 2
			case end == 0:
				// Empty match: consume the markers, emit nothing.
				i += 4
			default:
				buf.WriteString("**")
				i += 2
			}
			continue
		}

		if !italic && text[i] == '*' {
			end := strings.IndexByte(text[i+1:], '*')
			switch {
			case end > 0:
				flush()
				italic = true
				italicEnd = i + 1 + end
				i++
			case end == 0:
				i += 2
			default:
				buf.WriteByte('*')
				i++
			}
			continue
		}

		if links && text[i] == '[' {
			label, url, consumed := matchLink(text[i:])
			if consumed > 0 {
				flush()
				if label != "" {
					spans = append(spans, Span{Text: label, Bold: bold, Italic: italic, LinkURL: url})
				}
				i += consumed
				continue
			}
		}

		buf.WriteByte(text[i])
		i++
	}
	flush()

	return spans
}

// matchLink attempts to match "[label](url)" at the start of s. It returns
// the label, the URL, and the number of bytes consumed, or consumed == 0 if
// s does not start with a complete link.
func matchLink(s string) (label, url string, consumed int) {
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", 0
	}
	label = s[1:closeBracket]
	url = s[closeBracket+2 : closeBracket+2+closeParen]
	return label, url, closeBracket + 2 + closeParen + 1
}
