// Package theme supplies the fonts, sizes, colors, and spacing constants the
// document builders thread through into block attributes. The rendering core
// treats every value here as opaque; changing a theme never changes document
// structure, only its styling.
package theme

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Theme is the complete styling configuration for generated documents.
// Sizes are in points, colors are RRGGBB hex without the leading '#', and
// spacing values are in twips (1/20 pt), matching what the document writer
// expects.
type Theme struct {
	FontFamily string     `json:"fontFamily" validate:"required"`
	Bullet     string     `json:"bullet" validate:"required"`
	Size       SizeSet    `json:"size"`
	Color      ColorSet   `json:"color"`
	Spacing    SpacingSet `json:"spacing"`
}

// SizeSet holds the font sizes used by the document builders.
type SizeSet struct {
	Name    int `json:"name" validate:"required,gt=0"`
	Heading int `json:"heading" validate:"required,gt=0"`
	Body    int `json:"body" validate:"required,gt=0"`
	Detail  int `json:"detail" validate:"required,gt=0"`
	Footer  int `json:"footer" validate:"required,gt=0"`
}

// ColorSet holds the text colors used by the document builders.
type ColorSet struct {
	Text    string `json:"text" validate:"required,hexadecimal,len=6"`
	Muted   string `json:"muted" validate:"required,hexadecimal,len=6"`
	Heading string `json:"heading" validate:"required,hexadecimal,len=6"`
	Link    string `json:"link" validate:"required,hexadecimal,len=6"`
}

// SpacingSet holds the default spacing constants, in twips.
type SpacingSet struct {
	AfterHeading     int `json:"afterHeading" validate:"gte=0"`
	AfterHeaderLine  int `json:"afterHeaderLine" validate:"gte=0"`
	AfterDescription int `json:"afterDescription" validate:"gte=0"`
	AfterHighlight   int `json:"afterHighlight" validate:"gte=0"`
	AfterParagraph   int `json:"afterParagraph" validate:"gte=0"`
	ItemGap          int `json:"itemGap" validate:"gte=0"`
	LastItemGap      int `json:"lastItemGap" validate:"gte=0"`
	BeforeClosing    int `json:"beforeClosing" validate:"gte=0"`
	BeforeFooter     int `json:"beforeFooter" validate:"gte=0"`
}

// Default returns the stock theme used when no theme file is supplied.
func Default() *Theme {
	return &Theme{
		FontFamily: "Calibri",
		Bullet:     "•",
		Size: SizeSet{
			Name:    22,
			Heading: 13,
			Body:    11,
			Detail:  10,
			Footer:  9,
		},
		Color: ColorSet{
			Text:    "222222",
			Muted:   "666666",
			Heading: "1A1A1A",
			Link:    "0563C1",
		},
		Spacing: SpacingSet{
			AfterHeading:     120,
			AfterHeaderLine:  40,
			AfterDescription: 80,
			AfterHighlight:   40,
			AfterParagraph:   160,
			ItemGap:          160,
			LastItemGap:      80,
			BeforeClosing:    240,
			BeforeFooter:     360,
		},
	}
}

// Load reads and validates a theme JSON file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	var th Theme
	if err := json.Unmarshal(data, &th); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if err := th.Validate(); err != nil {
		return nil, err
	}
	return &th, nil
}

// Validate checks that every themed value is usable by the document writer.
func (t *Theme) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("theme validation failed: %w", err)
	}
	return nil
}
