// Package schemas bundles the JSON Schemas for the structured input files.
// They are embedded so validation works regardless of the working directory
// the CLI runs from.
package schemas

import _ "embed"

// Resume is the JSON Schema for resume input files.
//
//go:embed resume.schema.json
var Resume []byte

// CoverLetter is the JSON Schema for cover-letter input files.
//
//go:embed cover_letter.schema.json
var CoverLetter []byte
