// Package types provides the structured input records for resume and
// cover-letter generation. Field names follow the JSON Resume conventions
// used by the authoring data files.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the full structured resume input.
type Resume struct {
	Basics       Basics           `json:"basics"`
	Work         []WorkEntry      `json:"work,omitempty"`
	Education    []EducationEntry `json:"education,omitempty"`
	Skills       []SkillGroup     `json:"skills,omitempty"`
	Projects     []Project        `json:"projects,omitempty"`
	Publications []Publication    `json:"publications,omitempty"`
	Languages    []LanguageEntry  `json:"languages,omitempty"`
	Meta         Meta             `json:"meta,omitempty"`
}

// Basics holds the candidate's identity and contact information.
type Basics struct {
	Name     string   `json:"name"`
	Label    string   `json:"label,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	URL      string   `json:"url,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Pronouns string   `json:"pronouns,omitempty"`
	Location Location `json:"location,omitempty"`
}

// Location is a city/region pair; Region may be a full province or state
// name, abbreviated at render time.
type Location struct {
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// WorkEntry is one position in the work history.
type WorkEntry struct {
	Name       string   `json:"name"` // employer name
	Position   string   `json:"position"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"` // empty means current
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry is one credential in the education history.
type EducationEntry struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Honors      []string `json:"honors,omitempty"`
}

// SkillGroup is a named group of skill keywords.
type SkillGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// Project is one portfolio project.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Publication is one published work.
type Publication struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// LanguageEntry is one spoken language with its fluency level.
type LanguageEntry struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

// Meta carries document-level extras outside the resume sections.
type Meta struct {
	FooterNote string `json:"footerNote,omitempty"`
}
