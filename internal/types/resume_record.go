// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the canonical structured representation of a resume's content.
// It is produced once by the resume parser, rewritten by the tailoring stage,
// and consumed read-only by the renderers. Field names and nesting must stay
// stable between the parser output and the renderer bindings.
type ResumeRecord struct {
	PersonalInformation PersonalInformation `json:"personal_information"`
	Education           []Education         `json:"education"`
	TechnicalKnowledge  map[string][]string `json:"technical_knowledge"`
	Experience          []Experience        `json:"professional_experience"`
	AcademicProjects    []Project           `json:"academic_projects"`
	Accomplishments     []string            `json:"personal_accomplishments"`
}

// PersonalInformation holds the candidate's contact details
type PersonalInformation struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Dates       string   `json:"dates,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// Experience represents a single professional experience entry
type Experience struct {
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Title            string   `json:"title"`
	Dates            string   `json:"dates,omitempty"`
	Tools            []string `json:"tools,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// Project represents a single academic project entry
type Project struct {
	Title       string   `json:"title"`
	Tools       []string `json:"tools,omitempty"`
	Description string   `json:"description"`
}

// Normalize replaces nil collections with empty ones so that every field the
// renderers bind is present. Renderers rely on this invariant and never check
// for nil sections themselves.
func (r *ResumeRecord) Normalize() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.TechnicalKnowledge == nil {
		r.TechnicalKnowledge = map[string][]string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.AcademicProjects == nil {
		r.AcademicProjects = []Project{}
	}
	if r.Accomplishments == nil {
		r.Accomplishments = []string{}
	}
	for i := range r.Education {
		if r.Education[i].Courses == nil {
			r.Education[i].Courses = []string{}
		}
	}
	for i := range r.Experience {
		if r.Experience[i].Tools == nil {
			r.Experience[i].Tools = []string{}
		}
		if r.Experience[i].Responsibilities == nil {
			r.Experience[i].Responsibilities = []string{}
		}
	}
	for i := range r.AcademicProjects {
		if r.AcademicProjects[i].Tools == nil {
			r.AcademicProjects[i].Tools = []string{}
		}
	}
}
