// Package rendering turns the final resume record into typeset output:
// a LaTeX source file compiled to PDF, or a Word document.
package rendering

import (
	_ "embed"
	"sort"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed resume.tmpl.tex
var latexTemplate string

// TemplateData is the fully escaped data structure bound to the LaTeX
// template. Every field is escaped before it reaches the template; the
// template itself never escapes.
type TemplateData struct {
	Name            string
	ContactLine     string
	Education       []EducationSection
	Skills          []SkillRow
	Experience      []ExperienceSection
	Projects        []ProjectSection
	Accomplishments []string
}

// EducationSection is one education entry prepared for the template
type EducationSection struct {
	Degree      string
	Institution string
	Dates       string
	GPA         string
	Courses     string
}

// SkillRow is one technical knowledge category with its skills joined
type SkillRow struct {
	Category string
	Skills   string
}

// ExperienceSection is one professional experience entry prepared for the template
type ExperienceSection struct {
	Title    string
	Company  string
	Location string
	Dates    string
	Tools    string
	Bullets  []string
}

// ProjectSection is one academic project entry prepared for the template
type ProjectSection struct {
	Title       string
	Tools       string
	Description string
}

// RenderLaTeX renders the resume record into a complete LaTeX document.
// Output is deterministic for a given record: skill categories are emitted
// in sorted order and nothing time-dependent enters the document.
func RenderLaTeX(record *types.ResumeRecord) (string, error) {
	tmpl, err := template.New("resume").Parse(latexTemplate)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse embedded template",
			Cause:   err,
		}
	}

	data := buildTemplateData(record)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// buildTemplateData escapes and flattens the record into template bindings.
// Missing sections become empty slices and are skipped by the template.
func buildTemplateData(record *types.ResumeRecord) *TemplateData {
	data := &TemplateData{
		Name:        EscapeLaTeX(record.PersonalInformation.Name),
		ContactLine: buildContactLine(&record.PersonalInformation),
	}

	for _, edu := range record.Education {
		data.Education = append(data.Education, EducationSection{
			Degree:      EscapeLaTeX(edu.Degree),
			Institution: EscapeLaTeX(edu.Institution),
			Dates:       EscapeLaTeX(edu.Dates),
			GPA:         EscapeLaTeX(edu.GPA),
			Courses:     escapeJoin(edu.Courses),
		})
	}

	categories := make([]string, 0, len(record.TechnicalKnowledge))
	for category := range record.TechnicalKnowledge {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		skills := record.TechnicalKnowledge[category]
		if len(skills) == 0 {
			continue
		}
		data.Skills = append(data.Skills, SkillRow{
			Category: EscapeLaTeX(category),
			Skills:   escapeJoin(skills),
		})
	}

	for _, exp := range record.Experience {
		section := ExperienceSection{
			Title:    EscapeLaTeX(exp.Title),
			Company:  EscapeLaTeX(exp.Company),
			Location: EscapeLaTeX(exp.Location),
			Dates:    EscapeLaTeX(exp.Dates),
			Tools:    escapeJoin(exp.Tools),
		}
		for _, bullet := range exp.Responsibilities {
			section.Bullets = append(section.Bullets, EscapeLaTeX(bullet))
		}
		data.Experience = append(data.Experience, section)
	}

	for _, project := range record.AcademicProjects {
		data.Projects = append(data.Projects, ProjectSection{
			Title:       EscapeLaTeX(project.Title),
			Tools:       escapeJoin(project.Tools),
			Description: EscapeLaTeX(project.Description),
		})
	}

	for _, accomplishment := range record.Accomplishments {
		data.Accomplishments = append(data.Accomplishments, EscapeLaTeX(accomplishment))
	}

	return data
}

// buildContactLine joins the non-empty contact fields with separators
func buildContactLine(info *types.PersonalInformation) string {
	fields := []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Website}

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			parts = append(parts, EscapeLaTeX(field))
		}
	}
	return strings.Join(parts, ` $\vert$ `)
}

func escapeJoin(items []string) string {
	escaped := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			escaped = append(escaped, EscapeLaTeX(item))
		}
	}
	return strings.Join(escaped, ", ")
}
