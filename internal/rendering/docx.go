package rendering

import (
	"os"
	"sort"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	docxNameSize    = "32"
	docxHeadingSize = "26"
)

// RenderDOCX assembles the resume record into a Word document and writes it
// to path. Sections appear in a fixed order: personal info header, education,
// skills, experience, projects, accomplishments. Missing sections are
// omitted; the renderer never fails on an empty section.
func RenderDOCX(record *types.ResumeRecord, path string) error {
	doc := docx.New().WithDefaultTheme()

	writeDocxHeader(doc, &record.PersonalInformation)
	writeDocxEducation(doc, record.Education)
	writeDocxSkills(doc, record.TechnicalKnowledge)
	writeDocxExperience(doc, record.Experience)
	writeDocxProjects(doc, record.AcademicProjects)
	writeDocxAccomplishments(doc, record.Accomplishments)

	f, err := os.Create(path)
	if err != nil {
		return &RenderError{
			Message: "failed to create output file " + path,
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	if _, err := doc.WriteTo(f); err != nil {
		return &RenderError{
			Message: "failed to write Word document",
			Cause:   err,
		}
	}

	return nil
}

func writeDocxHeader(doc *docx.Docx, info *types.PersonalInformation) {
	name := doc.AddParagraph().Justification("center")
	name.AddText(info.Name).Size(docxNameSize).Bold()

	fields := []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Website}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) > 0 {
		contact := doc.AddParagraph().Justification("center")
		contact.AddText(strings.Join(parts, " | "))
	}
}

func writeDocxHeading(doc *docx.Docx, title string) {
	doc.AddParagraph() // spacer
	heading := doc.AddParagraph()
	heading.AddText(title).Size(docxHeadingSize).Bold()
}

func writeDocxEducation(doc *docx.Docx, education []types.Education) {
	if len(education) == 0 {
		return
	}
	writeDocxHeading(doc, "EDUCATION")

	for _, edu := range education {
		title := doc.AddParagraph()
		title.AddText(edu.Degree + " - " + edu.Institution).Bold()
		if edu.Dates != "" {
			doc.AddParagraph().AddText(edu.Dates).Italic()
		}
		if edu.GPA != "" {
			doc.AddParagraph().AddText("GPA: " + edu.GPA)
		}
		if len(edu.Courses) > 0 {
			doc.AddParagraph().AddText("Relevant Coursework: " + strings.Join(edu.Courses, ", "))
		}
	}
}

func writeDocxSkills(doc *docx.Docx, knowledge map[string][]string) {
	if len(knowledge) == 0 {
		return
	}
	writeDocxHeading(doc, "TECHNICAL KNOWLEDGE")

	categories := make([]string, 0, len(knowledge))
	for category := range knowledge {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		skills := knowledge[category]
		if len(skills) == 0 {
			continue
		}
		para := doc.AddParagraph()
		para.AddText(category + ": ").Bold()
		para.AddText(strings.Join(skills, ", "))
	}
}

func writeDocxExperience(doc *docx.Docx, experience []types.Experience) {
	if len(experience) == 0 {
		return
	}
	writeDocxHeading(doc, "PROFESSIONAL EXPERIENCE")

	for _, exp := range experience {
		title := doc.AddParagraph()
		title.AddText(exp.Title + " - " + exp.Company).Bold()

		meta := make([]string, 0, 2)
		if exp.Dates != "" {
			meta = append(meta, exp.Dates)
		}
		if exp.Location != "" {
			meta = append(meta, exp.Location)
		}
		if len(meta) > 0 {
			doc.AddParagraph().AddText(strings.Join(meta, " | ")).Italic()
		}
		if len(exp.Tools) > 0 {
			doc.AddParagraph().AddText("Tools: " + strings.Join(exp.Tools, ", "))
		}
		for _, bullet := range exp.Responsibilities {
			doc.AddParagraph().AddText("• " + bullet)
		}
	}
}

func writeDocxProjects(doc *docx.Docx, projects []types.Project) {
	if len(projects) == 0 {
		return
	}
	writeDocxHeading(doc, "ACADEMIC PROJECTS")

	for _, project := range projects {
		title := doc.AddParagraph()
		title.AddText(project.Title).Bold()
		if len(project.Tools) > 0 {
			doc.AddParagraph().AddText("Tools: " + strings.Join(project.Tools, ", ")).Italic()
		}
		if project.Description != "" {
			doc.AddParagraph().AddText(project.Description)
		}
	}
}

func writeDocxAccomplishments(doc *docx.Docx, accomplishments []string) {
	if len(accomplishments) == 0 {
		return
	}
	writeDocxHeading(doc, "PERSONAL ACCOMPLISHMENTS")

	for _, accomplishment := range accomplishments {
		doc.AddParagraph().AddText("• " + accomplishment)
	}
}
