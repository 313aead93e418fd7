// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:  %s\n", record.PersonalInformation.Name))
	if record.PersonalInformation.Email != "" {
		sb.WriteString(fmt.Sprintf("Email: %s\n", record.PersonalInformation.Email))
	}
	sb.WriteString("\n")

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range record.Education {
			entry := fmt.Sprintf("%s, %s", edu.Degree, edu.Institution)
			if len(entry) > 50 {
				entry = entry[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		sb.WriteString("\n")
	}

	if len(record.TechnicalKnowledge) > 0 {
		categories := make([]string, 0, len(record.TechnicalKnowledge))
		for category := range record.TechnicalKnowledge {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		sb.WriteString(fmt.Sprintf("Skill categories: %s\n\n", strings.Join(categories, ", ")))
	}

	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Academic projects:   %d\n", len(record.AcademicProjects)))
	sb.WriteString(fmt.Sprintf("Accomplishments:     %d", len(record.Accomplishments)))

	p.printBox("PARSED RESUME RECORD", sb.String())
}

// PrintJobRequirements outputs the extracted job requirements.
func (p *Printer) PrintJobRequirements(requirements *types.JobRequirements) {
	if requirements == nil {
		return
	}

	var sb strings.Builder

	if requirements.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority: %s\n", requirements.Seniority))
	}
	if requirements.RoleSummary != "" {
		summary := requirements.RoleSummary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Role:      %s\n", summary))
	}
	sb.WriteString("\n")

	if len(requirements.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(requirements.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", requirements.RequiredSkills[i]))
		}
		if len(requirements.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(requirements.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(requirements.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(requirements.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", requirements.PreferredSkills[i]))
		}
		if len(requirements.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(requirements.PreferredSkills)-3))
		}
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the local keyword match score and gaps.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.2f\n", report.Score))

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\n✅ No missing skills detected\n")
	}

	p.printBox("KEYWORD MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
