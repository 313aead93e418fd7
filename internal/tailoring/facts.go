package tailoring

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// EnforceFacts copies the designated factual fields from the original record
// over the rewritten one: contact details, company names, locations, job
// titles, institution names, degree names, GPA values, and all dates. The
// model is instructed not to touch these, but the invariant is enforced here
// rather than trusted. Both records must have the same education and
// experience entry counts (guaranteed by checkStructure) and be in the same
// order (guaranteed by realignSections).
func EnforceFacts(original, rewritten *types.ResumeRecord) {
	rewritten.PersonalInformation = original.PersonalInformation

	for i := range rewritten.Education {
		rewritten.Education[i].Institution = original.Education[i].Institution
		rewritten.Education[i].Degree = original.Education[i].Degree
		rewritten.Education[i].Dates = original.Education[i].Dates
		rewritten.Education[i].GPA = original.Education[i].GPA
	}

	for i := range rewritten.Experience {
		rewritten.Experience[i].Company = original.Experience[i].Company
		rewritten.Experience[i].Location = original.Experience[i].Location
		rewritten.Experience[i].Title = original.Experience[i].Title
		rewritten.Experience[i].Dates = original.Experience[i].Dates
	}
}

// realignSections reorders the rewritten education and experience entries to
// match the original record's order, so EnforceFacts never stamps one
// employer's facts onto another employer's rewritten bullets when the model
// returns the entries shuffled. Experience is matched by company (plus title
// when a company appears twice), education by institution (plus degree).
// Entries whose matching key was itself rewritten keep their relative order
// and are corrected field-by-field by EnforceFacts.
func realignSections(original, rewritten *types.ResumeRecord) {
	rewritten.Experience = alignExperience(original.Experience, rewritten.Experience)
	rewritten.Education = alignEducation(original.Education, rewritten.Education)
}

func alignExperience(original, rewritten []types.Experience) []types.Experience {
	aligned := make([]types.Experience, len(original))
	matched := make([]bool, len(original))
	used := make([]bool, len(rewritten))

	// First pass matches company and title, second pass company alone, so
	// two stints at the same employer keep their own titles.
	for pass := 0; pass < 2; pass++ {
		for i := range original {
			if matched[i] {
				continue
			}
			for j := range rewritten {
				if used[j] || !keyEqual(rewritten[j].Company, original[i].Company) {
					continue
				}
				if pass == 0 && !keyEqual(rewritten[j].Title, original[i].Title) {
					continue
				}
				aligned[i] = rewritten[j]
				matched[i] = true
				used[j] = true
				break
			}
		}
	}

	fillUnmatched(matched, used, func(i, j int) { aligned[i] = rewritten[j] })
	return aligned
}

func alignEducation(original, rewritten []types.Education) []types.Education {
	aligned := make([]types.Education, len(original))
	matched := make([]bool, len(original))
	used := make([]bool, len(rewritten))

	for pass := 0; pass < 2; pass++ {
		for i := range original {
			if matched[i] {
				continue
			}
			for j := range rewritten {
				if used[j] || !keyEqual(rewritten[j].Institution, original[i].Institution) {
					continue
				}
				if pass == 0 && !keyEqual(rewritten[j].Degree, original[i].Degree) {
					continue
				}
				aligned[i] = rewritten[j]
				matched[i] = true
				used[j] = true
				break
			}
		}
	}

	fillUnmatched(matched, used, func(i, j int) { aligned[i] = rewritten[j] })
	return aligned
}

// fillUnmatched assigns the leftover rewritten entries to the leftover
// original slots in order, preserving the positional behavior for entries the
// model renamed.
func fillUnmatched(matched, used []bool, assign func(i, j int)) {
	next := 0
	for i := range matched {
		if matched[i] {
			continue
		}
		for used[next] {
			next++
		}
		assign(i, next)
		used[next] = true
	}
}

func keyEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
