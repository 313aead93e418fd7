package types

// JobRequirements represents the skills, keywords, and role summary extracted
// from a job description. Read-only after creation.
type JobRequirements struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
	Seniority       string   `json:"seniority,omitempty"`
	RoleSummary     string   `json:"role_summary,omitempty"`
}

// Normalize replaces nil collections with empty ones
func (j *JobRequirements) Normalize() {
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	if j.PreferredSkills == nil {
		j.PreferredSkills = []string{}
	}
	if j.Keywords == nil {
		j.Keywords = []string{}
	}
}

// MatchReport summarizes the lexical overlap between the raw resume text and
// the job description, computed locally before the rewrite stage.
type MatchReport struct {
	Score         float64  `json:"score"` // 0.0-1.0 cosine similarity
	MissingSkills []string `json:"missing_skills"`
}
