package models

// DocumentBlob is an uploaded document held in memory for the duration of a
// single request. The bytes are never mutated after receipt.
type DocumentBlob struct {
	Filename  string
	MediaType string
	Data      []byte
}

// SkillEntry is a single skill the job description requires but the resume
// does not mention. Matching downstream is by name.
type SkillEntry struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category"`
	Importance string `json:"importance" validate:"oneof=High Medium Low"`
}

// SkillGapReport is the result of comparing a resume against a job
// description. A report is either successful (job title, score, missing
// skills) or degraded (Error set, score zero, no skills) - never both.
type SkillGapReport struct {
	JobTitle      string       `json:"job_title" validate:"required"`
	MatchScore    int          `json:"match_score" validate:"min=0,max=100"`
	MissingSkills []SkillEntry `json:"missing_skills" validate:"dive"`
	Error         string       `json:"error,omitempty"`
}

// NewErrorReport builds the degraded report variant with zero-valued
// companion fields so the route layer always receives a well-formed report.
func NewErrorReport(message string) *SkillGapReport {
	return &SkillGapReport{
		MatchScore:    0,
		MissingSkills: []SkillEntry{},
		Error:         message,
	}
}

// RoadmapWeek is one week of a remediation plan.
type RoadmapWeek struct {
	WeekNumber int      `json:"week_number" validate:"min=1"`
	Theme      string   `json:"theme"`
	Topics     []string `json:"topics"`
	Project    string   `json:"project"`
}

// Roadmap is a multi-week learning plan covering a set of missing skills, or
// a degraded variant carrying only Error.
type Roadmap struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Weeks       []RoadmapWeek `json:"weeks" validate:"dive"`
	Error       string        `json:"error,omitempty"`
}

// NewErrorRoadmap builds the degraded roadmap variant.
func NewErrorRoadmap(message string) *Roadmap {
	return &Roadmap{
		Weeks: []RoadmapWeek{},
		Error: message,
	}
}

// InferenceRequest is a single chat completion request against the model
// server. Constructed fresh per call and never persisted.
type InferenceRequest struct {
	Model        string `json:"model_id"`
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
	Format       string `json:"response_format"`
}
