package models

// RoadmapRequest is the request payload for generating a learning roadmap.
// An empty missing_skills list is valid and short-circuits to the
// no-remediation sentinel without a model call.
type RoadmapRequest struct {
	MissingSkills []string `json:"missing_skills"`
	JobRole       string   `json:"job_role" validate:"required"`
}

// TaskSubmission is a coding task submission for verification.
type TaskSubmission struct {
	TaskID   int    `json:"task_id"`
	Code     string `json:"code" validate:"required"`
	Language string `json:"language"`
}
