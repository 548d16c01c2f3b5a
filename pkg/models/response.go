package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Candidate is one entry in the recruiter dashboard ranking.
type Candidate struct {
	Name           string   `json:"name"`
	Skills         []string `json:"skills"`
	MatchScore     int      `json:"match_score"`
	VerifiedBadges []string `json:"verified_badges"`
}

// DashboardResponse is the recruiter dashboard payload.
type DashboardResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// TaskVerificationResponse is the result of verifying a task submission.
type TaskVerificationResponse struct {
	Verified    bool    `json:"verified"`
	BadgeEarned *string `json:"badge_earned"`
	Feedback    string  `json:"feedback"`
}
