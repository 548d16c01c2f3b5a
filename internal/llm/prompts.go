package llm

import (
	"fmt"
	"strings"

	"skillbridge/internal/config"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// Hard caps applied to interpolated data before prompt assembly, bounding
// request size and model context usage. Oversized input is truncated, never
// rejected.
const (
	maxResumeChars         = 4000
	maxJobDescriptionChars = 2000
)

// The system prompts below are a stable contract: observed model behavior is
// tied to their exact wording, so changes here change analysis results.
const analysisSystemPrompt = `You are an AI Recruiter.
Analyze the Resume against the Job Description (JD).

If the input is NOT a resume (e.g. manual, code, book), return:
{"job_title": "Invalid Document", "match_score": 0, "missing_skills": [{"name": "Invalid File", "category": "Error", "importance": "High"}]}

If it IS a resume, return a JSON object with:
1. "job_title": Extract from JD.
2. "match_score": 0-100 integer.
3. "missing_skills": A LIST of objects.
   - CRITICAL: Only list skills that are REQUIRED in the JD but COMPLETELY ABSENT from the Resume.
   - Do NOT list skills if they are present (check for synonyms, e.g., "JS" = "JavaScript", "React.js" = "React").
   - Each object MUST have: "name", "category", "importance" ("High", "Medium", "Low").

Example Response:
{
    "job_title": "Software Engineer",
    "match_score": 75,
    "missing_skills": [
        {"name": "React", "category": "Frontend", "importance": "High"},
        {"name": "Docker", "category": "DevOps", "importance": "Medium"}
    ]
}

Return ONLY valid JSON. No Markdown. No extra text.`

const roadmapSystemPrompt = `You are an expert Technical Career Coach.
Create a 4-week learning roadmap to help a candidate acquire the specified Missing Skills for the target Job Role.

Return a JSON object with this structure:
{
    "title": "Roadmap Title",
    "description": "Brief overview",
    "weeks": [
        {
            "week_number": 1,
            "theme": "Core Concepts",
            "topics": ["Topic 1", "Topic 2"],
            "project": "Mini Project Idea"
        }
    ]
}

Keep it concise. Return ONLY valid JSON.`

// PromptBuilder assembles deterministic inference requests for each task.
// Methods are pure: no I/O and no failure modes.
type PromptBuilder struct {
	model string
}

// NewPromptBuilder creates a prompt builder bound to the configured model
func NewPromptBuilder(cfg *config.Config) *PromptBuilder {
	return &PromptBuilder{
		model: cfg.LLM.Model,
	}
}

// BuildAnalysisRequest builds the resume/JD comparison request. The resume
// and job description are truncated before being interpolated, so the
// instruction block is never cut.
func (b *PromptBuilder) BuildAnalysisRequest(resumeText, jobDescription string) *models.InferenceRequest {
	userPrompt := fmt.Sprintf("RESUME:\n%s\n\nJD:\n%s",
		utils.Truncate(resumeText, maxResumeChars),
		utils.Truncate(jobDescription, maxJobDescriptionChars),
	)

	return &models.InferenceRequest{
		Model:        b.model,
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   userPrompt,
		Format:       "json",
	}
}

// BuildRoadmapRequest builds the remediation-plan request for a list of
// missing skills and the target job role.
func (b *PromptBuilder) BuildRoadmapRequest(missingSkills []string, jobRole string) *models.InferenceRequest {
	userPrompt := fmt.Sprintf("JOB ROLE: %s\nMISSING SKILLS: %s",
		jobRole,
		strings.Join(missingSkills, ", "),
	)

	return &models.InferenceRequest{
		Model:        b.model,
		SystemPrompt: roadmapSystemPrompt,
		UserPrompt:   userPrompt,
		Format:       "json",
	}
}
