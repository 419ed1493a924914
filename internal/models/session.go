package models

import (
	"time"

	"github.com/careerprep-ai/careerprep-api/internal/interview"
)

// QA is one asked question and the candidate's answer to it.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewSession tracks one in-progress mock interview. It lives only in
// process memory, from /interview/start until the salary-stage answer or an
// explicit /interview/finish.
type InterviewSession struct {
	ID         string          `json:"session_id"`
	JobRole    string          `json:"job_role"`
	ResumeText string          `json:"-"`
	Stage      interview.Stage `json:"stage"`

	// History grows by exactly one entry per answer; LastQuestion is
	// overwritten on every new question or clarify.
	History      []QA   `json:"history"`
	LastQuestion string `json:"last_question"`

	CreatedAt time.Time `json:"created_at"`
}
