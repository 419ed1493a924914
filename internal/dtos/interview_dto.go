package dtos

import "github.com/careerprep-ai/careerprep-api/internal/interview"

type InterviewStartRequest struct {
	JobRole    string `json:"jobRole" binding:"required"`
	ResumeText string `json:"resumeText" binding:"required"`
}

type InterviewAnswerRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

type InterviewSessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// QuestionResponse is returned whenever the interview has a next question:
// start, non-terminal answers and clarify.
type QuestionResponse struct {
	SessionID     string          `json:"sessionId,omitempty"`
	Question      string          `json:"question"`
	Stage         interview.Stage `json:"stage"`
	QuestionCount int             `json:"questionCount,omitempty"`
}

// FeedbackResponse closes an interview, either from the final answer or an
// explicit finish.
type FeedbackResponse struct {
	Feedback  string `json:"feedback"`
	Completed bool   `json:"completed"`
}
