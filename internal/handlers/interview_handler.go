package handlers

import (
	"errors"
	"net/http"

	"github.com/careerprep-ai/careerprep-api/internal/dtos"
	"github.com/careerprep-ai/careerprep-api/internal/services"
	"github.com/careerprep-ai/careerprep-api/internal/store"
	"github.com/gin-gonic/gin"
)

// InterviewHandler exposes the mock-interview flow over HTTP.
type InterviewHandler struct {
	Interview *services.InterviewService
}

func NewInterviewHandler(interview *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{Interview: interview}
}

// Start is the POST /interview/start endpoint.
func (h *InterviewHandler) Start(c *gin.Context) {
	var req dtos.InterviewStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobRole and resumeText are required"})
		return
	}

	resp, err := h.Interview.Start(c.Request.Context(), req.JobRole, req.ResumeText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Answer is the POST /interview/answer endpoint.
func (h *InterviewHandler) Answer(c *gin.Context) {
	var req dtos.InterviewAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and answer are required"})
		return
	}

	question, feedback, err := h.Interview.Answer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate question: " + err.Error()})
		return
	}
	if feedback != nil {
		c.JSON(http.StatusOK, feedback)
		return
	}
	c.JSON(http.StatusOK, question)
}

// Clarify is the POST /interview/clarify endpoint.
func (h *InterviewHandler) Clarify(c *gin.Context) {
	var req dtos.InterviewSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	resp, err := h.Interview.Clarify(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, services.ErrNoQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No question to clarify for this session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rephrase question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Finish is the POST /interview/finish endpoint.
func (h *InterviewHandler) Finish(c *gin.Context) {
	var req dtos.InterviewSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	resp, err := h.Interview.Finish(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate feedback: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
