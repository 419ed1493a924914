package handlers

import (
	"log"
	"net/http"

	"github.com/careerprep-ai/careerprep-api/internal/dtos"
	"github.com/careerprep-ai/careerprep-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CareerHandler exposes the stateless resume-suggestion and career-advice
// endpoints.
type CareerHandler struct {
	Career *services.CareerService
}

func NewCareerHandler(career *services.CareerService) *CareerHandler {
	return &CareerHandler{Career: career}
}

// Suggest is the POST /suggest endpoint.
func (h *CareerHandler) Suggest(c *gin.Context) {
	var req dtos.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}

	result, err := h.Career.Suggest(c.Request.Context(), req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate suggestions"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CareerAI is the POST /career-ai endpoint. Every failure on this path,
// including a malformed request body, answers 500 and is logged.
func (h *CareerHandler) CareerAI(c *gin.Context) {
	var req dtos.CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("career-ai: bad request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate career advice"})
		return
	}

	result, err := h.Career.Advise(c.Request.Context(), &req)
	if err != nil {
		log.Printf("career-ai: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate career advice"})
		return
	}
	c.JSON(http.StatusOK, result)
}
