package main

import (
	"log"
	"os"

	"github.com/careerprep-ai/careerprep-api/internal/handlers"
	"github.com/careerprep-ai/careerprep-api/internal/services"
	"github.com/careerprep-ai/careerprep-api/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Environment: a missing .env is fine in deployed environments where
	// variables come from the process environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Core services
	llmService := services.NewLLMService()
	sessionStore := store.NewSessionStore()
	interviewService := services.NewInterviewService(llmService, sessionStore)
	careerService := services.NewCareerService(llmService)

	// Handlers
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	careerHandler := handlers.NewCareerHandler(careerService)

	// Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	r.GET("/health", handlers.HealthCheck)
	r.StaticFile("/", "./static/index.html")

	r.POST("/interview/start", interviewHandler.Start)
	r.POST("/interview/answer", interviewHandler.Answer)
	r.POST("/interview/clarify", interviewHandler.Clarify)
	r.POST("/interview/finish", interviewHandler.Finish)

	r.POST("/suggest", careerHandler.Suggest)
	r.POST("/career-ai", careerHandler.CareerAI)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Println("Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
