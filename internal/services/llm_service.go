package services

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// Generator is the outbound model-API port. InterviewService and
// CareerService depend on this instead of the concrete client so tests can
// stub the model.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// LLMService sends prompts to the Groq chat-completion API. One outbound
// call per Generate; no retries, no caching, no streaming.
type LLMService struct {
	client llms.Model
}

// NewLLMService initializes the Groq client from GROQ_API_KEY.
func NewLLMService() *LLMService {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Fatal("GROQ_API_KEY is empty. Did you load the .env file?")
	}

	// Groq speaks the OpenAI chat-completions wire format, so the openai
	// provider works against it with a swapped base URL.
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(groqBaseURL),
		openai.WithModel(groqModel),
	)
	if err != nil {
		log.Fatal("Failed to create Groq client:", err)
	}

	return &LLMService{client: llm}
}

// Generate returns the first choice's message content for prompt. A
// response with no usable content degrades silently to the empty string;
// transport and HTTP failures propagate to the caller.
func (s *LLMService) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt, llms.WithMaxTokens(maxTokens))
	if err != nil {
		if errors.Is(err, openai.ErrEmptyResponse) {
			return "", nil
		}
		return "", err
	}
	return resp, nil
}
