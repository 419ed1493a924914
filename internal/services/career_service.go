package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/careerprep-ai/careerprep-api/internal/dtos"
	"github.com/careerprep-ai/careerprep-api/internal/extract"
	"github.com/go-playground/validator/v10"
)

const (
	suggestMaxTokens = 400
	careerMaxTokens  = 500
)

const suggestPrompt = `You are an expert resume writer. Generate resume content suggestions for a %s position.

Return ONLY a valid JSON object with this exact structure:
{
  "summary": "<a 2-3 sentence professional summary for this role>",
  "skills": ["<relevant skill>", "..."],
  "bullet_points": ["<a strong achievement-style resume bullet for this role>", "..."]
}

Return only the JSON object. No markdown, no explanation, no code blocks.`

const skillsToCareerPrompt = `You are an expert career counselor. The candidate has these skills: %s.

Recommend careers that fit this skill set. Return ONLY a valid JSON object with this exact structure:
{
  "careers": [
    {
      "title": "<career title>",
      "reason": "<why this career fits the given skills>",
      "match_score": <number 0-100>
    }
  ],
  "summary": "<1-2 sentence overall recommendation>"
}

Return only the JSON object. No markdown, no explanation, no code blocks.`

const careerAdvicePrompt = `You are an expert career counselor. A candidate asks:

%s

Give practical career advice. Return ONLY a valid JSON object with this exact structure:
{
  "advice": "<direct, practical advice, a short paragraph>",
  "next_steps": ["<concrete next step>", "..."],
  "resources": ["<book, course or site worth looking at>", "..."]
}

Return only the JSON object. No markdown, no explanation, no code blocks.`

// CareerService backs the stateless /suggest and /career-ai endpoints:
// prompt, one gateway call, JSON extraction, schema validation.
type CareerService struct {
	LLM      Generator
	validate *validator.Validate
}

func NewCareerService(llm Generator) *CareerService {
	return &CareerService{LLM: llm, validate: validator.New()}
}

// Suggest generates resume-content suggestions for a role.
func (s *CareerService) Suggest(ctx context.Context, role string) (*dtos.SuggestResult, error) {
	raw, err := s.LLM.Generate(ctx, fmt.Sprintf(suggestPrompt, role), suggestMaxTokens)
	if err != nil {
		return nil, err
	}

	var result dtos.SuggestResult
	if err := extract.JSON(raw, &result); err != nil {
		log.Printf("suggest: model output was not valid JSON: %q", raw)
		return nil, err
	}
	if err := s.validate.Struct(&result); err != nil {
		log.Printf("suggest: model JSON failed schema validation: %q", raw)
		return nil, err
	}
	return &result, nil
}

// Advise answers a /career-ai request. type "skills-to-career" maps skills
// to recommended careers; any other type is treated as a free-form advice
// question.
func (s *CareerService) Advise(ctx context.Context, req *dtos.CareerRequest) (any, error) {
	if req.Type == dtos.CareerTypeSkillsToCareer {
		if len(req.Skills) == 0 {
			return nil, fmt.Errorf("career: type %q requires a skills array", req.Type)
		}
		raw, err := s.LLM.Generate(ctx, fmt.Sprintf(skillsToCareerPrompt, strings.Join(req.Skills, ", ")), careerMaxTokens)
		if err != nil {
			return nil, err
		}
		var result dtos.CareerMatchResult
		if err := s.parse(raw, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	if req.Input == "" {
		return nil, fmt.Errorf("career: type %q requires an input string", req.Type)
	}
	raw, err := s.LLM.Generate(ctx, fmt.Sprintf(careerAdvicePrompt, req.Input), careerMaxTokens)
	if err != nil {
		return nil, err
	}
	var result dtos.CareerAdviceResult
	if err := s.parse(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *CareerService) parse(raw string, v any) error {
	if err := extract.JSON(raw, v); err != nil {
		log.Printf("career: model output was not valid JSON: %q", raw)
		return err
	}
	if err := s.validate.Struct(v); err != nil {
		log.Printf("career: model JSON failed schema validation: %q", raw)
		return err
	}
	return nil
}
