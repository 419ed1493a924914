package services

import (
	"context"
	"strings"
	"testing"

	"github.com/careerprep-ai/careerprep-api/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestParsesFencedJSON(t *testing.T) {
	llm := &stubLLM{reply: func(string) string {
		return "```json\n{\"summary\":\"Seasoned engineer\",\"skills\":[\"Go\",\"SQL\"],\"bullet_points\":[\"Cut latency 40%\"]}\n```"
	}}
	svc := NewCareerService(llm)

	result, err := svc.Suggest(context.Background(), "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer", result.Summary)
	assert.Equal(t, []string{"Go", "SQL"}, result.Skills)
	require.Len(t, result.BulletPoints, 1)
}

func TestSuggestRejectsNonJSONOutput(t *testing.T) {
	llm := &stubLLM{reply: func(string) string { return "I cannot answer that." }}
	svc := NewCareerService(llm)

	_, err := svc.Suggest(context.Background(), "Backend Engineer")
	assert.Error(t, err)
}

func TestSuggestRejectsSchemaViolations(t *testing.T) {
	// valid JSON but empty skills
	llm := &stubLLM{reply: func(string) string {
		return `{"summary":"ok","skills":[],"bullet_points":["x"]}`
	}}
	svc := NewCareerService(llm)

	_, err := svc.Suggest(context.Background(), "Backend Engineer")
	assert.Error(t, err)
}

func TestAdviseSkillsToCareer(t *testing.T) {
	llm := &stubLLM{reply: func(prompt string) string {
		return `{"careers":[{"title":"Data Engineer","reason":"SQL-heavy background","match_score":85}],"summary":"Lean into data work."}`
	}}
	svc := NewCareerService(llm)

	result, err := svc.Advise(context.Background(), &dtos.CareerRequest{
		Type:   dtos.CareerTypeSkillsToCareer,
		Skills: []string{"SQL", "Python"},
	})
	require.NoError(t, err)

	matches, ok := result.(*dtos.CareerMatchResult)
	require.True(t, ok)
	require.Len(t, matches.Careers, 1)
	assert.Equal(t, "Data Engineer", matches.Careers[0].Title)

	// the prompt should carry the skills, joined
	assert.Contains(t, llm.prompts[0], "SQL, Python")
}

func TestAdviseDefaultType(t *testing.T) {
	llm := &stubLLM{reply: func(string) string {
		return `{"advice":"Talk to people in the field.","next_steps":["Do informational interviews"],"resources":[]}`
	}}
	svc := NewCareerService(llm)

	result, err := svc.Advise(context.Background(), &dtos.CareerRequest{
		Type:  "general",
		Input: "Should I switch from QA to development?",
	})
	require.NoError(t, err)

	advice, ok := result.(*dtos.CareerAdviceResult)
	require.True(t, ok)
	assert.Equal(t, "Talk to people in the field.", advice.Advice)
	assert.True(t, strings.Contains(llm.prompts[0], "Should I switch from QA to development?"))
}

func TestAdviseMissingSkills(t *testing.T) {
	svc := NewCareerService(&stubLLM{})
	_, err := svc.Advise(context.Background(), &dtos.CareerRequest{Type: dtos.CareerTypeSkillsToCareer})
	assert.Error(t, err)
}

func TestAdviseMissingInput(t *testing.T) {
	svc := NewCareerService(&stubLLM{})
	_, err := svc.Advise(context.Background(), &dtos.CareerRequest{Type: "general"})
	assert.Error(t, err)
}
