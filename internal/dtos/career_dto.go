package dtos

type SuggestRequest struct {
	Role string `json:"role" binding:"required"`
}

// SuggestResult is the schema the model is asked to fill for /suggest.
// Parsed output is validated against the validate tags before it is
// returned to the caller.
type SuggestResult struct {
	Summary      string   `json:"summary" validate:"required"`
	Skills       []string `json:"skills" validate:"required,min=1"`
	BulletPoints []string `json:"bullet_points" validate:"required,min=1"`
}

// CareerTypeSkillsToCareer selects the skills-to-career prompt on
// /career-ai; any other type falls through to free-form advice.
const CareerTypeSkillsToCareer = "skills-to-career"

type CareerRequest struct {
	Type   string   `json:"type" binding:"required"`
	Skills []string `json:"skills"`
	Input  string   `json:"input"`
}

// CareerMatch is one recommended career for a skill set.
type CareerMatch struct {
	Title      string `json:"title" validate:"required"`
	Reason     string `json:"reason"`
	MatchScore int    `json:"match_score" validate:"min=0,max=100"`
}

// CareerMatchResult is the schema for type "skills-to-career".
type CareerMatchResult struct {
	Careers []CareerMatch `json:"careers" validate:"required,min=1,dive"`
	Summary string        `json:"summary"`
}

// CareerAdviceResult is the schema for every other type.
type CareerAdviceResult struct {
	Advice    string   `json:"advice" validate:"required"`
	NextSteps []string `json:"next_steps"`
	Resources []string `json:"resources"`
}
