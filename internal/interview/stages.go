// Package interview holds the fixed stage sequence of a mock interview and
// the per-stage prompt templates. The machine is pure; session state lives
// in the store.
package interview

import "fmt"

// Stage is one of the six fixed points of the interview flow.
type Stage string

const (
	StageBasic      Stage = "basic"
	StageRole       Stage = "role"
	StageTechnical  Stage = "technical"
	StageResume     Stage = "resume"
	StageBehavioral Stage = "behavioral"
	StageSalary     Stage = "salary"
)

// order is the forward-only sequence; stages are never skipped or revisited.
var order = []Stage{StageBasic, StageRole, StageTechnical, StageResume, StageBehavioral, StageSalary}

// First returns the stage every new session starts at.
func First() Stage { return order[0] }

// Next returns the stage that follows s. ok is false when s is the final
// stage (salary) or not a known stage.
func Next(s Stage) (next Stage, ok bool) {
	for i, st := range order {
		if st == s && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return "", false
}

// PromptFor builds the question-generation prompt for a stage. Only the
// resume stage embeds the candidate's resume text; the rest use the job
// role alone.
func PromptFor(s Stage, jobRole, resumeText string) string {
	switch s {
	case StageBasic:
		return "You are a professional interviewer. Ask one short icebreaker question to open a mock interview, such as asking the candidate to introduce themselves. Reply with only the question, nothing else."
	case StageRole:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Ask one question about their motivation and understanding of this role. Reply with only the question, nothing else.", jobRole)
	case StageTechnical:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Ask one technical question appropriate for this role. Reply with only the question, nothing else.", jobRole)
	case StageResume:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Their resume is below. Ask one specific question about something on the resume.\n\nRESUME:\n%s\n\nReply with only the question, nothing else.", jobRole, resumeText)
	case StageBehavioral:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Ask one behavioral question about teamwork, conflict or past challenges. Reply with only the question, nothing else.", jobRole)
	case StageSalary:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Ask one question about their salary expectations. Reply with only the question, nothing else.", jobRole)
	default:
		return fmt.Sprintf("You are interviewing a candidate for a %s position. Ask one interview question. Reply with only the question, nothing else.", jobRole)
	}
}
