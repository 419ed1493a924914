package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWalksFullSequence(t *testing.T) {
	want := []Stage{StageBasic, StageRole, StageTechnical, StageResume, StageBehavioral, StageSalary}

	s := First()
	got := []Stage{s}
	for {
		next, ok := Next(s)
		if !ok {
			break
		}
		got = append(got, next)
		s = next
	}
	assert.Equal(t, want, got)
}

func TestNextSalaryIsTerminal(t *testing.T) {
	_, ok := Next(StageSalary)
	assert.False(t, ok)
}

func TestNextUnknownStage(t *testing.T) {
	_, ok := Next(Stage("made-up"))
	assert.False(t, ok)
}

func TestPromptForOnlyResumeStageEmbedsResume(t *testing.T) {
	const resume = "Shipped a payments service in Go"

	for _, s := range []Stage{StageBasic, StageRole, StageTechnical, StageResume, StageBehavioral, StageSalary} {
		prompt := PromptFor(s, "Backend Engineer", resume)
		require.NotEmpty(t, prompt)
		if s == StageResume {
			assert.Contains(t, prompt, resume)
		} else {
			assert.NotContains(t, prompt, resume, "stage %s must not leak the resume", s)
		}
	}
}

func TestPromptForEmbedsJobRole(t *testing.T) {
	prompt := PromptFor(StageTechnical, "Backend Engineer", "")
	assert.Contains(t, prompt, "Backend Engineer")
}
