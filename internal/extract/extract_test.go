package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionQuoted(t *testing.T) {
	got := Question(`He said "What is your biggest strength?" Thanks.`)
	assert.Equal(t, "What is your biggest strength?", got)
}

func TestQuestionCurlyQuoted(t *testing.T) {
	got := Question("Here you go: “Why do you want this role?” Good luck.")
	assert.Equal(t, "Why do you want this role?", got)
}

func TestQuestionBareQuestionMark(t *testing.T) {
	got := Question("Tell me about a challenge you faced? It matters.")
	assert.Equal(t, "Tell me about a challenge you faced?", got)
}

func TestQuestionPreambleBeforeQuestion(t *testing.T) {
	got := Question("Sure! Here is a question:\nWhat motivates you in your work?")
	assert.Equal(t, "What motivates you in your work?", got)
}

func TestQuestionNoQuestionMark(t *testing.T) {
	got := Question("Hello there\nmore text")
	assert.Equal(t, "Hello there", got)
}

func TestQuestionEmpty(t *testing.T) {
	assert.Equal(t, "", Question(""))
	assert.Equal(t, "", Question("   \n  "))
}

func TestQuestionNeverMultiline(t *testing.T) {
	inputs := []string{
		"line one\nline two with a question?",
		`"Is this quoted?" and more`,
		"plain text only",
		"",
	}
	for _, in := range inputs {
		assert.NotContains(t, Question(in), "\n", "input %q", in)
	}
}

func TestJSONFenced(t *testing.T) {
	var out struct {
		Skills []string `json:"skills"`
	}
	err := JSON("```json\n{\"skills\":[\"a\"]}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Skills)
}

func TestJSONWithSurroundingProse(t *testing.T) {
	var out struct {
		Advice string `json:"advice"`
	}
	err := JSON("Here is your result:\n{\"advice\":\"learn Go\"}\nHope that helps!", &out)
	require.NoError(t, err)
	assert.Equal(t, "learn Go", out.Advice)
}

func TestJSONNoBraces(t *testing.T) {
	var out map[string]any
	err := JSON("no json here at all", &out)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestJSONInvalidPayload(t *testing.T) {
	var out map[string]any
	err := JSON("{not valid json}", &out)
	assert.Error(t, err)
}
