package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_EmbedsInputsAndRules(t *testing.T) {
	question := "What is the average volume for MSFT?"
	expected := "12977.52"
	output := "MachineAnswer: $12,977.52\nReasoning: the average volume is 12,977.52"

	prompt := buildPrompt(question, expected, output)

	assert.Contains(t, prompt, "Question: "+question)
	assert.Contains(t, prompt, "Expected Answer: "+expected)
	assert.Contains(t, prompt, output)

	// Rule set the external service is asked to apply.
	assert.Contains(t, prompt, "±0.01")
	assert.Contains(t, prompt, "Case-insensitive matching")
	assert.Contains(t, prompt, "First check MachineAnswer field")
	assert.Contains(t, prompt, `"Which X has highest/lowest Y"`)
	assert.Contains(t, prompt, `"X rows", "X records", "X unique values"`)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := buildPrompt("q", "e", "out")
	b := buildPrompt("q", "e", "out")
	assert.Equal(t, a, b)
}

func TestResultSchema_Shape(t *testing.T) {
	data, err := json.Marshal(&resultSchema)
	require.NoError(t, err)

	var decoded struct {
		Type                 string                     `json:"type"`
		Properties           map[string]json.RawMessage `json:"properties"`
		Required             []string                   `json:"required"`
		AdditionalProperties bool                       `json:"additionalProperties"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "object", decoded.Type)
	assert.ElementsMatch(t,
		[]string{"is_correct", "extracted_answer", "explanation", "confidence", "answer_location"},
		decoded.Required)
	assert.Len(t, decoded.Properties, 5)
	assert.False(t, decoded.AdditionalProperties)
}
