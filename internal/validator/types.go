package validator

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Result is the structured validation verdict. Field order matches the JSON
// emitted on stdout.
type Result struct {
	IsCorrect       bool    `json:"is_correct"`
	ExtractedAnswer string  `json:"extracted_answer"`
	Explanation     string  `json:"explanation"`
	Confidence      float64 `json:"confidence"`
	AnswerLocation  string  `json:"answer_location"`
}

// Config controls the validator behavior.
type Config struct {
	LLMClient StructuredClient
}

// StructuredClient issues a schema-constrained completion and returns the raw
// response text.
type StructuredClient interface {
	CompleteJSON(ctx context.Context, prompt, schemaName string, schema *jsonschema.Definition) (string, error)
}
