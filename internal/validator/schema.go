package validator

import "github.com/sashabaranov/go-openai/jsonschema"

// schemaName identifies the response format to the API.
const schemaName = "test_validation"

// resultSchema is the strict response schema: five required fields, no
// extras. Keep all schema changes here so a provider-side contract change
// touches one place.
var resultSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"is_correct": {
			Type:        jsonschema.Boolean,
			Description: "Whether the actual output correctly answers the question",
		},
		"extracted_answer": {
			Type:        jsonschema.String,
			Description: "The answer extracted from the actual output",
		},
		"explanation": {
			Type:        jsonschema.String,
			Description: "Brief explanation of why the test passed or failed",
		},
		"confidence": {
			Type:        jsonschema.Number,
			Description: "Confidence level of the validation (0-1)",
		},
		"answer_location": {
			Type:        jsonschema.String,
			Description: "Where the answer was found (e.g., 'MachineAnswer field', 'Reasoning field')",
		},
	},
	Required:             []string{"is_correct", "extracted_answer", "explanation", "confidence", "answer_location"},
	AdditionalProperties: false,
}
