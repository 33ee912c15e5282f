package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"answercheck/internal/logging"
)

// Service judges CLI answers via a schema-constrained LLM call.
type Service struct {
	llm StructuredClient
}

// NewService creates a validator.
func NewService(cfg Config) (*Service, error) {
	if cfg.LLMClient == nil {
		return nil, fmt.Errorf("validator: llm client is required")
	}
	return &Service{llm: cfg.LLMClient}, nil
}

// Validate asks the LLM whether actualOutput answers question with the
// expected answer. Call and parse failures are captured in the result rather
// than returned; the verdict is then incorrect with zero confidence.
func (s *Service) Validate(ctx context.Context, question, expectedAnswer, actualOutput string) Result {
	prompt := buildPrompt(question, expectedAnswer, actualOutput)

	raw, err := s.llm.CompleteJSON(ctx, prompt, schemaName, &resultSchema)
	if err != nil {
		logging.Errorf("error during validation: %v", err)
		return errorResult(err)
	}

	res, err := parseResult(raw)
	if err != nil {
		logging.Errorf("error during validation: %v", err)
		return errorResult(err)
	}
	logging.Infof("validation verdict: correct=%v location=%s", res.IsCorrect, res.AnswerLocation)
	return res
}

// errorResult is the fixed shape every failure path collapses to.
func errorResult(err error) Result {
	return Result{
		IsCorrect:       false,
		ExtractedAnswer: "Error",
		Explanation:     fmt.Sprintf("Validation failed due to error: %v", err),
		Confidence:      0.0,
		AnswerLocation:  "N/A",
	}
}

func parseResult(raw string) (Result, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{}, fmt.Errorf("validator: empty llm response")
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		raw = raw[start : end+1]
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, err
	}
	if res.Confidence < 0 {
		res.Confidence = 0
	} else if res.Confidence > 1 {
		res.Confidence = 1
	}
	return res, nil
}
