package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"answercheck/internal/llm"
	"answercheck/internal/logging"
	"answercheck/internal/validator"
)

const validationTemperature = 0.1

func main() {
	godotenv.Load()
	logging.InitFromEnv()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate_result", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var apiKey string
	var verbose bool
	fs.StringVar(&apiKey, "api-key", "", "OpenAI API key (optional, can use OPENAI_API_KEY env var)")
	fs.BoolVar(&verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&verbose, "v", false, "enable verbose output (shorthand)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: validate_result [flags] <question> <expected_answer> <actual_output>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}
	question, expectedAnswer, actualOutput := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	if verbose {
		logging.SetLevel(logging.LevelInfo)
	}

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	client, err := llm.New(llm.Config{
		APIKey:      apiKey,
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:       os.Getenv("VALIDATOR_MODEL"),
		Timeout:     time.Duration(envInt("VALIDATOR_TIMEOUT_SECONDS", 0)) * time.Second,
		Temperature: validationTemperature,
	})
	if err != nil {
		return fatal(stdout, err)
	}
	svc, err := validator.NewService(validator.Config{LLMClient: client})
	if err != nil {
		return fatal(stdout, err)
	}

	result := svc.Validate(context.Background(), question, expectedAnswer, actualOutput)
	writeResult(stdout, result)
	if result.IsCorrect {
		return 0
	}
	return 1
}

// fatal reports a setup failure in the same JSON shape as a validation error.
func fatal(stdout io.Writer, err error) int {
	logging.Errorf("fatal error: %v", err)
	writeResult(stdout, validator.Result{
		IsCorrect:       false,
		ExtractedAnswer: "Error",
		Explanation:     err.Error(),
		Confidence:      0.0,
		AnswerLocation:  "N/A",
	})
	return 1
}

// writeResult emits the result as a single line of JSON.
func writeResult(w io.Writer, res validator.Result) {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logging.Errorf("encode result: %v", err)
	}
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
