package validator

import "strings"

// buildPrompt embeds the question, the expected answer and the candidate CLI
// output in the validation instructions. The prompt is deterministic for a
// given input triple.
func buildPrompt(question, expectedAnswer, actualOutput string) string {
	var b strings.Builder
	b.WriteString("You are a test validator for a spreadsheet analysis CLI. Your job is to determine if the actual output correctly answers the given question.\n\n")
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\nExpected Answer: ")
	b.WriteString(expectedAnswer)
	b.WriteString("\n\n")
	b.WriteString(`The CLI output may contain the answer in various fields:
- Answer: Direct answer field
- MachineAnswer: Machine-readable answer (numeric values, entity names)
- Reasoning: Explanation that may contain the answer
- SimpleAnswer: Alternative answer field
- HumanExplanation: Human-readable explanation

Actual CLI Output:
`)
	b.WriteString(actualOutput)
	b.WriteString(`

VALIDATION RULES:
1. Numeric Comparison:
   - Allow for small rounding differences (±0.01 for decimals)
   - Ignore formatting differences (commas, dollar signs, percent signs)
   - "12977.52" matches "12,977.52" or "$12977.52"
   - For percentages: "48.69" matches "48.69%"

2. Text Comparison:
   - Case-insensitive matching
   - "MSFT" matches "msft" or "Msft"

3. Answer Extraction Priority:
   - First check MachineAnswer field (most reliable for numeric/entity answers)
   - Then check Answer and SimpleAnswer fields
   - Finally search in Reasoning field for answer patterns
   - Look for patterns like "The answer is X", "total is X", "average is X"

4. Special Cases:
   - For "Which X has highest/lowest Y" questions: Accept either just the X value or the Y value
   - For percentage questions: Accept with or without % sign
   - For count questions: Look for "X rows", "X records", "X unique values"

IMPORTANT: Be flexible in extraction but strict in validation. The answer must be semantically correct.

Extract the actual answer from the output and determine if it matches the expected answer.`)
	return b.String()
}
