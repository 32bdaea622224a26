package analysis

import "fmt"

const (
	minQuestions = 6
	maxQuestions = 10
	minOptions   = 3
	maxOptions   = 5
)

// ValidateFindings checks classifier output against the bias-array
// schema: every id in the vocabulary, every percentage in [0,100].
// An empty list is valid (no biases detected).
func ValidateFindings(findings []Finding) error {
	for i, f := range findings {
		if !ValidBiasID(f.ID) {
			return &SchemaError{
				Field:  fmt.Sprintf("results[%d].id", i),
				Reason: fmt.Sprintf("unknown bias id %q", f.ID),
			}
		}
		if f.Percentage < 0 || f.Percentage > 100 {
			return &SchemaError{
				Field:  fmt.Sprintf("results[%d].percentage", i),
				Reason: fmt.Sprintf("%v outside [0,100]", f.Percentage),
			}
		}
	}
	return nil
}

// ValidateQuestions checks generated questions against the questions
// schema: 6-10 items, each with non-empty text and 3-5 non-empty options.
func ValidateQuestions(questions []Question) error {
	if n := len(questions); n < minQuestions || n > maxQuestions {
		return &SchemaError{
			Field:  "questions",
			Reason: fmt.Sprintf("got %d items, want %d-%d", n, minQuestions, maxQuestions),
		}
	}
	for i, q := range questions {
		if q.Question == "" {
			return &SchemaError{
				Field:  fmt.Sprintf("questions[%d].question", i),
				Reason: "empty",
			}
		}
		if n := len(q.Options); n < minOptions || n > maxOptions {
			return &SchemaError{
				Field:  fmt.Sprintf("questions[%d].options", i),
				Reason: fmt.Sprintf("got %d options, want %d-%d", n, minOptions, maxOptions),
			}
		}
		for j, opt := range q.Options {
			if opt == "" {
				return &SchemaError{
					Field:  fmt.Sprintf("questions[%d].options[%d]", i, j),
					Reason: "empty",
				}
			}
		}
	}
	return nil
}
