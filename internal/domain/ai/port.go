package ai

import (
	"context"
	"io"

	"github.com/biased-app/biased-api/internal/domain/analysis"
)

// Gateway is the single point of contact with the generative model
// provider. Structured operations (questions, classification) return
// schema-validated values; malformed output never escapes the gateway.
type Gateway interface {
	// GeneratePreview returns free-text feedback on how adequate the
	// input is for bias analysis. No schema, raw text passthrough.
	GeneratePreview(ctx context.Context, text string) (string, error)

	// GenerateQuestions returns 6-10 clarifying multiple-choice
	// questions for the given thought.
	GenerateQuestions(ctx context.Context, thought string) ([]analysis.Question, error)

	// ClassifyBiases analyzes the composed text against the bias
	// vocabulary. May return an empty slice when no biases are present.
	ClassifyBiases(ctx context.Context, composed string) ([]analysis.Finding, error)

	// Summarize produces a narrative synthesis of the findings.
	Summarize(ctx context.Context, composed string, findings []analysis.Finding) (string, error)

	// Transcribe converts spoken audio to text. Filename carries the
	// extension the provider uses to detect the audio format.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
