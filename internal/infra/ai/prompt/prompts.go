package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/biased-app/biased-api/internal/domain/analysis"
)

// PreviewSystem asks for free-text feedback on the adequacy of a scenario.
func PreviewSystem() string {
	return `You are an AI assistant that helps users improve their scenario descriptions for bias analysis.
Provide constructive feedback on how to make the scenario more detailed and clear for better bias analysis.
Suggest specific elements that could be added to provide more context.`
}

// QuestionsSystem directs the model to emit 6-10 mobile-friendly
// multiple-choice clarifying questions as one JSON object.
func QuestionsSystem() string {
	return `You are an expert in cognitive biases and psychology. A user has provided their initial thought or doubt.
Your task is to generate a series of clarifying questions to gather more context for a cognitive bias analysis.
The questions should be simple, direct, and easy to answer on a mobile device.
For each question, provide a short list of 3 to 5 tappable, multiple-choice options.
The goal is to understand the user's emotional state, the situation, and their underlying assumptions.

Respond with one valid JSON object only (no markdown, no code fences) of the form:
{"questions": [{"question": "<string>", "options": ["<string>", ...]}]}
The questions array must contain between 6 and 10 items.`
}

// QuestionsUser wraps the thought into the user message.
func QuestionsUser(thought string) string {
	return fmt.Sprintf("Generate questions for the following thought: %q", thought)
}

// ClassifySystem directs the model to classify the composed text against
// the closed bias vocabulary. Definitions are rendered from the vocabulary
// so prompt and validator can never drift apart.
func ClassifySystem() string {
	var b strings.Builder
	b.WriteString(`You are an expert in cognitive biases and psychology. Analyze the user's input, which includes an initial thought, answers to clarifying questions, and optional additional details.
Your task is to identify which cognitive biases are present in the user's reasoning.

For each bias you identify, provide a confidence score from 0-100 indicating how strongly the bias is present. The scores for different biases are independent and should NOT sum to 100.
Only include biases that are clearly present in the text. If no biases are detected, return an empty array.

Respond with one valid JSON object only (no markdown, no code fences) of the form:
{"biases": [{"id": "<bias id>", "percentage": <number 0-100>}]}

Use only the following bias IDs and their definitions:
`)
	for _, info := range analysis.Vocabulary {
		fmt.Fprintf(&b, "- %s: %s\n", info.ID, info.Description)
	}
	return b.String()
}

// SummarySystem asks for a narrative synthesis of the identified biases.
func SummarySystem() string {
	return `You are an expert in cognitive biases and psychology.
Create a concise summary analysis of the cognitive biases identified in the scenario.
Explain how these biases interact and their potential impact on decision-making.`
}

// SummaryUser builds the user message carrying the scenario plus the
// findings as JSON, mirroring what the classifier produced.
func SummaryUser(composed string, findings []analysis.Finding) string {
	encoded, err := json.Marshal(findings)
	if err != nil {
		encoded = []byte("[]")
	}
	return fmt.Sprintf("Scenario: %s\n\nIdentified biases: %s", composed, encoded)
}
