package client

import (
	"fmt"
	"strings"
)

// notAnswered is recorded for questions the user skipped.
const notAnswered = "Not answered"

// ComposeText builds the single prompt blob sent to /analyse from the
// initial thought, the answered questions in order, and the optional
// extra details.
func ComposeText(thought string, answers []Answer, extraDetails string) string {
	segments := []string{"Initial Thought: " + thought}

	for _, a := range answers {
		chosen := a.ChosenOption
		if chosen == "" {
			chosen = notAnswered
		}
		segments = append(segments, fmt.Sprintf("Q: %s\nA: %s", a.Question, chosen))
	}

	if extraDetails != "" {
		segments = append(segments, "Additional Details: "+extraDetails)
	}

	return strings.Join(segments, "\n\n") + "\n"
}
