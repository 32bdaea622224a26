package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biased-app/biased-api/internal/domain/analysis"
)

func TestClassifySystemCoversVocabulary(t *testing.T) {
	system := ClassifySystem()
	for _, info := range analysis.Vocabulary {
		assert.Contains(t, system, "- "+string(info.ID)+": ", "definition for %s", info.ID)
	}
	assert.Contains(t, system, "should NOT sum to 100")
	assert.Contains(t, system, "return an empty array")
}

func TestQuestionsSystemStatesBounds(t *testing.T) {
	system := QuestionsSystem()
	assert.Contains(t, system, "between 6 and 10")
	assert.Contains(t, system, "3 to 5")
}

func TestSummaryUserEmbedsFindings(t *testing.T) {
	msg := SummaryUser("Scenario text", []analysis.Finding{
		{ID: analysis.BiasHaloEffect, Percentage: 42},
	})
	assert.True(t, strings.HasPrefix(msg, "Scenario: Scenario text"))
	assert.Contains(t, msg, `"halo_effect"`)
	assert.Contains(t, msg, "42")
}

func TestSummaryUserEmptyFindings(t *testing.T) {
	msg := SummaryUser("s", nil)
	assert.Contains(t, msg, "Identified biases: null")
}
