package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTextExactFormat(t *testing.T) {
	got := ComposeText("T", []Answer{{Question: "Q1", ChosenOption: "A1"}}, "E")
	assert.Equal(t, "Initial Thought: T\n\nQ: Q1\nA: A1\n\nAdditional Details: E\n", got)
}

func TestComposeTextUnansweredQuestion(t *testing.T) {
	got := ComposeText("T", []Answer{
		{Question: "Q1", ChosenOption: "A1"},
		{Question: "Q2"},
	}, "")
	assert.Equal(t, "Initial Thought: T\n\nQ: Q1\nA: A1\n\nQ: Q2\nA: Not answered\n", got)
}

func TestComposeTextThoughtOnly(t *testing.T) {
	assert.Equal(t, "Initial Thought: T\n", ComposeText("T", nil, ""))
}

func TestComposeTextPreservesQuestionOrder(t *testing.T) {
	answers := []Answer{
		{Question: "first", ChosenOption: "a"},
		{Question: "second", ChosenOption: "b"},
		{Question: "third", ChosenOption: "c"},
	}
	got := ComposeText("T", answers, "")
	assert.Equal(t, "Initial Thought: T\n\nQ: first\nA: a\n\nQ: second\nA: b\n\nQ: third\nA: c\n", got)
}
