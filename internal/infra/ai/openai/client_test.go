package openai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biased-app/biased-api/internal/domain/ai"
	"github.com/biased-app/biased-api/internal/domain/analysis"
)

func TestWrapProviderErrQuota(t *testing.T) {
	quota := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	err := wrapProviderErr("classify", fmt.Errorf("call failed: %w", quota))
	assert.ErrorIs(t, err, ai.ErrQuotaExceeded)
}

func TestWrapProviderErrGeneric(t *testing.T) {
	err := wrapProviderErr("classify", errors.New("connection refused"))

	var provErr *analysis.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "classify", provErr.Op)
	assert.NotErrorIs(t, err, ai.ErrQuotaExceeded)
}

func TestWrapProviderErrNon429API(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 500, Message: "server error"}
	err := wrapProviderErr("summarize", apiErr)

	var provErr *analysis.ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("key", "", "")
	assert.Equal(t, defaultModel, c.model)

	c = NewClient("key", "https://example.test/v1", "gpt-5-mini")
	assert.Equal(t, "gpt-5-mini", c.model)
}
