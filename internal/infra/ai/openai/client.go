package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/biased-app/biased-api/internal/domain/ai"
	"github.com/biased-app/biased-api/internal/domain/analysis"
	"github.com/biased-app/biased-api/internal/infra/ai/prompt"
)

const maxTokens = 2048

const defaultModel = "gpt-4o-mini"

// Client implements ai.Gateway on an OpenAI-compatible chat API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a gateway. baseURL may point at any OpenAI-compatible
// endpoint; empty means the provider default.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// chat runs a single system+user completion and returns the raw content.
func (c *Client) chat(ctx context.Context, op, system, user string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	// Reasoning models reject MaxTokens in favor of MaxCompletionTokens
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") || strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapProviderErr(op, err)
	}
	if len(resp.Choices) == 0 {
		return "", &analysis.ProviderError{Op: op, Err: errors.New("empty completion")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) GeneratePreview(ctx context.Context, text string) (string, error) {
	return c.chat(ctx, "preview", prompt.PreviewSystem(), text, false)
}

func (c *Client) GenerateQuestions(ctx context.Context, thought string) ([]analysis.Question, error) {
	const op = "generate-questions"
	raw, err := c.chat(ctx, op, prompt.QuestionsSystem(), prompt.QuestionsUser(thought), true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Questions []analysis.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &analysis.ProviderError{Op: op, Err: err}
	}
	if err := analysis.ValidateQuestions(payload.Questions); err != nil {
		return nil, &analysis.ProviderError{Op: op, Err: err}
	}
	return payload.Questions, nil
}

func (c *Client) ClassifyBiases(ctx context.Context, composed string) ([]analysis.Finding, error) {
	const op = "classify"
	raw, err := c.chat(ctx, op, prompt.ClassifySystem(), composed, true)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Biases []analysis.Finding `json:"biases"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &analysis.ProviderError{Op: op, Err: err}
	}
	if err := analysis.ValidateFindings(payload.Biases); err != nil {
		return nil, &analysis.ProviderError{Op: op, Err: err}
	}
	return payload.Biases, nil
}

func (c *Client) Summarize(ctx context.Context, composed string, findings []analysis.Finding) (string, error) {
	return c.chat(ctx, "summarize", prompt.SummarySystem(), prompt.SummaryUser(composed, findings), false)
}

func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		return "", wrapProviderErr("transcribe", err)
	}
	return resp.Text, nil
}

// wrapProviderErr maps quota rejections to the sentinel and everything
// else to a ProviderError.
func wrapProviderErr(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return ai.ErrQuotaExceeded
	}
	return &analysis.ProviderError{Op: op, Err: err}
}

var _ ai.Gateway = (*Client)(nil)
