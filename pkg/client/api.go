package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the fallback when no base URL is configured.
const DefaultBaseURL = "https://biased-be.yourdomain.workers.dev"

// API talks to the bias-analysis backend.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI builds a client for the given base URL; empty falls back to
// DefaultBaseURL.
func NewAPI(baseURL string) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Preview returns free-text feedback for a draft thought.
func (a *API) Preview(ctx context.Context, text string) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	if err := a.postJSON(ctx, "/preview", map[string]string{"text": text}, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// GenerateQuestions returns the clarifying question set for a thought.
func (a *API) GenerateQuestions(ctx context.Context, text string) ([]Question, error) {
	var out struct {
		Questions []Question `json:"questions"`
	}
	if err := a.postJSON(ctx, "/generate-questions", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// Analyze submits a composed text for analysis and returns the stored record.
func (a *API) Analyze(ctx context.Context, text string) (Record, error) {
	var rec Record
	if err := a.postJSON(ctx, "/analyse", map[string]string{"text": text}, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// History fetches all stored records, newest first.
func (a *API) History(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/history", nil)
	if err != nil {
		return nil, err
	}
	var list []Record
	if err := a.do(req, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *API) postJSON(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, out)
}

// do executes the request, translating any non-2xx response into an
// error that prefers the server-supplied message.
func (a *API) do(req *http.Request, out any) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Error != "" {
			return fmt.Errorf("%s", envelope.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
