package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appanalysis "github.com/biased-app/biased-api/internal/application/analysis"
	domai "github.com/biased-app/biased-api/internal/domain/ai"
	domain "github.com/biased-app/biased-api/internal/domain/analysis"
)

type stubGateway struct {
	findings    []domain.Finding
	summary     string
	preview     string
	questions   []domain.Question
	failWith    error
	transcribed string
}

func (g *stubGateway) GeneratePreview(_ context.Context, _ string) (string, error) {
	return g.preview, g.failWith
}

func (g *stubGateway) GenerateQuestions(_ context.Context, _ string) ([]domain.Question, error) {
	return g.questions, g.failWith
}

func (g *stubGateway) ClassifyBiases(_ context.Context, _ string) ([]domain.Finding, error) {
	return g.findings, g.failWith
}

func (g *stubGateway) Summarize(_ context.Context, _ string, _ []domain.Finding) (string, error) {
	return g.summary, g.failWith
}

func (g *stubGateway) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	return g.transcribed, g.failWith
}

type memRepo struct {
	records []*domain.Record
}

func (r *memRepo) Insert(_ context.Context, rec *domain.Record) error {
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

func (r *memRepo) ListAll(_ context.Context) ([]*domain.Record, error) {
	out := make([]*domain.Record, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type tickingClock struct{ t time.Time }

func (c *tickingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestRouter(gw *stubGateway) (http.Handler, *memRepo) {
	repo := &memRepo{}
	svc := &appanalysis.Service{
		Gateway: gw,
		Repo:    repo,
		Clock:   &tickingClock{t: time.UnixMilli(1700000000000)},
		Log:     zap.NewNop(),
	}
	return NewRouter(svc, nil, nil, zap.NewNop()), repo
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRootLiveness(t *testing.T) {
	h, _ := newTestRouter(&stubGateway{})
	w := get(t, h, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "Bias Analysis API", w.Body.String())
}

func TestAnalyseMissingText(t *testing.T) {
	h, repo := newTestRouter(&stubGateway{})

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":"   "}`, `not json`} {
		w := postJSON(t, h, "/analyse", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var envelope map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), body)
		assert.Equal(t, "Text is required", envelope["error"], body)
	}
	assert.Empty(t, repo.records)
}

func TestAnalyseSuccessAndHistoryOrdering(t *testing.T) {
	gw := &stubGateway{
		findings: []domain.Finding{
			{ID: domain.BiasConfirmation, Percentage: 72.5},
			{ID: domain.BiasNegativity, Percentage: 31},
		},
		summary: "A short synthesis.",
	}
	h, _ := newTestRouter(gw)

	w := postJSON(t, h, "/analyse", `{"text":"Initial Thought: T\n"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var first domain.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, gw.findings, first.Results)

	w = postJSON(t, h, "/analyse", `{"text":"Initial Thought: later\n"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var second domain.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	// newest first, latest analyse leads
	wh := get(t, h, "/history")
	require.Equal(t, http.StatusOK, wh.Code)
	var history []domain.Record
	require.NoError(t, json.Unmarshal(wh.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	// results survive the storage round trip untouched
	assert.Equal(t, second.Results, history[0].Results)

	// idempotent without intervening writes
	wh2 := get(t, h, "/history")
	assert.JSONEq(t, wh.Body.String(), wh2.Body.String())
}

func TestAnalyseProviderFailure(t *testing.T) {
	gw := &stubGateway{failWith: &domain.ProviderError{Op: "classify", Err: errors.New("upstream 503")}}
	h, repo := newTestRouter(gw)

	w := postJSON(t, h, "/analyse", `{"text":"something"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope["error"])
	assert.NotContains(t, envelope["error"], "upstream 503", "cause must not leak")
	assert.Empty(t, repo.records)
}

func TestAnalyseQuotaExceeded(t *testing.T) {
	h, _ := newTestRouter(&stubGateway{failWith: domai.ErrQuotaExceeded})
	w := postJSON(t, h, "/analyse", `{"text":"something"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestPreview(t *testing.T) {
	h, _ := newTestRouter(&stubGateway{preview: "Add more context about the situation."})
	w := postJSON(t, h, "/preview", `{"text":"short thought"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Add more context about the situation.", out["text"])
}

func TestGenerateQuestionsShape(t *testing.T) {
	questions := make([]domain.Question, 7)
	for i := range questions {
		questions[i] = domain.Question{
			Question: "How sure are you?",
			Options:  []string{"Very", "Somewhat", "Not at all"},
		}
	}
	h, _ := newTestRouter(&stubGateway{questions: questions})

	w := postJSON(t, h, "/generate-questions", `{"text":"my thought"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Questions []domain.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.GreaterOrEqual(t, len(out.Questions), 6)
	require.LessOrEqual(t, len(out.Questions), 10)
	for _, q := range out.Questions {
		assert.GreaterOrEqual(t, len(q.Options), 3)
		assert.LessOrEqual(t, len(q.Options), 5)
	}
}

func TestBiasesEndpoint(t *testing.T) {
	h, _ := newTestRouter(&stubGateway{})
	w := get(t, h, "/biases")
	require.Equal(t, http.StatusOK, w.Code)

	var out []domain.BiasInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, len(domain.Vocabulary))
}

func TestTranscribeRequiresAudioContentType(t *testing.T) {
	h, _ := newTestRouter(&stubGateway{transcribed: "hello"})

	req := httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewReader([]byte{0x01}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewReader([]byte{0x01, 0x02}))
	req.Header.Set("Content-Type", "audio/mpeg")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "hello", out["text"])
}
