package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appanalysis "github.com/biased-app/biased-api/internal/application/analysis"
	domai "github.com/biased-app/biased-api/internal/domain/ai"
	domain "github.com/biased-app/biased-api/internal/domain/analysis"
	"github.com/biased-app/biased-api/internal/middleware"
)

// maxAudioBytes caps /transcribe uploads.
const maxAudioBytes = 25 << 20

type Router struct {
	svc *appanalysis.Service
	log *zap.Logger
}

func NewRouter(svc *appanalysis.Service, limiter *middleware.RateLimiter, health http.HandlerFunc, log *zap.Logger) http.Handler {
	r := &Router{svc: svc, log: log}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		MaxAge:           600,
		AllowCredentials: false,
	}))
	mux.Use(middleware.RequestLogger(log))
	if limiter != nil {
		mux.Use(limiter.Middleware)
	}

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Bias Analysis API"))
	})
	if health != nil {
		mux.Get("/health", health)
	}

	mux.Post("/preview", r.wrap(r.handlePreview))
	mux.Post("/generate-questions", r.wrap(r.handleGenerateQuestions))
	mux.Post("/analyse", r.wrap(r.handleAnalyse))
	mux.Get("/history", r.wrap(r.handleHistory))
	mux.Get("/biases", r.wrap(r.handleBiases))
	mux.Post("/transcribe", r.wrap(r.handleTranscribe))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain error kinds onto the HTTP surface. Provider and
// persistence causes are logged, never echoed to the client.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var schemaErr *domain.SchemaError
		var provErr *domain.ProviderError
		var persErr *domain.PersistenceError
		switch {
		case errors.Is(err, domain.ErrTextRequired):
			writeError(w, http.StatusBadRequest, "Text is required")
		case errors.Is(err, domai.ErrQuotaExceeded):
			writeError(w, http.StatusTooManyRequests, "model quota exceeded")
		case errors.As(err, &provErr), errors.As(err, &schemaErr):
			r.log.Error("provider failure", zap.String("path", req.URL.Path), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to process request")
		case errors.As(err, &persErr), errors.Is(err, sql.ErrNoRows):
			r.log.Error("persistence failure", zap.String("path", req.URL.Path), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to process request")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
	}
}

type textRequest struct {
	Text string `json:"text"`
}

// decodeText reads a {"text": ...} body. A missing or empty text maps to
// the required-input error so all three text endpoints answer 400 alike.
func decodeText(req *http.Request) (string, error) {
	var body textRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return "", domain.ErrTextRequired
	}
	if strings.TrimSpace(body.Text) == "" {
		return "", domain.ErrTextRequired
	}
	return body.Text, nil
}

// POST /preview
func (r *Router) handlePreview(w http.ResponseWriter, req *http.Request) error {
	text, err := decodeText(req)
	if err != nil {
		return err
	}
	feedback, err := r.svc.Preview(req.Context(), text)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"text": feedback})
}

// POST /generate-questions
func (r *Router) handleGenerateQuestions(w http.ResponseWriter, req *http.Request) error {
	text, err := decodeText(req)
	if err != nil {
		return err
	}
	questions, err := r.svc.GenerateQuestions(req.Context(), text)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string][]domain.Question{"questions": questions})
}

// POST /analyse
func (r *Router) handleAnalyse(w http.ResponseWriter, req *http.Request) error {
	text, err := decodeText(req)
	if err != nil {
		return err
	}
	rec, err := r.svc.Analyze(req.Context(), text)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, rec)
}

// GET /history
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	list, err := r.svc.History(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

// GET /biases
func (r *Router) handleBiases(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, domain.Vocabulary)
}

// POST /transcribe — raw audio body, Content-Type carries the format.
func (r *Router) handleTranscribe(w http.ResponseWriter, req *http.Request) error {
	contentType := req.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		return errors.New("audio Content-Type is required")
	}
	audio, err := io.ReadAll(io.LimitReader(req.Body, maxAudioBytes))
	if err != nil {
		return err
	}
	text, err := r.svc.Transcribe(req.Context(), audio, contentType)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
