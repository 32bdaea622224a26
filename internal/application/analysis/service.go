package analysis

import (
	"bytes"
	"context"
	"mime"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/biased-app/biased-api/internal/application"
	"github.com/biased-app/biased-api/internal/domain/ai"
	domain "github.com/biased-app/biased-api/internal/domain/analysis"
)

// Service implements the analysis use-cases: preview feedback, question
// generation, the classify+summarize+persist pipeline, history, and
// transcription. Safe for concurrent use; every request is independent
// and no state is shared beyond the injected ports.
type Service struct {
	Gateway ai.Gateway
	Repo    domain.Repository
	Audio   domain.AudioArchive // optional; nil disables archival
	Clock   application.Clock
	Log     *zap.Logger
}

// Preview returns free-text feedback on the adequacy of the input.
func (s *Service) Preview(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrTextRequired
	}
	return s.Gateway.GeneratePreview(ctx, text)
}

// GenerateQuestions produces the clarifying question set for a thought.
func (s *Service) GenerateQuestions(ctx context.Context, text string) ([]domain.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrTextRequired
	}
	return s.Gateway.GenerateQuestions(ctx, text)
}

// Analyze runs the full pipeline on an already composed text: classify,
// then summarize, then persist one immutable record. The calls are
// strictly sequential (the summary needs the classification output) and
// there are no retries; any failure aborts with nothing persisted.
func (s *Service) Analyze(ctx context.Context, text string) (*domain.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrTextRequired
	}

	findings, err := s.Gateway.ClassifyBiases(ctx, text)
	if err != nil {
		return nil, err
	}
	if findings == nil {
		findings = []domain.Finding{}
	}

	summary, err := s.Gateway.Summarize(ctx, text, findings)
	if err != nil {
		return nil, err
	}

	rec := &domain.Record{
		ID:        domain.RecordID(uuid.New().String()),
		Text:      text,
		Results:   findings,
		Summary:   summary,
		Timestamp: s.Clock.Now().UnixMilli(),
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return nil, &domain.PersistenceError{Op: "insert", Err: err}
	}

	s.Log.Info("analysis stored",
		zap.String("id", string(rec.ID)),
		zap.Int("findings", len(rec.Results)))
	return rec, nil
}

// History lists all stored records newest first. Never returns a nil
// slice on success.
func (s *Service) History(ctx context.Context) ([]*domain.Record, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}
	if list == nil {
		list = []*domain.Record{}
	}
	return list, nil
}

// Transcribe converts dictated audio to text. The raw bytes are archived
// first when an archive is configured; archival failures are logged and
// do not fail the transcription.
func (s *Service) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	if len(audio) == 0 {
		return "", domain.ErrTextRequired
	}
	filename := audioFilename(contentType)

	if s.Audio != nil {
		key := uuid.New().String() + "-" + filename
		if url, err := s.Audio.Put(ctx, key, contentType, bytes.NewReader(audio), int64(len(audio))); err != nil {
			s.Log.Warn("audio archive failed", zap.Error(err))
		} else {
			s.Log.Info("audio archived", zap.String("url", url))
		}
	}

	return s.Gateway.Transcribe(ctx, bytes.NewReader(audio), filename)
}

// audioFilename derives a provider-friendly filename from the MIME type.
func audioFilename(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = contentType
	}
	ext := "bin"
	switch mt {
	case "audio/mpeg", "audio/mp3":
		ext = "mp3"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		ext = "m4a"
	case "audio/wav", "audio/x-wav", "audio/wave":
		ext = "wav"
	case "audio/webm":
		ext = "webm"
	case "audio/ogg":
		ext = "ogg"
	case "audio/flac":
		ext = "flac"
	}
	return "dictation." + ext
}
