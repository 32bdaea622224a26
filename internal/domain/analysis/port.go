package analysis

import (
	"context"
	"io"
)

// Repository port for the durable record store. Append-only: records are
// never updated, only inserted and listed.
type Repository interface {
	Insert(ctx context.Context, r *Record) error
	ListAll(ctx context.Context) ([]*Record, error)
}

// AudioArchive port for keeping raw dictation audio around after
// transcription. Implementations return a retrievable URL.
type AudioArchive interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
