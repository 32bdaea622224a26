package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/biased-app/biased-api/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// EnsureSchema creates the bias_analyses table when missing.
func (r *AnalysisRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS bias_analyses (
  id         TEXT PRIMARY KEY,
  text       TEXT NOT NULL,
  results    TEXT NOT NULL,
  summary    TEXT NOT NULL,
  timestamp  BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bias_analyses_timestamp ON bias_analyses (timestamp);`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

// Insert appends one immutable record.
func (r *AnalysisRepository) Insert(ctx context.Context, a *domain.Record) error {
	results, err := json.Marshal(a.Results)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO bias_analyses (id, text, results, summary, timestamp)
VALUES ($1,$2,$3,$4,$5);`
	_, err = r.db.ExecContext(ctx, q, a.ID, a.Text, string(results), a.Summary, a.Timestamp)
	return err
}

// ListAll returns every record ordered by timestamp desc.
func (r *AnalysisRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	const q = `
SELECT id, text, results, summary, timestamp
FROM bias_analyses
ORDER BY timestamp DESC, id DESC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(rows *sql.Rows) (*domain.Record, error) {
	var a domain.Record
	var results string
	if err := rows.Scan(&a.ID, &a.Text, &results, &a.Summary, &a.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(results), &a.Results); err != nil {
		return nil, err
	}
	if a.Results == nil {
		a.Results = []domain.Finding{}
	}
	return &a, nil
}
