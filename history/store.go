// Package history persists batch scoring summaries when a database is
// configured. Scoring never depends on it.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BatchRecord is one completed batch run's summary.
type BatchRecord struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	TotalRows      int       `json:"total_rows"`
	Scored         int       `json:"count"`
	SepsisDetected int       `json:"sepsisDetected"`
	Borderline     int       `json:"borderline"`
	NoSepsis       int       `json:"noSepsis"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store records batch summaries and serves the recent-history view.
type Store interface {
	SaveBatch(ctx context.Context, rec BatchRecord) error
	Recent(ctx context.Context, limit int) ([]BatchRecord, error)
	Ping(ctx context.Context) error
	Close()
}
