package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS batch_history (
	id              UUID PRIMARY KEY,
	filename        TEXT NOT NULL,
	total_rows      INTEGER NOT NULL,
	scored          INTEGER NOT NULL,
	sepsis_detected INTEGER NOT NULL,
	borderline      INTEGER NOT NULL,
	no_sepsis       INTEGER NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres is the pgx-backed Store.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects, pings and ensures the history table exists.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) SaveBatch(ctx context.Context, rec BatchRecord) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO batch_history
			(id, filename, total_rows, scored, sepsis_detected, borderline, no_sepsis, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Filename, rec.TotalRows, rec.Scored,
		rec.SepsisDetected, rec.Borderline, rec.NoSepsis, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save batch: %w", err)
	}
	return nil
}

func (p *Postgres) Recent(ctx context.Context, limit int) ([]BatchRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, filename, total_rows, scored, sepsis_detected, borderline, no_sepsis, created_at
		 FROM batch_history
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []BatchRecord
	for rows.Next() {
		var rec BatchRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.TotalRows, &rec.Scored,
			&rec.SepsisDetected, &rec.Borderline, &rec.NoSepsis, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() {
	p.pool.Close()
}
