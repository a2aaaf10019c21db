package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Postgres persists buckets in a single table, one row per bucket.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS buckets (
			bucket     TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Get(ctx context.Context, bucket string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM buckets WHERE bucket = $1`, bucket,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *Postgres) Put(ctx context.Context, bucket string, value string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO buckets (bucket, value)
		VALUES ($1, $2)
		ON CONFLICT (bucket) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		bucket, value,
	)
	return err
}

func (p *Postgres) Delete(ctx context.Context, bucket string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM buckets WHERE bucket = $1`, bucket)
	return err
}
