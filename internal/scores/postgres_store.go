package scores

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps results in a PostgreSQL table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects with dsn and creates the results table if needed.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("scores: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: ping database: %w", err)
	}
	ps := &PostgresStore{db: db}
	if err := ps.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: init schema: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) initSchema(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS match_results (
		id SERIAL PRIMARY KEY,
		winner SMALLINT NOT NULL CHECK (winner IN (1, 2)),
		frames INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		ended_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`)
	return err
}

func (ps *PostgresStore) Record(ctx context.Context, r Result) error {
	if err := validate(r); err != nil {
		return err
	}
	_, err := ps.db.ExecContext(ctx,
		`INSERT INTO match_results (winner, frames, steps, ended_at) VALUES ($1, $2, $3, $4)`,
		r.Winner, r.Frames, r.Steps, r.EndedAt)
	if err != nil {
		return fmt.Errorf("scores: insert result: %w", err)
	}
	return nil
}

func (ps *PostgresStore) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := ps.db.QueryRowContext(ctx, `
	SELECT COUNT(*),
		COUNT(*) FILTER (WHERE winner = 1),
		COUNT(*) FILTER (WHERE winner = 2)
	FROM match_results`).Scan(&t.Matches, &t.Player1Wins, &t.Player2Wins)
	if err != nil {
		return Totals{}, fmt.Errorf("scores: query totals: %w", err)
	}
	return t, nil
}

func (ps *PostgresStore) Recent(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := ps.db.QueryContext(ctx,
		`SELECT winner, frames, steps, ended_at FROM match_results ORDER BY ended_at DESC, id DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("scores: query recent: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Winner, &r.Frames, &r.Steps, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("scores: scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
