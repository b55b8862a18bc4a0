// Package results keeps finished self-play games in SQLite.
package results

import (
	"checkers/experiments/metrics"
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Summary is the win tally of one experiment.
type Summary struct {
	Experiment string
	Games      int
	RedWins    int
	BlueWins   int
	Unfinished int
}

// Store persists game records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the results database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert stores the records of one experiment in a single transaction.
func (s *Store) Insert(ctx context.Context, records []metrics.GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO game_records (
    experiment, game_id, red_agent, blue_agent, winner, cause,
    total_moves, red_captures, blue_captures, truncated, started_at, ended_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if strings.TrimSpace(r.GameID) == "" {
			return fmt.Errorf("record %d: game id is required", r.ID)
		}
		truncated := 0
		if r.Truncated {
			truncated = 1
		}
		if _, err := stmt.ExecContext(ctx,
			r.Experiment, r.GameID, r.Agent1, r.Agent2, r.Winner, r.Cause,
			r.TotalMoves, r.RedCaptures, r.BlueCaptures, truncated,
			toMillis(r.StartTime), toMillis(r.EndTime),
		); err != nil {
			return fmt.Errorf("insert game %s: %w", r.GameID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns the records of experiment in insertion order.
func (s *Store) List(ctx context.Context, experiment string) ([]metrics.GameRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, experiment, game_id, red_agent, blue_agent, winner, cause,
       total_moves, red_captures, blue_captures, truncated, started_at, ended_at
FROM game_records WHERE experiment = ? ORDER BY id`, experiment)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", experiment, err)
	}
	defer rows.Close()

	var records []metrics.GameRecord
	for rows.Next() {
		var (
			r              metrics.GameRecord
			truncated      int
			started, ended int64
		)
		if err := rows.Scan(
			&r.ID, &r.Experiment, &r.GameID, &r.Agent1, &r.Agent2, &r.Winner, &r.Cause,
			&r.TotalMoves, &r.RedCaptures, &r.BlueCaptures, &truncated, &started, &ended,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.Truncated = truncated != 0
		r.StartTime = fromMillis(started)
		r.EndTime = fromMillis(ended)
		r.Duration = r.EndTime.Sub(r.StartTime)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return records, nil
}

// Summarize tallies the winners of experiment.
func (s *Store) Summarize(ctx context.Context, experiment string) (Summary, error) {
	sum := Summary{Experiment: experiment}
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN winner = 'red' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN winner = 'blue' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(truncated), 0)
FROM game_records WHERE experiment = ?`, experiment).Scan(&sum.Games, &sum.RedWins, &sum.BlueWins, &sum.Unfinished)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize %s: %w", experiment, err)
	}
	return sum, nil
}
