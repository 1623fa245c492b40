// Package store keeps a history of consolidation runs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cocr/scene-consolidator/segments"
)

type Store struct {
	db *sql.DB
}

// Run is one recorded consolidation.
type Run struct {
	ID        string
	Video     string
	Duration  float64
	Segments  []segments.ModeInterval
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	video TEXT NOT NULL,
	duration REAL NOT NULL,
	segment_count INTEGER NOT NULL,
	segments_json TEXT NOT NULL,
	created_at REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at DESC);
`

// Open opens (creating if needed) the run database at path with WAL.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// RecordRun inserts one finished run.
func (s *Store) RecordRun(r Run) error {
	segs, err := json.Marshal(r.Segments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO runs (id, video, duration, segment_count, segments_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.ID, r.Video, r.Duration, len(r.Segments), string(segs), float64(r.CreatedAt.UnixMilli())/1000)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, video, duration, segments_json, created_at
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var segs string
		var createdAt float64
		if err := rows.Scan(&r.ID, &r.Video, &r.Duration, &segs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(segs), &r.Segments); err != nil {
			return nil, fmt.Errorf("decode segments: %w", err)
		}
		r.CreatedAt = time.UnixMilli(int64(createdAt * 1000))
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
