// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a local history of completed conversions in a
// SQLite database. The catalog is bookkeeping only: a catalog failure never
// undoes or fails a conversion that already wrote its output.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the conversion-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.CatalogDir/catalog.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sport TEXT,
			activity_id TEXT,
			start_time TEXT,
			laps INTEGER,
			trackpoints INTEGER,
			total_distance_m REAL,
			duration_s REAL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at
			ON conversions(converted_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one conversion into the catalog. A zero ConvertedAt is
// filled with the current time.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	if rec.ConvertedAt.IsZero() {
		rec.ConvertedAt = time.Now().UTC()
	}

	startTime := ""
	if !rec.StartTime.IsZero() {
		startTime = rec.StartTime.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions
			(sport, activity_id, start_time, laps, trackpoints,
			 total_distance_m, duration_s, input_path, output_path, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Sport, rec.ActivityID, startTime, rec.Laps, rec.Trackpoints,
		rec.TotalDistanceMeters, rec.Duration.Seconds(),
		rec.InputPath, rec.OutputPath,
		rec.ConvertedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion record: %w", err)
	}
	return nil
}

// List returns the most recent conversions, newest first. A limit of zero
// uses the store default; a negative limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionRecord, error) {
	if limit == 0 {
		limit = s.maxResults
	}
	if limit < 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sport, activity_id, start_time, laps, trackpoints,
			total_distance_m, duration_s, input_path, output_path, converted_at
		 FROM conversions
		 ORDER BY converted_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading conversions: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (types.ConversionRecord, error) {
	var rec types.ConversionRecord
	var startTime, convertedAt string
	var durationSeconds float64

	err := rows.Scan(&rec.ID, &rec.Sport, &rec.ActivityID, &startTime,
		&rec.Laps, &rec.Trackpoints, &rec.TotalDistanceMeters,
		&durationSeconds, &rec.InputPath, &rec.OutputPath, &convertedAt)
	if err != nil {
		return rec, fmt.Errorf("scanning conversion record: %w", err)
	}

	if startTime != "" {
		if ts, err := time.Parse(time.RFC3339, startTime); err == nil {
			rec.StartTime = ts
		}
	}
	if ts, err := time.Parse(time.RFC3339, convertedAt); err == nil {
		rec.ConvertedAt = ts
	}
	rec.Duration = time.Duration(durationSeconds * float64(time.Second))
	return rec, nil
}
