package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/baditaflorin/go_word_similarity/internal/core/domain"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	input      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS scores (
	run_id       TEXT NOT NULL REFERENCES runs(id),
	idx          INTEGER NOT NULL,
	word1        TEXT NOT NULL,
	word2        TEXT NOT NULL,
	raw_distance INTEGER NOT NULL,
	normlevdist  REAL NOT NULL,
	raw_score    REAL NOT NULL,
	os           REAL NOT NULL,
	PRIMARY KEY (run_id, idx)
);`

// SQLite stores every pair of one run inside a single transaction that is
// committed on Close.
type SQLite struct {
	db     *sql.DB
	tx     *sql.Tx
	insert *sql.Stmt
	runID  string
	path   string
	rows   int
	logger ports.Logger
}

// NewSQLite opens (or creates) the database at path and starts a new run.
func NewSQLite(path string, opts Options, logger ports.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin run: %w", err)
	}

	runID := uuid.New().String()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input) VALUES (?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), opts.Input,
	); err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("record run: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO scores
		(run_id, idx, word1, word2, raw_distance, normlevdist, raw_score, os)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	logger.Info("Started sqlite run", "run_id", runID, "path", path)
	return &SQLite{db: db, tx: tx, insert: insert, runID: runID, path: path, logger: logger}, nil
}

// RunID returns the identifier of the run being written.
func (s *SQLite) RunID() string {
	return s.runID
}

// Write inserts one pair.
func (s *SQLite) Write(score domain.PairScore) error {
	_, err := s.insert.Exec(
		s.runID,
		score.Index,
		string(score.Pair.First),
		string(score.Pair.Second),
		score.EditDistance.RawDistance,
		score.EditDistance.NormalizedSimilarity,
		score.Orthographic.RawScore,
		score.Orthographic.NormalizedScore,
	)
	if err != nil {
		return fmt.Errorf("insert pair %d: %w", score.Index, err)
	}
	s.rows++
	return nil
}

// Close commits the run and closes the database.
func (s *SQLite) Close() error {
	stmtErr := s.insert.Close()
	if err := s.tx.Commit(); err != nil {
		return errors.Join(stmtErr, fmt.Errorf("commit run: %w", err), s.db.Close())
	}
	s.logger.Info("Committed sqlite run", "run_id", s.runID, "rows", s.rows, "path", s.path)
	return errors.Join(stmtErr, s.db.Close())
}
