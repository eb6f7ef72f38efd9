// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/mtg"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name1 TEXT NOT NULL,
	name2 TEXT NOT NULL,
	plant_max_distance REAL,
	axis_max_distance REAL,
	created INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS matches (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq INTEGER NOT NULL,
	level TEXT NOT NULL,
	first_id INTEGER,
	second_id INTEGER,
	distance REAL,
	PRIMARY KEY (run_id, seq)
) WITHOUT ROWID;
`

// Store is a handle on a run database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun writes run and its result rows in one transaction and returns
// the new run id, also stored in run.ID.
func (s *Store) SaveRun(ctx context.Context, run *Run) (int64, error) {
	if run.Created.IsZero() {
		run.Created = time.Now()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (name1, name2, plant_max_distance, axis_max_distance, created) VALUES (?, ?, ?, ?, ?)`,
		run.Name1, run.Name2, run.PlantMaxDistance, run.AxisMaxDistance, run.Created.Unix())
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matches (run_id, seq, level, first_id, second_id, distance) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	rows := Rows(run.Result)
	for i, r := range rows {
		var dist *float64
		if r.Matched {
			d := r.Distance
			dist = &d
		}
		if _, err = stmt.ExecContext(ctx, id, i, string(r.Level), nullID(r.First), nullID(r.Second), dist); err != nil {
			return 0, fmt.Errorf("store: insert row %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	run.ID = id
	rootmatch.Logger().Debug("run saved", "run", id, "rows", len(rows))
	return id, nil
}

// Matches returns the rows of a run in the order they were saved.
func (s *Store) Matches(ctx context.Context, runID int64) ([]Row, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("store: run %d: %w", runID, ErrRunNotFound)
	}

	q, err := s.db.QueryContext(ctx,
		`SELECT level, first_id, second_id, distance FROM matches WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	var out []Row
	for q.Next() {
		var (
			level         string
			first, second sql.NullInt64
			dist          sql.NullFloat64
		)
		if err := q.Scan(&level, &first, &second, &dist); err != nil {
			return nil, err
		}
		out = append(out, Row{
			Level:    Level(level),
			First:    fromNull(first),
			Second:   fromNull(second),
			Distance: dist.Float64,
			Matched:  dist.Valid,
		})
	}
	return out, q.Err()
}

// Runs lists stored runs, newest first, without their results.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	q, err := s.db.QueryContext(ctx,
		`SELECT id, name1, name2, plant_max_distance, axis_max_distance, created FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	var out []Run
	for q.Next() {
		var (
			r           Run
			plant, axis sql.NullFloat64
			created     int64
		)
		if err := q.Scan(&r.ID, &r.Name1, &r.Name2, &plant, &axis, &created); err != nil {
			return nil, err
		}
		r.PlantMaxDistance = fromNullFloat(plant)
		r.AxisMaxDistance = fromNullFloat(axis)
		r.Created = time.Unix(created, 0)
		out = append(out, r)
	}
	return out, q.Err()
}

// DeleteRun removes a run and its rows.
func (s *Store) DeleteRun(ctx context.Context, runID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("store: run %d: %w", runID, ErrRunNotFound)
	}
	return nil
}

func nullID(id mtg.NodeID) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != mtg.NoNode}
}

func fromNull(v sql.NullInt64) mtg.NodeID {
	if !v.Valid {
		return mtg.NoNode
	}
	return mtg.NodeID(v.Int64)
}

func fromNullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
