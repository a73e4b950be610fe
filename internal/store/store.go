// Package store persists the project list and a mutation journal in a local
// SQLite file. It is only used when persistence is switched on; by default
// the portfolio lives in memory for the life of the process.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-cli/internal/model"
)

const dbFileName = "portfolio.sqlite"

type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) Path() string {
	return filepath.Join(s.Dir, dbFileName)
}

// LoadProjects returns the saved project list. ok is false when nothing has
// been saved yet, so callers can fall back to seed data (an empty saved list
// is a valid state and is returned with ok=true).
func (s Store) LoadProjects(ctx context.Context) (projects []model.Project, ok bool, err error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, false, err
	}
	defer db.Close()
	return loadProjects(ctx, db)
}

func loadProjects(ctx context.Context, db *sql.DB) ([]model.Project, bool, error) {
	var saved string
	err := db.QueryRowContext(ctx, `SELECT v FROM state_meta WHERE k = 'saved_at'`).Scan(&saved)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && saved == "") {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read saved_at: %w", err)
	}

	out, err := readJSONRows[model.Project](ctx, db, `SELECT json FROM projects ORDER BY position`)
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		out = []model.Project{}
	}
	return out, true, nil
}
