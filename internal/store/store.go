// Package store handles SQLite persistence of sentence sets.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/dictee/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrSetNotFound is returned when no set has the requested name.
var ErrSetNotFound = errors.New("sentence set not found")

// Store wraps SQLite access for sentence sets.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sets (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sentences (
			set_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (set_id, position)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateSet stores sentences under name, replacing any set with the same name.
func (s *Store) CreateSet(ctx context.Context, name string, sentences []string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		// Rollback after Commit is a no-op.
		_ = tx.Rollback()
	}()

	if err := deleteSetTx(ctx, tx, name); err != nil && !errors.Is(err, ErrSetNotFound) {
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sets (name, created_at) VALUES (?, ?)`,
		name,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(sentences) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO sentences (set_id, position, text) VALUES (?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, text := range sentences {
			if _, err := stmt.ExecContext(ctx, id, i, text); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSets returns all sets ordered by name.
func (s *Store) ListSets(ctx context.Context) ([]model.SetSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT s.id, s.name, s.created_at, COUNT(t.position)
		FROM sets s
		LEFT JOIN sentences t ON t.set_id = s.id
		GROUP BY s.id
		ORDER BY s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.SetSummary
	for rows.Next() {
		var sum model.SetSummary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.Name, &createdAt, &sum.Count); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		sum.CreatedAt = parsed
		result = append(result, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSet loads a set and its sentences in order.
func (s *Store) GetSet(ctx context.Context, name string) (model.SentenceSet, error) {
	var set model.SentenceSet
	var createdAt string
	err := s.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM sets WHERE name = ?`, name).
		Scan(&set.ID, &set.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SentenceSet{}, ErrSetNotFound
	}
	if err != nil {
		return model.SentenceSet{}, err
	}
	set.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.SentenceSet{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT text FROM sentences WHERE set_id = ? ORDER BY position ASC`, set.ID)
	if err != nil {
		return model.SentenceSet{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return model.SentenceSet{}, err
		}
		set.Sentences = append(set.Sentences, text)
	}
	if err := rows.Err(); err != nil {
		return model.SentenceSet{}, err
	}
	return set, nil
}

// DeleteSet removes a set and its sentences.
func (s *Store) DeleteSet(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if err := deleteSetTx(ctx, tx, name); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteSetTx(ctx context.Context, tx *sql.Tx, name string) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM sets WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSetNotFound
	}
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sentences WHERE set_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sets WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
