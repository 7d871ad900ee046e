package patterns

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"lifecanvas/internal/core"

	"github.com/golang/glog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS patterns (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	cells TEXT NOT NULL
)`

// SQLiteStore keeps patterns in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the pattern database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open pattern db %s: %w", path, err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init pattern db %s: %w", path, err)
	}
	glog.V(1).Infof("patterns: opened %s", path)
	return &SQLiteStore{db: db}, nil
}

// List returns every pattern ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM patterns ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var p Summary
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("list patterns: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	return out, nil
}

// Cells returns the cells of pattern id.
func (s *SQLiteStore) Cells(ctx context.Context, id int64) ([]core.Cell, error) {
	var text string
	err := s.db.QueryRowContext(ctx, "SELECT cells FROM patterns WHERE id = ?", id).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load pattern %d: %w", id, err)
	}
	cells, err := DecodeCells(text)
	if err != nil {
		return nil, fmt.Errorf("load pattern %d: %w", id, err)
	}
	return cells, nil
}

// Add stores cells under name.
func (s *SQLiteStore) Add(ctx context.Context, name string, cells []core.Cell) (Summary, error) {
	if strings.TrimSpace(name) == "" {
		return Summary{}, ErrEmptyName
	}
	res, err := s.db.ExecContext(ctx, "INSERT INTO patterns (name, cells) VALUES (?, ?)", name, EncodeCells(cells))
	if err != nil {
		if isUniqueViolation(err) {
			return Summary{}, ErrDuplicateName
		}
		return Summary{}, fmt.Errorf("save pattern %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Summary{}, fmt.Errorf("save pattern %q: %w", name, err)
	}
	return Summary{ID: id, Name: name}, nil
}

// Delete removes pattern id if present.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM patterns WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete pattern %d: %w", id, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
