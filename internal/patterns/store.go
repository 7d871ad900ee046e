// Package patterns persists named cell patterns.
package patterns

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lifecanvas/internal/core"
)

var (
	// ErrDuplicateName is returned by Add when the name is already taken.
	ErrDuplicateName = errors.New("a pattern with this name already exists")
	// ErrNotFound is returned when no pattern has the requested id.
	ErrNotFound = errors.New("pattern not found")
	// ErrEmptyName is returned by Add for a blank name.
	ErrEmptyName = errors.New("pattern name must not be empty")
	// ErrFieldCount is returned for a cell without exactly two fields.
	ErrFieldCount = errors.New("expected 2 comma-separated fields")
)

// Summary identifies a stored pattern.
type Summary struct {
	ID   int64
	Name string
}

// Store is a named pattern library.
type Store interface {
	// List returns every pattern ordered by name.
	List(ctx context.Context) ([]Summary, error)
	// Cells returns the cells of pattern id, or ErrNotFound.
	Cells(ctx context.Context, id int64) ([]core.Cell, error)
	// Add stores cells under name. A taken name yields ErrDuplicateName and
	// leaves the store unchanged.
	Add(ctx context.Context, name string, cells []core.Cell) (Summary, error)
	// Delete removes pattern id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Find returns the summary whose name matches exactly.
func Find(ctx context.Context, s Store, name string) (Summary, error) {
	list, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}
	return Summary{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// EncodeCells renders cells as "col,row" pairs joined by ';'.
func EncodeCells(cells []core.Cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Row))
	}
	return b.String()
}

// DecodeCells parses the EncodeCells form. An empty string is an empty
// pattern.
func DecodeCells(s string) ([]core.Cell, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	cells := make([]core.Cell, 0, len(parts))
	for i, part := range parts {
		c, err := ParseCell(part)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// ParseCell parses a single "col,row" pair. Surrounding whitespace around
// either number is ignored.
func ParseCell(s string) (core.Cell, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return core.Cell{}, fmt.Errorf("%q: %w, got %d", s, ErrFieldCount, len(fields))
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%q: column: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return core.Cell{}, fmt.Errorf("%q: row: %w", s, err)
	}
	return core.Cell{Col: col, Row: row}, nil
}
