package patterns

import (
	"context"
	"slices"
	"sort"
	"strings"

	"lifecanvas/internal/core"
)

// MemStore keeps patterns in memory. The zero value is not usable; call
// NewMemStore.
type MemStore struct {
	nextID int64
	byID   map[int64]memPattern
}

type memPattern struct {
	name  string
	cells []core.Cell
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, byID: make(map[int64]memPattern)}
}

// List returns every pattern ordered by name.
func (m *MemStore) List(ctx context.Context) ([]Summary, error) {
	out := make([]Summary, 0, len(m.byID))
	for id, p := range m.byID {
		out = append(out, Summary{ID: id, Name: p.name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Cells returns a copy of the cells stored under id.
func (m *MemStore) Cells(ctx context.Context, id int64) ([]core.Cell, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(p.cells), nil
}

// Add stores a copy of cells under name.
func (m *MemStore) Add(ctx context.Context, name string, cells []core.Cell) (Summary, error) {
	if strings.TrimSpace(name) == "" {
		return Summary{}, ErrEmptyName
	}
	for _, p := range m.byID {
		if p.name == name {
			return Summary{}, ErrDuplicateName
		}
	}
	id := m.nextID
	m.nextID++
	m.byID[id] = memPattern{name: name, cells: slices.Clone(cells)}
	return Summary{ID: id, Name: name}, nil
}

// Delete removes id if present.
func (m *MemStore) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

// Close is a no-op.
func (m *MemStore) Close() error { return nil }
