package patterns

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"lifecanvas/internal/core"
)

var glider = []core.Cell{{Col: 0, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 0}, {Col: 2, Row: 1}, {Col: 2, Row: 2}}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sqliteStore, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "patterns.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })
	return map[string]Store{
		"mem":    NewMemStore(),
		"sqlite": sqliteStore,
	}
}

func TestStoreAddListCells(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			g, err := s.Add(ctx, "glider", glider)
			if err != nil {
				t.Fatalf("add glider: %v", err)
			}
			if _, err := s.Add(ctx, "block", []core.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}}); err != nil {
				t.Fatalf("add block: %v", err)
			}
			if _, err := s.Add(ctx, "empty", nil); err != nil {
				t.Fatalf("add empty: %v", err)
			}

			list, err := s.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			var names []string
			for _, p := range list {
				names = append(names, p.Name)
			}
			if !slices.Equal(names, []string{"block", "empty", "glider"}) {
				t.Fatalf("list not ordered by name: %v", names)
			}

			cells, err := s.Cells(ctx, g.ID)
			if err != nil {
				t.Fatalf("cells: %v", err)
			}
			if !slices.Equal(cells, glider) {
				t.Fatalf("cells=%v, expected %v", cells, glider)
			}

			found, err := Find(ctx, s, "empty")
			if err != nil {
				t.Fatalf("find empty: %v", err)
			}
			if cells, err := s.Cells(ctx, found.ID); err != nil || len(cells) != 0 {
				t.Fatalf("empty pattern cells=%v err=%v", cells, err)
			}
		})
	}
}

func TestStoreDuplicateNameLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.Add(ctx, "glider", glider)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			before, _ := s.List(ctx)

			_, err = s.Add(ctx, "glider", []core.Cell{{Col: 9, Row: 9}})
			if !errors.Is(err, ErrDuplicateName) {
				t.Fatalf("duplicate add err=%v, expected ErrDuplicateName", err)
			}

			after, _ := s.List(ctx)
			if !slices.Equal(before, after) {
				t.Fatalf("list changed from %v to %v", before, after)
			}
			cells, _ := s.Cells(ctx, first.ID)
			if !slices.Equal(cells, glider) {
				t.Fatalf("original cells overwritten: %v", cells)
			}
		})
	}
}

func TestStoreMissingIDs(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Cells(ctx, 404); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Cells(404) err=%v, expected ErrNotFound", err)
			}
			if err := s.Delete(ctx, 404); err != nil {
				t.Fatalf("Delete(404) err=%v, expected nil", err)
			}

			p, err := s.Add(ctx, "glider", glider)
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if err := s.Delete(ctx, p.ID); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := s.Delete(ctx, p.ID); err != nil {
				t.Fatalf("second delete: %v", err)
			}
			if _, err := s.Cells(ctx, p.ID); !errors.Is(err, ErrNotFound) {
				t.Fatalf("deleted pattern still readable: %v", err)
			}
			if list, _ := s.List(ctx); len(list) != 0 {
				t.Fatalf("list after delete=%v", list)
			}
			if _, err := Find(ctx, s, "glider"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Find after delete err=%v", err)
			}
		})
	}
}

func TestStoreRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Add(ctx, "  ", glider); !errors.Is(err, ErrEmptyName) {
				t.Fatalf("blank name err=%v", err)
			}
		})
	}
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "patterns.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Add(ctx, "glider", glider); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Close()

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	p, err := Find(ctx, s, "glider")
	if err != nil {
		t.Fatalf("find after reopen: %v", err)
	}
	cells, err := s.Cells(ctx, p.ID)
	if err != nil || !slices.Equal(cells, glider) {
		t.Fatalf("cells=%v err=%v", cells, err)
	}
}

func TestCellCodec(t *testing.T) {
	text := EncodeCells(glider)
	if text != "0,1;1,2;2,0;2,1;2,2" {
		t.Fatalf("EncodeCells=%q", text)
	}
	cells, err := DecodeCells(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !slices.Equal(cells, glider) {
		t.Fatalf("decoded %v", cells)
	}
	if cells, err := DecodeCells(""); err != nil || cells != nil {
		t.Fatalf("empty decode=%v err=%v", cells, err)
	}
	if c, err := ParseCell(" -3 , 12 "); err != nil || c != (core.Cell{Col: -3, Row: 12}) {
		t.Fatalf("ParseCell=%v err=%v", c, err)
	}
	for _, bad := range []string{"1", "1,2,3", "a,1", "1,b", "1;2"} {
		if _, err := DecodeCells(bad); err == nil {
			t.Errorf("DecodeCells(%q) succeeded", bad)
		}
	}
}
