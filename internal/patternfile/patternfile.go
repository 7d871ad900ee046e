// Package patternfile reads and writes plain-text pattern files: one
// "col,row" pair per line, no header.
package patternfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lifecanvas/internal/core"
	"lifecanvas/internal/patterns"

	"github.com/golang/glog"
)

// ParseError reports a malformed line. Loading stops at the first one.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Write writes one line per cell.
func Write(w io.Writer, cells []core.Cell) error {
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", c.Col, c.Row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a pattern file. Blank lines are skipped. The first malformed
// line aborts the read with a *ParseError and no cells are returned.
func Read(r io.Reader) ([]core.Cell, error) {
	var cells []core.Cell
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := patterns.ParseCell(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		cells = append(cells, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}

// SaveFile writes the grid's live cells to path.
func SaveFile(path string, g *core.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	if err := Write(f, g.Cells()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	glog.V(1).Infof("saved %d cells to %s", g.Len(), path)
	return nil
}

// LoadFile reads the cells stored at path.
func LoadFile(path string) ([]core.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	cells, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	glog.V(1).Infof("loaded %d cells from %s", len(cells), path)
	return cells, nil
}
