// Command patterns manages the SQLite pattern library used by the canvas.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"lifecanvas/internal/core"
	"lifecanvas/internal/patternfile"
	"lifecanvas/internal/patterns"

	"github.com/golang/glog"
)

type cellList []core.Cell

func (l *cellList) String() string {
	return patterns.EncodeCells(*l)
}

func (l *cellList) Set(value string) error {
	c, err := patterns.ParseCell(value)
	if err != nil {
		return err
	}
	*l = append(*l, c)
	return nil
}

const usage = `usage: patterns [-db file] <command> [flags]

commands:
  list                          list stored patterns
  add -name N [-file F] [-cell c,r ...]
                                store cells from a pattern file and/or flags
  rm -id N | -name N            delete a pattern
  export -id N | -name N -out F write a pattern to a file
`

func main() {
	db := flag.String("db", "patterns.db", "pattern library database file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	store, err := patterns.OpenSQLite(ctx, *db)
	if err != nil {
		glog.Exitf("open %s: %v", *db, err)
	}
	defer store.Close()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "list":
		err = list(ctx, store)
	case "add":
		err = add(ctx, store, args)
	case "rm":
		err = remove(ctx, store, args)
	case "export":
		err = export(ctx, store, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		glog.Errorf("%s: %v", cmd, err)
		glog.Flush()
		os.Exit(1)
	}
}

func list(ctx context.Context, store patterns.Store) error {
	summaries, err := store.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCELLS")
	for _, s := range summaries {
		cells, err := store.Cells(ctx, s.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\n", s.ID, s.Name, len(cells))
	}
	return tw.Flush()
}

func add(ctx context.Context, store patterns.Store, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "pattern name")
	file := fs.String("file", "", "pattern file with one col,row pair per line")
	var cells cellList
	fs.Var(&cells, "cell", "live cell in col,row form (repeatable)")
	fs.Parse(args)

	if *file != "" {
		fromFile, err := patternfile.LoadFile(*file)
		if err != nil {
			return err
		}
		cells = append(cells, fromFile...)
	}
	g := core.NewGrid(cells...)
	s, err := store.Add(ctx, strings.TrimSpace(*name), g.Cells())
	if err != nil {
		return err
	}
	fmt.Printf("added %q as %d (%d cells)\n", s.Name, s.ID, g.Len())
	return nil
}

// patternID resolves the pattern selected by -id or -name.
func patternID(ctx context.Context, store patterns.Store, id int64, name string) (int64, error) {
	if name == "" {
		return id, nil
	}
	s, err := patterns.Find(ctx, store, name)
	if err != nil {
		return 0, err
	}
	return s.ID, nil
}

func remove(ctx context.Context, store patterns.Store, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	id := fs.Int64("id", 0, "pattern id")
	name := fs.String("name", "", "pattern name, instead of -id")
	fs.Parse(args)

	target, err := patternID(ctx, store, *id, *name)
	if err != nil {
		return err
	}
	return store.Delete(ctx, target)
}

func export(ctx context.Context, store patterns.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	id := fs.Int64("id", 0, "pattern id")
	name := fs.String("name", "", "pattern name, instead of -id")
	out := fs.String("out", "", "destination file")
	fs.Parse(args)
	if *out == "" {
		return errors.New("-out is required")
	}

	target, err := patternID(ctx, store, *id, *name)
	if err != nil {
		return err
	}
	cells, err := store.Cells(ctx, target)
	if err != nil {
		return err
	}
	return patternfile.SaveFile(*out, core.NewGrid(cells...))
}
