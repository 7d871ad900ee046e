// Command liferun advances a pattern file without a window.
package main

import (
	"flag"
	"fmt"

	"lifecanvas/internal/patternfile"
	"lifecanvas/internal/sims/life"

	"github.com/golang/glog"
)

func main() {
	in := flag.String("in", "", "pattern file to start from (default: a glider)")
	out := flag.String("out", "", "write the final pattern to this file")
	steps := flag.Int("steps", 100, "generations to run")
	every := flag.Int("every", 0, "print population every N generations (0: only at the end)")
	ruleText := flag.String("rule", "B3/S23", "birth/survival rule")
	flag.Parse()
	defer glog.Flush()

	rule, err := life.ParseRule(*ruleText)
	if err != nil {
		glog.Exitf("rule: %v", err)
	}

	world := life.New("life", rule)
	if *in == "" {
		world.Reset(0)
	} else {
		cells, err := patternfile.LoadFile(*in)
		if err != nil {
			glog.Exit(err)
		}
		world.SetCells(cells)
	}

	report := func() {
		line := fmt.Sprintf("generation %d population %d", world.Generation(), world.Population())
		if r, ok := world.Grid().Bounds(); ok {
			line += fmt.Sprintf(" bounds [%d,%d]-[%d,%d]", r.MinCol, r.MinRow, r.MaxCol, r.MaxRow)
		}
		fmt.Println(line)
	}

	report()
	for i := 1; i <= *steps; i++ {
		world.Step()
		if *every > 0 && i%*every == 0 && i != *steps {
			report()
		}
	}
	if *steps > 0 {
		report()
	}

	if *out != "" {
		if err := patternfile.SaveFile(*out, world.Grid()); err != nil {
			glog.Exit(err)
		}
	}
}
