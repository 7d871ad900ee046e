package life

import (
	"testing"

	"lifecanvas/internal/core"
)

func TestRunSoupEmptyFieldSettles(t *testing.T) {
	res := RunSoup(SoupConfig{Rule: Conway, Width: 16, Height: 16, Density: 0, Seed: 1}, 10)
	if res.Initial != 0 || res.Final != 0 || res.Period != 1 || res.Generations != 1 {
		t.Fatalf("empty soup result=%+v", res)
	}
}

func TestRunSoupFullFieldCollapses(t *testing.T) {
	// A filled 2x2 field is a block and stays put.
	res := RunSoup(SoupConfig{Rule: Conway, Width: 2, Height: 2, Density: 1, Seed: 1}, 10)
	if res.Initial != 4 || res.Final != 4 || !res.Settled() || res.Period != 1 {
		t.Fatalf("block soup result=%+v", res)
	}

	// A filled 3x1 strip is a blinker.
	res = RunSoup(SoupConfig{Rule: Conway, Width: 3, Height: 1, Density: 1, Seed: 1}, 10)
	if res.Period != 2 || res.Final != 3 || res.Generations != 2 {
		t.Fatalf("blinker soup result=%+v", res)
	}
}

func TestRunSoupDeterministic(t *testing.T) {
	cfg := SoupConfig{Rule: Conway, Width: 24, Height: 24, Density: 0.3, Seed: 99}
	a := RunSoup(cfg, 40)
	b := RunSoup(cfg, 40)
	if a != b {
		t.Fatalf("same config produced %+v and %+v", a, b)
	}
	if a.Peak < a.Initial || a.Peak < a.Final {
		t.Fatalf("peak below endpoints: %+v", a)
	}
}

func TestSweepSoupsOrdersResults(t *testing.T) {
	var cfgs []SoupConfig
	for _, d := range []float64{0.5, 0.1, 0.3} {
		for _, seed := range []int64{3, 1, 2} {
			cfgs = append(cfgs, SoupConfig{Rule: Conway, Width: 12, Height: 12, Density: d, Seed: seed})
		}
	}
	results := SweepSoups(cfgs, 20, 4)
	if len(results) != len(cfgs) {
		t.Fatalf("got %d results for %d configs", len(results), len(cfgs))
	}
	for i := 1; i < len(results); i++ {
		a, b := results[i-1].Config, results[i].Config
		if a.Density > b.Density || (a.Density == b.Density && a.Seed >= b.Seed) {
			t.Fatalf("results out of order at %d: %+v then %+v", i, a, b)
		}
	}
	for _, res := range results {
		if res != RunSoup(res.Config, 20) {
			t.Fatalf("sweep result differs from direct run for %+v", res.Config)
		}
	}
}

func TestSoupFillStaysInField(t *testing.T) {
	g := core.NewGrid()
	core.FillRect(core.NewRNG(5), g, core.Rect{MaxCol: 9, MaxRow: 4}, 1)
	if g.Len() != 50 {
		t.Fatalf("full fill of 10x5 gave %d cells", g.Len())
	}
}
