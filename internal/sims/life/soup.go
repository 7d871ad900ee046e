package life

import (
	"cmp"
	"slices"
	"sync"

	"lifecanvas/internal/core"

	"github.com/golang/glog"
)

// SoupConfig describes one random starting field.
type SoupConfig struct {
	Rule    Rule
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// SoupResult summarises how a soup evolved.
type SoupResult struct {
	Config SoupConfig

	Initial     int
	Final       int
	Peak        int
	Generations int
	// Period is 1 for a still field and 2 for a field of blinkers, 0 when the
	// soup was still changing after the step budget.
	Period int
}

// Settled reports whether the soup reached a still or period-2 state.
func (r SoupResult) Settled() bool { return r.Period > 0 }

// RunSoup fills a Width×Height field at the origin and runs it for at most
// steps generations, stopping early once it settles.
func RunSoup(cfg SoupConfig, steps int) SoupResult {
	g := core.NewGrid()
	rect := core.Rect{MaxCol: cfg.Width - 1, MaxRow: cfg.Height - 1}
	core.FillRect(core.NewRNG(cfg.Seed), g, rect, cfg.Density)

	res := SoupResult{Config: cfg, Initial: g.Len(), Peak: g.Len()}
	var prev *core.Grid
	for step := 1; step <= steps; step++ {
		next := Next(g, cfg.Rule)
		res.Generations = step
		res.Peak = max(res.Peak, next.Len())
		switch {
		case next.Equal(g):
			res.Period = 1
		case prev != nil && next.Equal(prev):
			res.Period = 2
		}
		prev, g = g, next
		if res.Period > 0 {
			break
		}
	}
	res.Final = g.Len()
	return res
}

// SweepSoups runs every config on a pool of workers and returns results
// ordered by density then seed.
func SweepSoups(cfgs []SoupConfig, steps, workers int) []SoupResult {
	workers = max(workers, 1)
	jobs := make(chan SoupConfig)
	results := make(chan SoupResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- RunSoup(cfg, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range cfgs {
			jobs <- cfg
		}
		close(jobs)
	}()

	all := make([]SoupResult, 0, len(cfgs))
	for res := range results {
		glog.V(1).Infof("soup density=%.2f seed=%d: %d -> %d cells after %d generations",
			res.Config.Density, res.Config.Seed, res.Initial, res.Final, res.Generations)
		all = append(all, res)
	}
	slices.SortFunc(all, func(a, b SoupResult) int {
		if c := cmp.Compare(a.Config.Density, b.Config.Density); c != 0 {
			return c
		}
		return cmp.Compare(a.Config.Seed, b.Config.Seed)
	})
	return all
}
