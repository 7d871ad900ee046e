// Command soup-sweep runs random soups across densities and seeds and reports
// how long they take to settle.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"lifecanvas/internal/sims/life"

	"github.com/golang/glog"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("density %v outside [0,1]", v)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 64, "edge length of the square starting field")
	seeds := flag.Int("seeds", 8, "seeds per density")
	seed := flag.Int64("seed", 1, "first seed")
	ruleText := flag.String("rule", "B3/S23", "birth/survival rule")
	densities := floatList{0.1, 0.2, 0.3, 0.4, 0.5}
	flag.Var(&densities, "densities", "comma-separated live-cell probabilities")
	flag.Parse()
	defer glog.Flush()

	rule, err := life.ParseRule(*ruleText)
	if err != nil {
		glog.Exitf("rule: %v", err)
	}

	var cfgs []life.SoupConfig
	for _, d := range densities {
		for i := 0; i < *seeds; i++ {
			cfgs = append(cfgs, life.SoupConfig{
				Rule:    rule,
				Width:   *size,
				Height:  *size,
				Density: d,
				Seed:    *seed + int64(i),
			})
		}
	}

	fmt.Printf("Sweeping %d soups (%d workers, %d steps, %dx%d, %s)\n", len(cfgs), *workers, *steps, *size, *size, rule)
	start := time.Now()
	results := life.SweepSoups(cfgs, *steps, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\n%-8s %-8s %-10s %-10s %-10s\n", "density", "settled", "mean gen", "mean final", "mean peak")
	for i := 0; i < len(results); {
		d := results[i].Config.Density
		j := i
		var settled, gens, final, peak int
		for ; j < len(results) && results[j].Config.Density == d; j++ {
			res := results[j]
			if res.Settled() {
				settled++
			}
			gens += res.Generations
			final += res.Final
			peak += res.Peak
		}
		n := j - i
		fmt.Printf("%-8.2f %3d/%-4d %-10.1f %-10.1f %-10.1f\n",
			d, settled, n, float64(gens)/float64(n), float64(final)/float64(n), float64(peak)/float64(n))
		i = j
	}

	longest := slices.Clone(results)
	slices.SortStableFunc(longest, func(a, b life.SoupResult) int { return b.Generations - a.Generations })
	fmt.Printf("\nLongest-lived soups (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(longest) && i < 5; i++ {
		res := longest[i]
		state := "unsettled"
		if res.Settled() {
			state = fmt.Sprintf("period %d", res.Period)
		}
		fmt.Printf("%2d) density=%.2f seed=%d gens=%d cells %d -> %d (peak %d) %s\n",
			i+1, res.Config.Density, res.Config.Seed, res.Generations, res.Initial, res.Final, res.Peak, state)
	}
}
