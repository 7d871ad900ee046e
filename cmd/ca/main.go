//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"
	"lifecanvas/internal/patterns"
	"lifecanvas/internal/render"
	_ "lifecanvas/internal/sims/life"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		glog.Exitf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	ctx := context.Background()
	var store patterns.Store
	if cfg.DB != "" {
		db, err := patterns.OpenSQLite(ctx, cfg.DB)
		if err != nil {
			glog.Warningf("pattern library disabled: %v", err)
		} else {
			store = db
			defer db.Close()
		}
	}

	session := app.NewSession(sim, cfg, store)
	if cfg.Load != "" {
		if err := session.LoadFile(cfg.Load); err != nil {
			glog.Exitf("load %s: %v", cfg.Load, err)
		}
	}

	theme := render.DefaultTheme()
	if cfg.Palette == "mono" {
		theme = render.MonochromeTheme()
	}
	game := app.New(ctx, session, theme, cfg.File)

	ebiten.SetWindowTitle("lifecanvas - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		glog.Error(err)
	}
}
