package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecanvas/internal/control"
	"lifecanvas/internal/core"
	"lifecanvas/internal/patternfile"
	"lifecanvas/internal/patterns"
	"lifecanvas/internal/view"

	"github.com/golang/glog"
)

// maxStepsPerFrame bounds catch-up generations after a slow frame.
const maxStepsPerFrame = 4

// minTick and maxTick bound the simulation tick the session accepts.
const (
	minTick = 10 * time.Millisecond
	maxTick = 2 * time.Second
)

// Session wires a simulation, the interaction controller and the pattern
// library together. It owns two independent intervals: one advances the
// simulation while running, the other blinks the cursor at all times.
type Session struct {
	sim   core.Sim
	ctrl  *control.Controller
	store patterns.Store

	tick    *core.Interval
	running bool

	density float64
	seed    int64

	width, height int
	status        string
}

// NewSession builds a session for sim. store may be nil, in which case the
// pattern library is unavailable.
func NewSession(sim core.Sim, cfg *Config, store patterns.Store) *Session {
	return &Session{
		sim:     sim,
		ctrl:    control.New(sim, cfg.Blink),
		store:   store,
		tick:    core.NewInterval(min(max(cfg.Tick, minTick), maxTick)),
		density: cfg.Density,
		seed:    cfg.Seed,
	}
}

// Sim returns the running simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Controller returns the input controller.
func (s *Session) Controller() *control.Controller { return s.ctrl }

// Camera is shorthand for the controller's camera.
func (s *Session) Camera() *view.Camera { return s.ctrl.Camera }

// Cursor is shorthand for the controller's cursor.
func (s *Session) Cursor() *view.Cursor { return s.ctrl.Cursor }

// Status returns the last user-facing message.
func (s *Session) Status() string { return s.status }

// Running reports whether generations advance on the tick interval.
func (s *Session) Running() bool { return s.running }

// Layout records the viewport size and centres the camera on first use.
func (s *Session) Layout(w, h int) {
	s.width, s.height = w, h
	s.ctrl.Camera.EnsureCentered(w, h)
}

// Advance feeds dt to both intervals and returns how many generations ran.
func (s *Session) Advance(dt time.Duration) int {
	s.ctrl.Tick(dt)
	if !s.running {
		return 0
	}
	n := min(s.tick.Advance(dt), maxStepsPerFrame)
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
	return n
}

// Start begins advancing generations.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.tick.Restart()
	glog.V(1).Infof("session: started at generation %d", s.sim.Generation())
}

// Stop halts generation ticks. Grid and camera are left as they are.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.running = false
	glog.V(1).Infof("session: stopped at generation %d", s.sim.Generation())
}

// ToggleRunning starts or stops the simulation.
func (s *Session) ToggleRunning() {
	if s.running {
		s.Stop()
		return
	}
	s.Start()
}

// StepOnce advances a single generation.
func (s *Session) StepOnce() {
	s.sim.Step()
}

// TickPeriod returns the simulation interval.
func (s *Session) TickPeriod() time.Duration { return s.tick.Period() }

// SetTickPeriod changes the simulation interval.
func (s *Session) SetTickPeriod(d time.Duration) {
	s.tick.SetPeriod(min(max(d, minTick), maxTick))
}

// SetIntParameter implements core.IntParameterSetter for "tick_ms".
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != "tick_ms" || value <= 0 {
		return false
	}
	s.SetTickPeriod(time.Duration(value) * time.Millisecond)
	return true
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "tick_ms",
		Label:  "Tick ms",
		Step:   10,
		Min:    int(minTick / time.Millisecond),
		Max:    int(maxTick / time.Millisecond),
		HasMin: true,
		HasMax: true,
	}}
}

// ResetGlider stops, clears the board to a single glider at the origin and
// recentres the camera at the default zoom.
func (s *Session) ResetGlider() {
	s.Stop()
	s.sim.Reset(s.seed)
	s.ctrl.Camera.Reset(s.width, s.height)
	s.setStatus("reset to glider")
}

// Clear stops and kills every cell.
func (s *Session) Clear() {
	s.Stop()
	s.sim.Clear()
	s.setStatus("cleared")
}

// FillVisible randomly sets cells in the visible area. Each call uses the
// next seed so repeated fills differ while staying reproducible.
func (s *Session) FillVisible() int {
	rect := s.ctrl.Camera.VisibleRange(s.width, s.height)
	var added int
	if r, ok := s.sim.(randomizer); ok {
		added = r.Randomize(rect, s.density, s.seed)
	} else {
		added = core.FillRect(core.NewRNG(s.seed), s.sim.Grid(), rect, s.density)
	}
	s.seed++
	s.setStatus(fmt.Sprintf("added %d random cells", added))
	return added
}

type randomizer interface {
	Randomize(rect core.Rect, density float64, seed int64) int
}

// SaveFile stops the simulation and writes the live cells to path.
func (s *Session) SaveFile(path string) error {
	s.Stop()
	if err := patternfile.SaveFile(path, s.sim.Grid()); err != nil {
		s.fail(err)
		return err
	}
	s.setStatus(fmt.Sprintf("saved %d cells to %s", s.sim.Grid().Len(), path))
	return nil
}

// LoadFile stops the simulation and replaces the board with the cells stored
// at path. A malformed file leaves the board untouched.
func (s *Session) LoadFile(path string) error {
	s.Stop()
	cells, err := patternfile.LoadFile(path)
	if err != nil {
		s.fail(err)
		return err
	}
	s.sim.SetCells(cells)
	s.setStatus(fmt.Sprintf("loaded %d cells from %s", len(cells), path))
	return nil
}

// Patterns lists the library.
func (s *Session) Patterns(ctx context.Context) ([]patterns.Summary, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}

// PatternNames lists library names in the order the digit keys address them.
func (s *Session) PatternNames(ctx context.Context) ([]string, error) {
	list, err := s.Patterns(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names, nil
}

// LoadPatternAt loads the i-th (zero-based) library entry. It reports false
// when there is no such entry.
func (s *Session) LoadPatternAt(ctx context.Context, i int) (bool, error) {
	p, ok, err := s.patternAt(ctx, i)
	if !ok || err != nil {
		return false, err
	}
	return s.LoadPattern(ctx, p.ID)
}

// DeletePatternAt removes the i-th (zero-based) library entry. It reports
// false when there is no such entry.
func (s *Session) DeletePatternAt(ctx context.Context, i int) (bool, error) {
	p, ok, err := s.patternAt(ctx, i)
	if !ok || err != nil {
		return false, err
	}
	if err := s.DeletePattern(ctx, p.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) patternAt(ctx context.Context, i int) (patterns.Summary, bool, error) {
	list, err := s.Patterns(ctx)
	if err != nil {
		s.fail(err)
		return patterns.Summary{}, false, err
	}
	if i < 0 || i >= len(list) {
		return patterns.Summary{}, false, nil
	}
	return list[i], true, nil
}

// LoadPattern replaces the board with library pattern id. It reports false
// without touching the board when the id does not exist.
func (s *Session) LoadPattern(ctx context.Context, id int64) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	s.Stop()
	cells, err := s.store.Cells(ctx, id)
	if errors.Is(err, patterns.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		s.fail(err)
		return false, err
	}
	s.sim.SetCells(cells)
	s.setStatus(fmt.Sprintf("loaded pattern %d (%d cells)", id, len(cells)))
	return true, nil
}

// SavePattern stores the current board under name. A taken name is reported
// through ok and message; err is reserved for storage failures.
func (s *Session) SavePattern(ctx context.Context, name string) (ok bool, message string, err error) {
	if s.store == nil {
		return false, "pattern library unavailable", nil
	}
	s.Stop()
	_, err = s.store.Add(ctx, name, s.sim.Grid().Cells())
	switch {
	case errors.Is(err, patterns.ErrDuplicateName), errors.Is(err, patterns.ErrEmptyName):
		s.setStatus(err.Error())
		return false, err.Error(), nil
	case err != nil:
		s.fail(err)
		return false, "", err
	}
	message = fmt.Sprintf("pattern %q saved", name)
	s.setStatus(message)
	return true, message, nil
}

// DeletePattern removes library pattern id.
func (s *Session) DeletePattern(ctx context.Context, id int64) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}
	s.setStatus(fmt.Sprintf("deleted pattern %d", id))
	return nil
}

// Parameters describes the session and its simulation for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if p, ok := s.sim.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	cam := s.ctrl.Camera
	cur := s.ctrl.Cursor
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			core.BoolParam("running", "Running", s.running),
			core.IntParam("tick_ms", "Tick ms", int(s.tick.Period()/time.Millisecond)),
			core.FloatParam("zoom", "Zoom", cam.Zoom),
			core.StringParam("cursor", "Cursor", fmt.Sprintf("%d,%d", cur.Pos.Col, cur.Pos.Row)),
		},
	})
	return snap
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	glog.Info(msg)
}

func (s *Session) fail(err error) {
	s.status = err.Error()
	glog.Warning(err)
}
