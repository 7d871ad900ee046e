//go:build ebiten

package app

import (
	"context"
	"time"

	"lifecanvas/internal/control"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var cursorKeys = map[ebiten.Key]control.Direction{
	ebiten.KeyArrowUp:    control.Up,
	ebiten.KeyArrowDown:  control.Down,
	ebiten.KeyArrowLeft:  control.Left,
	ebiten.KeyArrowRight: control.Right,
}

var libraryKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *Session
	file    string

	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	last  time.Time
	chars []rune
	w, h  int
}

// New constructs a Game for the provided session. file is the path used by
// the save and load keys.
func New(ctx context.Context, session *Session, theme *render.Theme, file string) *Game {
	painter := render.NewGridPainter(theme)
	return &Game{
		ctx:     ctx,
		session: session,
		file:    file,
		painter: painter,
		hud:     ui.NewHUD(session, painter.Theme().PanelText),
		overlay: ui.NewOverlay(painter.Theme().PanelText),
	}
}

// Update handles per-frame input and advances both session intervals.
func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last)
	g.last = now

	if g.overlay.Prompt.Active() {
		g.updatePrompt()
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		g.overlay.Update()
		g.updateKeys()
	}
	g.updatePointer()

	g.session.Advance(dt)
	return nil
}

func (g *Game) updatePrompt() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.overlay.Prompt.Cancel()
		g.overlay.HideLibrary()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		name := g.overlay.Prompt.Submit()
		g.overlay.HideLibrary()
		if _, _, err := g.session.SavePattern(g.ctx, name); err != nil {
			glog.Errorf("save pattern %q: %v", name, err)
		}
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.overlay.Prompt.Backspace()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.overlay.Prompt.Type(g.chars...)
}

func (g *Game) updateKeys() {
	s := g.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.ToggleRunning()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.StepOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.ResetGlider()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.FillVisible()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		_ = s.SaveFile(g.file)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		_ = s.LoadFile(g.file)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.openSavePrompt()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		if g.overlay.LibraryVisible() {
			g.overlay.HideLibrary()
		} else {
			g.showLibrary()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.Controller().Confirm()
	}
	for key, dir := range cursorKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Controller().MoveCursor(dir)
		}
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i, key := range libraryKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if shift {
			if _, err := s.DeletePatternAt(g.ctx, i); err != nil {
				glog.Errorf("delete library entry %d: %v", i+1, err)
			}
		} else if _, err := s.LoadPatternAt(g.ctx, i); err != nil {
			glog.Errorf("load library entry %d: %v", i+1, err)
		}
		if g.overlay.LibraryVisible() {
			g.showLibrary()
		}
	}
}

// showLibrary refreshes the library listing from the store and shows it.
func (g *Game) showLibrary() {
	names, err := g.session.PatternNames(g.ctx)
	if err != nil {
		glog.Errorf("list patterns: %v", err)
	}
	g.overlay.ShowLibrary(names)
}

func (g *Game) openSavePrompt() {
	g.showLibrary()
	g.overlay.Prompt.Open("Pattern name")
}

func (g *Game) updatePointer() {
	ctrl := g.session.Controller()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	consumed := g.hud.Update(g.w, g.h)
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ctrl.Select(x, y)
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		ctrl.BeginPan(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		ctrl.EndPan()
	default:
		ctrl.MovePointer(x, y)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		ctrl.Wheel(x, y, dy)
	}
}

// Draw renders the canvas, overlay and status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.painter.Draw(screen, s.Sim().Grid(), s.Camera(), s.Cursor())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the canvas always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	g.session.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
