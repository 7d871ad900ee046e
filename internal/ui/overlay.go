//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayLineHeight = 16
	overlayMargin     = 24
)

// Overlay draws the help panel, the pattern library listing and the name
// prompt on top of the canvas.
type Overlay struct {
	Prompt Prompt

	showHelp    bool
	showLibrary bool
	library     []string
	textColor   color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(textColor color.Color) *Overlay {
	return &Overlay{textColor: textColor}
}

// Update toggles the help panel. Keys are ignored while the prompt is open.
func (o *Overlay) Update() {
	if o.Prompt.Active() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// ShowLibrary lists names until HideLibrary is called.
func (o *Overlay) ShowLibrary(names []string) {
	o.library = LibraryLines(names)
	o.showLibrary = true
}

// HideLibrary removes the library listing.
func (o *Overlay) HideLibrary() { o.showLibrary = false }

// LibraryVisible reports whether the library listing is shown.
func (o *Overlay) LibraryVisible() bool { return o.showLibrary }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	switch {
	case o.Prompt.Active():
		o.drawPanel(screen, append(append([]string{}, o.library...), "", o.Prompt.Text()))
	case o.showHelp:
		o.drawPanel(screen, HelpLines)
	case o.showLibrary:
		o.drawPanel(screen, o.library)
	}
}

func (o *Overlay) drawPanel(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	w := float32(width + 2*overlayMargin)
	h := float32(len(lines)*overlayLineHeight + 2*overlayMargin)
	vector.DrawFilledRect(screen, overlayMargin, overlayMargin, w, h, color.RGBA{R: 10, G: 10, B: 14, A: 210}, false)
	vector.StrokeRect(screen, overlayMargin, overlayMargin, w, h, 1, color.RGBA{R: 90, G: 90, B: 110, A: 255}, false)
	for i, line := range lines {
		y := 2*overlayMargin + (i+1)*overlayLineHeight - 4
		text.Draw(screen, line, face, 2*overlayMargin, y, o.textColor)
	}
}
