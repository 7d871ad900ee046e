//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifecanvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// statusSource is what the HUD reads every frame.
type statusSource interface {
	core.ParameterProvider
	Status() string
}

// HUD renders the status bar along the bottom edge and the step buttons for
// adjustable parameters.
type HUD struct {
	src       statusSource
	snapshot  core.ParameterSnapshot
	controls  []hudControlState
	intSetter core.IntParameterSetter

	textColor color.Color
	line      string
}

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	barHeight    = 22
	panelPadding = 6
	buttonSize   = 16
	buttonGap    = 4
	textBaseline = 15
)

// NewHUD constructs a HUD over src. Controls are picked up when src provides
// them.
func NewHUD(src statusSource, textColor color.Color) *HUD {
	h := &HUD{src: src, textColor: textColor}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Height is the vertical space the status bar occupies.
func (h *HUD) Height() int { return barHeight }

// Update refreshes the snapshot and handles button clicks. It reports whether
// the click was consumed so the caller does not also treat it as a cell
// selection.
func (h *HUD) Update(screenW, screenH int) bool {
	if h == nil {
		return false
	}
	h.snapshot = h.src.Parameters()
	h.line = StatusLine(h.snapshot, h.src.Status())
	h.layoutControls(screenW, screenH)
	h.refreshControlValues()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < screenH-barHeight {
		return false
	}
	pt := image.Pt(mx, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pt.In(state.minusRect):
			h.applyAdjustment(state, -1)
		case pt.In(state.plusRect):
			h.applyAdjustment(state, 1)
		}
	}
	return true
}

// Draw paints the status bar.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	b := screen.Bounds()
	top := b.Dy() - barHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(b.Dx()), barHeight, color.RGBA{R: 16, G: 16, B: 20, A: 230}, false)
	text.Draw(screen, h.line, basicfont.Face7x13, panelPadding, top+textBaseline, h.textColor)
	for i := range h.controls {
		state := &h.controls[i]
		h.drawButton(screen, state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(screen, state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) layoutControls(screenW, screenH int) {
	right := screenW - panelPadding
	y := screenH - barHeight + (barHeight-buttonSize)/2
	for i := len(h.controls) - 1; i >= 0; i-- {
		plus := image.Rect(right-buttonSize, y, right, y+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
		h.controls[i].plusRect = plus
		h.controls[i].minusRect = minus
		right = minus.Min.X - 2*buttonGap
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil {
		return false
	}
	_, ok := state.control.Adjust(state.value, direction)
	return ok
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !state.hasValue || h.intSetter == nil {
		return
	}
	target, ok := state.control.Adjust(state.value, direction)
	if !ok {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}
