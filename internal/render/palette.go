package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMap is a gradient defined by sorted keypoints in [0,1].
type ColorMap []struct {
	Col colorful.Color
	Pos float64
}

// At returns the HCL blend between the keypoints around t.
func (m ColorMap) At(t float64) colorful.Color {
	if len(m) == 0 {
		return colorful.Color{}
	}
	if t <= m[0].Pos {
		return m[0].Col
	}
	for i := 0; i < len(m)-1; i++ {
		c1, c2 := m[i], m[i+1]
		if t == c2.Pos {
			return c2.Col
		}
		if c1.Pos <= t && t < c2.Pos {
			return c1.Col.BlendHcl(c2.Col, (t-c1.Pos)/(c2.Pos-c1.Pos)).Clamped()
		}
	}
	return m[len(m)-1].Col
}

func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("mustParseHex: " + err.Error())
	}
	return c
}

// Theme holds the colours used to draw the board.
type Theme struct {
	Background color.RGBA
	GridLine   color.RGBA
	Cursor     color.RGBA
	PanelText  color.RGBA

	// cells[n] is the fill for a live cell with n live neighbors.
	cells [9]color.RGBA
}

// DefaultTheme draws black-ish cells on white, shading crowded cells
// towards red so dying regions stand out.
func DefaultTheme() *Theme {
	cells := ColorMap{
		{mustParseHex("#3288bd"), 0.0},
		{mustParseHex("#1a1a1a"), 0.25},
		{mustParseHex("#1a1a1a"), 0.375},
		{mustParseHex("#d53e4f"), 1.0},
	}
	return NewTheme(cells)
}

// MonochromeTheme draws every live cell black.
func MonochromeTheme() *Theme {
	black := mustParseHex("#000000")
	return NewTheme(ColorMap{{black, 0}, {black, 1}})
}

// NewTheme samples cells at each neighbor count from 0 to 8.
func NewTheme(cells ColorMap) *Theme {
	t := &Theme{
		Background: toRGBA(mustParseHex("#ffffff")),
		GridLine:   toRGBA(mustParseHex("#dcdcdc")),
		Cursor:     toRGBA(mustParseHex("#ff0000")),
		PanelText:  toRGBA(mustParseHex("#dcdce6")),
	}
	for n := range t.cells {
		t.cells[n] = toRGBA(cells.At(float64(n) / 8))
	}
	return t
}

// CellColor returns the fill for a live cell with n live neighbors.
func (t *Theme) CellColor(n int) color.RGBA {
	n = max(0, min(n, len(t.cells)-1))
	return t.cells[n]
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
