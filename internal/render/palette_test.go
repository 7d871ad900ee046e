package render

import (
	"image/color"
	"testing"
)

func TestThemeCellColorsFollowGradient(t *testing.T) {
	theme := DefaultTheme()
	// Survival counts share the neutral fill.
	if theme.CellColor(2) != theme.CellColor(3) {
		t.Fatalf("n=2 %v and n=3 %v should match", theme.CellColor(2), theme.CellColor(3))
	}
	if theme.CellColor(0) == theme.CellColor(8) {
		t.Fatal("lonely and crowded cells must differ")
	}
	if got := theme.CellColor(8); got.R <= got.B {
		t.Fatalf("crowded cell %v should lean red", got)
	}
	if theme.CellColor(-5) != theme.CellColor(0) || theme.CellColor(42) != theme.CellColor(8) {
		t.Fatal("out of range neighbor counts must clamp")
	}
}

func TestMonochromeTheme(t *testing.T) {
	theme := MonochromeTheme()
	black := color.RGBA{A: 0xff}
	for n := 0; n <= 8; n++ {
		if got := theme.CellColor(n); got != black {
			t.Fatalf("n=%d colour %v, expected black", n, got)
		}
	}
	if theme.Background != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("background=%v", theme.Background)
	}
}

func TestColorMapEndpoints(t *testing.T) {
	m := ColorMap{{mustParseHex("#000000"), 0}, {mustParseHex("#ffffff"), 1}}
	if c := toRGBA(m.At(-1)); c != (color.RGBA{A: 0xff}) {
		t.Fatalf("below range=%v", c)
	}
	if c := toRGBA(m.At(2)); c != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("above range=%v", c)
	}
	if c := (ColorMap{}).At(0.5); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("empty map=%v", c)
	}
}
