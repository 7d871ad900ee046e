//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	Prompt Prompt
}

// NewOverlay constructs a stub overlay.
func NewOverlay(any) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowLibrary is a no-op in headless builds.
func (o *Overlay) ShowLibrary([]string) {}

// HideLibrary is a no-op in headless builds.
func (o *Overlay) HideLibrary() {}

// LibraryVisible always reports false in headless builds.
func (o *Overlay) LibraryVisible() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
