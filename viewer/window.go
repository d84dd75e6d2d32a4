// Package viewer shows a rendered plot in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until the window
// is closed or Escape/q is pressed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	g := &plotGame{src: img, w: b.Dx(), h: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type plotGame struct {
	src  image.Image
	img  *ebiten.Image
	w, h int
}

func (g *plotGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *plotGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the image size;
// ebiten scales it to fit the window.
func (g *plotGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Viewer adapts Show to callers that take the display as a dependency.
type Viewer struct{}

func (Viewer) Display(img image.Image, title string) error { return Show(img, title) }
