package window

import "github.com/SethCurry/winres/pkg/resolution"

// FixedLayout fixes an ebiten game's logical screen to a resolution regardless of
// the outside window size. Embed it in a type implementing ebiten.Game.
type FixedLayout struct {
	Resolution resolution.Resolution
}

// Layout returns the integer pixel size of the resolution.
func (l FixedLayout) Layout(_, _ int) (int, int) {
	px := l.Resolution.Pixels()

	return px.Width, px.Height
}

// LayoutF returns the exact floating-point size of the resolution.
func (l FixedLayout) LayoutF(_, _ float64) (float64, float64) {
	size := l.Resolution.Size()

	return size.Width, size.Height
}
