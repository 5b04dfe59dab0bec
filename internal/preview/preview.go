// Package preview opens an ebiten window showing a test card at a resolution.
package preview

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/SethCurry/winres/internal/testcard"
	"github.com/SethCurry/winres/pkg/resolution"
	"github.com/SethCurry/winres/pkg/window"
)

// Game implements ebiten.Game. Its logical screen is fixed to the previewed
// resolution.
type Game struct {
	window.FixedLayout

	source image.Image
	card   *ebiten.Image
	label  string
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a preview of r.
func NewGame(r resolution.Resolution) (*Game, error) {
	source, err := testcard.Render(r)
	if err != nil {
		return nil, fmt.Errorf("failed to render test card: %w", err)
	}

	return &Game{
		FixedLayout: window.FixedLayout{Resolution: r},
		source:      source,
		label:       Label(r),
	}, nil
}

// Label is the overlay text drawn on a preview of r.
func Label(r resolution.Resolution) string {
	return fmt.Sprintf("%s  %s  %s\nsize %s\nESC to quit", r, r.AspectRatio(), r.Exactness(), r.Size())
}

// Update quits on Escape.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return nil
}

// Draw renders the test card and label.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.card == nil {
		g.card = ebiten.NewImageFromImage(g.source)
	}

	screen.DrawImage(g.card, nil)
	ebitenutil.DebugPrintAt(screen, g.label, 8, 8)
}

// Run sizes the window to r and blocks until the preview is closed.
func Run(r resolution.Resolution, title string, logger *zap.Logger) error {
	game, err := NewGame(r)
	if err != nil {
		return err
	}

	w := window.New(window.Ebiten, window.WithLogger(logger))
	event := w.Apply(r)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("opening preview",
		zap.Stringer("resolution", event.Current),
		zap.Bool("exact", event.Exact))

	err = ebiten.RunGame(game)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("preview failed: %w", err)
	}

	return nil
}
