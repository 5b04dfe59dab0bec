// Package testcard renders colour-bar test cards at a resolution's pixel size.
package testcard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/SethCurry/winres/pkg/resolution"
)

// MaxCardDimension is the largest width or height Render will draw.
const MaxCardDimension = 16384

// ErrEmptyCard is returned when asked to render a card with no pixels.
var ErrEmptyCard = errors.New("test card must be at least 1x1 pixels")

// ErrCardTooLarge is returned when either side exceeds MaxCardDimension.
var ErrCardTooLarge = fmt.Errorf("test card must be at most %dx%d pixels", MaxCardDimension, MaxCardDimension)

var bars = []color.NRGBA{
	{R: 192, G: 192, B: 192, A: 255},
	{R: 192, G: 192, B: 0, A: 255},
	{R: 0, G: 192, B: 192, A: 255},
	{R: 0, G: 192, B: 0, A: 255},
	{R: 192, G: 0, B: 192, A: 255},
	{R: 192, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 192, A: 255},
}

var (
	background = color.NRGBA{R: 16, G: 16, B: 16, A: 255}
	marker     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render draws a test card for r. The card is exactly r.Pixels() in size, so
// approximate resolutions get their rounded-up width and height.
//
// The top two thirds hold seven colour bars, and a one pixel white border and
// centre cross mark the edges and midpoint of the frame.
func Render(r resolution.Resolution) (*image.NRGBA, error) {
	px := r.Pixels()
	if px.Width < 1 || px.Height < 1 {
		return nil, fmt.Errorf("cannot render %s: %w", px, ErrEmptyCard)
	}

	if px.Width > MaxCardDimension || px.Height > MaxCardDimension {
		return nil, fmt.Errorf("cannot render %s: %w", px, ErrCardTooLarge)
	}

	img := imaging.New(px.Width, px.Height, background)

	barHeight := px.Height * 2 / 3
	if barHeight > 0 {
		barWidth := (px.Width + len(bars) - 1) / len(bars)

		for i, c := range bars {
			img = imaging.Paste(img, imaging.New(barWidth, barHeight, c), image.Pt(i*barWidth, 0))
		}
	}

	horizontal := imaging.New(px.Width, 1, marker)
	vertical := imaging.New(1, px.Height, marker)

	img = imaging.Paste(img, horizontal, image.Pt(0, 0))
	img = imaging.Paste(img, horizontal, image.Pt(0, px.Height-1))
	img = imaging.Paste(img, horizontal, image.Pt(0, px.Height/2))
	img = imaging.Paste(img, vertical, image.Pt(0, 0))
	img = imaging.Paste(img, vertical, image.Pt(px.Width-1, 0))
	img = imaging.Paste(img, vertical, image.Pt(px.Width/2, 0))

	return img, nil
}

// Format returns the image format for a file extension or format name such
// as "png", "jpeg" or ".jpg".
func Format(name string) (imaging.Format, error) {
	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		return 0, fmt.Errorf("unknown output format %q: %w", name, err)
	}

	return format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to encode test card as %s: %w", format, err)
	}

	return nil
}
