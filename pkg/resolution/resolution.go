// Package resolution converts between aspect ratios, baseline dimensions and
// concrete pixel sizes for game windows.
package resolution

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolution represents a concrete pixel resolution tied to an aspect ratio.
//
// A Resolution keeps the mathematically exact width and height, including any
// fractional pixel produced by applying its ratio to a baseline. Values are
// immutable; every operation that changes a dimension returns a new Resolution.
type Resolution struct {
	width  float64
	height float64
	ratio  AspectRatio
}

// Axis selects which dimension a baseline magnitude describes.
type Axis int

const (
	// AxisHeight means the baseline is the height, and the width is derived.
	AxisHeight Axis = iota

	// AxisWidth means the baseline is the width, and the height is derived.
	AxisWidth
)

func (a Axis) String() string {
	switch a {
	case AxisHeight:
		return "height"
	case AxisWidth:
		return "width"
	}

	return fmt.Sprintf("Axis(%d)", int(a))
}

// New creates a Resolution from an explicit width and height. The aspect ratio
// is derived from the two magnitudes and reduced.
func New(width, height float64) (Resolution, error) {
	if !validDimension(width) {
		return Resolution{}, fmt.Errorf("width %v is invalid: %w", width, ErrInvalidMagnitude)
	}

	if !validDimension(height) {
		return Resolution{}, fmt.Errorf("height %v is invalid: %w", height, ErrInvalidMagnitude)
	}

	ratio, err := NewAspectRatioFloat(width, height)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to derive aspect ratio of %v x %v: %w", width, height, err)
	}

	return Resolution{width: width, height: height, ratio: ratio}, nil
}

// FromHeight creates a Resolution whose width is height scaled by the ratio.
func FromHeight(height float64, ratio AspectRatio) (Resolution, error) {
	return FromBaseline(AxisHeight, height, ratio)
}

// FromWidth creates a Resolution whose height is width scaled by the inverse
// of the ratio.
func FromWidth(width float64, ratio AspectRatio) (Resolution, error) {
	return FromBaseline(AxisWidth, width, ratio)
}

// FromBaseline creates a Resolution from a single magnitude along axis,
// deriving the companion dimension from ratio.
func FromBaseline(axis Axis, baseline float64, ratio AspectRatio) (Resolution, error) {
	if ratio.IsZero() {
		return Resolution{}, fmt.Errorf("aspect ratio %s is invalid: %w", ratio, ErrInvalidRatio)
	}

	if !validMagnitude(baseline) {
		return Resolution{}, fmt.Errorf("baseline %s %v is invalid: %w", axis, baseline, ErrInvalidMagnitude)
	}

	num := float64(ratio.width)
	den := float64(ratio.height)

	var res Resolution

	switch axis {
	case AxisHeight:
		// Multiply before dividing so evenly divisible inputs stay integral.
		res = Resolution{width: baseline * num / den, height: baseline, ratio: ratio}
	case AxisWidth:
		res = Resolution{width: baseline, height: baseline * den / num, ratio: ratio}
	default:
		return Resolution{}, fmt.Errorf("unknown axis %s", axis)
	}

	if !validDimension(res.width) || !validDimension(res.height) {
		return Resolution{}, fmt.Errorf("baseline %s %v at %s is out of range: %w", axis, baseline, ratio, ErrInvalidMagnitude)
	}

	return res, nil
}

func must(r Resolution, err error) Resolution {
	if err != nil {
		panic(err)
	}

	return r
}

// Width returns the exact width, which may be fractional.
func (r Resolution) Width() float64 {
	return r.width
}

// Height returns the exact height, which may be fractional.
func (r Resolution) Height() float64 {
	return r.height
}

// AspectRatio returns the ratio the resolution was built with or derived from.
func (r Resolution) AspectRatio() AspectRatio {
	return r.ratio
}

// Size returns the exact floating-point width and height without rounding.
func (r Resolution) Size() Size {
	return Size{Width: r.width, Height: r.height}
}

// Pixels returns the integer pixel size. Fractional dimensions are always
// rounded up so content is never clipped; 853.33 becomes 854.
func (r Resolution) Pixels() PixelSize {
	return PixelSize{
		Width:  int(math.Ceil(r.width)),
		Height: int(math.Ceil(r.height)),
	}
}

// Exactness classifies the resolution as Exact when both dimensions are whole
// pixels and Approximate otherwise.
func (r Resolution) Exactness() Exactness {
	if isIntegral(r.width) && isIntegral(r.height) {
		return Exact
	}

	return Approximate
}

// IsExact is shorthand for r.Exactness() == Exact.
func (r Resolution) IsExact() bool {
	return r.Exactness() == Exact
}

// CanFit reports whether the resolution's height yields a whole-pixel width
// under ratio.
func (r Resolution) CanFit(ratio AspectRatio) bool {
	return FitsAspectRatio(r.height, ratio)
}

// String renders the integer pixel size, e.g. "854 x 480".
func (r Resolution) String() string {
	return r.Pixels().String()
}

// FitsAspectRatio reports whether height produces a whole-pixel width under
// ratio.
func FitsAspectRatio(height float64, ratio AspectRatio) bool {
	if ratio.IsZero() || !validMagnitude(height) {
		return false
	}

	return isIntegral(height * float64(ratio.width) / float64(ratio.height))
}

func isIntegral(v float64) bool {
	return v == math.Trunc(v)
}

// Exactness is the derived classification of a Resolution.
type Exactness int

const (
	// Exact resolutions have whole-pixel width and height.
	Exact Exactness = iota

	// Approximate resolutions need rounding to reach whole pixels.
	Approximate
)

func (e Exactness) String() string {
	switch e {
	case Exact:
		return "exact"
	case Approximate:
		return "approximate"
	}

	return fmt.Sprintf("Exactness(%d)", int(e))
}

// Size is a floating-point width and height.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%s x %s", formatFloat(s.Width), formatFloat(s.Height))
}

// PixelSize is a whole-pixel width and height.
type PixelSize struct {
	Width  int
	Height int
}

// Size converts the pixel size back to floating point.
func (p PixelSize) Size() Size {
	return Size{Width: float64(p.Width), Height: float64(p.Height)}
}

func (p PixelSize) String() string {
	return fmt.Sprintf("%d x %d", p.Width, p.Height)
}

// formatFloat renders v with at most three decimals and no trailing zeros.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
}
