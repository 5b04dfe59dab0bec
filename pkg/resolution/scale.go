package resolution

import "fmt"

// Scale is a per-axis multiplier applied to a Resolution.
type Scale struct {
	X float64
	Y float64
}

// Uniform returns a Scale that multiplies both axes by factor.
func Uniform(factor float64) Scale {
	return Scale{X: factor, Y: factor}
}

// IsUniform reports whether both axes are scaled by the same factor.
func (s Scale) IsUniform() bool {
	return s.X == s.Y
}

func (s Scale) String() string {
	if s.IsUniform() {
		return formatFloat(s.X) + "x"
	}

	return fmt.Sprintf("%sx, %sx", formatFloat(s.X), formatFloat(s.Y))
}

func (s Scale) validate() error {
	if !validMagnitude(s.X) || !validMagnitude(s.Y) {
		return fmt.Errorf("scale %v x %v is invalid: %w", s.X, s.Y, ErrInvalidMagnitude)
	}

	return nil
}

// HasIntegerScale reports whether r and target share an aspect ratio and the
// larger of the two heights is a whole multiple of the smaller.
func (r Resolution) HasIntegerScale(target Resolution) bool {
	if r.ratio != target.ratio {
		return false
	}

	small, large := r.height, target.height
	if small > large {
		small, large = large, small
	}

	return isIntegral(large / small)
}

// ScaleFactor returns the factor that turns r into target. When both share an
// aspect ratio the factor is uniform; otherwise each axis is scaled on its own.
func (r Resolution) ScaleFactor(target Resolution) Scale {
	if r.ratio != target.ratio {
		return Scale{X: target.width / r.width, Y: target.height / r.height}
	}

	return Uniform(target.height / r.height)
}

// Scale multiplies both dimensions. A uniform scale keeps the aspect ratio; a
// non-uniform scale derives a new one from the scaled dimensions.
func (r Resolution) Scale(s Scale) (Resolution, error) {
	if err := s.validate(); err != nil {
		return Resolution{}, err
	}

	width := r.width * s.X
	height := r.height * s.Y

	if !validDimension(width) || !validDimension(height) {
		return Resolution{}, fmt.Errorf("scaling %s by %s is out of range: %w", r, s, ErrInvalidMagnitude)
	}

	if s.IsUniform() {
		return Resolution{width: width, height: height, ratio: r.ratio}, nil
	}

	return New(width, height)
}

// ScaleKeepAspectRatio is like Scale but fails with ErrAspectRatioChanged if
// the scale would change the aspect ratio.
func (r Resolution) ScaleKeepAspectRatio(s Scale) (Resolution, error) {
	if err := s.validate(); err != nil {
		return Resolution{}, err
	}

	if !s.IsUniform() {
		return Resolution{}, fmt.Errorf("scaling %s by %s: %w", r, s, ErrAspectRatioChanged)
	}

	return r.Scale(s)
}

// ChangeHeight returns a copy with the given height. When maintainRatio is
// true the width is re-derived from the current aspect ratio; otherwise the
// width is kept and the aspect ratio is re-derived.
func (r Resolution) ChangeHeight(height float64, maintainRatio bool) (Resolution, error) {
	if maintainRatio {
		return FromHeight(height, r.ratio)
	}

	return New(r.width, height)
}

// ChangeWidth returns a copy with the given width. When maintainRatio is true
// the height is re-derived from the current aspect ratio; otherwise the height
// is kept and the aspect ratio is re-derived.
func (r Resolution) ChangeWidth(width float64, maintainRatio bool) (Resolution, error) {
	if maintainRatio {
		return FromWidth(width, r.ratio)
	}

	return New(width, r.height)
}

// WithAspectRatio keeps the height and re-derives the width from ratio.
func (r Resolution) WithAspectRatio(ratio AspectRatio) (Resolution, error) {
	return FromHeight(r.height, ratio)
}
