package resolution

import (
	"errors"
	"math"
)

// ErrInvalidRatio is returned when an aspect ratio component is non-positive,
// non-finite, or cannot be represented as a ratio of two unsigned integers.
var ErrInvalidRatio = errors.New("aspect ratio components must be positive and finite")

// ErrInvalidMagnitude is returned when a width, height, baseline, or scale
// factor is non-positive or non-finite, or when a dimension exceeds
// MaxDimension.
var ErrInvalidMagnitude = errors.New("magnitude must be positive and finite")

// ErrAspectRatioChanged is returned by ScaleKeepAspectRatio when the requested
// scale would not preserve the resolution's aspect ratio.
var ErrAspectRatioChanged = errors.New("scale does not preserve the aspect ratio")

// ErrUnknownResolution is returned by Parse when the input is neither a catalog
// name nor a recognized resolution expression.
var ErrUnknownResolution = errors.New("unknown resolution")

// MaxDimension is the largest width or height, after rounding up, that a
// Resolution may have.
const MaxDimension = math.MaxInt32

func validMagnitude(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// validDimension reports whether v is a usable resolution width or height.
func validDimension(v float64) bool {
	return validMagnitude(v) && math.Ceil(v) <= MaxDimension
}
