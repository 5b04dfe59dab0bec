package resolution

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// AspectRatio encodes a width:height ratio such as "16:9" or "4:3".
//
// Ratios are always stored in lowest terms, so 8:4, 4:2 and 2:1 are the same
// value and compare equal with ==. The zero value is not a valid ratio; use
// NewAspectRatio, NewAspectRatioFloat or ParseAspectRatio to build one.
type AspectRatio struct {
	width  uint64
	height uint64
}

var (
	// SixteenNine is the 16:9 widescreen ratio.
	SixteenNine = AspectRatio{16, 9}

	// FourThree is the 4:3 standard-definition ratio.
	FourThree = AspectRatio{4, 3}

	// Ultrawide is the 21:9 ratio.
	Ultrawide = AspectRatio{21, 9}

	// Square is the 1:1 ratio.
	Square = AspectRatio{1, 1}
)

// NewAspectRatio creates an AspectRatio from integer components, reducing it
// to lowest terms.
func NewAspectRatio(width, height int) (AspectRatio, error) {
	if width <= 0 {
		return AspectRatio{}, fmt.Errorf("aspect ratio width %d is invalid: %w", width, ErrInvalidRatio)
	}

	if height <= 0 {
		return AspectRatio{}, fmt.Errorf("aspect ratio height %d is invalid: %w", height, ErrInvalidRatio)
	}

	return reduced(uint64(width), uint64(height)), nil
}

// NewAspectRatioFloat creates an AspectRatio from floating-point components.
//
// The ratio is computed exactly from the binary values of width and height, so
// NewAspectRatioFloat(1920, 1080) is 16:9, while NewAspectRatioFloat(853.3, 480)
// yields whatever reduced fraction those floats represent. Ratios whose reduced
// terms do not fit in a uint64 are rejected with ErrInvalidRatio.
func NewAspectRatioFloat(width, height float64) (AspectRatio, error) {
	if !validMagnitude(width) {
		return AspectRatio{}, fmt.Errorf("aspect ratio width %v is invalid: %w", width, ErrInvalidRatio)
	}

	if !validMagnitude(height) {
		return AspectRatio{}, fmt.Errorf("aspect ratio height %v is invalid: %w", height, ErrInvalidRatio)
	}

	return fromRats(new(big.Rat).SetFloat64(width), new(big.Rat).SetFloat64(height))
}

// fromRats builds the reduced ratio width/height. Both must be positive.
func fromRats(width, height *big.Rat) (AspectRatio, error) {
	q := new(big.Rat).Quo(width, height)

	if !q.Num().IsUint64() || !q.Denom().IsUint64() {
		return AspectRatio{}, fmt.Errorf("aspect ratio %s:%s is not representable: %w",
			width.RatString(), height.RatString(), ErrInvalidRatio)
	}

	return AspectRatio{width: q.Num().Uint64(), height: q.Denom().Uint64()}, nil
}

func reduced(width, height uint64) AspectRatio {
	d := gcd(width, height)

	return AspectRatio{width: width / d, height: height / d}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Width returns the width term of the reduced ratio.
func (a AspectRatio) Width() uint64 {
	return a.width
}

// Height returns the height term of the reduced ratio.
func (a AspectRatio) Height() uint64 {
	return a.height
}

// IsZero reports whether a is the zero value, which is not a usable ratio.
func (a AspectRatio) IsZero() bool {
	return a.width == 0 || a.height == 0
}

// Ratio returns the decimal value of the ratio in width units per height unit.
func (a AspectRatio) Ratio() float64 {
	if a.IsZero() {
		return 0
	}

	return float64(a.width) / float64(a.height)
}

// Equal reports whether two ratios are equivalent.
func (a AspectRatio) Equal(other AspectRatio) bool {
	return a == other
}

// String converts the AspectRatio back into a colon-delimited string
// like "4:3".
func (a AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", a.width, a.height)
}

// MarshalText implements encoding.TextMarshaler.
func (a AspectRatio) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero aspect ratio: %w", ErrInvalidRatio)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseAspectRatio.
func (a *AspectRatio) UnmarshalText(text []byte) error {
	parsed, err := ParseAspectRatio(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// ParseAspectRatio takes a colon-delimited aspect ratio like "4:3" and returns
// an AspectRatio representing it. Decimal components such as "2.39:1" are
// read as exact decimals, so "2.39:1" is 239:100.
func ParseAspectRatio(ratio string) (AspectRatio, error) {
	parts := strings.Split(strings.TrimSpace(ratio), ":")

	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("invalid number of colons in aspect ratio %q: %w", ratio, ErrInvalidRatio)
	}

	width, widthErr := strconv.Atoi(parts[0])
	height, heightErr := strconv.Atoi(parts[1])

	if widthErr == nil && heightErr == nil {
		return NewAspectRatio(width, height)
	}

	rwidth, ok := new(big.Rat).SetString(parts[0])
	if !ok || rwidth.Sign() <= 0 {
		return AspectRatio{}, fmt.Errorf("width ratio %q is not a positive number: %w", parts[0], ErrInvalidRatio)
	}

	rheight, ok := new(big.Rat).SetString(parts[1])
	if !ok || rheight.Sign() <= 0 {
		return AspectRatio{}, fmt.Errorf("height ratio %q is not a positive number: %w", parts[1], ErrInvalidRatio)
	}

	return fromRats(rwidth, rheight)
}
