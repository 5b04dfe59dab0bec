package resolution

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a resolution from one of:
//
//   - a catalog name, such as "720p" or "480p@4:3"
//   - an explicit size, such as "1280x720"
//   - a ratio and baseline height, such as "16:9@480"
func Parse(s string) (Resolution, error) {
	s = strings.TrimSpace(s)

	if r, ok := Lookup(s); ok {
		return r, nil
	}

	if ratioPart, heightPart, ok := strings.Cut(s, "@"); ok {
		ratio, err := ParseAspectRatio(ratioPart)
		if err != nil {
			return Resolution{}, fmt.Errorf("failed to parse %q: %w", s, err)
		}

		height, err := strconv.ParseFloat(strings.TrimSuffix(heightPart, "p"), 64)
		if err != nil {
			return Resolution{}, fmt.Errorf("height in %q is not a number: %w", s, ErrInvalidMagnitude)
		}

		return FromHeight(height, ratio)
	}

	if widthPart, heightPart, ok := strings.Cut(strings.ToLower(s), "x"); ok {
		width, err := strconv.ParseFloat(strings.TrimSpace(widthPart), 64)
		if err != nil {
			return Resolution{}, fmt.Errorf("width in %q is not a number: %w", s, ErrInvalidMagnitude)
		}

		height, err := strconv.ParseFloat(strings.TrimSpace(heightPart), 64)
		if err != nil {
			return Resolution{}, fmt.Errorf("height in %q is not a number: %w", s, ErrInvalidMagnitude)
		}

		return New(width, height)
	}

	return Resolution{}, fmt.Errorf("%q: %w", s, ErrUnknownResolution)
}
