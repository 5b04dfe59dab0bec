package resolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SethCurry/winres/pkg/resolution"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input    string
		expected resolution.Resolution
	}{
		{"720p", resolution.R720p},
		{"480p@4:3", resolution.R480p4x3},
		{"1920x1080", resolution.R1080p},
		{"1280 x 720", resolution.R720p},
		{"16:9@480", resolution.R480p},
		{"4:3@720p", resolution.R720p4x3},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := resolution.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		input string
		err   error
	}{
		{"4k", resolution.ErrUnknownResolution},
		{"", resolution.ErrUnknownResolution},
		{"16:0@480", resolution.ErrInvalidRatio},
		{"16:9@tall", resolution.ErrInvalidMagnitude},
		{"16:9@-480", resolution.ErrInvalidMagnitude},
		{"wide x 480", resolution.ErrInvalidMagnitude},
		{"640 x 0", resolution.ErrInvalidMagnitude},
		{"16:9@1e300", resolution.ErrInvalidMagnitude},
		{"1e19x1e19", resolution.ErrInvalidMagnitude},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := resolution.Parse(tc.input)
			require.ErrorIs(t, err, tc.err)
		})
	}
}
