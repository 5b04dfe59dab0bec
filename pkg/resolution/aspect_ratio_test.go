package resolution_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SethCurry/winres/pkg/resolution"
)

func TestAspectRatioString(t *testing.T) {
	testCases := []struct {
		name     string
		ratio    resolution.AspectRatio
		expected string
	}{
		{"Simple 1:1", resolution.Square, "1:1"},
		{"Widescreen", resolution.SixteenNine, "16:9"},
		{"Standard", resolution.FourThree, "4:3"},
		{"Ultrawide", resolution.Ultrawide, "21:9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.ratio.String())
		})
	}
}

func TestNewAspectRatioReduces(t *testing.T) {
	testCases := []struct {
		width, height int
		expected      resolution.AspectRatio
	}{
		{8, 4, mustRatio(t, 2, 1)},
		{4, 2, mustRatio(t, 2, 1)},
		{1920, 1080, resolution.SixteenNine},
		{1280, 720, resolution.SixteenNine},
		{640, 480, resolution.FourThree},
		{800, 600, resolution.FourThree},
		{2560, 1080, mustRatio(t, 64, 27)},
	}

	for _, tc := range testCases {
		t.Run(resolution.PixelSize{Width: tc.width, Height: tc.height}.String(), func(t *testing.T) {
			got, err := resolution.NewAspectRatio(tc.width, tc.height)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.True(t, got.Equal(tc.expected))
		})
	}
}

func TestAspectRatioScaledComponentsAreEqual(t *testing.T) {
	bases := [][2]int{{16, 9}, {4, 3}, {21, 9}, {3, 2}, {7, 5}, {1, 1}}

	for _, b := range bases {
		base, err := resolution.NewAspectRatio(b[0], b[1])
		require.NoError(t, err)

		for k := 1; k <= 64; k++ {
			scaled, err := resolution.NewAspectRatio(b[0]*k, b[1]*k)
			require.NoError(t, err)
			assert.Equal(t, base, scaled, "%d:%d scaled by %d", b[0], b[1], k)

			fscaled, err := resolution.NewAspectRatioFloat(float64(b[0])*float64(k), float64(b[1])*float64(k))
			require.NoError(t, err)
			assert.Equal(t, base, fscaled)
		}

		half, err := resolution.NewAspectRatioFloat(float64(b[0])*0.5, float64(b[1])*0.5)
		require.NoError(t, err)
		assert.Equal(t, base, half)
	}
}

func TestNewAspectRatioRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 9},
		{"zero height", 16, 0},
		{"negative width", -16, 9},
		{"negative height", 16, -9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolution.NewAspectRatio(tc.width, tc.height)
			require.ErrorIs(t, err, resolution.ErrInvalidRatio)
			assert.True(t, got.IsZero())
		})
	}
}

func TestNewAspectRatioFloatRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name          string
		width, height float64
	}{
		{"zero", 0, 9},
		{"negative", 16, -1},
		{"infinite", math.Inf(1), 9},
		{"nan", 16, math.NaN()},
		{"unrepresentable", 1, math.SmallestNonzeroFloat64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolution.NewAspectRatioFloat(tc.width, tc.height)
			require.ErrorIs(t, err, resolution.ErrInvalidRatio)
		})
	}
}

func TestAspectRatioRatio(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, resolution.SixteenNine.Ratio(), 1e-12)
	assert.InDelta(t, 4.0/3.0, resolution.FourThree.Ratio(), 1e-12)
	assert.Zero(t, resolution.AspectRatio{}.Ratio())
}

func TestParseAspectRatio(t *testing.T) {
	testCases := []struct {
		input    string
		expected resolution.AspectRatio
	}{
		{"16:9", resolution.SixteenNine},
		{" 4:3 ", resolution.FourThree},
		{"32:18", resolution.SixteenNine},
		{"1.5:1", mustRatio(t, 3, 2)},
		{"2.5:1", mustRatio(t, 5, 2)},
		{"2.39:1", mustRatio(t, 239, 100)},
		{"1.85:1", mustRatio(t, 37, 20)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := resolution.ParseAspectRatio(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseAspectRatioErrors(t *testing.T) {
	for _, input := range []string{"", "16", "16:9:1", "a:9", "16:b", "0:9", "16:-9", "NaN:1"} {
		t.Run(input, func(t *testing.T) {
			_, err := resolution.ParseAspectRatio(input)
			require.ErrorIs(t, err, resolution.ErrInvalidRatio)
		})
	}
}

func TestAspectRatioJSON(t *testing.T) {
	type wrapper struct {
		Ratio resolution.AspectRatio `json:"ratio"`
	}

	data, err := json.Marshal(wrapper{Ratio: resolution.FourThree})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ratio":"4:3"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"ratio":"1920:1080"}`), &decoded))
	assert.Equal(t, resolution.SixteenNine, decoded.Ratio)

	require.Error(t, json.Unmarshal([]byte(`{"ratio":"0:1"}`), &decoded))
}

func mustRatio(t *testing.T, width, height int) resolution.AspectRatio {
	t.Helper()

	r, err := resolution.NewAspectRatio(width, height)
	require.NoError(t, err)

	return r
}
