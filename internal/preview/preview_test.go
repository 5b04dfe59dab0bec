package preview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SethCurry/winres/internal/preview"
	"github.com/SethCurry/winres/pkg/resolution"
)

func TestGameLayoutIsFixed(t *testing.T) {
	game, err := preview.NewGame(resolution.R480p4x3)
	require.NoError(t, err)

	for _, outside := range [][2]int{{640, 480}, {1920, 1080}, {100, 100}} {
		width, height := game.Layout(outside[0], outside[1])
		assert.Equal(t, 640, width)
		assert.Equal(t, 480, height)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "854 x 480  16:9  approximate\nsize 853.333 x 480\nESC to quit", preview.Label(resolution.R480p))
	assert.Equal(t, "1920 x 1080  16:9  exact\nsize 1920 x 1080\nESC to quit", preview.Label(resolution.R1080p))
}
