package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SethCurry/winres/pkg/resolution"
	"github.com/SethCurry/winres/pkg/window"
)

type recordingSizer struct {
	calls []resolution.PixelSize
}

func (r *recordingSizer) SetWindowSize(width, height int) {
	r.calls = append(r.calls, resolution.PixelSize{Width: width, Height: height})
}

func TestApplyUsesRoundedPixels(t *testing.T) {
	sizer := &recordingSizer{}
	w := window.New(sizer)

	event := w.Apply(resolution.R480p)

	require.Len(t, sizer.calls, 1)
	assert.Equal(t, resolution.PixelSize{Width: 854, Height: 480}, sizer.calls[0])
	assert.Equal(t, resolution.PixelSize{}, event.Previous)
	assert.Equal(t, resolution.PixelSize{Width: 854, Height: 480}, event.Current)
	assert.False(t, event.Exact)
	assert.True(t, event.Changed())
	assert.Equal(t, event.Current, w.Size())
}

func TestApplyTracksPreviousSize(t *testing.T) {
	sizer := &recordingSizer{}

	var events []window.ResizeEvent
	w := window.New(sizer, window.WithListener(func(e window.ResizeEvent) {
		events = append(events, e)
	}))

	w.Apply(resolution.R720p)
	w.Apply(resolution.R1080p)
	w.Apply(resolution.R1080p)

	require.Len(t, events, 3)
	assert.Equal(t, resolution.PixelSize{Width: 1280, Height: 720}, events[1].Previous)
	assert.Equal(t, resolution.PixelSize{Width: 1920, Height: 1080}, events[1].Current)
	assert.True(t, events[1].Exact)
	assert.False(t, events[2].Changed())
	assert.Len(t, sizer.calls, 3)
}

func TestApplyLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	w := window.New(window.SizerFunc(func(int, int) {}), window.WithLogger(zap.New(core)))
	w.Apply(resolution.R480p)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "resized window", entry.Message)
	assert.Equal(t, "854 x 480", entry.ContextMap()["current"])
	assert.Equal(t, false, entry.ContextMap()["exact"])

	logs.TakeAll()
	w.Apply(resolution.R720p)
	assert.Equal(t, 1, logs.Len())
}

func TestLayout(t *testing.T) {
	l := window.FixedLayout{Resolution: resolution.R480p}

	width, height := l.Layout(3840, 2160)
	assert.Equal(t, 854, width)
	assert.Equal(t, 480, height)

	fwidth, fheight := l.LayoutF(3840, 2160)
	assert.InDelta(t, 853.333, fwidth, 0.001)
	assert.Equal(t, 480.0, fheight)
}
