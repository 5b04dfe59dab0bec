// Package window sizes game windows from resolution values.
//
// The adapter consumes a Resolution's integer pixel size and exactness and
// forwards them to a windowing backend. The default backend is ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SethCurry/winres/pkg/resolution"
)

// Sizer is the window-sizing primitive of a windowing backend.
type Sizer interface {
	SetWindowSize(width, height int)
}

type ebitenSizer struct{}

func (ebitenSizer) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// Ebiten sizes the ebiten game window.
var Ebiten Sizer = ebitenSizer{}

// SizerFunc adapts a plain function to the Sizer interface.
type SizerFunc func(width, height int)

// SetWindowSize calls f(width, height).
func (f SizerFunc) SetWindowSize(width, height int) {
	f(width, height)
}

// ResizeEvent describes a window resize made by Window.Apply.
type ResizeEvent struct {
	Previous resolution.PixelSize
	Current  resolution.PixelSize

	// Exact is false when Current was rounded up from a fractional size.
	Exact bool
}

// Changed reports whether the pixel size differs from the previous one.
func (e ResizeEvent) Changed() bool {
	return e.Previous != e.Current
}

// Option configures a Window.
type Option func(*Window)

// WithLogger sets the logger used to report resizes.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Window) {
		w.logger = logger
	}
}

// WithListener registers a function that receives every ResizeEvent.
func WithListener(listener func(ResizeEvent)) Option {
	return func(w *Window) {
		w.listeners = append(w.listeners, listener)
	}
}

// Window tracks the size last applied to a backend. It is not safe for
// concurrent use.
type Window struct {
	sizer     Sizer
	logger    *zap.Logger
	listeners []func(ResizeEvent)
	current   resolution.PixelSize
}

// New creates a Window backed by sizer.
func New(sizer Sizer, options ...Option) *Window {
	w := &Window{
		sizer:  sizer,
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// Size returns the pixel size last applied, or the zero size if Apply has not
// been called.
func (w *Window) Size() resolution.PixelSize {
	return w.current
}

// Apply sizes the window to r's integer pixel size and notifies listeners.
func (w *Window) Apply(r resolution.Resolution) ResizeEvent {
	event := ResizeEvent{
		Previous: w.current,
		Current:  r.Pixels(),
		Exact:    r.IsExact(),
	}

	w.sizer.SetWindowSize(event.Current.Width, event.Current.Height)
	w.current = event.Current

	w.logger.Debug("resized window",
		zap.Stringer("previous", event.Previous),
		zap.Stringer("current", event.Current),
		zap.Stringer("aspect_ratio", r.AspectRatio()),
		zap.Bool("exact", event.Exact))

	if !event.Exact {
		w.logger.Debug("window size was rounded up",
			zap.Stringer("size", r.Size()),
			zap.Stringer("pixels", event.Current))
	}

	for _, listener := range w.listeners {
		listener(event)
	}

	return event
}
