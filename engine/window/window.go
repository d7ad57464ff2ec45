// Package window owns the native window and its event loop. The GPU surface is created from
// the window by the renderer through SurfaceDescriptor.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-spheres/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window defaults.
const (
	DefaultTitle  = "Instanced Spheres"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrNotInitialized is returned when a platform call is made on a window that failed to open
// or was already closed.
var ErrNotInitialized = errors.New("window: not initialized")

// Window defines the interface for a native window with a polling event loop.
type Window interface {
	// SetUpdateCallback sets the function called once per event-loop iteration after events
	// are polled. A non-nil error stops the loop and is returned from ProcessMessages.
	//
	// Parameters:
	//   - callback: the per-iteration function
	SetUpdateCallback(callback func() error)

	// SetResizeCallback sets the function called when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: receives the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns the descriptor used to create a GPU surface for this window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is not open
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and no close was requested.
	IsRunning() bool

	// RequestClose asks the event loop to stop after the current iteration.
	RequestClose()

	// Close destroys the native window and terminates the platform layer.
	//
	// Returns:
	//   - error: ErrNotInitialized if the window is not open
	Close() error

	// ProcessMessages runs the event loop until the window closes or the update callback fails.
	//
	// Returns:
	//   - error: the first update callback error, or nil on a normal close
	ProcessMessages() error

	// Title returns the window title.
	Title() string

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	// title is the text displayed in the window title bar.
	title string

	// size limits, 0 means unconstrained
	maxWidth, maxHeight int
	minWidth, minHeight int

	// width and height hold the requested size until the window opens, then the framebuffer size.
	width, height int

	// internalWindow holds the platform-specific window handle.
	internalWindow any

	onUpdate func() error
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow opens a native window with the given options. An empty title falls back to
// DefaultTitle.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: if the platform layer or window creation fails
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		width:     DefaultWidth,
		height:    DefaultHeight,
		minWidth:  200,
		minHeight: 150,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, DefaultTitle)

	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func() error) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() error {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			if err := w.onUpdate(); err != nil {
				return err
			}
		}

		runtime.Gosched()
	}
	return nil
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
