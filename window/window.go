// Package window wraps engine windows in an ownership type with
// functional-option creation and idempotent Close.
package window

import (
	"fmt"

	"github.com/gale-engine/gale"
)

// Window owns an engine window. The window ID is cached at creation so
// event correlation keeps working while the native handle is busy.
//
// Window is not safe for concurrent use; it inherits the owning-thread
// model of the backend.
type Window struct {
	handle gale.WindowHandle
	id     gale.WindowID
	closed bool
}

// Option configures window creation.
type Option func(*gale.WindowOptions)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *gale.WindowOptions) {
		o.Title = title
	}
}

// WithSize sets the initial client size in pixels.
func WithSize(w, h int32) Option {
	return func(o *gale.WindowOptions) {
		o.Size = gale.Sz(w, h)
	}
}

// WithPosition places the window at p instead of letting the engine
// choose.
func WithPosition(p gale.Point) Option {
	return func(o *gale.WindowOptions) {
		pos := p
		o.Position = &pos
	}
}

// WithFlags sets creation flags in addition to those implied by other
// options.
func WithFlags(flags gale.WindowFlags) Option {
	return func(o *gale.WindowOptions) {
		o.Flags |= flags
	}
}

// Fullscreen creates the window fullscreen.
func Fullscreen() Option { return WithFlags(gale.WindowFullscreen) }

// Hidden creates the window hidden; call Show to reveal it.
func Hidden() Option { return WithFlags(gale.WindowHidden) }

// Resizable allows the user to resize the window.
func Resizable() Option { return WithFlags(gale.WindowResizable) }

// Borderless creates the window without decorations.
func Borderless() Option { return WithFlags(gale.WindowBorderless) }

// New creates a window on the context's engine.
func New(ctx *gale.Context, opts ...Option) (*Window, error) {
	options := gale.WindowOptions{
		Size: gale.Sz(800, 600),
	}
	for _, opt := range opts {
		opt(&options)
	}

	handle, err := ctx.Engine().Windows().Create(options)
	if err != nil {
		return nil, fmt.Errorf("window: create: %w", err)
	}

	w := &Window{handle: handle, id: handle.ID()}
	gale.Logger().Info("window created",
		"id", uint32(w.id),
		"title", options.Title,
		"size", fmt.Sprintf("%dx%d", options.Size.Width, options.Size.Height))
	return w, nil
}

// ID returns the window's engine ID. The ID stays valid for event
// correlation even after Close.
func (w *Window) ID() gale.WindowID {
	return w.id
}

// Handle exposes the underlying engine handle for packages building on
// the window, such as render.
func (w *Window) Handle() gale.WindowHandle {
	return w.handle
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	return w.handle.SetTitle(title)
}

// Title returns the current title.
func (w *Window) Title() string {
	return w.handle.Title()
}

// Show makes the window visible.
func (w *Window) Show() error { return w.handle.Show() }

// Hide makes the window invisible.
func (w *Window) Hide() error { return w.handle.Hide() }

// Raise brings the window above other windows and gives it focus.
func (w *Window) Raise() error { return w.handle.Raise() }

// SetSize resizes the client area.
func (w *Window) SetSize(s gale.Size) error { return w.handle.SetSize(s) }

// Size returns the client area size.
func (w *Window) Size() (gale.Size, error) { return w.handle.Size() }

// SetMinimumSize constrains user resizing from below.
func (w *Window) SetMinimumSize(s gale.Size) error { return w.handle.SetMinimumSize(s) }

// SetMaximumSize constrains user resizing from above.
func (w *Window) SetMaximumSize(s gale.Size) error { return w.handle.SetMaximumSize(s) }

// SetPosition moves the window.
func (w *Window) SetPosition(p gale.Point) error { return w.handle.SetPosition(p) }

// Position returns the window position.
func (w *Window) Position() (gale.Point, error) { return w.handle.Position() }

// Maximize maximizes the window.
func (w *Window) Maximize() error { return w.handle.Maximize() }

// Minimize minimizes the window.
func (w *Window) Minimize() error { return w.handle.Minimize() }

// Restore restores a minimized or maximized window.
func (w *Window) Restore() error { return w.handle.Restore() }

// SetFullscreen toggles fullscreen.
func (w *Window) SetFullscreen(enabled bool) error { return w.handle.SetFullscreen(enabled) }

// SetBordered toggles window decorations.
func (w *Window) SetBordered(bordered bool) error { return w.handle.SetBordered(bordered) }

// SetResizable toggles user resizing.
func (w *Window) SetResizable(resizable bool) error { return w.handle.SetResizable(resizable) }

// SetOpacity sets the window opacity in [0, 1].
func (w *Window) SetOpacity(opacity float32) error { return w.handle.SetOpacity(opacity) }

// Opacity returns the window opacity.
func (w *Window) Opacity() (float32, error) { return w.handle.Opacity() }

// SetMouseGrab confines the mouse to the window.
func (w *Window) SetMouseGrab(grab bool) error { return w.handle.SetMouseGrab(grab) }

// SetKeyboardGrab routes all keyboard input to the window.
func (w *Window) SetKeyboardGrab(grab bool) error { return w.handle.SetKeyboardGrab(grab) }

// Close destroys the native window. Close is idempotent; renderers
// created from the window must be closed first.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.handle.Destroy()
	gale.Logger().Info("window destroyed", "id", uint32(w.id))
	return err
}
