// Package render wraps engine renderers and textures. Scoped state
// changes (draw color, blend mode, viewport) use Push* methods that
// return a restore func, so temporary state cannot leak:
//
//	restore, err := r.PushColor(gale.RGB(255, 0, 0))
//	if err != nil {
//		return err
//	}
//	defer restore()
package render

import (
	"fmt"

	"github.com/gale-engine/gale"
	"github.com/gale-engine/gale/window"
)

// Renderer owns an engine renderer bound to a window.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	handle gale.RendererHandle
	closed bool
}

// Option configures renderer creation.
type Option func(*gale.RendererOptions)

// Software forces a software rasterizer when the backend has one.
func Software() Option {
	return func(o *gale.RendererOptions) {
		o.Software = true
	}
}

// WithVSync selects the presentation synchronization mode.
func WithVSync(mode gale.VSyncMode) Option {
	return func(o *gale.RendererOptions) {
		o.VSync = mode
	}
}

// New creates a renderer for w.
func New(w *window.Window, opts ...Option) (*Renderer, error) {
	options := gale.RendererOptions{
		VSync: gale.VSyncEnabled,
	}
	for _, opt := range opts {
		opt(&options)
	}

	handle, err := w.Handle().CreateRenderer(options)
	if err != nil {
		return nil, fmt.Errorf("render: create: %w", err)
	}

	gale.Logger().Info("renderer created", "window", uint32(w.ID()))
	return &Renderer{handle: handle}, nil
}

// Handle exposes the underlying engine handle.
func (r *Renderer) Handle() gale.RendererHandle {
	return r.handle
}

// Clear fills the target with the current draw color.
func (r *Renderer) Clear() error { return r.handle.Clear() }

// Present makes the frame drawn since the last Present visible.
func (r *Renderer) Present() error { return r.handle.Present() }

// SetDrawColor sets the color used by Clear and the draw primitives.
func (r *Renderer) SetDrawColor(c gale.Color) error { return r.handle.SetDrawColor(c) }

// DrawColor returns the current draw color.
func (r *Renderer) DrawColor() (gale.Color, error) { return r.handle.DrawColor() }

// SetBlendMode sets how primitives combine with the target.
func (r *Renderer) SetBlendMode(mode gale.BlendMode) error { return r.handle.SetBlendMode(mode) }

// BlendMode returns the current blend mode.
func (r *Renderer) BlendMode() (gale.BlendMode, error) { return r.handle.BlendMode() }

// SetViewport restricts drawing to rect.
func (r *Renderer) SetViewport(rect gale.Rect) error { return r.handle.SetViewport(rect) }

// ResetViewport restores drawing to the full output.
func (r *Renderer) ResetViewport() error { return r.handle.ResetViewport() }

// Viewport returns the current drawing region.
func (r *Renderer) Viewport() (gale.Rect, error) { return r.handle.Viewport() }

// OutputSize returns the target size in pixels.
func (r *Renderer) OutputSize() (gale.Size, error) { return r.handle.OutputSize() }

// PushColor sets the draw color and returns a func restoring the
// previous color. A failed restore is logged and dropped, matching the
// semantics of deferred cleanup.
func (r *Renderer) PushColor(c gale.Color) (restore func(), err error) {
	prev, err := r.handle.DrawColor()
	if err != nil {
		return nil, err
	}
	if err := r.handle.SetDrawColor(c); err != nil {
		return nil, err
	}
	return func() {
		if err := r.handle.SetDrawColor(prev); err != nil {
			gale.Logger().Warn("render: restore draw color", "error", err)
		}
	}, nil
}

// PushBlendMode sets the blend mode and returns a func restoring the
// previous mode.
func (r *Renderer) PushBlendMode(mode gale.BlendMode) (restore func(), err error) {
	prev, err := r.handle.BlendMode()
	if err != nil {
		return nil, err
	}
	if err := r.handle.SetBlendMode(mode); err != nil {
		return nil, err
	}
	return func() {
		if err := r.handle.SetBlendMode(prev); err != nil {
			gale.Logger().Warn("render: restore blend mode", "error", err)
		}
	}, nil
}

// PushViewport sets the viewport and returns a func restoring the
// previous region.
func (r *Renderer) PushViewport(rect gale.Rect) (restore func(), err error) {
	prev, err := r.handle.Viewport()
	if err != nil {
		return nil, err
	}
	if err := r.handle.SetViewport(rect); err != nil {
		return nil, err
	}
	return func() {
		if err := r.handle.SetViewport(prev); err != nil {
			gale.Logger().Warn("render: restore viewport", "error", err)
		}
	}, nil
}

// DrawPoint draws a single point.
func (r *Renderer) DrawPoint(p gale.Point) error {
	return r.handle.DrawPoints([]gale.Point{p})
}

// DrawPoints draws each point.
func (r *Renderer) DrawPoints(pts []gale.Point) error { return r.handle.DrawPoints(pts) }

// DrawLine draws a line segment between two points.
func (r *Renderer) DrawLine(a, b gale.Point) error {
	return r.handle.DrawLines([]gale.Point{a, b})
}

// DrawLines draws connected segments through pts.
func (r *Renderer) DrawLines(pts []gale.Point) error { return r.handle.DrawLines(pts) }

// DrawRect outlines a rectangle.
func (r *Renderer) DrawRect(rect gale.Rect) error {
	return r.handle.DrawRects([]gale.Rect{rect})
}

// DrawRects outlines each rectangle.
func (r *Renderer) DrawRects(rects []gale.Rect) error { return r.handle.DrawRects(rects) }

// FillRect fills a rectangle.
func (r *Renderer) FillRect(rect gale.Rect) error {
	return r.handle.FillRects([]gale.Rect{rect})
}

// FillRects fills each rectangle.
func (r *Renderer) FillRects(rects []gale.Rect) error { return r.handle.FillRects(rects) }

// Copy draws a texture region to a target region. A nil src uses the
// whole texture; a nil dst fills the target.
func (r *Renderer) Copy(t *Texture, src, dst *gale.Rect) error {
	return r.handle.Copy(t.handle, src, dst)
}

// Close destroys the renderer. Close is idempotent. Textures created
// from the renderer must be closed first.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.handle.Destroy()
}
