package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gale-engine/gale"
)

// windowDriver creates SDL2 windows.
type windowDriver struct{}

func windowFlags(f gale.WindowFlags) uint32 {
	var flags uint32
	if f&gale.WindowFullscreen != 0 {
		flags |= uint32(sdl.WINDOW_FULLSCREEN)
	}
	if f&gale.WindowHidden != 0 {
		flags |= uint32(sdl.WINDOW_HIDDEN)
	} else {
		flags |= uint32(sdl.WINDOW_SHOWN)
	}
	if f&gale.WindowBorderless != 0 {
		flags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	if f&gale.WindowResizable != 0 {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if f&gale.WindowMinimized != 0 {
		flags |= uint32(sdl.WINDOW_MINIMIZED)
	}
	if f&gale.WindowMaximized != 0 {
		flags |= uint32(sdl.WINDOW_MAXIMIZED)
	}
	if f&gale.WindowHighPixelDensity != 0 {
		flags |= uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	}
	return flags
}

func (windowDriver) Create(opts gale.WindowOptions) (gale.WindowHandle, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if opts.Position != nil {
		x, y = opts.Position.X, opts.Position.Y
	}

	native, err := sdl.CreateWindow(opts.Title, x, y,
		opts.Size.Width, opts.Size.Height, windowFlags(opts.Flags))
	if err != nil {
		return nil, fmt.Errorf("sdl: create window: %w", err)
	}

	id, err := native.GetID()
	if err != nil {
		native.Destroy()
		return nil, fmt.Errorf("sdl: window id: %w", err)
	}
	return &window{native: native, id: gale.WindowID(id)}, nil
}

// window wraps an SDL2 window.
type window struct {
	native *sdl.Window
	id     gale.WindowID
}

func (w *window) ID() gale.WindowID { return w.id }

func (w *window) SetTitle(title string) error {
	w.native.SetTitle(title)
	return nil
}

func (w *window) Title() string { return w.native.GetTitle() }

func (w *window) Show() error {
	w.native.Show()
	return nil
}

func (w *window) Hide() error {
	w.native.Hide()
	return nil
}

func (w *window) Raise() error {
	w.native.Raise()
	return nil
}

func (w *window) SetSize(s gale.Size) error {
	w.native.SetSize(s.Width, s.Height)
	return nil
}

func (w *window) Size() (gale.Size, error) {
	width, height := w.native.GetSize()
	return gale.Sz(width, height), nil
}

func (w *window) SetMinimumSize(s gale.Size) error {
	w.native.SetMinimumSize(s.Width, s.Height)
	return nil
}

func (w *window) SetMaximumSize(s gale.Size) error {
	w.native.SetMaximumSize(s.Width, s.Height)
	return nil
}

func (w *window) SetPosition(p gale.Point) error {
	w.native.SetPosition(p.X, p.Y)
	return nil
}

func (w *window) Position() (gale.Point, error) {
	x, y := w.native.GetPosition()
	return gale.Pt(x, y), nil
}

func (w *window) Maximize() error {
	w.native.Maximize()
	return nil
}

func (w *window) Minimize() error {
	w.native.Minimize()
	return nil
}

func (w *window) Restore() error {
	w.native.Restore()
	return nil
}

func (w *window) SetFullscreen(enabled bool) error {
	var flags uint32
	if enabled {
		flags = uint32(sdl.WINDOW_FULLSCREEN)
	}
	return w.native.SetFullscreen(flags)
}

func (w *window) SetBordered(bordered bool) error {
	w.native.SetBordered(bordered)
	return nil
}

func (w *window) SetResizable(resizable bool) error {
	w.native.SetResizable(resizable)
	return nil
}

func (w *window) SetOpacity(opacity float32) error {
	return w.native.SetWindowOpacity(opacity)
}

func (w *window) Opacity() (float32, error) {
	return w.native.GetWindowOpacity()
}

// SDL2 has a single window grab covering both devices; the mouse and
// keyboard grabs map onto it.
func (w *window) SetMouseGrab(grab bool) error {
	w.native.SetGrab(grab)
	return nil
}

func (w *window) SetKeyboardGrab(grab bool) error {
	w.native.SetGrab(grab)
	return nil
}

func (w *window) CreateRenderer(opts gale.RendererOptions) (gale.RendererHandle, error) {
	var flags uint32
	if opts.Software {
		flags |= uint32(sdl.RENDERER_SOFTWARE)
	} else {
		flags |= uint32(sdl.RENDERER_ACCELERATED)
	}
	if opts.VSync != gale.VSyncDisabled {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	native, err := sdl.CreateRenderer(w.native, -1, flags)
	if err != nil {
		return nil, fmt.Errorf("sdl: create renderer: %w", err)
	}
	return &renderer{native: native}, nil
}

func (w *window) Destroy() error {
	return w.native.Destroy()
}

// renderer wraps an SDL2 renderer. Draw color, blend mode and viewport
// are shadowed locally so reads never cross into the native library.
type renderer struct {
	native   *sdl.Renderer
	color    gale.Color
	blend    gale.BlendMode
	viewport gale.Rect
	hasView  bool
}

func blendModeNative(mode gale.BlendMode) sdl.BlendMode {
	switch mode {
	case gale.BlendAlpha:
		return sdl.BLENDMODE_BLEND
	case gale.BlendAdditive:
		return sdl.BLENDMODE_ADD
	case gale.BlendModulate:
		return sdl.BLENDMODE_MOD
	default:
		return sdl.BLENDMODE_NONE
	}
}

func nativeRect(r gale.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func nativeRectPtr(r *gale.Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	n := nativeRect(*r)
	return &n
}

func (r *renderer) Clear() error { return r.native.Clear() }

func (r *renderer) Present() error {
	r.native.Present()
	return nil
}

func (r *renderer) SetDrawColor(c gale.Color) error {
	if err := r.native.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	r.color = c
	return nil
}

func (r *renderer) DrawColor() (gale.Color, error) {
	return r.color, nil
}

func (r *renderer) SetBlendMode(mode gale.BlendMode) error {
	if err := r.native.SetDrawBlendMode(blendModeNative(mode)); err != nil {
		return err
	}
	r.blend = mode
	return nil
}

func (r *renderer) BlendMode() (gale.BlendMode, error) {
	return r.blend, nil
}

func (r *renderer) SetViewport(rect gale.Rect) error {
	n := nativeRect(rect)
	if err := r.native.SetViewport(&n); err != nil {
		return err
	}
	r.viewport = rect
	r.hasView = true
	return nil
}

func (r *renderer) ResetViewport() error {
	if err := r.native.SetViewport(nil); err != nil {
		return err
	}
	r.viewport = gale.Rect{}
	r.hasView = false
	return nil
}

func (r *renderer) Viewport() (gale.Rect, error) {
	if r.hasView {
		return r.viewport, nil
	}
	size, err := r.OutputSize()
	if err != nil {
		return gale.Rect{}, err
	}
	return gale.Rct(0, 0, size.Width, size.Height), nil
}

func (r *renderer) OutputSize() (gale.Size, error) {
	w, h, err := r.native.GetOutputSize()
	if err != nil {
		return gale.Size{}, err
	}
	return gale.Sz(w, h), nil
}

func nativePoints(pts []gale.Point) []sdl.Point {
	out := make([]sdl.Point, len(pts))
	for i, p := range pts {
		out[i] = sdl.Point{X: p.X, Y: p.Y}
	}
	return out
}

func nativeRects(rects []gale.Rect) []sdl.Rect {
	out := make([]sdl.Rect, len(rects))
	for i, rc := range rects {
		out[i] = nativeRect(rc)
	}
	return out
}

func (r *renderer) DrawPoints(pts []gale.Point) error {
	return r.native.DrawPoints(nativePoints(pts))
}

func (r *renderer) DrawLines(pts []gale.Point) error {
	return r.native.DrawLines(nativePoints(pts))
}

func (r *renderer) DrawRects(rects []gale.Rect) error {
	return r.native.DrawRects(nativeRects(rects))
}

func (r *renderer) FillRects(rects []gale.Rect) error {
	return r.native.FillRects(nativeRects(rects))
}

func pixelFormatNative(format gale.PixelFormat) uint32 {
	switch format {
	case gale.PixelARGB8888:
		return uint32(sdl.PIXELFORMAT_ARGB8888)
	default:
		// RGBA byte order regardless of host endianness.
		return uint32(sdl.PIXELFORMAT_RGBA32)
	}
}

func textureAccessNative(access gale.TextureAccess) int {
	switch access {
	case gale.TextureStreaming:
		return int(sdl.TEXTUREACCESS_STREAMING)
	case gale.TextureTarget:
		return int(sdl.TEXTUREACCESS_TARGET)
	default:
		return int(sdl.TEXTUREACCESS_STATIC)
	}
}

func (r *renderer) CreateTexture(format gale.PixelFormat, access gale.TextureAccess, size gale.Size) (gale.TextureHandle, error) {
	native, err := r.native.CreateTexture(pixelFormatNative(format),
		textureAccessNative(access), size.Width, size.Height)
	if err != nil {
		return nil, fmt.Errorf("sdl: create texture: %w", err)
	}
	return &texture{native: native, format: format, access: access, size: size}, nil
}

func (r *renderer) Copy(t gale.TextureHandle, src, dst *gale.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return fmt.Errorf("sdl: copy: foreign texture %T", t)
	}
	return r.native.Copy(tex.native, nativeRectPtr(src), nativeRectPtr(dst))
}

func (r *renderer) Destroy() error {
	return r.native.Destroy()
}

// texture wraps an SDL2 texture; the descriptor fields are recorded at
// creation so queries avoid the native round trip.
type texture struct {
	native *sdl.Texture
	format gale.PixelFormat
	access gale.TextureAccess
	size   gale.Size
}

func (t *texture) Size() gale.Size            { return t.size }
func (t *texture) Access() gale.TextureAccess { return t.access }
func (t *texture) Format() gale.PixelFormat   { return t.format }

func (t *texture) Update(region *gale.Rect, pixels []byte, pitch int) error {
	return t.native.Update(nativeRectPtr(region), pixels, pitch)
}

func (t *texture) SetBlendMode(mode gale.BlendMode) error {
	return t.native.SetBlendMode(blendModeNative(mode))
}

func (t *texture) Destroy() error {
	return t.native.Destroy()
}
