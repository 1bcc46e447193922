package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/gale-engine/gale"
)

// terminalWindowID is the ID of the single pseudo-window. The terminal
// is the window; there is never more than one.
const terminalWindowID = 1

// Create implements gale.WindowDriver. The first Create adopts the
// terminal; further calls fail.
func (e *engine) Create(opts gale.WindowOptions) (gale.WindowHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen == nil {
		return nil, errors.New("term: video subsystem not initialized")
	}
	if e.created {
		return nil, errors.New("term: the terminal is already claimed by a window")
	}
	e.created = true
	return &window{engine: e, title: opts.Title}, nil
}

// window is the terminal pseudo-window. Geometry is owned by the
// terminal emulator, so size and position operations are unsupported.
type window struct {
	engine *engine
	title  string
}

func (w *window) screen() tcell.Screen {
	w.engine.mu.Lock()
	defer w.engine.mu.Unlock()
	return w.engine.screen
}

func (w *window) ID() gale.WindowID { return terminalWindowID }

func (w *window) SetTitle(title string) error {
	w.title = title
	if s := w.screen(); s != nil {
		s.SetTitle(title)
	}
	return nil
}

func (w *window) Title() string { return w.title }

func (w *window) Show() error  { return nil }
func (w *window) Hide() error  { return errUnsupported }
func (w *window) Raise() error { return nil }

func (w *window) SetSize(gale.Size) error { return errUnsupported }

func (w *window) Size() (gale.Size, error) {
	s := w.screen()
	if s == nil {
		return gale.Size{}, errors.New("term: screen closed")
	}
	width, height := s.Size()
	return gale.Sz(int32(width), int32(height)), nil
}

func (w *window) SetMinimumSize(gale.Size) error { return errUnsupported }
func (w *window) SetMaximumSize(gale.Size) error { return errUnsupported }
func (w *window) SetPosition(gale.Point) error   { return errUnsupported }

func (w *window) Position() (gale.Point, error) {
	return gale.Point{}, nil
}

func (w *window) Maximize() error                { return errUnsupported }
func (w *window) Minimize() error                { return errUnsupported }
func (w *window) Restore() error                 { return errUnsupported }
func (w *window) SetFullscreen(bool) error       { return errUnsupported }
func (w *window) SetBordered(bool) error         { return errUnsupported }
func (w *window) SetResizable(bool) error        { return errUnsupported }
func (w *window) SetOpacity(float32) error       { return errUnsupported }
func (w *window) Opacity() (float32, error)      { return 1, nil }
func (w *window) SetMouseGrab(bool) error        { return nil }
func (w *window) SetKeyboardGrab(bool) error     { return nil }

func (w *window) CreateRenderer(opts gale.RendererOptions) (gale.RendererHandle, error) {
	s := w.screen()
	if s == nil {
		return nil, errors.New("term: screen closed")
	}
	return &renderer{screen: s}, nil
}

func (w *window) Destroy() error {
	w.engine.mu.Lock()
	w.engine.created = false
	w.engine.mu.Unlock()
	return nil
}

// renderer paints cell backgrounds. One cell is one pixel.
type renderer struct {
	screen   tcell.Screen
	color    gale.Color
	blend    gale.BlendMode
	viewport gale.Rect
	hasView  bool
}

func cellStyle(c gale.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// setCell paints one cell through the viewport clip.
func (r *renderer) setCell(x, y int32, c gale.Color) {
	if r.hasView {
		x += r.viewport.X
		y += r.viewport.Y
		if !r.viewport.Contains(gale.Pt(x, y)) {
			return
		}
	}
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= int32(w) || y >= int32(h) {
		return
	}
	r.screen.SetContent(int(x), int(y), ' ', nil, cellStyle(c))
}

func (r *renderer) Clear() error {
	w, h := r.screen.Size()
	style := cellStyle(r.color)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	return nil
}

func (r *renderer) Present() error {
	r.screen.Show()
	return nil
}

func (r *renderer) SetDrawColor(c gale.Color) error {
	r.color = c
	return nil
}

func (r *renderer) DrawColor() (gale.Color, error) {
	return r.color, nil
}

// SetBlendMode records the mode; cells have no alpha to blend with.
func (r *renderer) SetBlendMode(mode gale.BlendMode) error {
	r.blend = mode
	return nil
}

func (r *renderer) BlendMode() (gale.BlendMode, error) {
	return r.blend, nil
}

func (r *renderer) SetViewport(rect gale.Rect) error {
	r.viewport = rect
	r.hasView = true
	return nil
}

func (r *renderer) ResetViewport() error {
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
	w, h := r.screen.Size()
	return gale.Sz(int32(w), int32(h)), nil
}

func (r *renderer) DrawPoints(pts []gale.Point) error {
	for _, p := range pts {
		r.setCell(p.X, p.Y, r.color)
	}
	return nil
}

func (r *renderer) DrawLines(pts []gale.Point) error {
	for i := 1; i < len(pts); i++ {
		r.line(pts[i-1], pts[i])
	}
	return nil
}

// line is Bresenham over cells.
func (r *renderer) line(a, b gale.Point) {
	dx := abs32(b.X - a.X)
	dy := -abs32(b.Y - a.Y)
	sx := int32(1)
	if a.X > b.X {
		sx = -1
	}
	sy := int32(1)
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy

	x, y := a.X, a.Y
	for {
		r.setCell(x, y, r.color)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func (r *renderer) DrawRects(rects []gale.Rect) error {
	for _, rc := range rects {
		if rc.Empty() {
			continue
		}
		for x := rc.X; x < rc.X+rc.W; x++ {
			r.setCell(x, rc.Y, r.color)
			r.setCell(x, rc.Y+rc.H-1, r.color)
		}
		for y := rc.Y; y < rc.Y+rc.H; y++ {
			r.setCell(rc.X, y, r.color)
			r.setCell(rc.X+rc.W-1, y, r.color)
		}
	}
	return nil
}

func (r *renderer) FillRects(rects []gale.Rect) error {
	for _, rc := range rects {
		for y := rc.Y; y < rc.Y+rc.H; y++ {
			for x := rc.X; x < rc.X+rc.W; x++ {
				r.setCell(x, y, r.color)
			}
		}
	}
	return nil
}

func (r *renderer) CreateTexture(format gale.PixelFormat, access gale.TextureAccess, size gale.Size) (gale.TextureHandle, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.New("term: texture size must be positive")
	}
	return &texture{
		format: format,
		access: access,
		size:   size,
		pixels: make([]byte, int(size.Width)*int(size.Height)*4),
	}, nil
}

// Copy nearest-samples the texture into the destination cell rect.
func (r *renderer) Copy(t gale.TextureHandle, src, dst *gale.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return errors.New("term: copy: foreign texture")
	}

	srcRect := gale.Rct(0, 0, tex.size.Width, tex.size.Height)
	if src != nil {
		srcRect = *src
	}
	dstRect := srcRect
	if dst != nil {
		dstRect = *dst
	} else {
		size, err := r.OutputSize()
		if err != nil {
			return err
		}
		dstRect = gale.Rct(0, 0, size.Width, size.Height)
	}
	if srcRect.Empty() || dstRect.Empty() {
		return nil
	}

	for dy := int32(0); dy < dstRect.H; dy++ {
		for dx := int32(0); dx < dstRect.W; dx++ {
			sx := srcRect.X + dx*srcRect.W/dstRect.W
			sy := srcRect.Y + dy*srcRect.H/dstRect.H
			r.setCell(dstRect.X+dx, dstRect.Y+dy, tex.at(sx, sy))
		}
	}
	return nil
}

func (r *renderer) Destroy() error { return nil }

// texture is a CPU RGBA buffer sampled into cells on Copy.
type texture struct {
	format gale.PixelFormat
	access gale.TextureAccess
	size   gale.Size
	pixels []byte
}

func (t *texture) Size() gale.Size            { return t.size }
func (t *texture) Access() gale.TextureAccess { return t.access }
func (t *texture) Format() gale.PixelFormat   { return t.format }

func (t *texture) at(x, y int32) gale.Color {
	if x < 0 || y < 0 || x >= t.size.Width || y >= t.size.Height {
		return gale.Color{}
	}
	off := (int(y)*int(t.size.Width) + int(x)) * 4
	return gale.RGBA(t.pixels[off], t.pixels[off+1], t.pixels[off+2], t.pixels[off+3])
}

func (t *texture) Update(region *gale.Rect, pixels []byte, pitch int) error {
	r := gale.Rct(0, 0, t.size.Width, t.size.Height)
	if region != nil {
		r = *region
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > t.size.Width || r.Y+r.H > t.size.Height {
		return errors.New("term: texture update out of bounds")
	}

	rowBytes := int(r.W) * 4
	for row := 0; row < int(r.H); row++ {
		src := pixels[row*pitch : row*pitch+rowBytes]
		off := (int(r.Y)+row)*int(t.size.Width)*4 + int(r.X)*4
		copy(t.pixels[off:off+rowBytes], src)
	}
	return nil
}

func (t *texture) SetBlendMode(gale.BlendMode) error { return nil }

func (t *texture) Destroy() error { return nil }
