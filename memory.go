package gale

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gale-engine/gale/internal/queue"
)

// MemoryEngine is the built-in in-process backend. It implements the full
// driver surface without any native library: the event queue is a plain
// FIFO fed through Push, windows and renderers record their state, and
// input snapshots are settable. It backs headless use and every test in
// this module.
type MemoryEngine struct {
	events *memoryQueue
	input  *memoryInput

	mu      sync.Mutex
	nextWin uint32
	inited  Subsystem
}

// NewMemoryEngine creates an in-process engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{
		events: &memoryQueue{q: queue.New[RawEvent]()},
		input:  &memoryInput{},
	}
}

// init registers the built-in memory backend.
func init() {
	Register("memory", 10, func() (Engine, error) {
		return NewMemoryEngine(), nil
	}, nil)
}

// Name implements Engine.
func (m *MemoryEngine) Name() string { return "memory" }

// Init implements Engine.
func (m *MemoryEngine) Init(sub Subsystem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inited |= sub
	return nil
}

// Quit implements Engine.
func (m *MemoryEngine) Quit(sub Subsystem) {
	m.mu.Lock()
	m.inited &^= sub
	m.mu.Unlock()
	m.events.q.Close()
}

// Initialized returns the currently initialized subsystem mask.
func (m *MemoryEngine) Initialized() Subsystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inited
}

// Events implements Engine.
func (m *MemoryEngine) Events() EventQueue { return m.events }

// Windows implements Engine.
func (m *MemoryEngine) Windows() WindowDriver { return m }

// Input implements InputProvider.
func (m *MemoryEngine) Input() InputDriver { return m.input }

// SetKeyboardState replaces the input snapshot returned by KeyboardState.
func (m *MemoryEngine) SetKeyboardState(pressed []bool, mod uint16) {
	m.input.setKeyboard(pressed, mod)
}

// SetMouseState replaces the input snapshot returned by MouseState.
func (m *MemoryEngine) SetMouseState(p Point, buttons uint32) {
	m.input.setMouse(p, buttons)
}

// Create implements WindowDriver.
func (m *MemoryEngine) Create(opts WindowOptions) (WindowHandle, error) {
	m.mu.Lock()
	m.nextWin++
	id := WindowID(m.nextWin)
	m.mu.Unlock()

	size := opts.Size
	if size.Width <= 0 {
		size.Width = 1
	}
	if size.Height <= 0 {
		size.Height = 1
	}
	pos := Pt(0, 0)
	if opts.Position != nil {
		pos = *opts.Position
	}

	return &memoryWindow{
		id:      id,
		title:   opts.Title,
		size:    size,
		pos:     pos,
		flags:   opts.Flags,
		visible: opts.Flags&WindowHidden == 0,
	}, nil
}

// memoryQueue adapts the generic FIFO to the EventQueue interface.
type memoryQueue struct {
	q *queue.Queue[RawEvent]
}

func (mq *memoryQueue) Poll(ev *RawEvent) bool {
	v, ok := mq.q.Poll()
	if ok {
		*ev = v
	}
	return ok
}

func (mq *memoryQueue) Wait(ev *RawEvent) bool {
	v, ok := mq.q.Wait()
	if ok {
		*ev = v
	}
	return ok
}

func (mq *memoryQueue) WaitTimeout(ev *RawEvent, d time.Duration) bool {
	v, ok := mq.q.WaitTimeout(d)
	if ok {
		*ev = v
	}
	return ok
}

func (mq *memoryQueue) HasPending() bool { return mq.q.HasPending() }

func (mq *memoryQueue) Flush() { mq.q.Flush() }

func (mq *memoryQueue) FlushRange(min, max uint32) {
	mq.q.FlushFunc(func(ev RawEvent) bool {
		return ev.Type >= min && ev.Type <= max
	})
}

func (mq *memoryQueue) Push(ev RawEvent) error {
	mq.q.Push(ev)
	return nil
}

// errWindowDestroyed is returned by memory window/renderer operations
// after Destroy.
var errWindowDestroyed = errors.New("gale: memory window destroyed")

// memoryWindow records window state in memory.
type memoryWindow struct {
	id WindowID

	mu        sync.Mutex
	title     string
	size      Size
	minSize   Size
	maxSize   Size
	pos       Point
	flags     WindowFlags
	visible   bool
	opacity   float32
	mouseGrab bool
	keyGrab   bool
	destroyed bool
}

func (w *memoryWindow) ID() WindowID { return w.id }

func (w *memoryWindow) do(f func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return errWindowDestroyed
	}
	f()
	return nil
}

func (w *memoryWindow) SetTitle(title string) error {
	return w.do(func() { w.title = title })
}

func (w *memoryWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *memoryWindow) Show() error  { return w.do(func() { w.visible = true }) }
func (w *memoryWindow) Hide() error  { return w.do(func() { w.visible = false }) }
func (w *memoryWindow) Raise() error { return w.do(func() {}) }

func (w *memoryWindow) SetSize(s Size) error {
	return w.do(func() { w.size = s })
}

func (w *memoryWindow) Size() (Size, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return Size{}, errWindowDestroyed
	}
	return w.size, nil
}

func (w *memoryWindow) SetMinimumSize(s Size) error { return w.do(func() { w.minSize = s }) }
func (w *memoryWindow) SetMaximumSize(s Size) error { return w.do(func() { w.maxSize = s }) }

func (w *memoryWindow) SetPosition(p Point) error {
	return w.do(func() { w.pos = p })
}

func (w *memoryWindow) Position() (Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return Point{}, errWindowDestroyed
	}
	return w.pos, nil
}

func (w *memoryWindow) Maximize() error { return w.do(func() { w.flags |= WindowMaximized }) }
func (w *memoryWindow) Minimize() error { return w.do(func() { w.flags |= WindowMinimized }) }

func (w *memoryWindow) Restore() error {
	return w.do(func() { w.flags &^= WindowMaximized | WindowMinimized })
}

func (w *memoryWindow) SetFullscreen(enabled bool) error {
	return w.do(func() {
		if enabled {
			w.flags |= WindowFullscreen
		} else {
			w.flags &^= WindowFullscreen
		}
	})
}

func (w *memoryWindow) SetBordered(bordered bool) error {
	return w.do(func() {
		if bordered {
			w.flags &^= WindowBorderless
		} else {
			w.flags |= WindowBorderless
		}
	})
}

func (w *memoryWindow) SetResizable(resizable bool) error {
	return w.do(func() {
		if resizable {
			w.flags |= WindowResizable
		} else {
			w.flags &^= WindowResizable
		}
	})
}

func (w *memoryWindow) SetOpacity(opacity float32) error {
	return w.do(func() { w.opacity = opacity })
}

func (w *memoryWindow) Opacity() (float32, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return 0, errWindowDestroyed
	}
	return w.opacity, nil
}

func (w *memoryWindow) SetMouseGrab(grab bool) error    { return w.do(func() { w.mouseGrab = grab }) }
func (w *memoryWindow) SetKeyboardGrab(grab bool) error { return w.do(func() { w.keyGrab = grab }) }

func (w *memoryWindow) CreateRenderer(opts RendererOptions) (RendererHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return nil, errWindowDestroyed
	}
	return &memoryRenderer{
		output: w.size,
		color:  Black,
	}, nil
}

func (w *memoryWindow) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed = true
	return nil
}

// memoryRenderer records draw state; draw calls count operations so tests
// can assert delegation without rasterizing anything.
type memoryRenderer struct {
	mu        sync.Mutex
	output    Size
	color     Color
	blend     BlendMode
	viewport  Rect
	hasView   bool
	destroyed bool

	// Presented counts Present calls; DrawOps counts primitive calls.
	Presented atomic.Int64
	DrawOps   atomic.Int64
}

func (r *memoryRenderer) do(f func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return errWindowDestroyed
	}
	f()
	return nil
}

func (r *memoryRenderer) Clear() error { return r.do(func() {}) }

func (r *memoryRenderer) Present() error {
	return r.do(func() { r.Presented.Add(1) })
}

func (r *memoryRenderer) SetDrawColor(c Color) error {
	return r.do(func() { r.color = c })
}

func (r *memoryRenderer) DrawColor() (Color, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return Color{}, errWindowDestroyed
	}
	return r.color, nil
}

func (r *memoryRenderer) SetBlendMode(mode BlendMode) error {
	return r.do(func() { r.blend = mode })
}

func (r *memoryRenderer) BlendMode() (BlendMode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return 0, errWindowDestroyed
	}
	return r.blend, nil
}

func (r *memoryRenderer) SetViewport(v Rect) error {
	return r.do(func() { r.viewport = v; r.hasView = true })
}

func (r *memoryRenderer) ResetViewport() error {
	return r.do(func() { r.viewport = Rect{}; r.hasView = false })
}

func (r *memoryRenderer) Viewport() (Rect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return Rect{}, errWindowDestroyed
	}
	if !r.hasView {
		return Rct(0, 0, r.output.Width, r.output.Height), nil
	}
	return r.viewport, nil
}

func (r *memoryRenderer) OutputSize() (Size, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return Size{}, errWindowDestroyed
	}
	return r.output, nil
}

func (r *memoryRenderer) DrawPoints([]Point) error { return r.do(func() { r.DrawOps.Add(1) }) }
func (r *memoryRenderer) DrawLines([]Point) error  { return r.do(func() { r.DrawOps.Add(1) }) }
func (r *memoryRenderer) DrawRects([]Rect) error   { return r.do(func() { r.DrawOps.Add(1) }) }
func (r *memoryRenderer) FillRects([]Rect) error   { return r.do(func() { r.DrawOps.Add(1) }) }

func (r *memoryRenderer) CreateTexture(format PixelFormat, access TextureAccess, size Size) (TextureHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return nil, errWindowDestroyed
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.New("gale: texture size must be positive")
	}
	return &memoryTexture{
		format: format,
		access: access,
		size:   size,
		pixels: make([]byte, int(size.Width)*int(size.Height)*4),
	}, nil
}

func (r *memoryRenderer) Copy(t TextureHandle, src, dst *Rect) error {
	return r.do(func() { r.DrawOps.Add(1) })
}

func (r *memoryRenderer) Destroy() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = true
	return nil
}

// memoryTexture holds pixel bytes in the canonical RGBA layout.
type memoryTexture struct {
	mu        sync.Mutex
	format    PixelFormat
	access    TextureAccess
	size      Size
	blend     BlendMode
	pixels    []byte
	destroyed bool
}

func (t *memoryTexture) Size() Size            { return t.size }
func (t *memoryTexture) Access() TextureAccess { return t.access }
func (t *memoryTexture) Format() PixelFormat   { return t.format }

func (t *memoryTexture) Update(region *Rect, pixels []byte, pitch int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return errWindowDestroyed
	}

	r := Rct(0, 0, t.size.Width, t.size.Height)
	if region != nil {
		r = *region
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > t.size.Width || r.Y+r.H > t.size.Height {
		return errors.New("gale: texture update out of bounds")
	}

	rowBytes := int(r.W) * 4
	for row := 0; row < int(r.H); row++ {
		src := pixels[row*pitch : row*pitch+rowBytes]
		off := (int(r.Y)+row)*int(t.size.Width)*4 + int(r.X)*4
		copy(t.pixels[off:off+rowBytes], src)
	}
	return nil
}

func (t *memoryTexture) SetBlendMode(mode BlendMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return errWindowDestroyed
	}
	t.blend = mode
	return nil
}

func (t *memoryTexture) Destroy() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.destroyed = true
	return nil
}

// memoryInput holds settable input snapshots.
type memoryInput struct {
	mu       sync.Mutex
	pressed  []bool
	mod      uint16
	mousePos Point
	buttons  uint32
	relative bool
}

func (in *memoryInput) setKeyboard(pressed []bool, mod uint16) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pressed = append([]bool(nil), pressed...)
	in.mod = mod
}

func (in *memoryInput) setMouse(p Point, buttons uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.mousePos = p
	in.buttons = buttons
}

func (in *memoryInput) KeyboardState() []bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]bool(nil), in.pressed...)
}

func (in *memoryInput) ModState() uint16 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mod
}

func (in *memoryInput) MouseState() (Point, uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mousePos, in.buttons
}

func (in *memoryInput) WarpMouse(id WindowID, p Point) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.mousePos = p
	return nil
}

func (in *memoryInput) SetRelativeMouseMode(enabled bool) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.relative = enabled
	return nil
}

func (in *memoryInput) RelativeMouseMode() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.relative
}
