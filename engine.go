package gale

import "time"

// Subsystem is a bitmask of engine subsystems to initialize.
type Subsystem uint32

// Subsystem flags. Values match the wrapped engine's init flags.
const (
	SubsystemAudio    Subsystem = 0x00000010
	SubsystemVideo    Subsystem = 0x00000020 // implies events; main thread only
	SubsystemJoystick Subsystem = 0x00000200
	SubsystemHaptic   Subsystem = 0x00001000
	SubsystemGamepad  Subsystem = 0x00002000 // implies joystick
	SubsystemEvents   Subsystem = 0x00004000
	SubsystemSensor   Subsystem = 0x00008000
	SubsystemCamera   Subsystem = 0x00010000

	// SubsystemEverything initializes all subsystems.
	SubsystemEverything Subsystem = 0x0001FFFF
)

// Has reports whether all subsystems in mask are set.
func (s Subsystem) Has(mask Subsystem) bool {
	return s&mask == mask
}

// Engine is the driver interface a backend implements. An Engine owns the
// native library state: the event queue, window creation, and subsystem
// lifecycle. All methods are called from the thread that owns the Context
// (the engine's documented single-threaded model is inherited as-is).
type Engine interface {
	// Name returns the backend name as registered.
	Name() string

	// Init initializes the given subsystems. Called once per Context.
	Init(sub Subsystem) error

	// Quit shuts down the given subsystems.
	Quit(sub Subsystem)

	// Events returns the engine's event queue.
	Events() EventQueue

	// Windows returns the engine's window driver.
	Windows() WindowDriver
}

// InputProvider is an optional interface for engines that expose
// keyboard/mouse state snapshots. Engines without one report zero state
// through the input package.
type InputProvider interface {
	Input() InputDriver
}

// EventQueue is the engine's FIFO of raw event records. The queue is
// engine-owned and implicitly synchronized; gale adds no locking of its
// own and assumes the documented poll-from-owning-thread model.
type EventQueue interface {
	// Poll pops the next pending record into ev without blocking.
	// It reports false when the queue is empty.
	Poll(ev *RawEvent) bool

	// Wait blocks until a record arrives and pops it into ev.
	// It reports false only when the engine is shutting down.
	Wait(ev *RawEvent) bool

	// WaitTimeout blocks up to d for a record. It reports false on
	// timeout or shutdown.
	WaitTimeout(ev *RawEvent, d time.Duration) bool

	// HasPending reports whether a record is queued, without consuming.
	HasPending() bool

	// Flush drains and discards every pending record.
	Flush()

	// FlushRange drains only records whose kind discriminant lies in
	// [min, max]. The numeric range is the raw Kind* space; no semantic
	// grouping beyond the numbering blocks exists.
	FlushRange(min, max uint32)

	// Push appends a record to the queue. Used for user events and by
	// tests; backends may reject kinds they reserve.
	Push(ev RawEvent) error
}

// WindowDriver creates engine windows.
type WindowDriver interface {
	Create(opts WindowOptions) (WindowHandle, error)
}

// WindowFlags is a bitmask of window creation flags.
type WindowFlags uint32

const (
	WindowFullscreen WindowFlags = 1 << iota
	WindowHidden
	WindowBorderless
	WindowResizable
	WindowMinimized
	WindowMaximized
	WindowHighPixelDensity
)

// WindowOptions configures window creation.
type WindowOptions struct {
	Title    string
	Size     Size
	Position *Point // nil lets the engine place the window
	Flags    WindowFlags
}

// WindowHandle is an engine window. Handles are not safe for concurrent
// use. Destroy releases the native window; all other methods error or
// no-op after Destroy, depending on the backend.
type WindowHandle interface {
	ID() WindowID

	SetTitle(title string) error
	Title() string

	Show() error
	Hide() error
	Raise() error

	SetSize(s Size) error
	Size() (Size, error)
	SetMinimumSize(s Size) error
	SetMaximumSize(s Size) error

	SetPosition(p Point) error
	Position() (Point, error)

	Maximize() error
	Minimize() error
	Restore() error

	SetFullscreen(enabled bool) error
	SetBordered(bordered bool) error
	SetResizable(resizable bool) error

	SetOpacity(opacity float32) error
	Opacity() (float32, error)

	SetMouseGrab(grab bool) error
	SetKeyboardGrab(grab bool) error

	CreateRenderer(opts RendererOptions) (RendererHandle, error)

	Destroy() error
}

// BlendMode specifies how draw operations combine with the target.
type BlendMode uint8

const (
	// BlendNone writes source pixels unmodified.
	BlendNone BlendMode = iota

	// BlendAlpha is standard alpha blending.
	BlendAlpha

	// BlendAdditive adds source to destination.
	BlendAdditive

	// BlendModulate multiplies source and destination.
	BlendModulate
)

// VSyncMode controls presentation synchronization.
type VSyncMode uint8

const (
	VSyncDisabled VSyncMode = iota
	VSyncEnabled
	VSyncAdaptive
)

// RendererOptions configures renderer creation.
type RendererOptions struct {
	// Software forces a software rasterizer when the backend has one.
	Software bool

	// VSync selects presentation synchronization (default: enabled).
	VSync VSyncMode
}

// RendererHandle is an engine renderer bound to a window. Draw calls
// mutate engine state; nothing is visible until Present.
type RendererHandle interface {
	Clear() error
	Present() error

	SetDrawColor(c Color) error
	DrawColor() (Color, error)

	SetBlendMode(mode BlendMode) error
	BlendMode() (BlendMode, error)

	SetViewport(r Rect) error
	ResetViewport() error
	Viewport() (Rect, error)

	OutputSize() (Size, error)

	DrawPoints(pts []Point) error
	DrawLines(pts []Point) error
	DrawRects(rects []Rect) error
	FillRects(rects []Rect) error

	CreateTexture(format PixelFormat, access TextureAccess, size Size) (TextureHandle, error)

	// Copy draws a texture region to a target region. A nil src uses the
	// whole texture; a nil dst fills the target.
	Copy(t TextureHandle, src, dst *Rect) error

	Destroy() error
}

// PixelFormat identifies a texture pixel layout.
type PixelFormat uint8

const (
	// PixelRGBA8888 is 8-bit RGBA, the library's canonical CPU format.
	PixelRGBA8888 PixelFormat = iota

	// PixelARGB8888 is 8-bit ARGB.
	PixelARGB8888
)

// TextureAccess describes how a texture may be updated.
type TextureAccess uint8

const (
	// TextureStatic changes rarely and is not lockable.
	TextureStatic TextureAccess = iota

	// TextureStreaming changes frequently.
	TextureStreaming

	// TextureTarget can be used as a render target.
	TextureTarget
)

// TextureHandle is an engine texture owned by a renderer.
type TextureHandle interface {
	Size() Size
	Access() TextureAccess
	Format() PixelFormat

	// Update replaces pixel data in region (nil for the whole texture).
	// pixels is tightly packed rows of pitch bytes.
	Update(region *Rect, pixels []byte, pitch int) error

	SetBlendMode(mode BlendMode) error

	Destroy() error
}

// MouseButtonMask converts a 1-based button index into the button-state
// bitmask used by RawEvent.State and InputDriver.MouseState.
func MouseButtonMask(button uint8) uint32 {
	if button == 0 {
		return 0
	}
	return 1 << (button - 1)
}

// InputDriver provides polled input-state snapshots, independent of the
// event queue.
type InputDriver interface {
	// KeyboardState returns the pressed state indexed by scancode.
	// The returned slice is a snapshot owned by the caller.
	KeyboardState() []bool

	// ModState returns the current key modifier bitmask.
	ModState() uint16

	// MouseState returns the cursor position (window-relative to the
	// focused window) and the pressed-button bitmask.
	MouseState() (Point, uint32)

	// WarpMouse moves the cursor within a window.
	WarpMouse(id WindowID, p Point) error

	// SetRelativeMouseMode enables relative (captured) mouse motion.
	SetRelativeMouseMode(enabled bool) error

	// RelativeMouseMode reports whether relative mode is active.
	RelativeMouseMode() bool
}
