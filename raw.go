package gale

// Event kind discriminants. Backends normalize their native event
// numbering into this space; it is also the numeric space exposed by
// EventQueue.FlushRange.
//
// The blocks mirror the layout of the wrapped engine: application events
// at 0x100, window events at 0x200, keyboard at 0x300, mouse at 0x400,
// joystick at 0x600, user-defined from 0x8000.
const (
	// KindFirst is the lower bound of the kind space.
	KindFirst uint32 = 0

	// KindQuit requests application termination.
	KindQuit uint32 = 0x100
)

// Window events. Each window sub-event has its own discriminant;
// Data1/Data2 carry the kind-specific payload.
const (
	KindWindowShown uint32 = 0x202 + iota
	KindWindowHidden
	KindWindowExposed
	KindWindowMoved
	KindWindowResized
	KindWindowSizeChanged
	KindWindowMinimized
	KindWindowMaximized
	KindWindowRestored
	KindWindowEnter
	KindWindowLeave
	KindWindowFocusGained
	KindWindowFocusLost
	KindWindowClose
	KindWindowTakeFocus
	KindWindowHitTest
	KindWindowICCProfileChanged
	KindWindowDisplayChanged
)

// Keyboard and text events.
const (
	KindKeyDown uint32 = 0x300 + iota
	KindKeyUp
	KindTextEditing
	KindTextInput
)

// Mouse events.
const (
	KindMouseMotion uint32 = 0x400 + iota
	KindMouseButtonDown
	KindMouseButtonUp
	KindMouseWheel
)

// Joystick events.
const (
	KindJoyAxisMotion uint32 = 0x600 + iota
	KindJoyBallMotion
	KindJoyHatMotion
	KindJoyButtonDown
	KindJoyButtonUp
)

const (
	// KindUser is the first discriminant available for application use.
	KindUser uint32 = 0x8000

	// KindLast is the upper bound of the kind space.
	KindLast uint32 = 0xFFFF
)

// Key modifier bits carried in RawEvent.Mod and InputDriver.ModState.
// Values match the wrapped engine's modifier mask.
const (
	ModNone   uint16 = 0x0000
	ModLShift uint16 = 0x0001
	ModRShift uint16 = 0x0002
	ModLCtrl  uint16 = 0x0040
	ModRCtrl  uint16 = 0x0080
	ModLAlt   uint16 = 0x0100
	ModRAlt   uint16 = 0x0200
	ModLGui   uint16 = 0x0400
	ModRGui   uint16 = 0x0800
	ModNum    uint16 = 0x1000
	ModCaps   uint16 = 0x2000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGui   = ModLGui | ModRGui
)

// TextCap is the capacity of the raw text buffer in bytes, including the
// terminating zero byte.
const TextCap = 32

// RawEvent is the engine's tagged event record. Type selects which of the
// payload fields are active; inactive fields are zero. A RawEvent is a
// transient input: it is consumed once per queue pull and never retained
// past conversion.
//
// Application code should not consume RawEvents directly; use the event
// package, which converts them into typed records.
type RawEvent struct {
	// Type is the kind discriminant (Kind* constants).
	Type uint32

	// Timestamp is the engine timestamp in milliseconds.
	Timestamp uint32

	// WindowID is the originating window, when the kind has one.
	WindowID uint32

	// Data1, Data2 carry window sub-event payloads (position, size,
	// display index, depending on Type).
	Data1, Data2 int32

	// Keyboard payload.
	Scancode uint32
	Keycode  uint32
	Mod      uint16
	Repeat   bool

	// Text payload: zero-terminated UTF-8, truncated at TextCap-1 bytes.
	Text       [TextCap]byte
	TextStart  int32
	TextLength int32

	// Which is the input device instance (mouse or joystick).
	Which uint32

	// Mouse payload.
	State              uint32
	Button             uint8
	Clicks             uint8
	X, Y               int32
	RelX, RelY         int32
	WheelX, WheelY     int32
	PreciseX, PreciseY float32
	Direction          uint32

	// Joystick payload.
	Axis     uint8
	Value    int16
	Hat      uint8
	HatValue uint8
}

// SetText copies s into the raw text buffer, truncating at TextCap-1
// bytes and zero-terminating. Truncation is lossy by contract; the
// converter re-aligns the cut to a rune boundary.
func (e *RawEvent) SetText(s string) {
	n := copy(e.Text[:TextCap-1], s)
	for i := n; i < TextCap; i++ {
		e.Text[i] = 0
	}
}
