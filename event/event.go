package event

import "github.com/gale-engine/gale"

// Event is the closed sum of typed engine events. The set of variants is
// sealed: only the types in this package implement it, and every value is
// produced through Convert. Dispatch with a type switch.
type Event interface {
	// When returns the engine timestamp in milliseconds.
	When() uint32

	isEvent()
}

// ButtonState distinguishes press and release transitions.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButtonID identifies a mouse button.
type MouseButtonID uint8

const (
	ButtonLeft MouseButtonID = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// WheelDirection tells whether wheel values are flipped.
type WheelDirection uint32

const (
	WheelNormal WheelDirection = iota
	// WheelFlipped means X and Y carry the opposite sign of the
	// physical motion.
	WheelFlipped
)

// Quit requests application termination.
type Quit struct {
	Timestamp uint32
}

// Key is a keyboard press or release.
type Key struct {
	Timestamp uint32
	WindowID  gale.WindowID
	State     ButtonState

	// Scancode is the physical key position; Keycode is the
	// layout-mapped symbol. The two are independent numeric spaces.
	Scancode uint32
	Keycode  uint32

	// Mod is the active modifier bitmask.
	Mod uint16

	// Repeat is set for key repeats.
	Repeat bool
}

// TextInput carries committed UTF-8 text. Text is at most
// gale.TextCap-1 bytes; longer input is truncated on a rune boundary.
type TextInput struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Text      string
}

// TextEditing carries in-progress IME composition text with the selected
// range. The same truncation rule as TextInput applies.
type TextEditing struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Text      string
	Start     int32
	Length    int32
}

// MouseMotion is cursor movement. X and Y are window-relative; RelX and
// RelY are the motion deltas.
type MouseMotion struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Which     uint32

	// State is the pressed-button bitmask during the motion.
	State uint32

	X, Y       int32
	RelX, RelY int32
}

// MouseButton is a button press or release.
type MouseButton struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Which     uint32
	Button    MouseButtonID
	State     ButtonState

	// Clicks is 1 for single-click, 2 for double-click, and so on.
	Clicks uint8

	X, Y int32
}

// MouseWheel is scroll motion. PreciseX/PreciseY mirror X/Y unless the
// engine has a higher-precision source.
type MouseWheel struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Which     uint32

	X, Y               int32
	PreciseX, PreciseY float32
	Direction          WheelDirection
}

// JoyAxis is joystick axis motion. Value is in [-32768, 32767].
type JoyAxis struct {
	Timestamp uint32
	Which     uint32
	Axis      uint8
	Value     int16
}

// JoyButton is a joystick button press or release.
type JoyButton struct {
	Timestamp uint32
	Which     uint32
	Button    uint8
	State     ButtonState
}

// JoyHat is a joystick hat position change.
type JoyHat struct {
	Timestamp uint32
	Which     uint32
	Hat       uint8
	Value     uint8
}

func (e Quit) When() uint32        { return e.Timestamp }
func (e Window) When() uint32      { return e.Timestamp }
func (e Key) When() uint32         { return e.Timestamp }
func (e TextInput) When() uint32   { return e.Timestamp }
func (e TextEditing) When() uint32 { return e.Timestamp }
func (e MouseMotion) When() uint32 { return e.Timestamp }
func (e MouseButton) When() uint32 { return e.Timestamp }
func (e MouseWheel) When() uint32  { return e.Timestamp }
func (e JoyAxis) When() uint32     { return e.Timestamp }
func (e JoyButton) When() uint32   { return e.Timestamp }
func (e JoyHat) When() uint32      { return e.Timestamp }

func (Quit) isEvent()        {}
func (Window) isEvent()      {}
func (Key) isEvent()         {}
func (TextInput) isEvent()   {}
func (TextEditing) isEvent() {}
func (MouseMotion) isEvent() {}
func (MouseButton) isEvent() {}
func (MouseWheel) isEvent()  {}
func (JoyAxis) isEvent()     {}
func (JoyButton) isEvent()   {}
func (JoyHat) isEvent()      {}
