package event

import "github.com/gale-engine/gale"

// WindowKind is the sub-category of a window event.
type WindowKind uint8

const (
	WindowShown WindowKind = iota
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
	WindowICCProfileChanged
	WindowDisplayChanged
)

var windowKindNames = [...]string{
	WindowShown:             "shown",
	WindowHidden:            "hidden",
	WindowExposed:           "exposed",
	WindowMoved:             "moved",
	WindowResized:           "resized",
	WindowSizeChanged:       "size_changed",
	WindowMinimized:         "minimized",
	WindowMaximized:         "maximized",
	WindowRestored:          "restored",
	WindowEnter:             "enter",
	WindowLeave:             "leave",
	WindowFocusGained:       "focus_gained",
	WindowFocusLost:         "focus_lost",
	WindowClose:             "close",
	WindowTakeFocus:         "take_focus",
	WindowHitTest:           "hit_test",
	WindowICCProfileChanged: "icc_profile_changed",
	WindowDisplayChanged:    "display_changed",
}

func (k WindowKind) String() string {
	if int(k) < len(windowKindNames) {
		return windowKindNames[k]
	}
	return "unknown"
}

// WindowData is the window event's payload variant. The active case is
// fully determined by the event's WindowKind: moved carries PositionData,
// resized and size_changed carry SizeData, display_changed carries
// DisplayData, and every other kind carries NoData.
type WindowData interface {
	isWindowData()
}

// NoData is the payload of window events that carry none.
type NoData struct{}

// PositionData is the payload of moved events.
type PositionData struct {
	X, Y int32
}

// SizeData is the payload of resized and size_changed events.
type SizeData struct {
	Width, Height int32
}

// DisplayData is the payload of display_changed events.
type DisplayData struct {
	Index int32
}

func (NoData) isWindowData()       {}
func (PositionData) isWindowData() {}
func (SizeData) isWindowData()     {}
func (DisplayData) isWindowData()  {}

// Window is a window state-change event.
type Window struct {
	Timestamp uint32
	WindowID  gale.WindowID
	Kind      WindowKind

	// Data holds the kind-determined payload variant.
	Data WindowData
}

// Position returns the payload of a moved event.
func (e Window) Position() (PositionData, bool) {
	if e.Kind == WindowMoved {
		if p, ok := e.Data.(PositionData); ok {
			return p, true
		}
	}
	return PositionData{}, false
}

// Size returns the payload of a resized or size_changed event.
func (e Window) Size() (SizeData, bool) {
	if e.Kind == WindowResized || e.Kind == WindowSizeChanged {
		if s, ok := e.Data.(SizeData); ok {
			return s, true
		}
	}
	return SizeData{}, false
}

// Display returns the payload of a display_changed event.
func (e Window) Display() (DisplayData, bool) {
	if e.Kind == WindowDisplayChanged {
		if d, ok := e.Data.(DisplayData); ok {
			return d, true
		}
	}
	return DisplayData{}, false
}

// windowKindFor maps a raw window discriminant to its kind.
func windowKindFor(rawType uint32) (WindowKind, bool) {
	switch rawType {
	case gale.KindWindowShown:
		return WindowShown, true
	case gale.KindWindowHidden:
		return WindowHidden, true
	case gale.KindWindowExposed:
		return WindowExposed, true
	case gale.KindWindowMoved:
		return WindowMoved, true
	case gale.KindWindowResized:
		return WindowResized, true
	case gale.KindWindowSizeChanged:
		return WindowSizeChanged, true
	case gale.KindWindowMinimized:
		return WindowMinimized, true
	case gale.KindWindowMaximized:
		return WindowMaximized, true
	case gale.KindWindowRestored:
		return WindowRestored, true
	case gale.KindWindowEnter:
		return WindowEnter, true
	case gale.KindWindowLeave:
		return WindowLeave, true
	case gale.KindWindowFocusGained:
		return WindowFocusGained, true
	case gale.KindWindowFocusLost:
		return WindowFocusLost, true
	case gale.KindWindowClose:
		return WindowClose, true
	case gale.KindWindowTakeFocus:
		return WindowTakeFocus, true
	case gale.KindWindowHitTest:
		return WindowHitTest, true
	case gale.KindWindowICCProfileChanged:
		return WindowICCProfileChanged, true
	case gale.KindWindowDisplayChanged:
		return WindowDisplayChanged, true
	}
	return 0, false
}

// windowDataFor builds the payload variant for a kind from the raw
// data words. The kind→payload mapping lives in this one exhaustive
// switch; data words of payload-free kinds are ignored.
func windowDataFor(kind WindowKind, data1, data2 int32) WindowData {
	switch kind {
	case WindowMoved:
		return PositionData{X: data1, Y: data2}
	case WindowResized, WindowSizeChanged:
		return SizeData{Width: data1, Height: data2}
	case WindowDisplayChanged:
		return DisplayData{Index: data1}
	case WindowShown, WindowHidden, WindowExposed, WindowMinimized,
		WindowMaximized, WindowRestored, WindowEnter, WindowLeave,
		WindowFocusGained, WindowFocusLost, WindowClose,
		WindowTakeFocus, WindowHitTest, WindowICCProfileChanged:
		return NoData{}
	}
	return NoData{}
}
