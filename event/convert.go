package event

import (
	"fmt"
	"unicode/utf8"

	"github.com/gale-engine/gale"
)

// UnsupportedKindError is the converter's decode failure: the raw kind
// discriminant has no mapping to a typed event. It is recoverable by
// construction: every consumer in this package treats it as "skip and
// continue". A kind inside the window block that is missing from the
// mapping table is a bug in the table, and still surfaces as this error
// rather than being absorbed.
type UnsupportedKindError struct {
	Kind uint32
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("event: unsupported kind %#x", e.Kind)
}

// Convert maps one raw record to its typed event. The record is read
// only; it is not retained past the call. Convert has no side effects and
// may be called repeatedly on the same input.
//
// Unknown discriminants return *UnsupportedKindError carrying the raw
// kind for diagnostics. Convert itself never drops a record; skipping is
// the caller's policy.
func Convert(raw *gale.RawEvent) (Event, error) {
	switch {
	case raw.Type == gale.KindQuit:
		return Quit{Timestamp: raw.Timestamp}, nil

	case raw.Type >= gale.KindWindowShown && raw.Type <= gale.KindWindowDisplayChanged:
		kind, ok := windowKindFor(raw.Type)
		if !ok {
			return nil, &UnsupportedKindError{Kind: raw.Type}
		}
		return Window{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Kind:      kind,
			Data:      windowDataFor(kind, raw.Data1, raw.Data2),
		}, nil

	case raw.Type == gale.KindKeyDown || raw.Type == gale.KindKeyUp:
		state := Released
		if raw.Type == gale.KindKeyDown {
			state = Pressed
		}
		return Key{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			State:     state,
			Scancode:  raw.Scancode,
			Keycode:   raw.Keycode,
			Mod:       raw.Mod,
			Repeat:    raw.Repeat,
		}, nil

	case raw.Type == gale.KindTextInput:
		return TextInput{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Text:      truncateText(raw.Text[:]),
		}, nil

	case raw.Type == gale.KindTextEditing:
		return TextEditing{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Text:      truncateText(raw.Text[:]),
			Start:     raw.TextStart,
			Length:    raw.TextLength,
		}, nil

	case raw.Type == gale.KindMouseMotion:
		return MouseMotion{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Which:     raw.Which,
			State:     raw.State,
			X:         raw.X,
			Y:         raw.Y,
			RelX:      raw.RelX,
			RelY:      raw.RelY,
		}, nil

	case raw.Type == gale.KindMouseButtonDown || raw.Type == gale.KindMouseButtonUp:
		state := Released
		if raw.Type == gale.KindMouseButtonDown {
			state = Pressed
		}
		return MouseButton{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Which:     raw.Which,
			Button:    mouseButtonFor(raw.Button),
			State:     state,
			Clicks:    raw.Clicks,
			X:         raw.X,
			Y:         raw.Y,
		}, nil

	case raw.Type == gale.KindMouseWheel:
		px, py := raw.PreciseX, raw.PreciseY
		if px == 0 && py == 0 {
			// No precision source; mirror the integer fields.
			px, py = float32(raw.WheelX), float32(raw.WheelY)
		}
		return MouseWheel{
			Timestamp: raw.Timestamp,
			WindowID:  gale.WindowID(raw.WindowID),
			Which:     raw.Which,
			X:         raw.WheelX,
			Y:         raw.WheelY,
			PreciseX:  px,
			PreciseY:  py,
			Direction: WheelDirection(raw.Direction),
		}, nil

	case raw.Type == gale.KindJoyAxisMotion:
		return JoyAxis{
			Timestamp: raw.Timestamp,
			Which:     raw.Which,
			Axis:      raw.Axis,
			Value:     raw.Value,
		}, nil

	case raw.Type == gale.KindJoyButtonDown || raw.Type == gale.KindJoyButtonUp:
		state := Released
		if raw.Type == gale.KindJoyButtonDown {
			state = Pressed
		}
		return JoyButton{
			Timestamp: raw.Timestamp,
			Which:     raw.Which,
			Button:    raw.Button,
			State:     state,
		}, nil

	case raw.Type == gale.KindJoyHatMotion:
		return JoyHat{
			Timestamp: raw.Timestamp,
			Which:     raw.Which,
			Hat:       raw.Hat,
			Value:     raw.HatValue,
		}, nil
	}

	return nil, &UnsupportedKindError{Kind: raw.Type}
}

// mouseButtonFor normalizes the raw 1-based button index. Out-of-range
// indices fold to the left button, matching the engine's own clamping.
func mouseButtonFor(b uint8) MouseButtonID {
	switch MouseButtonID(b) {
	case ButtonLeft, ButtonMiddle, ButtonRight, ButtonX1, ButtonX2:
		return MouseButtonID(b)
	}
	return ButtonLeft
}

// truncateText extracts the zero-terminated UTF-8 from a raw text buffer.
// The result is at most gale.TextCap-1 bytes; if the zero terminator is
// missing the cut backs off to the last rune boundary so a multi-byte
// sequence is never split. Truncation is a lossy, documented boundary
// behavior, not an error.
func truncateText(buf []byte) string {
	n := 0
	for n < len(buf) && n < gale.TextCap-1 && buf[n] != 0 {
		n++
	}
	s := buf[:n]
	// Back off a partial trailing rune left by byte-level truncation.
	for len(s) > 0 {
		r, size := utf8.DecodeLastRune(s)
		if r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return string(s)
}
