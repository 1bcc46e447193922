// Package input provides polled keyboard and mouse state snapshots,
// independent of the event queue. Engines without input support report
// zero state rather than erroring, so callers can poll unconditionally.
package input

import (
	"github.com/gale-engine/gale"
)

// Keyboard is a point-in-time keyboard snapshot.
type Keyboard struct {
	pressed []bool
	mod     uint16
}

// Mouse is a point-in-time mouse snapshot.
type Mouse struct {
	// Position is the cursor position relative to the focused window.
	Position gale.Point

	// Buttons is the pressed-button bitmask; test bits with
	// gale.MouseButtonMask.
	Buttons uint32
}

// driver returns the context engine's input driver, or nil when the
// backend has none.
func driver(ctx *gale.Context) gale.InputDriver {
	if p, ok := ctx.Engine().(gale.InputProvider); ok {
		return p.Input()
	}
	return nil
}

// KeyboardState captures the current keyboard state.
func KeyboardState(ctx *gale.Context) Keyboard {
	d := driver(ctx)
	if d == nil {
		return Keyboard{}
	}
	return Keyboard{pressed: d.KeyboardState(), mod: d.ModState()}
}

// Pressed reports whether the key with the given scancode is held.
// Unknown scancodes report false.
func (k Keyboard) Pressed(scancode int) bool {
	if scancode < 0 || scancode >= len(k.pressed) {
		return false
	}
	return k.pressed[scancode]
}

// Mod returns the key modifier bitmask.
func (k Keyboard) Mod() uint16 {
	return k.mod
}

// MouseState captures the current mouse state.
func MouseState(ctx *gale.Context) Mouse {
	d := driver(ctx)
	if d == nil {
		return Mouse{}
	}
	p, buttons := d.MouseState()
	return Mouse{Position: p, Buttons: buttons}
}

// ButtonPressed reports whether the 1-based button index is held.
func (m Mouse) ButtonPressed(button uint8) bool {
	return m.Buttons&gale.MouseButtonMask(button) != 0
}

// WarpMouse moves the cursor within the given window. Engines without
// input support ignore the call.
func WarpMouse(ctx *gale.Context, id gale.WindowID, p gale.Point) error {
	d := driver(ctx)
	if d == nil {
		return nil
	}
	return d.WarpMouse(id, p)
}

// SetRelativeMouseMode enables relative (captured) mouse motion, where
// motion events report deltas and the cursor is hidden.
func SetRelativeMouseMode(ctx *gale.Context, enabled bool) error {
	d := driver(ctx)
	if d == nil {
		return nil
	}
	return d.SetRelativeMouseMode(enabled)
}

// RelativeMouseMode reports whether relative mode is active.
func RelativeMouseMode(ctx *gale.Context) bool {
	d := driver(ctx)
	if d == nil {
		return false
	}
	return d.RelativeMouseMode()
}
