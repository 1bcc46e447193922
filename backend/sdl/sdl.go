// Package sdl implements the gale engine on SDL2 via go-sdl2.
//
// Importing the package registers the "sdl" backend at priority 100:
//
//	import _ "github.com/gale-engine/gale/backend/sdl"
//
// SDL2 requires the Context to live on the main OS thread; call
// runtime.LockOSThread from main before creating one.
package sdl

import (
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gale-engine/gale"
	"github.com/gale-engine/gale/internal/queue"
)

func init() {
	gale.Register("sdl", 100, func() (gale.Engine, error) {
		return newEngine(), nil
	}, available)
}

// available reports whether a display is reachable. On Linux that means
// an X11 or Wayland session; elsewhere the window system is always
// present.
func available() bool {
	if runtime.GOOS == "linux" {
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

// engine is the SDL2 backend.
type engine struct {
	events *eventQueue
	input  inputDriver
}

func newEngine() *engine {
	return &engine{
		events: &eventQueue{user: queue.New[gale.RawEvent]()},
	}
}

// Name implements gale.Engine.
func (e *engine) Name() string { return "sdl" }

// subsystemFlags maps the gale mask onto SDL2 init flags. The numeric
// values coincide except for camera, which SDL2 does not have.
func subsystemFlags(sub gale.Subsystem) uint32 {
	const supported = gale.SubsystemAudio | gale.SubsystemVideo |
		gale.SubsystemJoystick | gale.SubsystemHaptic |
		gale.SubsystemGamepad | gale.SubsystemEvents | gale.SubsystemSensor
	return uint32(sub & supported)
}

// Init implements gale.Engine.
func (e *engine) Init(sub gale.Subsystem) error {
	if err := sdl.Init(subsystemFlags(sub)); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}
	return nil
}

// Quit implements gale.Engine.
func (e *engine) Quit(sub gale.Subsystem) {
	e.events.user.Close()
	sdl.QuitSubSystem(subsystemFlags(sub))
	sdl.Quit()
}

// Events implements gale.Engine.
func (e *engine) Events() gale.EventQueue { return e.events }

// Windows implements gale.Engine.
func (e *engine) Windows() gale.WindowDriver { return windowDriver{} }

// Input implements gale.InputProvider.
func (e *engine) Input() gale.InputDriver { return e.input }

// inputDriver reads SDL2 input-state snapshots.
type inputDriver struct{}

func (inputDriver) KeyboardState() []bool {
	state := sdl.GetKeyboardState()
	pressed := make([]bool, len(state))
	for i, v := range state {
		pressed[i] = v != 0
	}
	return pressed
}

func (inputDriver) ModState() uint16 {
	return uint16(sdl.GetModState())
}

func (inputDriver) MouseState() (gale.Point, uint32) {
	x, y, state := sdl.GetMouseState()
	return gale.Pt(x, y), state
}

func (inputDriver) WarpMouse(id gale.WindowID, p gale.Point) error {
	w, err := sdl.GetWindowFromID(uint32(id))
	if err != nil {
		return fmt.Errorf("sdl: warp mouse: %w", err)
	}
	w.WarpMouseInWindow(p.X, p.Y)
	return nil
}

func (inputDriver) SetRelativeMouseMode(enabled bool) error {
	sdl.SetRelativeMouseMode(enabled)
	return nil
}

func (inputDriver) RelativeMouseMode() bool {
	return sdl.GetRelativeMouseMode()
}
