// Package term implements the gale engine on a text terminal via tcell.
// Cells stand in for pixels: the single window is the terminal itself
// and the renderer paints cell backgrounds. It is the degraded fallback
// for environments without a display server.
//
// Importing the package registers the "term" backend at priority 50:
//
//	import _ "github.com/gale-engine/gale/backend/term"
package term

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gale-engine/gale"
	"github.com/gale-engine/gale/internal/queue"
)

func init() {
	gale.Register("term", 50, func() (gale.Engine, error) {
		return newEngine(), nil
	}, available)
}

func available() bool {
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// errUnsupported is returned for window operations the terminal cannot
// perform.
var errUnsupported = errors.New("term: not supported by the terminal")

// engine is the tcell backend. The event pump goroutine owns PollEvent
// and feeds the queue; everything else reads engine state under mu.
type engine struct {
	events *queue.Queue[gale.RawEvent]
	start  time.Time

	mu      sync.Mutex
	screen  tcell.Screen
	input   inputState
	created bool
}

func newEngine() *engine {
	return &engine{
		events: queue.New[gale.RawEvent](),
		start:  time.Now(),
	}
}

// Name implements gale.Engine.
func (e *engine) Name() string { return "term" }

// Init implements gale.Engine. Video initialization takes over the
// terminal; events-only initialization leaves it untouched.
func (e *engine) Init(sub gale.Subsystem) error {
	if !sub.Has(gale.SubsystemVideo) {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.screen != nil {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnableMouse()
	e.screen = screen

	go e.pump(screen)
	return nil
}

// Quit implements gale.Engine.
func (e *engine) Quit(sub gale.Subsystem) {
	e.mu.Lock()
	screen := e.screen
	e.screen = nil
	e.mu.Unlock()

	if screen != nil {
		// Fini makes the pump's PollEvent return nil, stopping it.
		screen.Fini()
	}
	e.events.Close()
}

// Events implements gale.Engine.
func (e *engine) Events() gale.EventQueue { return (*eventQueue)(e) }

// Windows implements gale.Engine.
func (e *engine) Windows() gale.WindowDriver { return e }

// Input implements gale.InputProvider. Terminals expose no keyboard
// state; the mouse state is tracked from the event stream.
func (e *engine) Input() gale.InputDriver { return (*inputDriver)(e) }

func (e *engine) now() uint32 {
	return uint32(time.Since(e.start).Milliseconds())
}

// pump translates tcell events until the screen is finalized.
func (e *engine) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		e.translate(ev)
	}
}

func (e *engine) translate(ev tcell.Event) {
	switch t := ev.(type) {
	case *tcell.EventKey:
		e.translateKey(t)
	case *tcell.EventMouse:
		e.translateMouse(t)
	case *tcell.EventResize:
		w, h := t.Size()
		e.events.Push(gale.RawEvent{
			Type:      gale.KindWindowSizeChanged,
			Timestamp: e.now(),
			WindowID:  terminalWindowID,
			Data1:     int32(w),
			Data2:     int32(h),
		})
	}
}

func modMask(m tcell.ModMask) uint16 {
	var mod uint16
	if m&tcell.ModShift != 0 {
		mod |= gale.ModLShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= gale.ModLCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= gale.ModLAlt
	}
	if m&tcell.ModMeta != 0 {
		mod |= gale.ModLGui
	}
	return mod
}

// translateKey emits a key-down record; terminals report no key
// releases. Printable runes additionally emit a text-input record, the
// way the native engine pairs them.
func (e *engine) translateKey(t *tcell.EventKey) {
	mod := modMask(t.Modifiers())

	// Ctrl+C is the terminal's quit gesture.
	if t.Key() == tcell.KeyCtrlC {
		e.events.Push(gale.RawEvent{Type: gale.KindQuit, Timestamp: e.now()})
		return
	}

	code := uint32(t.Key())
	if t.Key() == tcell.KeyRune {
		code = uint32(t.Rune())
	}
	e.events.Push(gale.RawEvent{
		Type:      gale.KindKeyDown,
		Timestamp: e.now(),
		WindowID:  terminalWindowID,
		Scancode:  code,
		Keycode:   code,
		Mod:       mod,
	})

	if t.Key() == tcell.KeyRune && mod&(gale.ModCtrl|gale.ModAlt) == 0 {
		raw := gale.RawEvent{
			Type:      gale.KindTextInput,
			Timestamp: e.now(),
			WindowID:  terminalWindowID,
		}
		raw.SetText(string(t.Rune()))
		e.events.Push(raw)
	}
}

// buttonMask maps tcell's button bits to the engine's 1-based buttons:
// primary 1, middle 2, secondary 3.
func buttonMask(b tcell.ButtonMask) uint32 {
	var state uint32
	if b&tcell.Button1 != 0 {
		state |= gale.MouseButtonMask(1)
	}
	if b&tcell.Button3 != 0 {
		state |= gale.MouseButtonMask(2)
	}
	if b&tcell.Button2 != 0 {
		state |= gale.MouseButtonMask(3)
	}
	return state
}

func (e *engine) translateMouse(t *tcell.EventMouse) {
	x, y := t.Position()
	p := gale.Pt(int32(x), int32(y))
	state := buttonMask(t.Buttons())

	e.mu.Lock()
	prev := e.input
	e.input = inputState{pos: p, buttons: state}
	e.mu.Unlock()

	now := e.now()

	if p != prev.pos {
		e.events.Push(gale.RawEvent{
			Type:      gale.KindMouseMotion,
			Timestamp: now,
			WindowID:  terminalWindowID,
			State:     state,
			X:         p.X,
			Y:         p.Y,
			RelX:      p.X - prev.pos.X,
			RelY:      p.Y - prev.pos.Y,
		})
	}

	// Diff the button mask into down/up records.
	for button := uint8(1); button <= 3; button++ {
		mask := gale.MouseButtonMask(button)
		was, is := prev.buttons&mask != 0, state&mask != 0
		if was == is {
			continue
		}
		kind := gale.KindMouseButtonDown
		if was {
			kind = gale.KindMouseButtonUp
		}
		e.events.Push(gale.RawEvent{
			Type:      kind,
			Timestamp: now,
			WindowID:  terminalWindowID,
			Button:    button,
			State:     state,
			Clicks:    1,
			X:         p.X,
			Y:         p.Y,
		})
	}

	var wx, wy int32
	if t.Buttons()&tcell.WheelUp != 0 {
		wy++
	}
	if t.Buttons()&tcell.WheelDown != 0 {
		wy--
	}
	if t.Buttons()&tcell.WheelLeft != 0 {
		wx--
	}
	if t.Buttons()&tcell.WheelRight != 0 {
		wx++
	}
	if wx != 0 || wy != 0 {
		e.events.Push(gale.RawEvent{
			Type:      gale.KindMouseWheel,
			Timestamp: now,
			WindowID:  terminalWindowID,
			WheelX:    wx,
			WheelY:    wy,
			PreciseX:  float32(wx),
			PreciseY:  float32(wy),
		})
	}
}

// eventQueue exposes the pump's FIFO as a gale.EventQueue.
type eventQueue engine

func (q *eventQueue) Poll(ev *gale.RawEvent) bool {
	v, ok := q.events.Poll()
	if ok {
		*ev = v
	}
	return ok
}

func (q *eventQueue) Wait(ev *gale.RawEvent) bool {
	v, ok := q.events.Wait()
	if ok {
		*ev = v
	}
	return ok
}

func (q *eventQueue) WaitTimeout(ev *gale.RawEvent, d time.Duration) bool {
	v, ok := q.events.WaitTimeout(d)
	if ok {
		*ev = v
	}
	return ok
}

func (q *eventQueue) HasPending() bool { return q.events.HasPending() }

func (q *eventQueue) Flush() { q.events.Flush() }

func (q *eventQueue) FlushRange(min, max uint32) {
	q.events.FlushFunc(func(ev gale.RawEvent) bool {
		return ev.Type >= min && ev.Type <= max
	})
}

func (q *eventQueue) Push(ev gale.RawEvent) error {
	q.events.Push(ev)
	return nil
}

// inputState is the mouse state tracked from the event stream.
type inputState struct {
	pos     gale.Point
	buttons uint32
}

// inputDriver serves state snapshots; the keyboard snapshot is always
// empty because terminals report key presses, not key state.
type inputDriver engine

func (in *inputDriver) KeyboardState() []bool { return nil }

func (in *inputDriver) ModState() uint16 { return 0 }

func (in *inputDriver) MouseState() (gale.Point, uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.input.pos, in.input.buttons
}

func (in *inputDriver) WarpMouse(gale.WindowID, gale.Point) error {
	return errUnsupported
}

func (in *inputDriver) SetRelativeMouseMode(bool) error {
	return errUnsupported
}

func (in *inputDriver) RelativeMouseMode() bool { return false }
