package sdl

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gale-engine/gale"
	"github.com/gale-engine/gale/internal/queue"
)

// eventQueue adapts the SDL2 event queue. Native events are normalized
// into the gale kind space on every pull. User-pushed records bypass the
// native queue through an overlay FIFO, which is drained first.
type eventQueue struct {
	user *queue.Queue[gale.RawEvent]
}

func (q *eventQueue) Poll(ev *gale.RawEvent) bool {
	if v, ok := q.user.Poll(); ok {
		*ev = v
		return true
	}
	for {
		native := sdl.PollEvent()
		if native == nil {
			return false
		}
		if normalize(native, ev) {
			return true
		}
	}
}

func (q *eventQueue) Wait(ev *gale.RawEvent) bool {
	if v, ok := q.user.Poll(); ok {
		*ev = v
		return true
	}
	for {
		native := sdl.WaitEvent()
		if native == nil {
			return false
		}
		if normalize(native, ev) {
			return true
		}
	}
}

func (q *eventQueue) WaitTimeout(ev *gale.RawEvent, d time.Duration) bool {
	if v, ok := q.user.Poll(); ok {
		*ev = v
		return true
	}
	native := sdl.WaitEventTimeout(int(d.Milliseconds()))
	if native == nil {
		return false
	}
	return normalize(native, ev)
}

func (q *eventQueue) HasPending() bool {
	return q.user.HasPending() || sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

func (q *eventQueue) Flush() {
	q.user.Flush()
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

// FlushRange flushes the numeric kind window. The per-kind window
// discriminants all live in one native event type, so a range touching
// the window block flushes every window event.
func (q *eventQueue) FlushRange(min, max uint32) {
	q.user.FlushFunc(func(ev gale.RawEvent) bool {
		return ev.Type >= min && ev.Type <= max
	})
	sdl.FlushEvents(min, max)
	if min <= gale.KindWindowDisplayChanged && max >= gale.KindWindowShown {
		sdl.FlushEvent(uint32(sdl.WINDOWEVENT))
	}
}

// Push accepts user-defined kinds only; the native kind space belongs to
// the engine.
func (q *eventQueue) Push(ev gale.RawEvent) error {
	if ev.Type < gale.KindUser || ev.Type > gale.KindLast {
		return fmt.Errorf("sdl: push: kind %#x is reserved by the engine", ev.Type)
	}
	q.user.Push(ev)
	return nil
}

// normalize converts a native SDL2 event into the gale kind space. It
// reports false for native kinds gale does not carry; callers pull the
// next event.
func normalize(native sdl.Event, out *gale.RawEvent) bool {
	switch e := native.(type) {
	case *sdl.QuitEvent:
		*out = gale.RawEvent{Type: gale.KindQuit, Timestamp: e.Timestamp}

	case *sdl.WindowEvent:
		// SDL2 window sub-codes are numbered 1..18 in the same order as
		// the per-kind discriminants starting at KindWindowShown.
		if e.Event < 1 || e.Event > 18 {
			return false
		}
		*out = gale.RawEvent{
			Type:      gale.KindWindowShown + uint32(e.Event) - 1,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Data1:     e.Data1,
			Data2:     e.Data2,
		}

	case *sdl.KeyboardEvent:
		kind := gale.KindKeyDown
		if e.Type == sdl.KEYUP {
			kind = gale.KindKeyUp
		}
		*out = gale.RawEvent{
			Type:      kind,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Scancode:  uint32(e.Keysym.Scancode),
			Keycode:   uint32(e.Keysym.Sym),
			Mod:       e.Keysym.Mod,
			Repeat:    e.Repeat != 0,
		}

	case *sdl.TextInputEvent:
		*out = gale.RawEvent{
			Type:      gale.KindTextInput,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
		}
		copy(out.Text[:], e.Text[:])

	case *sdl.TextEditingEvent:
		*out = gale.RawEvent{
			Type:       gale.KindTextEditing,
			Timestamp:  e.Timestamp,
			WindowID:   e.WindowID,
			TextStart:  e.Start,
			TextLength: e.Length,
		}
		copy(out.Text[:], e.Text[:])

	case *sdl.MouseMotionEvent:
		*out = gale.RawEvent{
			Type:      gale.KindMouseMotion,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Which:     e.Which,
			State:     e.State,
			X:         e.X,
			Y:         e.Y,
			RelX:      e.XRel,
			RelY:      e.YRel,
		}

	case *sdl.MouseButtonEvent:
		kind := gale.KindMouseButtonDown
		if e.Type == sdl.MOUSEBUTTONUP {
			kind = gale.KindMouseButtonUp
		}
		*out = gale.RawEvent{
			Type:      kind,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Which:     e.Which,
			Button:    e.Button,
			State:     uint32(e.State),
			Clicks:    e.Clicks,
			X:         e.X,
			Y:         e.Y,
		}

	case *sdl.MouseWheelEvent:
		*out = gale.RawEvent{
			Type:      gale.KindMouseWheel,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Which:     e.Which,
			WheelX:    e.X,
			WheelY:    e.Y,
			PreciseX:  e.PreciseX,
			PreciseY:  e.PreciseY,
			Direction: e.Direction,
		}

	case *sdl.JoyAxisEvent:
		*out = gale.RawEvent{
			Type:      gale.KindJoyAxisMotion,
			Timestamp: e.Timestamp,
			Which:     uint32(e.Which),
			Axis:      e.Axis,
			Value:     e.Value,
		}

	case *sdl.JoyButtonEvent:
		kind := gale.KindJoyButtonDown
		if e.Type == sdl.JOYBUTTONUP {
			kind = gale.KindJoyButtonUp
		}
		*out = gale.RawEvent{
			Type:      kind,
			Timestamp: e.Timestamp,
			Which:     uint32(e.Which),
			Button:    e.Button,
			State:     uint32(e.State),
		}

	case *sdl.JoyHatEvent:
		*out = gale.RawEvent{
			Type:      gale.KindJoyHatMotion,
			Timestamp: e.Timestamp,
			Which:     uint32(e.Which),
			Hat:       e.Hat,
			HatValue:  e.Value,
		}

	case *sdl.JoyBallEvent:
		*out = gale.RawEvent{Type: gale.KindJoyBallMotion, Timestamp: e.Timestamp}

	case *sdl.UserEvent:
		*out = gale.RawEvent{
			Type:      e.Type,
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Data1:     e.Code,
		}

	default:
		return false
	}
	return true
}
