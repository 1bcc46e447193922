// Package event converts the engine's raw tagged records into a closed
// set of typed events and provides two ways to consume them.
//
// # Typed events
//
// Event is a sealed interface with exactly eleven variants: Quit, Window,
// Key, TextInput, TextEditing, MouseMotion, MouseButton, MouseWheel,
// JoyAxis, JoyButton and JoyHat. Callers dispatch with a type switch:
//
//	switch ev := ev.(type) {
//	case event.Quit:
//	    return
//	case event.Window:
//	    if size, ok := ev.Size(); ok {
//	        resize(size.Width, size.Height)
//	    }
//	case event.Key:
//	    handleKey(ev.Scancode, ev.State == event.Pressed)
//	}
//
// Events are immutable value records: constructed once by Convert, never
// mutated, owned by whoever holds them.
//
// # Consuming the queue
//
// A Source adapts a Context's raw queue. Two consumption strategies sit
// on top of it:
//
//   - PollRange drains everything pending into an owned Range that can be
//     indexed and iterated any number of times (eager, multi-pass).
//   - NewCursor (or Source.All) pulls and converts one record per
//     advance, buffering only the in-flight event (lazy, single-pass).
//
// Both skip records whose kind the converter does not know; unsupported
// kinds never reach application code.
package event
