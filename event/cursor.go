package event

import "iter"

// Cursor is a lazy, single-pass reader over the pending queue. Each
// advance pulls one raw record, converts it, and stores the result in the
// cursor's single event slot; unsupported kinds are pulled and skipped
// transparently until a convertible record is found or the queue is
// exhausted. Nothing is materialized beyond the one in-flight event.
//
// A Cursor iterates what is pending now: it never blocks waiting for new
// records (that is Source.Wait). Typical loop:
//
//	for c := event.NewCursor(src); c.Valid(); c.Advance() {
//	    handle(c.Event())
//	}
type Cursor struct {
	src *Source
	cur Event
	ok  bool
}

// NewCursor creates a cursor positioned at the first convertible pending
// event. If the queue is empty or holds only unsupported records, the
// cursor starts terminal.
func NewCursor(src *Source) *Cursor {
	c := &Cursor{src: src}
	c.Advance()
	return c
}

// Valid reports whether the cursor holds a current event. A cursor that
// has exhausted the queue is terminal and never becomes valid again.
func (c *Cursor) Valid() bool {
	return c.ok
}

// Event returns the current event. The value is overwritten by the next
// Advance; callers that need it longer must copy it out before advancing.
// Event returns nil on a terminal cursor.
func (c *Cursor) Event() Event {
	return c.cur
}

// Advance pulls until the next convertible record or queue exhaustion,
// overwriting the current event slot in place.
func (c *Cursor) Advance() {
	c.cur, c.ok = c.src.pollConverted()
}

// Equal compares two cursors by their has-event state only, not by
// position or content. In particular, two terminal cursors over different
// queues compare equal. This mirrors the end-sentinel convention of
// single-pass iteration and is the documented behavior, quirk included.
func (c *Cursor) Equal(other *Cursor) bool {
	return c.ok == other.ok
}

// All returns a lazy iterator over the currently pending events, with the
// same single-pass, skip-unsupported semantics as a Cursor. The sequence
// can only be ranged once; breaking out leaves the remaining records
// queued.
//
//	for ev := range src.All() {
//	    handle(ev)
//	}
func (s *Source) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := s.pollConverted()
			if !ok {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}
