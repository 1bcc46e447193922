package event

import (
	"errors"
	"time"

	"github.com/gale-engine/gale"
)

// Source adapts a Context's raw event queue to typed events. It owns no
// state beyond the queue reference; both consumption strategies (Range,
// Cursor) layer on the same pull primitive without sharing iteration
// state.
//
// A Source follows the engine's threading model: use it from the thread
// that owns the Context.
type Source struct {
	queue gale.EventQueue
}

// NewSource creates a Source over the context's event queue.
func NewSource(ctx *gale.Context) *Source {
	return &Source{queue: ctx.Events()}
}

// NewSourceFromQueue creates a Source over an explicit queue.
func NewSourceFromQueue(q gale.EventQueue) *Source {
	return &Source{queue: q}
}

// PollRaw pops the next pending raw record without blocking or
// converting. It reports false when the queue is empty.
func (s *Source) PollRaw(raw *gale.RawEvent) bool {
	return s.queue.Poll(raw)
}

// pollConverted pops raw records until one converts, skipping unsupported
// kinds. It reports false when the queue is exhausted.
func (s *Source) pollConverted() (Event, bool) {
	var raw gale.RawEvent
	for s.queue.Poll(&raw) {
		ev, err := Convert(&raw)
		if err != nil {
			logSkip(&raw, err)
			continue
		}
		return ev, true
	}
	return nil, false
}

// Wait blocks until a convertible event arrives. Records of unsupported
// kinds are skipped and the wait continues. It reports false only when
// the engine is shutting down.
func (s *Source) Wait() (Event, bool) {
	var raw gale.RawEvent
	for s.queue.Wait(&raw) {
		ev, err := Convert(&raw)
		if err != nil {
			logSkip(&raw, err)
			continue
		}
		return ev, true
	}
	return nil, false
}

// WaitTimeout blocks up to d for an event. It reports false on timeout.
//
// Unlike Wait, a record of unsupported kind pulled within the window
// makes this call report false instead of retrying against the remaining
// budget. The asymmetry is intentional: retrying would make the call
// overshoot the caller's deadline accounting, so an unsupported record
// costs the caller one (empty) poll cycle instead.
func (s *Source) WaitTimeout(d time.Duration) (Event, bool) {
	var raw gale.RawEvent
	if !s.queue.WaitTimeout(&raw, d) {
		return nil, false
	}
	ev, err := Convert(&raw)
	if err != nil {
		logSkip(&raw, err)
		return nil, false
	}
	return ev, true
}

// HasPending reports whether a raw record is queued, without consuming
// it. A pending record is not necessarily convertible.
func (s *Source) HasPending() bool {
	return s.queue.HasPending()
}

// Flush drains and discards every pending record. No conversion is
// attempted.
func (s *Source) Flush() {
	s.queue.Flush()
}

// FlushRange drains only records whose raw kind discriminant falls in
// [min, max]. The range is the engine's raw numbering (gale.Kind*); no
// semantic grouping exists for arbitrary ranges.
func (s *Source) FlushRange(min, max uint32) {
	s.queue.FlushRange(min, max)
}

// logSkip records a dropped unsupported record at debug level. Skipping
// stays invisible to the API surface; the log is the only trace.
func logSkip(raw *gale.RawEvent, err error) {
	var unsupported *UnsupportedKindError
	if errors.As(err, &unsupported) {
		gale.Logger().Debug("skipping unsupported event kind", "kind", unsupported.Kind)
		return
	}
	gale.Logger().Debug("skipping undecodable event", "kind", raw.Type, "err", err)
}
