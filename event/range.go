package event

// Range is an owned, ordered collection of typed events, drained eagerly
// from the queue at construction. After construction every operation is a
// pure read: repeated iteration observes the identical sequence.
type Range struct {
	events []Event
}

// PollRange drains every currently pending record from the source,
// converting each in arrival order. Records of unsupported kinds are
// skipped silently; they are not surfaced and not counted. No
// coalescing or deduplication is performed; repeated motion events stay
// repeated.
//
// Construction is the only side-effecting step. If the engine keeps
// producing while draining, everything pending at each pull is included;
// there is no backpressure.
func PollRange(src *Source) Range {
	var events []Event
	for {
		ev, ok := src.pollConverted()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return Range{events: events}
}

// Len returns the number of events.
func (r Range) Len() int {
	return len(r.events)
}

// Empty reports whether the range holds no events.
func (r Range) Empty() bool {
	return len(r.events) == 0
}

// At returns the event at index i. It panics if i is out of range.
func (r Range) At(i int) Event {
	return r.events[i]
}

// Events returns the underlying sequence in arrival order. The slice is
// shared with the Range and must not be modified; it stays stable across
// any number of passes.
func (r Range) Events() []Event {
	return r.events
}
