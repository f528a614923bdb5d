// Package ids hands out the process-wide 64-bit identifiers that back
// every dungeon object. Identity in the engine is by pointer, never by
// id; the id exists for logging and external correlation only.
package ids

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// counter is the monotonic source of object ids. Starts at 1 so 0 can
// mean "no id" in serialized data.
var counter atomic.Uint64

// Next returns a fresh, never-repeating id.
func Next() uint64 {
	return counter.Add(1)
}

// Reset rewinds the counter. Only safe to call before the world is
// populated (loader phase, tests).
func Reset() {
	counter.Store(0)
}

// Correlation returns a new external correlation id for log records.
// This is deliberately not the in-process identity (spec §3.4): it
// exists so log lines for the same object across process restarts can
// be tied together by an operator without the id colliding with the
// monotonic counter's reused-after-restart values.
func Correlation() string {
	return uuid.NewString()
}
