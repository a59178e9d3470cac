// Package tracking buffers behavior events and ships them to the backend's
// activity log.
//
// [BehaviorTracker] owns an in-memory event buffer behind a single goroutine.
// Events are recorded under a session (see [BehaviorTracker.StartSession])
// and flushed when the buffer reaches [BufferCap], on a periodic ticker, and
// when the session ends. Delivery is fire-and-forget: the buffer is cleared
// as soon as a flush is dispatched, so a failed delivery loses that flush.
//
// The event constructors in events.go produce the action vocabulary this
// client uses (session lifecycle, tab views, taps, CLI commands).
package tracking
