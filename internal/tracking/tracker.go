package tracking

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/halcyonlabs/moodsync/internal/models"
	"github.com/halcyonlabs/moodsync/internal/services"
	"github.com/halcyonlabs/moodsync/internal/shared"
)

const (
	// BufferCap is the buffered-event count that triggers an immediate flush.
	BufferCap = 100

	// DefaultFlushInterval is how often the buffer is flushed regardless of size.
	DefaultFlushInterval = 120 * time.Second

	// deliveryTimeout bounds each log-activity call made during a flush.
	deliveryTimeout = 10 * time.Second
)

type commandKind int

const (
	cmdStart commandKind = iota
	cmdRecord
	cmdEnd
	cmdClose
)

type command struct {
	kind    commandKind
	event   models.BehaviorEvent
	started chan string
	done    chan struct{}
}

// BehaviorTracker buffers behavior events per session and flushes them to the
// remote activity log.
//
// A single goroutine owns the buffer and the session state; the public
// methods only post commands to it, so they are safe to call from any
// goroutine. Flushes hand the buffered events to a background sender and
// clear the buffer immediately, so delivery is at-most-once: events in a
// flush that fails are gone.
type BehaviorTracker struct {
	activities services.ActivityLogger
	email      string
	interval   time.Duration
	logger     *log.Logger

	commands chan command
	closed   atomic.Bool
	sending  sync.WaitGroup
}

// Option configures a BehaviorTracker.
type Option func(*BehaviorTracker)

// WithFlushInterval overrides the periodic flush interval.
func WithFlushInterval(d time.Duration) Option {
	return func(t *BehaviorTracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithTrackerLogger sets the logger used for delivery diagnostics.
func WithTrackerLogger(l *log.Logger) Option {
	return func(t *BehaviorTracker) {
		t.logger = l
	}
}

// NewBehaviorTracker creates a tracker that delivers events for the given
// account email and starts its owner goroutine.
func NewBehaviorTracker(activities services.ActivityLogger, email string, opts ...Option) *BehaviorTracker {
	t := &BehaviorTracker{
		activities: activities,
		email:      email,
		interval:   DefaultFlushInterval,
		logger:     shared.NewLogger(nil),
		commands:   make(chan command, 4*BufferCap),
	}
	for _, opt := range opts {
		opt(t)
	}

	go t.loop()
	return t
}

// StartSession begins a new tracking session and returns its id.
// Any events buffered under a previous session are flushed first.
func (t *BehaviorTracker) StartSession() string {
	if t.closed.Load() {
		return ""
	}
	started := make(chan string, 1)
	t.commands <- command{kind: cmdStart, started: started}
	return <-started
}

// Record buffers an event under the active session. Without an active
// session the event is dropped. Record never blocks; if the tracker cannot
// keep up the event is dropped instead.
func (t *BehaviorTracker) Record(event models.BehaviorEvent) {
	if t.closed.Load() {
		return
	}
	select {
	case t.commands <- command{kind: cmdRecord, event: event}:
	default:
		// Tracker backlogged, drop the event
	}
}

// EndSession flushes the buffer and closes the active session. It returns
// once the flush has been dispatched.
func (t *BehaviorTracker) EndSession() {
	if t.closed.Load() {
		return
	}
	done := make(chan struct{})
	t.commands <- command{kind: cmdEnd, done: done}
	<-done
}

// Close flushes any buffered events, stops the owner goroutine, and waits
// for in-flight deliveries to finish. The tracker cannot be reused.
func (t *BehaviorTracker) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		return
	}
	done := make(chan struct{})
	t.commands <- command{kind: cmdClose, done: done}
	<-done
	t.sending.Wait()
}

// loop is the owner goroutine. All buffer and session mutation happens here.
func (t *BehaviorTracker) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var buffer []models.BehaviorEvent
	var sessionID string

	for {
		select {
		case cmd := <-t.commands:
			switch cmd.kind {
			case cmdStart:
				buffer = t.dispatch(buffer)
				sessionID = shared.GenerateID()
				ticker.Reset(t.interval)
				cmd.started <- sessionID

			case cmdRecord:
				if sessionID == "" {
					continue
				}
				buffer = append(buffer, withSession(cmd.event, sessionID))
				if len(buffer) >= BufferCap {
					buffer = t.dispatch(buffer)
				}

			case cmdEnd:
				buffer = t.dispatch(buffer)
				sessionID = ""
				close(cmd.done)

			case cmdClose:
				t.dispatch(buffer)
				close(cmd.done)
				return
			}

		case <-ticker.C:
			buffer = t.dispatch(buffer)
		}
	}
}

// dispatch hands the buffered events to a background sender and returns the
// reset buffer. The buffer is cleared before any delivery is confirmed.
func (t *BehaviorTracker) dispatch(buffer []models.BehaviorEvent) []models.BehaviorEvent {
	if len(buffer) == 0 {
		return buffer
	}

	events := buffer
	t.sending.Add(1)
	go t.send(events)
	return nil
}

// send delivers one flush worth of events in recorded order.
func (t *BehaviorTracker) send(events []models.BehaviorEvent) {
	defer t.sending.Done()

	for _, event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		err := t.activities.LogActivity(ctx, t.email, event)
		cancel()
		if err != nil {
			t.logger.Debug("dropped behavior event", "action", event.Action, "error", err)
		}
	}
}

// withSession returns a copy of the event whose payload carries the session id.
func withSession(event models.BehaviorEvent, sessionID string) models.BehaviorEvent {
	payload := make(map[string]any, len(event.Payload)+1)
	for k, v := range event.Payload {
		payload[k] = v
	}
	payload["session_id"] = sessionID
	event.Payload = payload
	return event
}
