// Package progress carries events emitted by the long-running batch
// variants of customize and reset. Delivery is best-effort: a Channel never
// blocks the producing batch, and events that do not fit the buffer are
// dropped.
package progress

import "sync"

// Event is a single progress update. Exactly one concrete type applies.
type Event interface{ isEvent() }

// Started reports the batch size before any work happens.
type Started struct {
	Total int
}

// Rendering reports the single render/convert step of a customize batch.
// Emitted once, before any folder is processed.
type Rendering struct{}

// RenderFailed reports that the render step failed. No folder is processed
// after it; the batch still closes with a Completed event.
type RenderFailed struct {
	Error string
}

// Processing reports that work on folder Current (0-based, input order)
// has begun.
type Processing struct {
	Current int
	Path    string
}

// FolderComplete reports a successfully processed folder.
type FolderComplete struct {
	Index int
	Path  string
}

// FolderFailed reports a folder whose apply or reset failed. Sibling
// folders are unaffected.
type FolderFailed struct {
	Index int
	Path  string
	Error string
}

// Completed closes the batch. Succeeded+Failed always equals the Started
// total, for every batch size including zero.
type Completed struct {
	Succeeded int
	Failed    int
}

func (Started) isEvent()        {}
func (Rendering) isEvent()      {}
func (RenderFailed) isEvent()   {}
func (Processing) isEvent()     {}
func (FolderComplete) isEvent() {}
func (FolderFailed) isEvent()   {}
func (Completed) isEvent()      {}

// Kind returns a short stable name for the event, used in logs and hooks.
func Kind(e Event) string {
	switch e.(type) {
	case Started:
		return "started"
	case Rendering:
		return "rendering"
	case RenderFailed:
		return "render_failed"
	case Processing:
		return "processing"
	case FolderComplete:
		return "folder_complete"
	case FolderFailed:
		return "folder_failed"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Channel is a bounded event conduit. Sends never block: when the buffer is
// full or the channel is closed, the event is dropped. A batch over N
// folders emits at most N*2+3 events; size the buffer accordingly (or drain
// continuously) when every event matters.
type Channel struct {
	mu     sync.RWMutex
	ch     chan Event
	closed bool
}

// NewChannel returns a channel with the given buffer size. Non-positive
// sizes fall back to 32.
func NewChannel(buffer int) *Channel {
	if buffer <= 0 {
		buffer = 32
	}
	return &Channel{ch: make(chan Event, buffer)}
}

// Events returns the receive side. It is closed by Close.
func (c *Channel) Events() <-chan Event { return c.ch }

// TrySend offers e without blocking. Returns false when the event was
// dropped (buffer full or channel closed).
func (c *Channel) TrySend(e Event) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.ch <- e:
		return true
	default:
		return false
	}
}

// Close ends delivery and closes the receive side. Safe to call at most
// once per channel from the consuming side; sends after Close drop.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}
