// Package transport implements the virtual transport clock: the
// play/pause/stop/seek/rate state machine that converts wall time into
// timeline time.
package transport

import (
	"sync"
	"time"
)

// Status is the transport's run state.
type Status int32

const (
	Stopped Status = 0
	Playing Status = 1
	Paused  Status = 2
)

// Snapshot is a point-in-time read of the clock.
type Snapshot struct {
	Status      Status
	TimeSeconds float64
	Rate        float64
}

// Clock is the play/pause/stop/seek/rate folding clock described by
// the control surface's transport semantics. Virtual time is
// base_time, optionally advanced by rate*elapsed(started_at) while
// Playing. Pause and SetRate fold the elapsed wall-clock delta into
// base_time before clearing or resetting started_at, so base_time holds
// the correct value at that instant. Play, Seek and Stop do not fold:
// they keep or overwrite base_time and reset or clear started_at.
type Clock struct {
	mu        sync.Mutex
	status    Status
	rate      float64
	baseTime  float64
	startedAt *time.Time
	now       func() time.Time
}

// New returns a Clock stopped at t=0 with rate 1.
func New() *Clock {
	return &Clock{
		status: Stopped,
		rate:   1,
		now:    time.Now,
	}
}

// Play transitions to Playing. If atSeconds is non-nil, base_time is
// set to it first (the "at_seconds == 0 means unset" convention is
// resolved by the caller: pass nil for unset, not a pointer to 0).
func (c *Clock) Play(atSeconds *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if atSeconds != nil {
		c.baseTime = *atSeconds
	}
	t := c.now()
	c.startedAt = &t
	c.status = Playing
}

// Pause folds elapsed time into base_time and stops advancing it.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.startedAt != nil {
		c.baseTime += c.rate * c.now().Sub(*c.startedAt).Seconds()
		c.startedAt = nil
	}
	c.status = Paused
}

// Stop resets the clock to t=0 and Stopped.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startedAt = nil
	c.baseTime = 0
	c.status = Stopped
}

// Seek jumps base_time to toSeconds. If currently Playing, the
// reference instant is reset so subsequent reads advance from the new
// position rather than re-applying stale elapsed time.
func (c *Clock) Seek(toSeconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseTime = toSeconds
	if c.startedAt != nil {
		t := c.now()
		c.startedAt = &t
	}
}

// SetRate folds elapsed time at the old rate into base_time, then
// applies the new rate going forward.
func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.startedAt != nil {
		elapsed := c.now().Sub(*c.startedAt).Seconds()
		c.baseTime += c.rate * elapsed
		t := c.now()
		c.startedAt = &t
	}
	c.rate = rate
}

// NowVirtual returns the current virtual time without mutating state.
func (c *Clock) NowVirtual() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowVirtualLocked()
}

func (c *Clock) nowVirtualLocked() float64 {
	t := c.baseTime
	if c.status == Playing && c.startedAt != nil {
		t += c.rate * c.now().Sub(*c.startedAt).Seconds()
	}
	return t
}

// Snapshot returns the full observable clock state in one lock.
func (c *Clock) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Status:      c.status,
		TimeSeconds: c.nowVirtualLocked(),
		Rate:        c.rate,
	}
}
