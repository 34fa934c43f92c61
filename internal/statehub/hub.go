// Package statehub holds the server's mutable state — transport,
// metrics, the flattened instance list, and the loaded project — and
// broadcasts the latest StateUpdate to any number of subscribers.
//
// Unlike the teacher package's bounded-queue-with-drop broadcast (a
// slow subscriber loses individual frames out of a backlog), this hub
// keeps only the single latest snapshot per subscriber: a slow
// subscriber just misses intermediate updates and catches up to
// "now" on its next read, matching the Rust implementation's
// tokio::sync::watch channel semantics rather than a frame queue.
package statehub

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/kitonae/constellation/internal/controlpb"
	"github.com/kitonae/constellation/internal/scene"
	"github.com/kitonae/constellation/internal/transport"
)

var logger = log.New(os.Stderr, "[statehub] ", log.LstdFlags)

// Hub owns the server's shared mutable state and fans out a
// latest-value-only StateUpdate stream to subscribers.
type Hub struct {
	mu        sync.Mutex
	transport *transport.Clock
	fps       float64
	dropped   float64
	instances []scene.InstanceData
	project   *controlpb.Project

	subMu          sync.Mutex
	subs           map[string]chan *controlpb.StateUpdate
	maxSubscribers int
}

// New returns a Hub wrapping the given clock, stopped with no project
// loaded.
func New(clock *transport.Clock) *Hub {
	return &Hub{
		transport: clock,
		subs:      make(map[string]chan *controlpb.StateUpdate),
	}
}

// SetMaxSubscribers caps the number of concurrent SubscribeState
// clients; 0 (the default) means unlimited.
func (h *Hub) SetMaxSubscribers(n int) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	h.maxSubscribers = n
}

// SetProject replaces the loaded project and its flattened instance
// list wholesale, then notifies subscribers.
func (h *Hub) SetProject(p *controlpb.Project) {
	instances := scene.FromProject(p)
	h.mu.Lock()
	h.project = p
	h.instances = instances
	h.mu.Unlock()
	h.notify()
}

// Project returns the currently loaded project, or nil.
func (h *Hub) Project() *controlpb.Project {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.project
}

// Instances returns the current flattened instance list.
func (h *Hub) Instances() []scene.InstanceData {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.instances
}

// SetMetrics records the frame loop's latest fps/dropped-frame
// counters and notifies subscribers.
func (h *Hub) SetMetrics(fps, dropped float64) {
	h.mu.Lock()
	h.fps = fps
	h.dropped = dropped
	h.mu.Unlock()
	h.notify()
}

// Transport exposes the underlying clock for direct reads, such as the
// frame loop's NowVirtual. Mutations made on the clock directly do not
// notify subscribers; the Hub's own Play/Pause/Stop/Seek/SetRate do.
func (h *Hub) Transport() *transport.Clock { return h.transport }

// Play, Pause, Stop, Seek, and SetRate forward to the transport clock
// and then notify subscribers, matching every mutation publishing an
// updated snapshot.
func (h *Hub) Play(atSeconds *float64) {
	h.transport.Play(atSeconds)
	h.notify()
}

func (h *Hub) Pause() {
	h.transport.Pause()
	h.notify()
}

func (h *Hub) Stop() {
	h.transport.Stop()
	h.notify()
}

func (h *Hub) Seek(toSeconds float64) {
	h.transport.Seek(toSeconds)
	h.notify()
}

func (h *Hub) SetRate(rate float64) {
	h.transport.SetRate(rate)
	h.notify()
}

// Snapshot returns the current StateUpdate without subscribing.
func (h *Hub) Snapshot() *controlpb.StateUpdate {
	snap := h.transport.Snapshot()
	h.mu.Lock()
	fps, dropped := h.fps, h.dropped
	h.mu.Unlock()
	return &controlpb.StateUpdate{
		Transport: &controlpb.TransportState{
			Status:      int32(snap.Status),
			TimeSeconds: snap.TimeSeconds,
			Rate:        snap.Rate,
		},
		Metrics: &controlpb.Metrics{
			FPS:           fps,
			DroppedFrames: dropped,
		},
	}
}

// Subscribe registers a new subscriber and returns its id, a
// capacity-1 channel carrying only the latest snapshot (stale values
// are overwritten, never queued), and an unsubscribe func. It fails if
// the configured MaxSubscribers limit is already reached.
func (h *Hub) Subscribe() (id string, updates <-chan *controlpb.StateUpdate, unsubscribe func(), err error) {
	h.subMu.Lock()
	if h.maxSubscribers > 0 && len(h.subs) >= h.maxSubscribers {
		h.subMu.Unlock()
		return "", nil, nil, fmt.Errorf("statehub: max subscribers (%d) reached", h.maxSubscribers)
	}
	id = uuid.NewString()
	ch := make(chan *controlpb.StateUpdate, 1)
	h.subs[id] = ch
	count := len(h.subs)
	h.subMu.Unlock()
	logger.Printf("subscriber %s connected (total: %d)", id, count)

	// Prime the channel so the subscriber doesn't wait for the next
	// mutation to see current state. A notify that ran since the
	// subscriber was registered has already filled the channel with a
	// value at least as new, and that value is kept.
	select {
	case ch <- h.Snapshot():
	default:
	}

	return id, ch, func() { h.unsubscribe(id) }, nil
}

func (h *Hub) unsubscribe(id string) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
		logger.Printf("subscriber %s disconnected (remaining: %d)", id, len(h.subs))
	}
}

func (h *Hub) subscriberCount() int {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	return len(h.subs)
}

// notify pushes the latest snapshot to every subscriber, replacing
// whatever stale value sits unread in its channel.
func (h *Hub) notify() {
	upd := h.Snapshot()
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- upd:
		default:
			// Drain the stale value and replace it with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- upd:
			default:
			}
		}
	}
}
