package render

import (
	"log"
	"os"
	"time"

	"github.com/kitonae/constellation/internal/gpu"
	"github.com/kitonae/constellation/internal/statehub"
	"github.com/kitonae/constellation/internal/texture"
	"github.com/kitonae/constellation/internal/timeline"
)

var logger = log.New(os.Stderr, "[render] ", log.LstdFlags)

// FrameLoop runs the per-tick sequence: acquire a frame, compute the
// camera, resolve instances and their textures, draw, present, and
// fold frame timing into the hub's metrics every second.
type FrameLoop struct {
	hub     *statehub.Hub
	surface gpu.Surface
	cache   *texture.Cache
	camera  Camera

	width, height uint32

	// instanceCapacity mirrors the GPU instance buffer's size in
	// instances; it only ever grows, to the next power of two, so a
	// real backend's buffer reallocates only on growth, not every
	// frame whose instance count merely fluctuates below capacity.
	instanceCapacity int

	frameCount  int
	windowSince time.Time
	dropped     float64
}

// New creates a FrameLoop over an already-configured surface and
// texture cache. Width/height should match the surface's initial
// configuration.
func New(hub *statehub.Hub, surface gpu.Surface, cache *texture.Cache, width, height uint32) *FrameLoop {
	return &FrameLoop{
		hub:         hub,
		surface:     surface,
		cache:       cache,
		camera:      DefaultCamera(),
		width:       width,
		height:      height,
		windowSince: time.Now(),
	}
}

// Resize reconfigures the surface to max(1,w) x max(1,h), matching
// the Resized-event path exactly (the independent acquire-failure
// reconfigure path is handled inside Tick).
func (l *FrameLoop) Resize(width, height uint32) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	l.width, l.height = width, height
	l.surface.Configure(width, height)
}

// Tick renders exactly one frame.
func (l *FrameLoop) Tick(now time.Time) error {
	frame, err := l.surface.AcquireFrame()
	if err != nil {
		logger.Printf("surface acquire failed: %v, reconfiguring", err)
		l.surface.Configure(l.width, l.height)
		return err
	}

	aspect := float32(l.width) / float32(l.height)
	if aspect <= 0 {
		aspect = 1
	}
	frame.SetCamera(l.camera.ViewProjection(aspect))

	instances := l.hub.Instances()
	l.growInstanceCapacity(len(instances))

	project := l.hub.Project()
	tNow := l.hub.Transport().NowVirtual()

	draws := make([]gpu.InstanceDraw, len(instances))
	for i, inst := range instances {
		tex := l.cache.White()
		if clip, ok := timeline.ActiveClipForNode(project, inst.NodeID, tNow); ok {
			tex = l.cache.GetOrLoad(clip.ClipID, clip.URI)
		}
		draws[i] = gpu.InstanceDraw{Model: inst.Model, Texture: tex}
	}
	frame.DrawInstances(draws)
	frame.Present()

	l.accountFrame(now)
	return nil
}

// growInstanceCapacity grows the tracked instance buffer capacity to
// the next power of two whenever the scene needs more room than it
// currently has; it never shrinks.
func (l *FrameLoop) growInstanceCapacity(needed int) {
	if needed <= l.instanceCapacity {
		return
	}
	cap := 1
	for cap < needed {
		cap *= 2
	}
	l.instanceCapacity = cap
}

// InstanceCapacity reports the current tracked instance buffer
// capacity (exported for tests).
func (l *FrameLoop) InstanceCapacity() int { return l.instanceCapacity }

// accountFrame folds this frame into the fps counter and publishes it
// to the hub once every full second.
func (l *FrameLoop) accountFrame(now time.Time) {
	l.frameCount++
	elapsed := now.Sub(l.windowSince)
	if elapsed >= time.Second {
		fps := float64(l.frameCount) / elapsed.Seconds()
		l.hub.SetMetrics(fps, l.dropped)
		l.frameCount = 0
		l.windowSince = now
	}
}
