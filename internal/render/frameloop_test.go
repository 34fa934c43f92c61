package render

import (
	"testing"
	"time"

	"github.com/kitonae/constellation/internal/controlpb"
	"github.com/kitonae/constellation/internal/gpu"
	"github.com/kitonae/constellation/internal/statehub"
	"github.com/kitonae/constellation/internal/texture"
	"github.com/kitonae/constellation/internal/transport"
)

type constDecoder struct{}

func (constDecoder) Decode(uri string) ([]byte, uint32, uint32, error) {
	return []byte{1, 2, 3, 4}, 1, 1, nil
}

func newTestLoop(t *testing.T) (*FrameLoop, *gpu.NullSurface, *statehub.Hub, *texture.Cache) {
	t.Helper()
	hub := statehub.New(transport.New())
	dev := gpu.NewNullDevice()
	surface := gpu.NewNullSurface()
	cache, err := texture.NewCache(dev, constDecoder{})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	loop := New(hub, surface, cache, 1280, 720)
	return loop, surface, hub, cache
}

func TestFrameLoop_TickDrawsAndPresents(t *testing.T) {
	loop, surface, hub, _ := newTestLoop(t)
	hub.SetProject(&controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{
				{ID: "s1", Screen: &controlpb.ScreenComponent{}},
			},
		},
	})

	if err := loop.Tick(time.Unix(0, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(surface.Frames) != 1 {
		t.Fatalf("expected 1 frame acquired, got %d", len(surface.Frames))
	}
	f := surface.Frames[0]
	if !f.Presented {
		t.Error("expected frame to be presented")
	}
	if len(f.Instances) != 1 {
		t.Errorf("expected 1 drawn instance, got %d", len(f.Instances))
	}
}

func TestFrameLoop_NoActiveClipUsesWhiteFallback(t *testing.T) {
	loop, surface, hub, cache := newTestLoop(t)
	hub.SetProject(&controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{{ID: "s1", Screen: &controlpb.ScreenComponent{}}},
		},
	})

	if err := loop.Tick(time.Unix(0, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	draw := surface.Frames[0].Instances[0]
	if draw.Texture.ID() != cache.White().ID() {
		t.Errorf("expected white fallback texture, got %s", draw.Texture.ID())
	}
}

func TestFrameLoop_ActiveClipResolvesThroughTimeline(t *testing.T) {
	loop, surface, hub, cache := newTestLoop(t)
	hub.SetProject(&controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{{ID: "s1", Screen: &controlpb.ScreenComponent{}}},
		},
		Media: []*controlpb.MediaClip{{ID: "clip-a", URI: "file:///a.png"}},
		Timeline: &controlpb.Timeline{
			Tracks: []*controlpb.TimelineTrack{
				{Media: &controlpb.TrackMedia{TargetNodeID: "s1", ClipID: "clip-a", InSeconds: 0, OutSeconds: 10}},
			},
		},
	})
	hub.Play(nil)

	if err := loop.Tick(time.Unix(0, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	draw := surface.Frames[0].Instances[0]
	if draw.Texture == nil || draw.Texture.ID() == cache.White().ID() {
		t.Fatal("expected the active clip's texture, not nil or the white fallback")
	}
}

func TestFrameLoop_InstanceCapacityGrowsToNextPowerOfTwo(t *testing.T) {
	loop, _, hub, _ := newTestLoop(t)
	roots := make([]*controlpb.Node, 5)
	for i := range roots {
		roots[i] = &controlpb.Node{ID: "s", Screen: &controlpb.ScreenComponent{}}
	}
	hub.SetProject(&controlpb.Project{Scene: &controlpb.Scene{Roots: roots}})

	if err := loop.Tick(time.Unix(0, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if loop.InstanceCapacity() != 8 {
		t.Errorf("expected capacity to grow to 8 for 5 instances, got %d", loop.InstanceCapacity())
	}

	// Shrinking the instance count must not shrink capacity.
	hub.SetProject(&controlpb.Project{Scene: &controlpb.Scene{Roots: roots[:1]}})
	if err := loop.Tick(time.Unix(0, 0)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if loop.InstanceCapacity() != 8 {
		t.Errorf("expected capacity to stay at 8, got %d", loop.InstanceCapacity())
	}
}

func TestFrameLoop_AcquireFailureReconfiguresAndSkips(t *testing.T) {
	loop, surface, _, _ := newTestLoop(t)
	surface.AcquireErr = errFake{}

	err := loop.Tick(time.Unix(0, 0))
	if err == nil {
		t.Fatal("expected Tick to surface the acquire error")
	}
	if surface.Width != loop.width || surface.Height != loop.height {
		t.Errorf("expected surface reconfigured to %dx%d, got %dx%d", loop.width, loop.height, surface.Width, surface.Height)
	}
}

func TestFrameLoop_ResizeClampsToAtLeastOne(t *testing.T) {
	loop, surface, _, _ := newTestLoop(t)
	loop.Resize(0, 0)
	if surface.Width != 1 || surface.Height != 1 {
		t.Errorf("expected surface clamped to 1x1, got %dx%d", surface.Width, surface.Height)
	}
}

func TestFrameLoop_FPSAccountedOverOneSecondWindows(t *testing.T) {
	loop, _, _, _ := newTestLoop(t)
	start := loop.windowSince

	for i := 0; i < 30; i++ {
		if err := loop.Tick(start); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	// Still inside the first window: no metrics published yet.
	if loop.frameCount != 30 {
		t.Errorf("expected 30 frames accumulated in-window, got %d", loop.frameCount)
	}

	if err := loop.Tick(start.Add(time.Second)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if loop.frameCount != 0 {
		t.Errorf("expected frame counter reset after window close, got %d", loop.frameCount)
	}
}

type errFake struct{}

func (errFake) Error() string { return "fake acquire failure" }
