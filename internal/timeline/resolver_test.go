package timeline

import (
	"testing"

	"github.com/kitonae/constellation/internal/controlpb"
)

func track(target, clip string, in, out, startAt float64) *controlpb.TimelineTrack {
	return &controlpb.TimelineTrack{
		Media: &controlpb.TrackMedia{
			TargetNodeID:   target,
			ClipID:         clip,
			InSeconds:      in,
			OutSeconds:     out,
			StartAtSeconds: startAt,
		},
	}
}

func project(tracks ...*controlpb.TimelineTrack) *controlpb.Project {
	return &controlpb.Project{
		Media: []*controlpb.MediaClip{
			{ID: "clip-a", URI: "file:///a.png"},
			{ID: "clip-b", URI: "file:///b.png"},
		},
		Timeline: &controlpb.Timeline{Tracks: tracks},
	}
}

func TestActiveClipForNode_NilInputs(t *testing.T) {
	if _, ok := ActiveClipForNode(nil, "n", 0); ok {
		t.Error("expected no active clip for nil project")
	}
	if _, ok := ActiveClipForNode(&controlpb.Project{}, "n", 0); ok {
		t.Error("expected no active clip for project without a timeline")
	}
}

func TestActiveClipForNode_InWindow(t *testing.T) {
	p := project(track("n1", "clip-a", 0, 5, 0))
	got, ok := ActiveClipForNode(p, "n1", 2)
	if !ok {
		t.Fatal("expected an active clip")
	}
	if got.ClipID != "clip-a" || got.URI != "file:///a.png" {
		t.Errorf("unexpected clip: %+v", got)
	}
}

func TestActiveClipForNode_OutOfWindow(t *testing.T) {
	p := project(track("n1", "clip-a", 0, 5, 0))
	if _, ok := ActiveClipForNode(p, "n1", 5); ok {
		t.Error("expected end to be exclusive")
	}
	if _, ok := ActiveClipForNode(p, "n1", -1); ok {
		t.Error("expected no clip before start")
	}
}

func TestActiveClipForNode_WrongNode(t *testing.T) {
	p := project(track("n1", "clip-a", 0, 5, 0))
	if _, ok := ActiveClipForNode(p, "n2", 2); ok {
		t.Error("expected no clip for a different node")
	}
}

func TestActiveClipForNode_OverlapLatestStartWins(t *testing.T) {
	p := project(
		track("n1", "clip-a", 0, 10, 0),
		track("n1", "clip-b", 0, 10, 3),
	)
	got, ok := ActiveClipForNode(p, "n1", 5)
	if !ok {
		t.Fatal("expected an active clip")
	}
	if got.ClipID != "clip-b" {
		t.Errorf("expected later-starting clip-b to win, got %s", got.ClipID)
	}
}

func TestActiveClipForNode_TieBreaksOnLastInSlice(t *testing.T) {
	p := project(
		track("n1", "clip-a", 0, 10, 2),
		track("n1", "clip-b", 0, 10, 2),
	)
	got, ok := ActiveClipForNode(p, "n1", 5)
	if !ok {
		t.Fatal("expected an active clip")
	}
	if got.ClipID != "clip-b" {
		t.Errorf("expected last-in-slice clip-b to win tie, got %s", got.ClipID)
	}
}

func TestActiveClipForNode_MissingClipReference(t *testing.T) {
	p := project(track("n1", "nonexistent", 0, 10, 0))
	if _, ok := ActiveClipForNode(p, "n1", 1); ok {
		t.Error("expected no active clip when the referenced clip id does not exist")
	}
}
