// Package timeline resolves, for a given node and virtual time, which
// media clip (if any) is active.
package timeline

import "github.com/kitonae/constellation/internal/controlpb"

// ActiveClip identifies the media clip currently bound to a node.
type ActiveClip struct {
	ClipID string
	URI    string
}

// ActiveClipForNode scans the project's active timeline for the track
// targeting nodeID whose [start_at+in, start_at+out) window contains
// t, and returns the clip it names. When more than one track overlaps
// at t, the one with the latest start wins; ties are broken by later
// position in the tracks slice (stable, since range over a slice is
// always index order).
func ActiveClipForNode(p *controlpb.Project, nodeID string, t float64) (ActiveClip, bool) {
	if p == nil || p.Timeline == nil {
		return ActiveClip{}, false
	}

	var best *controlpb.TrackMedia
	var bestStart float64

	for _, tr := range p.Timeline.Tracks {
		m := tr.Media
		if m == nil || m.TargetNodeID != nodeID {
			continue
		}
		start := m.StartAtSeconds + m.InSeconds
		end := m.StartAtSeconds + m.OutSeconds
		if t < start || t >= end {
			continue
		}
		if best == nil || start >= bestStart {
			best = m
			bestStart = start
		}
	}
	if best == nil {
		return ActiveClip{}, false
	}

	for _, clip := range p.Media {
		if clip.ID == best.ClipID {
			return ActiveClip{ClipID: clip.ID, URI: clip.URI}, true
		}
	}
	return ActiveClip{}, false
}
