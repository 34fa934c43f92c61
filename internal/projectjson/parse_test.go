package projectjson

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kitonae/constellation/internal/controlpb"
)

const sampleJSON = `{
  "project": {
    "id": "p1",
    "name": "Demo",
    "scene": {
      "id": "sc1",
      "roots": [
        {
          "id": "n1",
          "transform": {
            "position": {"x": 1, "y": 2, "z": 3},
            "rotation": {"x": 0, "y": 0, "z": 0, "w": 1},
            "scale": {"x": 1, "y": 1, "z": 1}
          },
          "screen": {"pixels_x": 1920, "pixels_y": 1080}
        }
      ]
    },
    "media": [
      {"id": "c1", "uri": "file:///a.png", "duration_seconds": 5}
    ],
    "timeline": {
      "id": "t1",
      "duration_seconds": 10,
      "tracks": [
        {"media": {"target_node_id": "n1", "clip_id": "c1", "in_seconds": 0, "out_seconds": 5, "start_at_seconds": 0}}
      ]
    }
  }
}`

func TestParseJSON_ConvertsToWireProject(t *testing.T) {
	p, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	want := &controlpb.Project{
		ID:   "p1",
		Name: "Demo",
		Scene: &controlpb.Scene{
			ID: "sc1",
			Roots: []*controlpb.Node{
				{
					ID: "n1",
					Transform: &controlpb.Transform{
						Position: &controlpb.Vec3{X: 1, Y: 2, Z: 3},
						Rotation: &controlpb.Quat{W: 1},
						Scale:    &controlpb.Vec3{X: 1, Y: 1, Z: 1},
					},
					Screen: &controlpb.ScreenComponent{PixelsX: 1920, PixelsY: 1080},
				},
			},
		},
		Media: []*controlpb.MediaClip{
			{ID: "c1", URI: "file:///a.png", DurationSeconds: 5},
		},
		Timeline: &controlpb.Timeline{
			ID:              "t1",
			DurationSeconds: 10,
			Tracks: []*controlpb.TimelineTrack{
				{Media: &controlpb.TrackMedia{TargetNodeID: "n1", ClipID: "c1", OutSeconds: 5}},
			},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_SameShapeAsJSON(t *testing.T) {
	yamlDoc := []byte(`
project:
  id: p1
  scene:
    id: sc1
  timeline:
    id: t1
    duration_seconds: 0
`)
	p, err := ParseYAML(yamlDoc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if p.ID != "p1" || p.Scene.ID != "sc1" || p.Timeline.ID != "t1" {
		t.Errorf("unexpected project: %+v", p)
	}
}

func TestParseJSON_MalformedReturnsError(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("expected an error for malformed json")
	}
}

func TestParseJSON_LightNodeMapsKind(t *testing.T) {
	doc := `{"project": {"id":"p","scene":{"id":"s","roots":[
		{"id":"l1","transform":{"position":{"x":0,"y":0,"z":0},"rotation":{"x":0,"y":0,"z":0,"w":1},"scale":{"x":1,"y":1,"z":1}},
		 "light":{"type":"SPOT","color":{"r":1,"g":1,"b":1,"a":1},"intensity":2,"range":5}}
	]}, "timeline":{"id":"t"}}}`
	p, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	light := p.Scene.Roots[0].Light
	if light == nil || light.Kind != controlpb.LightSpot {
		t.Errorf("expected SPOT to map to LightSpot, got %+v", light)
	}
}
