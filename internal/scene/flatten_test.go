package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kitonae/constellation/internal/controlpb"
)

func vec3(x, y, z float32) *controlpb.Vec3 { return &controlpb.Vec3{X: x, Y: y, Z: z} }

func TestFromProject_NilScene(t *testing.T) {
	if got := FromProject(&controlpb.Project{}); len(got) != 0 {
		t.Errorf("expected no instances, got %v", got)
	}
	if got := FromProject(nil); len(got) != 0 {
		t.Errorf("expected no instances for nil project, got %v", got)
	}
}

func TestFromProject_IgnoresNonScreenNodes(t *testing.T) {
	p := &controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{
				{ID: "camera", Camera: &controlpb.CameraComponent{}},
				{ID: "light", Light: &controlpb.LightComponent{}},
				{ID: "bare"},
			},
		},
	}
	got := FromProject(p)
	if len(got) != 0 {
		t.Errorf("expected no renderable instances, got %v", got)
	}
}

func TestFromProject_IdentityTransform(t *testing.T) {
	p := &controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{
				{ID: "screen1", Screen: &controlpb.ScreenComponent{PixelsX: 1920, PixelsY: 1080}},
			},
		},
	}
	got := FromProject(p)
	want := []InstanceData{{Model: Identity(), NodeID: "screen1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromProject_TranslationComposesWithParent(t *testing.T) {
	p := &controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{
				{
					ID:        "parent",
					Transform: &controlpb.Transform{Position: vec3(1, 2, 3)},
					Children: []*controlpb.Node{
						{
							ID:        "child",
							Transform: &controlpb.Transform{Position: vec3(10, 0, 0)},
							Screen:    &controlpb.ScreenComponent{},
						},
					},
				},
			},
		},
	}
	got := FromProject(p)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	want := Identity()
	want[0][3] = 11
	want[1][3] = 2
	want[2][3] = 3
	if diff := cmp.Diff(want, got[0].Model); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got[0].NodeID != "child" {
		t.Errorf("expected node_id=child, got %s", got[0].NodeID)
	}
}

func TestFromProject_ScaleThenRotateThenTranslate(t *testing.T) {
	// 90-degree rotation about +Z: (x,y,z) -> (-y,x,z). Scale 2x first,
	// then rotate, then translate by (5,0,0).
	p := &controlpb.Project{
		Scene: &controlpb.Scene{
			Roots: []*controlpb.Node{
				{
					ID: "n",
					Transform: &controlpb.Transform{
						Position: vec3(5, 0, 0),
						Rotation: &controlpb.Quat{Z: 0.70710678, W: 0.70710678},
						Scale:    vec3(2, 2, 2),
					},
					Screen: &controlpb.ScreenComponent{},
				},
			},
		},
	}
	got := FromProject(p)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	// A point (1,0,0) in local space scales to (2,0,0), rotates to
	// (0,2,0), translates to (5,2,0).
	m := got[0].Model
	px := m[0][0]*1 + m[0][3]
	py := m[1][0]*1 + m[1][3]
	if diff := cmp.Diff(float32(5), px, cmpFloatOpt()); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(float32(2), py, cmpFloatOpt()); diff != "" {
		t.Errorf("y mismatch (-want +got):\n%s", diff)
	}
}

func cmpFloatOpt() cmp.Option {
	return cmp.Comparer(func(a, b float32) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d < 1e-4
	})
}
