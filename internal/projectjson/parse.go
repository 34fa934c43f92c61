// Package projectjson parses the editor-facing project document (a
// looser, defaulted JSON/YAML shape) and converts it into the wire
// controlpb.Project the control surface actually consumes. The two
// shapes are kept deliberately separate, mirroring
// original_source/client/src/main.rs's ProjectJ -> proto::Project
// conversion, rather than unifying them into one type controlpb would
// also have to defend against partially-populated editor documents.
package projectjson

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kitonae/constellation/internal/controlpb"
)

type vec3J struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

type quatJ struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
	W float32 `json:"w" yaml:"w"`
}

type transformJ struct {
	Position vec3J `json:"position" yaml:"position"`
	Rotation quatJ `json:"rotation" yaml:"rotation"`
	Scale    vec3J `json:"scale" yaml:"scale"`
}

type colorJ struct {
	R float32 `json:"r" yaml:"r"`
	G float32 `json:"g" yaml:"g"`
	B float32 `json:"b" yaml:"b"`
	A float32 `json:"a" yaml:"a"`
}

type materialPbrJ struct {
	ID        string  `json:"id" yaml:"id"`
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
	BaseColor *colorJ `json:"base_color,omitempty" yaml:"base_color,omitempty"`
	Metallic  *float32 `json:"metallic,omitempty" yaml:"metallic,omitempty"`
	Roughness *float32 `json:"roughness,omitempty" yaml:"roughness,omitempty"`
	Emissive  *colorJ  `json:"emissive,omitempty" yaml:"emissive,omitempty"`
}

type meshRefJ struct {
	ID   string  `json:"id" yaml:"id"`
	URI  string  `json:"uri" yaml:"uri"`
	Node *string `json:"node,omitempty" yaml:"node,omitempty"`
}

type meshCompJ struct {
	Mesh       meshRefJ `json:"mesh" yaml:"mesh"`
	MaterialID *string  `json:"material_id,omitempty" yaml:"material_id,omitempty"`
}

type lightCompJ struct {
	Type      string   `json:"type" yaml:"type"`
	Color     colorJ   `json:"color" yaml:"color"`
	Intensity float32  `json:"intensity" yaml:"intensity"`
	Range     float32  `json:"range" yaml:"range"`
	SpotAngle *float32 `json:"spot_angle,omitempty" yaml:"spot_angle,omitempty"`
}

type screenCompJ struct {
	PixelsX int32 `json:"pixels_x" yaml:"pixels_x"`
	PixelsY int32 `json:"pixels_y" yaml:"pixels_y"`
}

type cameraCompJ struct {
	FovDeg float32 `json:"fov_deg" yaml:"fov_deg"`
	Near   float32 `json:"near" yaml:"near"`
	Far    float32 `json:"far" yaml:"far"`
}

type nodeJ struct {
	ID        string       `json:"id" yaml:"id"`
	Name      *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Transform transformJ   `json:"transform" yaml:"transform"`
	Children  []nodeJ      `json:"children,omitempty" yaml:"children,omitempty"`
	Mesh      *meshCompJ   `json:"mesh,omitempty" yaml:"mesh,omitempty"`
	Light     *lightCompJ  `json:"light,omitempty" yaml:"light,omitempty"`
	Screen    *screenCompJ `json:"screen,omitempty" yaml:"screen,omitempty"`
	Camera    *cameraCompJ `json:"camera,omitempty" yaml:"camera,omitempty"`
}

type sceneJ struct {
	ID        string         `json:"id" yaml:"id"`
	Name      *string        `json:"name,omitempty" yaml:"name,omitempty"`
	Materials []materialPbrJ `json:"materials,omitempty" yaml:"materials,omitempty"`
	Meshes    []meshRefJ     `json:"meshes,omitempty" yaml:"meshes,omitempty"`
	Roots     []nodeJ        `json:"roots,omitempty" yaml:"roots,omitempty"`
}

type mediaClipJ struct {
	ID              string  `json:"id" yaml:"id"`
	Name            *string `json:"name,omitempty" yaml:"name,omitempty"`
	URI             string  `json:"uri" yaml:"uri"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
}

type trackMediaJ struct {
	TargetNodeID   string  `json:"target_node_id" yaml:"target_node_id"`
	ClipID         string  `json:"clip_id" yaml:"clip_id"`
	InSeconds      float64 `json:"in_seconds" yaml:"in_seconds"`
	OutSeconds     float64 `json:"out_seconds" yaml:"out_seconds"`
	StartAtSeconds float64 `json:"start_at_seconds" yaml:"start_at_seconds"`
}

type timelineTrackJ struct {
	Media *trackMediaJ `json:"media,omitempty" yaml:"media,omitempty"`
}

type timelineEventJ struct {
	T      float64           `json:"t" yaml:"t"`
	Action string            `json:"action" yaml:"action"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

type timelineJ struct {
	ID              string           `json:"id" yaml:"id"`
	Name            *string          `json:"name,omitempty" yaml:"name,omitempty"`
	Tracks          []timelineTrackJ `json:"tracks,omitempty" yaml:"tracks,omitempty"`
	Events          []timelineEventJ `json:"events,omitempty" yaml:"events,omitempty"`
	DurationSeconds float64          `json:"duration_seconds" yaml:"duration_seconds"`
}

type projectJ struct {
	ID       string       `json:"id" yaml:"id"`
	Name     *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Scene    sceneJ       `json:"scene" yaml:"scene"`
	Media    []mediaClipJ `json:"media,omitempty" yaml:"media,omitempty"`
	Timeline timelineJ    `json:"timeline" yaml:"timeline"`
}

type projectWrapperJ struct {
	Project projectJ `json:"project" yaml:"project"`
}

// ParseJSON parses an editor-facing JSON document and converts it to
// the wire Project message.
func ParseJSON(data []byte) (*controlpb.Project, error) {
	var w projectWrapperJ
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("projectjson: parse json: %w", err)
	}
	return toProtoProject(w.Project), nil
}

// ParseYAML parses the same document shape encoded as YAML.
func ParseYAML(data []byte) (*controlpb.Project, error) {
	var w projectWrapperJ
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("projectjson: parse yaml: %w", err)
	}
	return toProtoProject(w.Project), nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func f32(p *float32, def float32) float32 {
	if p == nil {
		return def
	}
	return *p
}

func toProtoVec3(v vec3J) *controlpb.Vec3 { return &controlpb.Vec3{X: v.X, Y: v.Y, Z: v.Z} }
func toProtoQuat(q quatJ) *controlpb.Quat { return &controlpb.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W} }

func toProtoTransform(t transformJ) *controlpb.Transform {
	return &controlpb.Transform{
		Position: toProtoVec3(t.Position),
		Rotation: toProtoQuat(t.Rotation),
		Scale:    toProtoVec3(t.Scale),
	}
}

func toProtoColor(c colorJ) *controlpb.ColorRGBA {
	return &controlpb.ColorRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toProtoColorPtr(c *colorJ) *controlpb.ColorRGBA {
	if c == nil {
		return nil
	}
	return toProtoColor(*c)
}

func toProtoMaterial(m materialPbrJ) *controlpb.MaterialPBR {
	return &controlpb.MaterialPBR{
		ID:        m.ID,
		Name:      str(m.Name),
		BaseColor: toProtoColorPtr(m.BaseColor),
		Metallic:  f32(m.Metallic, 0),
		Roughness: f32(m.Roughness, 1),
		Emissive:  toProtoColorPtr(m.Emissive),
	}
}

func toProtoMeshRef(m meshRefJ) *controlpb.MeshRef {
	return &controlpb.MeshRef{ID: m.ID, URI: m.URI, Node: str(m.Node)}
}

var lightKindByName = map[string]controlpb.LightKind{
	"DIRECTIONAL": controlpb.LightDirectional,
	"SPOT":        controlpb.LightSpot,
}

func toProtoNode(n nodeJ) *controlpb.Node {
	node := &controlpb.Node{
		ID:        n.ID,
		Name:      str(n.Name),
		Transform: toProtoTransform(n.Transform),
	}
	for _, c := range n.Children {
		node.Children = append(node.Children, toProtoNode(c))
	}
	switch {
	case n.Screen != nil:
		node.Screen = &controlpb.ScreenComponent{PixelsX: n.Screen.PixelsX, PixelsY: n.Screen.PixelsY}
	case n.Light != nil:
		node.Light = &controlpb.LightComponent{
			Kind:      lightKindByName[n.Light.Type],
			Color:     toProtoColor(n.Light.Color),
			Intensity: n.Light.Intensity,
			Range:     n.Light.Range,
			SpotAngle: f32(n.Light.SpotAngle, 0),
		}
	case n.Camera != nil:
		node.Camera = &controlpb.CameraComponent{FovDeg: n.Camera.FovDeg, Near: n.Camera.Near, Far: n.Camera.Far}
	case n.Mesh != nil:
		node.Mesh = &controlpb.MeshComponent{
			Mesh:       toProtoMeshRef(n.Mesh.Mesh),
			MaterialID: str(n.Mesh.MaterialID),
		}
	}
	return node
}

func toProtoScene(s sceneJ) *controlpb.Scene {
	scene := &controlpb.Scene{ID: s.ID, Name: str(s.Name)}
	for _, m := range s.Materials {
		scene.Materials = append(scene.Materials, toProtoMaterial(m))
	}
	for _, m := range s.Meshes {
		scene.Meshes = append(scene.Meshes, toProtoMeshRef(m))
	}
	for _, n := range s.Roots {
		scene.Roots = append(scene.Roots, toProtoNode(n))
	}
	return scene
}

func toProtoProject(p projectJ) *controlpb.Project {
	var media []*controlpb.MediaClip
	for _, m := range p.Media {
		media = append(media, &controlpb.MediaClip{
			ID:              m.ID,
			Name:            str(m.Name),
			URI:             m.URI,
			DurationSeconds: m.DurationSeconds,
		})
	}

	var tracks []*controlpb.TimelineTrack
	for _, t := range p.Timeline.Tracks {
		if t.Media == nil {
			continue
		}
		tracks = append(tracks, &controlpb.TimelineTrack{
			Media: &controlpb.TrackMedia{
				TargetNodeID:   t.Media.TargetNodeID,
				ClipID:         t.Media.ClipID,
				InSeconds:      t.Media.InSeconds,
				OutSeconds:     t.Media.OutSeconds,
				StartAtSeconds: t.Media.StartAtSeconds,
			},
		})
	}

	var events []*controlpb.TimelineEvent
	for _, e := range p.Timeline.Events {
		events = append(events, &controlpb.TimelineEvent{T: e.T, Action: e.Action, Params: e.Params})
	}

	return &controlpb.Project{
		ID:    p.ID,
		Name:  str(p.Name),
		Scene: toProtoScene(p.Scene),
		Media: media,
		Timeline: &controlpb.Timeline{
			ID:              p.Timeline.ID,
			Name:            str(p.Timeline.Name),
			Tracks:          tracks,
			Events:          events,
			DurationSeconds: p.Timeline.DurationSeconds,
		},
	}
}
