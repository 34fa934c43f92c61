// Package controlpb defines the wire messages and DisplayControl
// service for the display server's control surface. It plays the role
// a protoc-gen-go/protoc-gen-go-grpc output package would normally
// play, but is hand-written: see codec.go for why.
package controlpb

// Vec3 is a 32-bit float 3-tuple.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quat is a 32-bit float quaternion, (x, y, z, w).
type Quat struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat { return Quat{W: 1} }

// ColorRGBA is a 32-bit float RGBA color.
type ColorRGBA struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Transform is a position/rotation/scale triple. Nil sub-fields on the
// wire default to identity when converted (see localMatrix in
// package scene).
type Transform struct {
	Position *Vec3 `json:"position,omitempty"`
	Rotation *Quat `json:"rotation,omitempty"`
	Scale    *Vec3 `json:"scale,omitempty"`
}

// LightKind enumerates the supported light types.
type LightKind int32

const (
	LightPoint       LightKind = 0
	LightDirectional LightKind = 1
	LightSpot        LightKind = 2
)

// ScreenComponent marks a node as a renderable media screen.
type ScreenComponent struct {
	PixelsX int32 `json:"pixels_x"`
	PixelsY int32 `json:"pixels_y"`
}

// LightComponent marks a node as a light source. Accepted but ignored
// by the render loop in this core.
type LightComponent struct {
	Kind      LightKind  `json:"kind"`
	Color     *ColorRGBA `json:"color,omitempty"`
	Intensity float32    `json:"intensity"`
	Range     float32    `json:"range"`
	SpotAngle float32    `json:"spot_angle"`
}

// CameraComponent marks a node as a camera. Accepted but ignored by the
// render loop in this core (the frame loop uses a fixed camera).
type CameraComponent struct {
	FovDeg float32 `json:"fov_deg"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

// MeshRef identifies a mesh asset.
type MeshRef struct {
	ID   string `json:"id"`
	URI  string `json:"uri"`
	Node string `json:"node,omitempty"`
}

// MeshComponent marks a node as a static mesh instance. Accepted but
// ignored by the render loop in this core.
type MeshComponent struct {
	Mesh       *MeshRef `json:"mesh,omitempty"`
	MaterialID string   `json:"material_id,omitempty"`
}

// MaterialPBR describes a physically-based material. Carried for
// forward compatibility with the editor's Scene document; unused by
// the core renderer.
type MaterialPBR struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	BaseColor    *ColorRGBA `json:"base_color,omitempty"`
	BaseColorTex string     `json:"base_color_tex,omitempty"`
	Metallic     float32    `json:"metallic"`
	Roughness    float32    `json:"roughness"`
	MRTex        string     `json:"mr_tex,omitempty"`
	Emissive     *ColorRGBA `json:"emissive,omitempty"`
	EmissiveTex  string     `json:"emissive_tex,omitempty"`
}

// Node is a scene graph node. At most one of Screen, Light, Camera, or
// Mesh may be set; a node with none of them is a bare transform node. Ids are unique within a
// project and the graph is a tree (enforced by construction, not by
// this type).
type Node struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Transform *Transform `json:"transform,omitempty"`
	Children  []*Node    `json:"children,omitempty"`

	Screen *ScreenComponent `json:"screen,omitempty"`
	Light  *LightComponent  `json:"light,omitempty"`
	Camera *CameraComponent `json:"camera,omitempty"`
	Mesh   *MeshComponent   `json:"mesh,omitempty"`
}

// Scene is the static geometry/material graph of a project.
type Scene struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Materials []*MaterialPBR `json:"materials,omitempty"`
	Meshes    []*MeshRef     `json:"meshes,omitempty"`
	Roots     []*Node        `json:"roots,omitempty"`
}

// MediaClip is a playable media asset.
type MediaClip struct {
	ID              string  `json:"id"`
	Name            string  `json:"name,omitempty"`
	URI             string  `json:"uri"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// TrackMedia binds a MediaClip to a target node for a time window.
type TrackMedia struct {
	TargetNodeID   string  `json:"target_node_id"`
	ClipID         string  `json:"clip_id"`
	InSeconds      float64 `json:"in_seconds"`
	OutSeconds     float64 `json:"out_seconds"`
	StartAtSeconds float64 `json:"start_at_seconds"`
}

// TimelineTrack is a single track entry. Only the Media variant is
// meaningful in this core; other kinds are reserved.
type TimelineTrack struct {
	Media *TrackMedia `json:"media,omitempty"`
}

// TimelineEvent is reserved for future use in the core spec.
type TimelineEvent struct {
	T      float64           `json:"t"`
	Action string            `json:"action,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}

// Timeline is an ordered sequence of tracks and events.
type Timeline struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	Tracks          []*TimelineTrack `json:"tracks,omitempty"`
	Events          []*TimelineEvent `json:"events,omitempty"`
	DurationSeconds float64          `json:"duration_seconds"`
}

// Project is the top-level, immutable-after-load document.
type Project struct {
	ID       string       `json:"id"`
	Name     string       `json:"name,omitempty"`
	Scene    *Scene       `json:"scene,omitempty"`
	Media    []*MediaClip `json:"media,omitempty"`
	Timeline *Timeline    `json:"timeline,omitempty"`
}

// Ack is the canonical response shape for mutating RPCs.
type Ack struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// TransportState mirrors transport.Snapshot over the wire.
type TransportState struct {
	Status      int32   `json:"status"`
	TimeSeconds float64 `json:"time_seconds"`
	Rate        float64 `json:"rate"`
}

// Metrics carries frame accounting data.
type Metrics struct {
	FPS           float64 `json:"fps"`
	DroppedFrames float64 `json:"dropped_frames"`
}

// StateUpdate is the snapshot broadcast by the State Hub.
type StateUpdate struct {
	Transport *TransportState `json:"transport,omitempty"`
	Metrics   *Metrics        `json:"metrics,omitempty"`
}

// Request/response messages, one per RPC.

type LoadProjectRequest struct {
	Project *Project `json:"project,omitempty"`
}

type LoadSceneRequest struct {
	Scene *Scene `json:"scene,omitempty"`
}

type ActivateTimelineRequest struct {
	TimelineID string `json:"timeline_id"`
}

type PlayRequest struct {
	AtSeconds float64 `json:"at_seconds"`
}

type PauseRequest struct{}

type StopRequest struct{}

type SeekRequest struct {
	ToSeconds float64 `json:"to_seconds"`
}

type SetRateRequest struct {
	Rate float64 `json:"rate"`
}

type SubscribeRequest struct {
	IncludeMetrics bool `json:"include_metrics"`
}
