// Package gpu defines the abstract GPU surface this server renders
// through. No concrete graphics backend is implemented here — a real
// deployment supplies a Device/Surface pair (e.g. a wgpu or Vulkan
// binding); NullDevice in this package is the in-process stand-in used
// by tests and by any headless deployment of the frame loop.
package gpu

// Texture is an opaque handle to an uploaded GPU texture.
type Texture interface {
	// ID is a stable identifier used only for logging/debugging.
	ID() string
}

// Device creates GPU resources. Implementations own the underlying
// graphics context.
type Device interface {
	// CreateTexture uploads width*height RGBA8 pixels and returns a
	// handle to the resulting texture.
	CreateTexture(width, height uint32, rgba []byte) (Texture, error)
	// Close releases any device-level resources.
	Close() error
}

// InstanceDraw is one textured quad to draw this frame.
type InstanceDraw struct {
	Model   [4][4]float32
	Texture Texture
}

// Frame is a single acquired swapchain image, ready to record draws
// into and present.
type Frame interface {
	// SetCamera uploads the frame's view-projection matrix.
	SetCamera(viewProjection [4][4]float32)
	// DrawInstances submits the instance buffer for this frame. The
	// caller is responsible for growing its own CPU-side buffer; this
	// method only describes what the GPU-side instance buffer must
	// hold at least `len(instances)` entries of.
	DrawInstances(instances []InstanceDraw)
	// Present submits recorded commands and displays the frame.
	Present()
}

// Surface is a resizable render target backed by a Device.
type Surface interface {
	// Configure (re)configures the surface to width x height. Callers
	// must clamp to at least 1x1 before calling.
	Configure(width, height uint32)
	// AcquireFrame returns the next frame to draw into. A non-nil
	// error signals the surface needs reconfiguring before the next
	// attempt (matching the teacher's reconfigure-and-skip recovery
	// path for a transient acquire failure).
	AcquireFrame() (Frame, error)
}
