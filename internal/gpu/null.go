package gpu

import "fmt"

// NullDevice is a headless Device that records what was asked of it
// instead of touching real graphics hardware. It backs tests and any
// deployment of the frame loop that runs without a display.
type NullDevice struct {
	nextID    int
	Created   []NullTexture
	CloseErr  error
	closeCall int
}

// NullTexture is the Texture handle NullDevice hands back.
type NullTexture struct {
	id            string
	Width, Height uint32
}

// ID implements Texture.
func (t NullTexture) ID() string { return t.id }

// NewNullDevice returns a ready-to-use NullDevice.
func NewNullDevice() *NullDevice { return &NullDevice{} }

// CreateTexture implements Device.
func (d *NullDevice) CreateTexture(width, height uint32, rgba []byte) (Texture, error) {
	if uint32(len(rgba)) < width*height*4 {
		return nil, fmt.Errorf("gpu: short pixel buffer for %dx%d texture", width, height)
	}
	d.nextID++
	t := NullTexture{id: fmt.Sprintf("tex-%d", d.nextID), Width: width, Height: height}
	d.Created = append(d.Created, t)
	return t, nil
}

// Close implements Device.
func (d *NullDevice) Close() error {
	d.closeCall++
	return d.CloseErr
}

// NullSurface is a headless Surface that records configured
// dimensions. Acquisition succeeds unless AcquireErr is set, in which
// case AcquireFrame returns that error.
type NullSurface struct {
	Width, Height uint32
	Frames        []*NullFrame
	AcquireErr    error
}

// NewNullSurface returns a NullSurface configured to 1x1.
func NewNullSurface() *NullSurface {
	return &NullSurface{Width: 1, Height: 1}
}

// Configure implements Surface.
func (s *NullSurface) Configure(width, height uint32) {
	s.Width, s.Height = width, height
}

// AcquireFrame implements Surface.
func (s *NullSurface) AcquireFrame() (Frame, error) {
	if s.AcquireErr != nil {
		return nil, s.AcquireErr
	}
	f := &NullFrame{}
	s.Frames = append(s.Frames, f)
	return f, nil
}

// NullFrame records the calls made against it for assertions in tests.
type NullFrame struct {
	Camera    [4][4]float32
	Instances []InstanceDraw
	Presented bool
}

// SetCamera implements Frame.
func (f *NullFrame) SetCamera(viewProjection [4][4]float32) { f.Camera = viewProjection }

// DrawInstances implements Frame.
func (f *NullFrame) DrawInstances(instances []InstanceDraw) { f.Instances = instances }

// Present implements Frame.
func (f *NullFrame) Present() { f.Presented = true }
