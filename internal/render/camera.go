// Package render drives the per-frame loop: resolve camera,
// flattened instances, and active clip textures, then submit a draw
// through the abstract gpu.Device/Surface pair.
package render

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Camera is the server's fixed viewpoint. The display server has no
// concept of client-controlled camera nodes (Camera scene components
// are parsed but ignored) — every frame uses this single viewpoint.
type Camera struct {
	Eye, Target, Up [3]float32
	FovDeg          float32
	Near, Far       float32
}

// DefaultCamera matches original_source/display/src/render.rs exactly:
// eye (6,4,10), target (0,2,0), up +Y, 45 degree vertical fov, near
// 0.1, far 1000, right-handed OpenGL-convention perspective.
func DefaultCamera() Camera {
	return Camera{
		Eye:    [3]float32{6, 4, 10},
		Target: [3]float32{0, 2, 0},
		Up:     [3]float32{0, 1, 0},
		FovDeg: 45,
		Near:   0.1,
		Far:    1000,
	}
}

// ViewProjection computes proj * view for the given aspect ratio
// (width/height, clamped away from zero by the caller).
func (c Camera) ViewProjection(aspect float32) [4][4]float32 {
	view := lookAtRH(c.Eye, c.Target, c.Up)
	proj := perspectiveRHGL(float64(c.FovDeg)*math.Pi/180, float64(aspect), float64(c.Near), float64(c.Far))
	vp := mat.NewDense(4, 4, nil)
	vp.Mul(proj, view)
	return toArray(vp)
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func normalize(v [3]float32) [3]float32 {
	n := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if n == 0 {
		return v
	}
	return [3]float32{v[0] / n, v[1] / n, v[2] / n}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// lookAtRH builds a right-handed view matrix, matching glam's
// Mat4::look_at_rh.
func lookAtRH(eye, target, up [3]float32) *mat.Dense {
	f := normalize(sub(target, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)

	return mat.NewDense(4, 4, []float64{
		float64(s[0]), float64(s[1]), float64(s[2]), float64(-dot(s, eye)),
		float64(u[0]), float64(u[1]), float64(u[2]), float64(-dot(u, eye)),
		float64(-f[0]), float64(-f[1]), float64(-f[2]), float64(dot(f, eye)),
		0, 0, 0, 1,
	})
}

// perspectiveRHGL builds a right-handed, OpenGL NDC-convention (z in
// [-1,1]) perspective matrix, matching glam's
// Mat4::perspective_rh_gl.
func perspectiveRHGL(fovYRadians, aspect, near, far float64) *mat.Dense {
	f := 1 / math.Tan(fovYRadians/2)
	nf := 1 / (near - far)
	return mat.NewDense(4, 4, []float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	})
}

func toArray(m *mat.Dense) [4][4]float32 {
	var out [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = float32(m.At(i, j))
		}
	}
	return out
}
