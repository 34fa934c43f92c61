// Package scene flattens a project's scene graph into a flat list of
// renderable screen instances, each carrying its accumulated
// model-space-to-world matrix.
package scene

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/kitonae/constellation/internal/controlpb"
)

// InstanceData is one flattened, renderable screen instance.
type InstanceData struct {
	Model  [4][4]float32
	NodeID string
}

// Identity is the 4x4 identity matrix in the [row][col] [4][4]float32
// layout InstanceData.Model uses: Model[r][c] is row r, column c, so a
// translation sits in Model[0][3], Model[1][3] and Model[2][3]. The
// layout is row-major, not column-major.
func Identity() [4][4]float32 {
	var m [4][4]float32
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// FromProject traverses the project's scene roots depth-first and
// returns one InstanceData per node carrying a Screen component.
// Nodes with no Screen component (Light, Camera, Mesh, or bare
// transform nodes) contribute no instance but their transform still
// composes into their children's world matrix.
func FromProject(p *controlpb.Project) []InstanceData {
	var out []InstanceData
	if p == nil || p.Scene == nil {
		return out
	}
	ident := mat.NewDense(4, 4, identitySlice())
	for _, n := range p.Scene.Roots {
		collect(n, ident, &out)
	}
	return out
}

func collect(node *controlpb.Node, parent *mat.Dense, out *[]InstanceData) {
	if node == nil {
		return
	}
	local := localMatrix(node.Transform)
	world := mat.NewDense(4, 4, nil)
	world.Mul(parent, local)

	if node.Screen != nil {
		*out = append(*out, InstanceData{
			Model:  toArray(world),
			NodeID: node.ID,
		})
	}
	for _, c := range node.Children {
		collect(c, world, out)
	}
}

// localMatrix builds the scale -> rotate -> translate homogeneous
// matrix for a node's transform. Nil sub-fields default to identity
// scale/rotation and zero translation.
func localMatrix(t *controlpb.Transform) *mat.Dense {
	sx, sy, sz := float64(1), float64(1), float64(1)
	qx, qy, qz, qw := float64(0), float64(0), float64(0), float64(1)
	px, py, pz := float64(0), float64(0), float64(0)

	if t != nil {
		if t.Scale != nil {
			sx, sy, sz = float64(t.Scale.X), float64(t.Scale.Y), float64(t.Scale.Z)
		}
		if t.Rotation != nil {
			qx, qy, qz, qw = float64(t.Rotation.X), float64(t.Rotation.Y), float64(t.Rotation.Z), float64(t.Rotation.W)
		}
		if t.Position != nil {
			px, py, pz = float64(t.Position.X), float64(t.Position.Y), float64(t.Position.Z)
		}
	}

	scale := mat.NewDense(4, 4, []float64{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	})

	rot := rotationMatrix(quat.Number{Imag: qx, Jmag: qy, Kmag: qz, Real: qw})

	trans := mat.NewDense(4, 4, []float64{
		1, 0, 0, px,
		0, 1, 0, py,
		0, 0, 1, pz,
		0, 0, 0, 1,
	})

	// TRS: translate * rotate * scale, applied to a column vector.
	rs := mat.NewDense(4, 4, nil)
	rs.Mul(rot, scale)
	trs := mat.NewDense(4, 4, nil)
	trs.Mul(trans, rs)
	return trs
}

// rotationMatrix builds a 4x4 homogeneous rotation matrix from a unit
// quaternion. gonum's num/quat package has no built-in conversion, so
// this uses the standard quaternion-to-matrix formula directly.
func rotationMatrix(q quat.Number) *mat.Dense {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	n := x*x + y*y + z*z + w*w
	if n == 0 {
		return mat.NewDense(4, 4, identitySlice())
	}
	s := 2 / n
	xx, yy, zz := x*x*s, y*y*s, z*z*s
	xy, xz, yz := x*y*s, x*z*s, y*z*s
	wx, wy, wz := w*x*s, w*y*s, w*z*s

	return mat.NewDense(4, 4, []float64{
		1 - (yy + zz), xy - wz, xz + wy, 0,
		xy + wz, 1 - (xx + zz), yz - wx, 0,
		xz - wy, yz + wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	})
}

func identitySlice() []float64 {
	return []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
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
