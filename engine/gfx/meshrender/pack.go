package meshrender

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/planar/engine/mesh"
)

// Pack appends m's vertices to dst as pos3 uv2 color4.
func Pack(dst []float32, m *mesh.Mesh) []float32 {
	for _, v := range m.Vertices() {
		dst = append(dst,
			v.X, v.Y, v.Z,
			v.U, v.V,
			v.Color[0], v.Color[1], v.Color[2], v.Color[3],
		)
	}
	return dst
}

// Indices appends the index triples of m's faces in order. With HideCCW set,
// faces that wind counter-clockwise on screen under mvp (negative NDC area,
// since NDC is y up) are left out. Returns the faces written.
func Indices(dst []uint32, m *mesh.Mesh, mvp mgl32.Mat4) ([]uint32, int) {
	n := 0
	for _, f := range m.Faces() {
		if m.HideCCW && f.ProjectedArea(mvp) < 0 {
			continue
		}
		idx := f.Indices()
		dst = append(dst, uint32(idx[0]), uint32(idx[1]), uint32(idx[2]))
		n++
	}
	return dst, n
}
