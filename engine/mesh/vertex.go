package mesh

import "github.com/hubastard/planar/engine/colors"

// Vertex is a single mesh vertex in object space. Identity is its index in the
// owning Mesh's vertex slice.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
	Color   colors.Color
}

func (v *Vertex) ScrollUV(du, dv float32) {
	v.U += du
	v.V += dv
}

func (v *Vertex) ScaleUV(sx, sy float32) {
	v.U *= sx
	v.V *= sy
}

func (v *Vertex) SetUV(u, vv float32) {
	v.U, v.V = u, vv
}
