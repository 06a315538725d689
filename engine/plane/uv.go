package plane

import "github.com/hubastard/planar/engine/mesh"

// ScrollUV adds (du, dv) to every vertex UV. Faces are walked in order and a
// vertex shared by several faces moves once per call.
func (p *Plane) ScrollUV(du, dv float32) {
	p.eachVertex(func(v *mesh.Vertex) { v.ScrollUV(du, dv) })
}

// ScaleUV multiplies every vertex UV by (sx, sy), once per vertex.
func (p *Plane) ScaleUV(sx, sy float32) {
	p.eachVertex(func(v *mesh.Vertex) { v.ScaleUV(sx, sy) })
}

func (p *Plane) eachVertex(fn func(*mesh.Vertex)) {
	n := p.mesh.VertexCount()
	if cap(p.seen) < n {
		p.seen = make([]bool, n)
	}
	seen := p.seen[:n]
	clear(seen)
	for _, f := range p.mesh.Faces() {
		for i, idx := range f.Indices() {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			fn(f.Vertex(i))
		}
	}
	p.mesh.MarkDirty(mesh.DirtyVertices)
}
