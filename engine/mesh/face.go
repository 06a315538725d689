package mesh

import "github.com/go-gl/mathgl/mgl32"

// Face is one triangle of the mesh. It references three vertices of the owning
// mesh by index and owns no vertex data.
type Face struct {
	index [3]int
	verts [3]*Vertex
}

// Indices returns the vertex indices in winding order.
func (f *Face) Indices() [3]int { return f.index }

// Vertex returns the i-th corner (0..2).
func (f *Face) Vertex(i int) *Vertex { return f.verts[i] }

// ScrollUV offsets the UV of each corner. Vertices shared with other faces are
// moved too; callers wanting one move per vertex should dedupe by index.
func (f *Face) ScrollUV(du, dv float32) {
	for _, v := range f.verts {
		v.ScrollUV(du, dv)
	}
}

// ScaleUV multiplies the UV of each corner. Same sharing caveat as ScrollUV.
func (f *Face) ScaleUV(sx, sy float32) {
	for _, v := range f.verts {
		v.ScaleUV(sx, sy)
	}
}

// Area is twice the signed object-space area in the XY plane.
// Positive means counter-clockwise.
func (f *Face) Area() float32 {
	a, b, c := f.verts[0], f.verts[1], f.verts[2]
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (f *Face) IsCounterClockwise() bool { return f.Area() > 0 }

// ProjectedArea is Area after projecting the corners by mvp into NDC.
// Corners behind the eye (w <= 0) yield 0.
func (f *Face) ProjectedArea(mvp mgl32.Mat4) float32 {
	var p [3]mgl32.Vec2
	for i, v := range f.verts {
		clip := mvp.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
		if clip.W() <= 0 {
			return 0
		}
		p[i] = mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
	}
	return (p[1].X()-p[0].X())*(p[2].Y()-p[0].Y()) - (p[1].Y()-p[0].Y())*(p[2].X()-p[0].X())
}

// Centroid is the object-space average of the three corners.
func (f *Face) Centroid() mgl32.Vec3 {
	var c mgl32.Vec3
	for _, v := range f.verts {
		c = c.Add(mgl32.Vec3{v.X, v.Y, v.Z})
	}
	return c.Mul(1.0 / 3)
}
