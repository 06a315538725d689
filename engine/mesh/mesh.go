package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/planar/engine/core"
)

// Mesh stores vertices and the faces built over them, plus the transform
// state used to place them in view. Not safe for concurrent use.
type Mesh struct {
	vertices []Vertex
	faces    []*Face

	// HideCCW skips faces that wind counter-clockwise on screen (y down),
	// which are the back faces of a grid built counter-clockwise in y-up
	// object space.
	HideCCW bool

	position     mgl32.Vec3
	rotation     mgl32.Vec3 // radians, applied X then Y then Z
	scale        mgl32.Vec3
	viewPosition mgl32.Vec3
	fov          float32 // degrees
	ratio        [2]float32
	viewport     [2]float32
	near, far    float32
	dirty        DirtyFlags
	model, view  mgl32.Mat4
	projection   mgl32.Mat4
	mvp          mgl32.Mat4
}

const (
	DefaultFOV  = 45
	DefaultNear = 0.01
	DefaultFar  = 1000
)

func New() *Mesh {
	return &Mesh{
		scale:    mgl32.Vec3{1, 1, 1},
		fov:      DefaultFOV,
		ratio:    [2]float32{1, 1},
		viewport: [2]float32{1, 1},
		near:     DefaultNear,
		far:      DefaultFar,
		dirty:    dirtyTransform | DirtyVertices,
	}
}

// SetGeometry replaces both vertex and face collections. Triangles index into
// vertices. On error the mesh is left unchanged.
func (m *Mesh) SetGeometry(vertices []Vertex, triangles [][3]int) error {
	for i, tri := range triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(vertices) {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", core.ErrInvalidConfiguration, i, idx, len(vertices))
			}
		}
	}

	verts := make([]Vertex, len(vertices))
	copy(verts, vertices)
	faces := make([]*Face, len(triangles))
	for i, tri := range triangles {
		faces[i] = &Face{
			index: tri,
			verts: [3]*Vertex{&verts[tri[0]], &verts[tri[1]], &verts[tri[2]]},
		}
	}

	m.vertices = verts
	m.faces = faces
	m.dirty |= DirtyVertices
	return nil
}

// Vertices exposes the vertex storage. Mutating entries is allowed; call
// MarkDirty(DirtyVertices) afterwards.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Faces returns faces in generation order.
func (m *Mesh) Faces() []*Face { return m.faces }

func (m *Mesh) VertexCount() int { return len(m.vertices) }
func (m *Mesh) FaceCount() int   { return len(m.faces) }

// Clear drops all geometry.
func (m *Mesh) Clear() {
	m.vertices = nil
	m.faces = nil
	m.dirty |= DirtyVertices
}
