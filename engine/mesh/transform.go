package mesh

import "github.com/go-gl/mathgl/mgl32"

// DirtyFlags names which derived quantity is stale.
type DirtyFlags uint8

const (
	DirtyModelPosition DirtyFlags = 1 << iota
	DirtyModelRotation
	DirtyModelScale
	DirtyViewPosition
	DirtyProjection
	DirtyVertices // vertex data changed; GPU copy must be re-uploaded
)

const dirtyTransform = DirtyModelPosition | DirtyModelRotation | DirtyModelScale | DirtyViewPosition | DirtyProjection

func (m *Mesh) Dirty() DirtyFlags            { return m.dirty }
func (m *Mesh) IsDirty(f DirtyFlags) bool    { return m.dirty&f != 0 }
func (m *Mesh) MarkDirty(f DirtyFlags)       { m.dirty |= f }
func (m *Mesh) Position() mgl32.Vec3         { return m.position }
func (m *Mesh) Rotation() mgl32.Vec3         { return m.rotation }
func (m *Mesh) Scale() mgl32.Vec3            { return m.scale }
func (m *Mesh) ViewPosition() mgl32.Vec3     { return m.viewPosition }
func (m *Mesh) FOV() float32                 { return m.fov }
func (m *Mesh) PerspectiveRatio() [2]float32 { return m.ratio }

func (m *Mesh) SetPosition(x, y, z float32) {
	m.position = mgl32.Vec3{x, y, z}
	m.dirty |= DirtyModelPosition
}

// SetRotation sets the model rotation in radians.
func (m *Mesh) SetRotation(x, y, z float32) {
	m.rotation = mgl32.Vec3{x, y, z}
	m.dirty |= DirtyModelRotation
}

func (m *Mesh) SetScale(x, y, z float32) {
	m.scale = mgl32.Vec3{x, y, z}
	m.dirty |= DirtyModelScale
}

// SetViewPosition places the virtual eye. Plane owns the z component through
// its sizing operations.
func (m *Mesh) SetViewPosition(x, y, z float32) {
	m.viewPosition = mgl32.Vec3{x, y, z}
	m.dirty |= DirtyViewPosition
}

// SetFOV stores the vertical field of view in degrees. No validation happens
// here; a degenerate value produces a degenerate projection.
func (m *Mesh) SetFOV(deg float32) {
	m.fov = deg
	m.dirty |= DirtyProjection
}

// SetPerspective stores the perspective ratio used to derive the projection
// aspect. It does not touch the view position.
func (m *Mesh) SetPerspective(ratioX, ratioY float32) {
	m.ratio = [2]float32{ratioX, ratioY}
	m.dirty |= DirtyProjection
}

// SetViewport sets the target surface size the projection aspect is based on.
func (m *Mesh) SetViewport(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	vp := [2]float32{float32(w), float32(h)}
	if vp != m.viewport {
		m.viewport = vp
		m.dirty |= DirtyProjection
	}
}

func (m *Mesh) SetClipPlanes(near, far float32) {
	m.near, m.far = near, far
	m.dirty |= DirtyProjection
}

// Aspect is viewport aspect scaled by the perspective ratio.
func (m *Mesh) Aspect() float32 {
	num := m.viewport[0] * m.ratio[0]
	den := m.viewport[1] * m.ratio[1]
	if den == 0 {
		return 1
	}
	return num / den
}

// Recompute rebuilds whichever matrices are stale and clears the transform
// flags. DirtyVertices is left for ConsumeVertexDirty. Reports whether
// anything was rebuilt.
func (m *Mesh) Recompute() bool {
	stale := m.dirty & dirtyTransform
	if stale == 0 {
		return false
	}
	if stale&(DirtyModelPosition|DirtyModelRotation|DirtyModelScale) != 0 {
		m.model = mgl32.Translate3D(m.position.X(), m.position.Y(), m.position.Z()).
			Mul4(mgl32.HomogRotate3DZ(m.rotation.Z())).
			Mul4(mgl32.HomogRotate3DY(m.rotation.Y())).
			Mul4(mgl32.HomogRotate3DX(m.rotation.X())).
			Mul4(mgl32.Scale3D(m.scale.X(), m.scale.Y(), m.scale.Z()))
	}
	if stale&DirtyViewPosition != 0 {
		m.view = mgl32.Translate3D(-m.viewPosition.X(), -m.viewPosition.Y(), -m.viewPosition.Z())
	}
	if stale&DirtyProjection != 0 {
		m.projection = mgl32.Perspective(mgl32.DegToRad(m.fov), m.Aspect(), m.near, m.far)
	}
	m.mvp = m.projection.Mul4(m.view).Mul4(m.model)
	m.dirty &^= dirtyTransform
	return true
}

// ConsumeVertexDirty reports and clears DirtyVertices.
func (m *Mesh) ConsumeVertexDirty() bool {
	d := m.dirty&DirtyVertices != 0
	m.dirty &^= DirtyVertices
	return d
}

func (m *Mesh) Model() mgl32.Mat4      { m.Recompute(); return m.model }
func (m *Mesh) View() mgl32.Mat4       { m.Recompute(); return m.view }
func (m *Mesh) Projection() mgl32.Mat4 { m.Recompute(); return m.projection }
func (m *Mesh) MVP() mgl32.Mat4        { m.Recompute(); return m.mvp }
