// Package meshrender uploads mesh geometry to the backend and draws it with
// the mesh's MVP, its texture and any FX uniforms.
package meshrender

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/fx"
	"github.com/hubastard/planar/engine/mesh"
	"github.com/hubastard/planar/engine/profiler"
)

// Vertex: pos3 + uv2 + color4 => 9 floats
const vStride = 9

var meshVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 3 * 4}, // uv
		{Location: 2, Size: 4, Type: core.AttribFloat32, Offset: 5 * 4}, // color
	},
}

// Drawable is anything carrying a mesh and a texture. If it also implements
// fx.Holder its active effects are sent with the draw.
type Drawable interface {
	Mesh() *mesh.Mesh
	TextureHandle() core.Texture
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls   int
	Uploads     int
	FaceCount   int
	CulledFaces int
	VertexCount int
	FXDraws     int // draws carrying active effects
}

type entry struct {
	gpu   core.Mesh
	verts []float32
	inds  []uint32
	faces int        // faces in the uploaded index buffer
	mvp   mgl32.Mat4 // transform the indices were culled with
}

// Renderer keeps one GPU mesh per drawn mesh.
type Renderer struct {
	r     core.Renderer
	pipe  core.Pipeline
	white core.Texture

	entries map[*mesh.Mesh]*entry

	uniforms      map[string]any
	samplers      map[string]core.Texture
	extraUniforms map[string]any

	viewportW, viewportH int
	stats                Statistics
}

// New compiles the pipeline. Empty sources select the built-in shaders.
func New(r core.Renderer, vertSrc, fragSrc string) (*Renderer, error) {
	if vertSrc == "" {
		vertSrc = DefaultVertexSource
	}
	if fragSrc == "" {
		fragSrc = DefaultFragmentSource
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      true,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}

	// 1x1 white for untextured meshes
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		pipe.Release()
		return nil, err
	}

	return &Renderer{
		r:         r,
		pipe:      pipe,
		white:     white,
		entries:   make(map[*mesh.Mesh]*entry),
		uniforms:  make(map[string]any, 8),
		samplers:  make(map[string]core.Texture, 2),
		viewportW: 1,
		viewportH: 1,
	}, nil
}

// Begin resets the frame statistics and records the viewport every drawn
// mesh is projected for.
func (rd *Renderer) Begin(viewportW, viewportH int) {
	rd.stats = Statistics{}
	rd.viewportW, rd.viewportH = viewportW, viewportH
}

// End finishes the frame. Draws are submitted immediately so there is nothing
// to flush.
func (rd *Renderer) End() {}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer) Stats() Statistics { return rd.stats }

// SetUniform queues an additional uniform to be sent on every draw call.
// The uniform persists until overwritten; call with nil to remove.
func (rd *Renderer) SetUniform(name string, value any) {
	if rd.extraUniforms == nil {
		rd.extraUniforms = make(map[string]any)
	}
	if value == nil {
		delete(rd.extraUniforms, name)
		return
	}
	rd.extraUniforms[name] = value
}

// Draw uploads d's mesh if its vertices changed and issues one draw call.
func (rd *Renderer) Draw(d Drawable) error {
	defer profiler.Start("meshrender.Draw")()

	m := d.Mesh()
	if m == nil || m.FaceCount() == 0 {
		return nil
	}
	m.SetViewport(rd.viewportW, rd.viewportH)
	mvp := m.MVP()

	e, err := rd.sync(m, mvp)
	if err != nil {
		return err
	}
	if e.faces == 0 {
		return nil
	}

	clear(rd.uniforms)
	clear(rd.samplers)
	rd.uniforms["uMVP"] = [16]float32(mvp)
	tex := d.TextureHandle()
	if tex == nil {
		tex = rd.white
	}
	rd.samplers["uTex"] = tex
	var mask int32
	if h, ok := d.(fx.Holder); ok {
		if set := h.FX(); set.Active() {
			set.Uniforms(rd.uniforms)
			set.Samplers(rd.samplers)
			mask = set.Mask()
			rd.stats.FXDraws++
		}
	}
	rd.uniforms["uFXMask"] = mask
	for k, v := range rd.extraUniforms {
		rd.uniforms[k] = v
	}

	rd.r.Draw(core.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       e.gpu,
		IndexCount: e.faces * 3,
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++
	rd.stats.FaceCount += e.faces
	rd.stats.VertexCount += m.VertexCount()
	return nil
}

// sync rebuilds the vertex stream when the mesh reports dirty vertices and
// the index stream when vertices or, with HideCCW, the transform changed.
func (rd *Renderer) sync(m *mesh.Mesh, mvp mgl32.Mat4) (*entry, error) {
	e := rd.entries[m]
	vertsDirty := m.ConsumeVertexDirty()
	if e != nil && !vertsDirty && (!m.HideCCW || e.mvp == mvp) {
		rd.stats.CulledFaces += m.FaceCount() - e.faces
		return e, nil
	}
	if e == nil {
		e = &entry{}
	}
	if vertsDirty || e.gpu == nil {
		e.verts = Pack(e.verts[:0], m)
	}
	e.inds, e.faces = Indices(e.inds[:0], m, mvp)
	e.mvp = mvp
	rd.stats.CulledFaces += m.FaceCount() - e.faces

	if e.gpu == nil {
		gm, err := rd.r.CreateMesh(core.MeshDesc{
			Vertices: e.verts,
			Indices:  e.inds,
			Layout:   meshVertexLayout,
			Dynamic:  true,
		})
		if err != nil {
			return nil, err
		}
		e.gpu = gm
		rd.entries[m] = e
	} else if err := rd.r.UpdateMesh(e.gpu, e.verts, e.inds); err != nil {
		return nil, err
	}
	rd.stats.Uploads++
	return e, nil
}

// Forget releases the GPU buffers held for m.
func (rd *Renderer) Forget(m *mesh.Mesh) {
	if e, ok := rd.entries[m]; ok {
		e.gpu.Release()
		delete(rd.entries, m)
	}
}

// Destroy releases every GPU object owned by the renderer.
func (rd *Renderer) Destroy() {
	for m := range rd.entries {
		rd.Forget(m)
	}
	rd.r.DeleteTexture(rd.white)
	rd.pipe.Release()
}
