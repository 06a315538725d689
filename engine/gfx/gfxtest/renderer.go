package gfxtest

import (
	"maps"

	"github.com/hubastard/planar/engine/core"
)

// Pipeline is a fake compiled program.
type Pipeline struct {
	Desc     core.PipelineDesc
	Released bool
}

func (p *Pipeline) Release() { p.Released = true }

// Mesh keeps the last uploaded buffers.
type Mesh struct {
	Desc     core.MeshDesc
	Vertices []float32
	Indices  []uint32
	Updates  int
	Released bool
}

func (m *Mesh) IndexCount() int { return len(m.Indices) }
func (m *Mesh) Release()        { m.Released = true }

// Draw is a recorded draw call with its maps copied.
type Draw struct {
	Pipe       core.Pipeline
	Mesh       *Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]core.Texture
}

// Renderer is an in-memory core.Renderer recording everything it is asked to do.
type Renderer struct {
	*Backend

	Pipelines []*Pipeline
	Meshes    []*Mesh
	Draws     []Draw
	Viewport  [2]int
	Cleared   int
	Closed    bool
}

func NewRenderer() *Renderer { return &Renderer{Backend: NewBackend()} }

func (r *Renderer) Init() error              { return nil }
func (r *Renderer) Resize(w, h int)          { r.Viewport = [2]int{w, h} }
func (r *Renderer) Clear(_, _, _, _ float32) { r.Cleared++ }
func (r *Renderer) GPUVendor() string        { return "gfxtest" }
func (r *Renderer) GPURenderer() string      { return "gfxtest" }
func (r *Renderer) GPUVersion() string       { return "0" }
func (r *Renderer) Shutdown()                { r.Closed = true }

func (r *Renderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	p := &Pipeline{Desc: desc}
	r.Pipelines = append(r.Pipelines, p)
	return p, nil
}

func (r *Renderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m := &Mesh{
		Desc:     desc,
		Vertices: append([]float32(nil), desc.Vertices...),
		Indices:  append([]uint32(nil), desc.Indices...),
	}
	r.Meshes = append(r.Meshes, m)
	return m, nil
}

func (r *Renderer) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := cm.(*Mesh)
	if !ok {
		return core.ErrMissingResource
	}
	m.Vertices = append(m.Vertices[:0], vertices...)
	m.Indices = append(m.Indices[:0], indices...)
	m.Updates++
	return nil
}

func (r *Renderer) Draw(cmd core.DrawCmd) {
	m, _ := cmd.Mesh.(*Mesh)
	r.Draws = append(r.Draws, Draw{
		Pipe:       cmd.Pipe,
		Mesh:       m,
		IndexCount: cmd.IndexCount,
		Uniforms:   maps.Clone(cmd.Uniforms),
		Samplers:   maps.Clone(cmd.Samplers),
	})
}

var _ core.Renderer = (*Renderer)(nil)
