package glbackend

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/planar/engine/core"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context. It must
// be created and used on the thread that owns the context.
type RendererGL struct {
	win   core.Window
	ready bool

	vendor, renderer, version string

	// last bound pipeline, to skip redundant state changes
	current *glPipeline
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	r.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.version = gl.GoStr(gl.GetString(gl.VERSION))
	log.Printf("GL renderer: %s (%s)", r.renderer, r.vendor)

	gl.Enable(gl.DEPTH_TEST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	r.ready = true
	return nil
}

func (r *RendererGL) Shutdown() {
	if r == nil {
		return
	}
	r.ready = false
	r.current = nil
}

func (r *RendererGL) GPUVendor() string   { return r.vendor }
func (r *RendererGL) GPURenderer() string { return r.renderer }
func (r *RendererGL) GPUVersion() string  { return r.version }

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// --- Textures ---

type glTexture struct {
	id   uint32
	w, h int
}

func (t *glTexture) ID() uint32       { return t.id }
func (t *glTexture) Size() (w, h int) { return t.w, t.h }

// CreateTexture uploads desc as an RGBA8 texture. The GL name is deleted
// again if anything fails after it was generated.
func (r *RendererGL) CreateTexture(desc core.TextureDesc) (_ core.Texture, err error) {
	if r == nil || !r.ready {
		return nil, core.ErrBackendUnavailable
	}
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("%w: texture format %d", core.ErrInvalidConfiguration, desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) < desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("%w: texture %dx%d with %d bytes", core.ErrInvalidConfiguration, desc.Width, desc.Height, len(desc.Pixels))
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("%w: glGenTextures returned 0", core.ErrBackendUnavailable)
	}
	defer func() {
		if err != nil {
			gl.DeleteTextures(1, &id)
		}
	}()

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("upload texture %dx%d: gl error 0x%x", desc.Width, desc.Height, code)
	}
	return &glTexture{id: id, w: desc.Width, h: desc.Height}, nil
}

func (r *RendererGL) DeleteTexture(t core.Texture) {
	gt, ok := t.(*glTexture)
	if !ok || gt == nil || gt.id == 0 {
		return
	}
	gl.DeleteTextures(1, &gt.id)
	gt.id = 0
}

func filterMode(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- Pipelines ---

type glPipeline struct {
	program  uint32
	desc     core.PipelineDesc
	uniforms map[string]int32
}

func (p *glPipeline) Release() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

func (p *glPipeline) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	if r == nil || !r.ready {
		return nil, core.ErrBackendUnavailable
	}
	prog, err := makeProgram(terminated(desc.VertexSource), terminated(desc.FragmentSource))
	if err != nil {
		return nil, err
	}
	return &glPipeline{program: prog, desc: desc, uniforms: make(map[string]int32)}, nil
}

func terminated(src string) string {
	if len(src) > 0 && src[len(src)-1] == 0 {
		return src
	}
	return src + "\x00"
}

// --- Meshes ---

type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int
	vertCap       int // floats
	indexCap      int
	usage         uint32
}

func (m *glMesh) IndexCount() int { return m.indexCount }

func (m *glMesh) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = glMesh{}
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if r == nil || !r.ready {
		return nil, core.ErrBackendUnavailable
	}
	if desc.Layout.Stride <= 0 || len(desc.Layout.Attributes) == 0 {
		return nil, fmt.Errorf("%w: empty vertex layout", core.ErrInvalidConfiguration)
	}

	m := &glMesh{usage: gl.STATIC_DRAW}
	if desc.Dynamic {
		m.usage = gl.DYNAMIC_DRAW
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	bufferFloats(gl.ARRAY_BUFFER, desc.Vertices, m.usage)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	bufferIndices(desc.Indices, m.usage)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, attribType(a.Type), false, desc.Layout.Stride, unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.indexCount = len(desc.Indices)
	m.vertCap = len(desc.Vertices)
	m.indexCap = len(desc.Indices)
	if code := gl.GetError(); code != gl.NO_ERROR {
		m.Release()
		return nil, fmt.Errorf("create mesh: gl error 0x%x", code)
	}
	return m, nil
}

// UpdateMesh replaces the mesh contents, growing the buffers when needed.
func (r *RendererGL) UpdateMesh(cm core.Mesh, vertices []float32, indices []uint32) error {
	if r == nil || !r.ready {
		return core.ErrBackendUnavailable
	}
	m, ok := cm.(*glMesh)
	if !ok || m == nil || m.vao == 0 {
		return fmt.Errorf("%w: mesh not created by this backend", core.ErrMissingResource)
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.vertCap {
		bufferFloats(gl.ARRAY_BUFFER, vertices, m.usage)
		m.vertCap = len(vertices)
	} else if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	if len(indices) > m.indexCap {
		bufferIndices(indices, m.usage)
		m.indexCap = len(indices)
	} else if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.indexCount = len(indices)
	return nil
}

func bufferFloats(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func bufferIndices(data []uint32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, usage)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

// attribType maps layout types; only float32 exists so far.
func attribType(core.AttribType) uint32 { return gl.FLOAT }

// --- Draw ---

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	if r == nil || !r.ready {
		return
	}
	p, ok := cmd.Pipe.(*glPipeline)
	if !ok || p.program == 0 {
		return
	}
	m, ok := cmd.Mesh.(*glMesh)
	if !ok || m.vao == 0 {
		return
	}
	count := cmd.IndexCount
	if count <= 0 || count > m.indexCount {
		count = m.indexCount
	}
	if count == 0 {
		return
	}

	r.bind(p)

	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}
	unit := int32(0)
	for name, t := range cmd.Samplers {
		if t == nil {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.ID())
		gl.Uniform1i(p.location(name), unit)
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *RendererGL) bind(p *glPipeline) {
	if r.current == p {
		return
	}
	r.current = p
	gl.UseProgram(p.program)

	if p.desc.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.desc.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
	if p.desc.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case float32:
		gl.Uniform1f(loc, x)
	case int32:
		gl.Uniform1i(loc, x)
	case [2]float32:
		gl.Uniform2f(loc, x[0], x[1])
	case [3]float32:
		gl.Uniform3f(loc, x[0], x[1], x[2])
	case [4]float32:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &x[0])
	case [20]float32:
		gl.Uniform1fv(loc, 20, &x[0])
	default:
		log.Printf("glbackend: unsupported uniform type %T", v)
	}
}
