package core

// TextureFormat enumerates pixel layouts accepted by CreateTexture.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes a texture upload. Pixels are tightly packed rows,
// top-left origin. Filters are "nearest" or "linear"; wraps "clamp" or "repeat".
type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string
	WrapU, WrapV         string
}

// Texture is a GPU-resident image handle.
type Texture interface {
	ID() uint32
	Size() (w, h int)
}

// TextureCreator is the subset of the backend needed to create and release
// textures. A failed CreateTexture must not leak the GPU object.
type TextureCreator interface {
	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int32
	Attributes []VertexAttrib
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
	CullBackFaces  bool
}

// Pipeline is a compiled shader program plus fixed-function state.
type Pipeline interface {
	Release()
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Dynamic  bool
}

// Mesh is a GPU vertex/index buffer pair.
type Mesh interface {
	IndexCount() int
	Release()
}

// DrawCmd draws IndexCount indices of Mesh (all when zero). Uniform values may
// be float32, int32, [2]float32, [3]float32, [4]float32, [16]float32 (mat4) or
// [20]float32 (float array).
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}
