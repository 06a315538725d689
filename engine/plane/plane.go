// Package plane implements a textured quad grid that sizes itself like a
// sprite under a perspective projection.
package plane

import (
	"fmt"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/fx"
	"github.com/hubastard/planar/engine/mesh"
	"github.com/hubastard/planar/engine/textures"
)

// Config for New. Zero values pick defaults.
type Config struct {
	Grid GridConfig

	// FOV in degrees; zero means mesh.DefaultFOV.
	FOV float32

	// Display size in pixels; zero means the frame size.
	Width, Height float32
}

// Plane owns a mesh whose depth is derived from the display height and FOV.
// The view z of its mesh is written only by SetHeight, ResetHeight, SetFOV,
// SetSize and SetTexture. Not safe for concurrent use; regenerate between frames.
type Plane struct {
	mesh    *mesh.Mesh
	effects fx.Set
	texture *textures.Texture
	frame   *textures.Frame
	gridCfg GridConfig
	grid    Grid

	width, height float32 // display size
	desired       float32 // last desired on-screen height

	seen []bool // scratch for UV transforms
}

// New builds the grid from frame, sizes the plane to the frame and computes
// the initial depth.
func New(frame *textures.Frame, cfg Config) (*Plane, error) {
	if !frame.Valid() {
		return nil, fmt.Errorf("%w: plane needs a texture frame", core.ErrMissingResource)
	}
	fov := cfg.FOV
	if fov == 0 {
		fov = mesh.DefaultFOV
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = float32(frame.Width)
	}
	if h == 0 {
		h = float32(frame.Height)
	}
	// validate everything before touching any state
	if _, err := Depth(h, float32(frame.Height), fov); err != nil {
		return nil, err
	}
	if !positive(w) {
		return nil, fmt.Errorf("%w: width %v", core.ErrInvalidConfiguration, w)
	}

	m := mesh.New()
	grid, err := GenerateGrid(m, frame, cfg.Grid)
	if err != nil {
		return nil, err
	}
	m.SetFOV(fov)

	p := &Plane{
		mesh:    m,
		texture: frame.Texture,
		frame:   frame,
		gridCfg: cfg.Grid,
		grid:    grid,
		width:   w,
		height:  h,
	}
	p.SetSizeToFrame()
	if err := p.ResetHeight(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plane) Mesh() *mesh.Mesh            { return p.mesh }
func (p *Plane) FX() *fx.Set                 { return &p.effects }
func (p *Plane) Texture() *textures.Texture  { return p.texture }
func (p *Plane) Frame() *textures.Frame      { return p.frame }
func (p *Plane) Grid() Grid                  { return p.grid }
func (p *Plane) GridConfig() GridConfig      { return p.gridCfg }
func (p *Plane) Size() (w, h float32)        { return p.width, p.height }
func (p *Plane) TextureHandle() core.Texture { return p.texture.Handle }

// Regenerate rebuilds the grid with cfg against the current frame. UV
// transforms applied so far are discarded.
func (p *Plane) Regenerate(cfg GridConfig) error {
	grid, err := GenerateGrid(p.mesh, p.frame, cfg)
	if err != nil {
		return err
	}
	p.gridCfg, p.grid = cfg, grid
	return nil
}

// SetTexture switches to the named frame of tex ("" for the whole texture).
// The display size follows the new frame and depth is recomputed for its
// native height. Vertex UVs are kept; call Regenerate to refit them.
func (p *Plane) SetTexture(tex *textures.Texture, frameName string) error {
	if tex == nil {
		return fmt.Errorf("%w: nil texture", core.ErrMissingResource)
	}
	f, ok := tex.Frame(frameName)
	if !ok || !f.Valid() {
		return fmt.Errorf("%w: texture %q has no frame %q", core.ErrMissingResource, tex.Key, frameName)
	}
	fh := float32(f.Height)
	if _, err := Depth(fh, fh, p.mesh.FOV()); err != nil {
		return err
	}
	p.texture, p.frame = tex, f
	p.width, p.height = float32(f.Width), fh
	p.SetSizeToFrame()
	return p.ResetHeight()
}

var _ fx.Holder = (*Plane)(nil)
