package plane

import (
	"fmt"
	"math"

	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/mesh"
	"github.com/hubastard/planar/engine/profiler"
	"github.com/hubastard/planar/engine/textures"
)

// GridConfig controls grid generation. Zero segment counts mean one.
type GridConfig struct {
	WidthSegments  int
	HeightSegments int

	// IsOrtho sizes the grid in frame pixels; otherwise it is one unit tall
	// and frame-aspect wide.
	IsOrtho bool

	// Tile gives every cell its own four vertices carrying the full frame UV
	// rect, so the texture repeats per cell.
	Tile bool

	// FlipY mirrors v so row 0 samples the bottom of the frame.
	FlipY bool

	// Color is the vertex color; zero means white.
	Color colors.Color
}

// Grid summarises a generated grid.
type Grid struct {
	WidthSegments  int
	HeightSegments int
	Width, Height  float32
	Vertices       int
	Faces          int
}

// MaxGridVertices bounds a grid so every vertex index fits an int32.
const MaxGridVertices = math.MaxInt32

// gridVertices returns the vertex count for gx by gy cells, or false when it
// exceeds MaxGridVertices.
func gridVertices(gx, gy int, tile bool) (int, bool) {
	if gx > MaxGridVertices || gy > MaxGridVertices {
		return 0, false
	}
	n := int64(gx+1) * int64(gy+1)
	if tile {
		n = int64(gx) * int64(gy)
		if n > MaxGridVertices/4 {
			return 0, false
		}
		n *= 4
	}
	if n > MaxGridVertices {
		return 0, false
	}
	return int(n), true
}

// GenerateGrid replaces m's geometry with a subdivided quad grid textured by
// frame. Vertices are laid out row-major from the top-left, centred on the
// origin with y up. Each cell yields two counter-clockwise faces (a,b,d) and
// (b,c,d) where a is top-left, b bottom-left, c bottom-right, d top-right.
// On error m is untouched.
func GenerateGrid(m *mesh.Mesh, frame *textures.Frame, cfg GridConfig) (Grid, error) {
	defer profiler.Start("plane.GenerateGrid")()

	if m == nil {
		return Grid{}, fmt.Errorf("%w: nil mesh", core.ErrInvalidConfiguration)
	}
	if cfg.WidthSegments < 0 || cfg.HeightSegments < 0 {
		return Grid{}, fmt.Errorf("%w: segments %dx%d", core.ErrInvalidConfiguration, cfg.WidthSegments, cfg.HeightSegments)
	}
	if !frame.Valid() {
		return Grid{}, fmt.Errorf("%w: grid needs a texture frame with a size", core.ErrMissingResource)
	}

	gx, gy := max(cfg.WidthSegments, 1), max(cfg.HeightSegments, 1)
	nv, ok := gridVertices(gx, gy, cfg.Tile)
	if !ok {
		return Grid{}, fmt.Errorf("%w: segments %dx%d exceed %d vertices", core.ErrInvalidConfiguration, gx, gy, MaxGridVertices)
	}
	col := cfg.Color
	if col == (colors.Color{}) {
		col = colors.White
	}

	width, height := float32(frame.Width)/float32(frame.Height), float32(1)
	if cfg.IsOrtho {
		width, height = float32(frame.Width), float32(frame.Height)
	}
	halfW, halfH := width/2, height/2
	segW, segH := width/float32(gx), height/float32(gy)

	v0, v1 := frame.V0, frame.V1
	if cfg.FlipY {
		v0, v1 = v1, v0
	}
	lerp := func(a, b, t float32) float32 { return a + (b-a)*t }

	var (
		verts []mesh.Vertex
		tris  = make([][3]int, 0, gx*gy*2)
	)

	if cfg.Tile {
		verts = make([]mesh.Vertex, 0, nv)
		for iy := 0; iy < gy; iy++ {
			top := halfH - float32(iy)*segH
			bottom := top - segH
			for ix := 0; ix < gx; ix++ {
				left := float32(ix)*segW - halfW
				right := left + segW
				base := len(verts)
				verts = append(verts,
					mesh.Vertex{X: left, Y: top, U: frame.U0, V: v0, Color: col},
					mesh.Vertex{X: left, Y: bottom, U: frame.U0, V: v1, Color: col},
					mesh.Vertex{X: right, Y: bottom, U: frame.U1, V: v1, Color: col},
					mesh.Vertex{X: right, Y: top, U: frame.U1, V: v0, Color: col},
				)
				a, b, c, d := base, base+1, base+2, base+3
				tris = append(tris, [3]int{a, b, d}, [3]int{b, c, d})
			}
		}
	} else {
		gx1, gy1 := gx+1, gy+1
		verts = make([]mesh.Vertex, 0, nv)
		for iy := 0; iy < gy1; iy++ {
			y := halfH - float32(iy)*segH
			tv := float32(iy) / float32(gy)
			for ix := 0; ix < gx1; ix++ {
				x := float32(ix)*segW - halfW
				tu := float32(ix) / float32(gx)
				verts = append(verts, mesh.Vertex{
					X:     x,
					Y:     y,
					U:     lerp(frame.U0, frame.U1, tu),
					V:     lerp(v0, v1, tv),
					Color: col,
				})
			}
		}
		for iy := 0; iy < gy; iy++ {
			for ix := 0; ix < gx; ix++ {
				a := ix + gx1*iy
				b := ix + gx1*(iy+1)
				c := (ix + 1) + gx1*(iy+1)
				d := (ix + 1) + gx1*iy
				tris = append(tris, [3]int{a, b, d}, [3]int{b, c, d})
			}
		}
	}

	if err := m.SetGeometry(verts, tris); err != nil {
		return Grid{}, err
	}
	return Grid{
		WidthSegments:  gx,
		HeightSegments: gy,
		Width:          width,
		Height:         height,
		Vertices:       len(verts),
		Faces:          len(tris),
	}, nil
}
