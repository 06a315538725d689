package plane

import (
	"errors"
	"math"
	"testing"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/mesh"
)

func TestGridCounts(t *testing.T) {
	frame := testFrame(t, 64, 64)
	for ws := 1; ws <= 5; ws++ {
		for hs := 1; hs <= 4; hs++ {
			m := mesh.New()
			g, err := GenerateGrid(m, frame, GridConfig{WidthSegments: ws, HeightSegments: hs})
			if err != nil {
				t.Fatalf("%dx%d: %v", ws, hs, err)
			}
			if m.VertexCount() != (ws+1)*(hs+1) || g.Vertices != m.VertexCount() {
				t.Fatalf("%dx%d vertices=%d", ws, hs, m.VertexCount())
			}
			if m.FaceCount() != 2*ws*hs || g.Faces != m.FaceCount() {
				t.Fatalf("%dx%d faces=%d", ws, hs, m.FaceCount())
			}
		}
	}
}

func TestGridZeroSegmentsIsSingleQuad(t *testing.T) {
	m := mesh.New()
	g, err := GenerateGrid(m, testFrame(t, 8, 8), GridConfig{})
	if err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}
	if g.WidthSegments != 1 || g.HeightSegments != 1 || m.VertexCount() != 4 || m.FaceCount() != 2 {
		t.Fatalf("grid=%+v", g)
	}
}

func TestGrid2x2(t *testing.T) {
	m := mesh.New()
	if _, err := GenerateGrid(m, testFrame(t, 100, 100), GridConfig{WidthSegments: 2, HeightSegments: 2}); err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}
	if m.VertexCount() != 9 || m.FaceCount() != 8 {
		t.Fatalf("v=%d f=%d", m.VertexCount(), m.FaceCount())
	}
	vs := m.Vertices()
	if vs[0].U != 0 || vs[0].V != 0 {
		t.Fatalf("uv(0,0)=%v,%v", vs[0].U, vs[0].V)
	}
	if vs[8].U != 1 || vs[8].V != 1 {
		t.Fatalf("uv(2,2)=%v,%v", vs[8].U, vs[8].V)
	}
	// left-to-right u grows, top-to-bottom v grows
	for iy := 0; iy < 3; iy++ {
		for ix := 1; ix < 3; ix++ {
			if vs[iy*3+ix].U <= vs[iy*3+ix-1].U {
				t.Fatalf("u not increasing at (%d,%d)", ix, iy)
			}
		}
	}
	for ix := 0; ix < 3; ix++ {
		for iy := 1; iy < 3; iy++ {
			if vs[iy*3+ix].V <= vs[(iy-1)*3+ix].V {
				t.Fatalf("v not increasing at (%d,%d)", ix, iy)
			}
		}
	}
	if vs[0].X >= vs[2].X || vs[0].Y <= vs[6].Y {
		t.Fatalf("row 0 should be top-left: %+v %+v %+v", vs[0], vs[2], vs[6])
	}
}

func TestGridFlipY(t *testing.T) {
	m := mesh.New()
	if _, err := GenerateGrid(m, testFrame(t, 10, 10), GridConfig{WidthSegments: 2, HeightSegments: 2, FlipY: true}); err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}
	vs := m.Vertices()
	if vs[0].V != 1 || vs[8].V != 0 {
		t.Fatalf("flipped v top=%v bottom=%v", vs[0].V, vs[8].V)
	}
}

func TestGridTile(t *testing.T) {
	m := mesh.New()
	g, err := GenerateGrid(m, testFrame(t, 10, 10), GridConfig{WidthSegments: 3, HeightSegments: 2, Tile: true})
	if err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}
	if g.Vertices != 24 || g.Faces != 12 {
		t.Fatalf("tile grid=%+v", g)
	}
	vs := m.Vertices()
	for cell := 0; cell < 6; cell++ {
		tl, br := vs[cell*4], vs[cell*4+2]
		if tl.U != 0 || tl.V != 0 || br.U != 1 || br.V != 1 {
			t.Fatalf("cell %d uv tl=%v,%v br=%v,%v", cell, tl.U, tl.V, br.U, br.V)
		}
	}
}

func TestGridLayoutSize(t *testing.T) {
	frame := testFrame(t, 200, 100)
	m := mesh.New()
	g, _ := GenerateGrid(m, frame, GridConfig{})
	if g.Width != 2 || g.Height != 1 {
		t.Fatalf("perspective size=%vx%v", g.Width, g.Height)
	}
	g, _ = GenerateGrid(m, frame, GridConfig{IsOrtho: true})
	if g.Width != 200 || g.Height != 100 {
		t.Fatalf("ortho size=%vx%v", g.Width, g.Height)
	}
	vs := m.Vertices()
	if vs[0].X != -100 || vs[0].Y != 50 || vs[3].X != 100 || vs[3].Y != -50 {
		t.Fatalf("ortho corners %+v %+v", vs[0], vs[3])
	}
}

func TestGridSubFrameUV(t *testing.T) {
	frame := testFrame(t, 100, 100)
	sub, err := frame.Texture.AddFrame("half", 50, 0, 50, 50)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	m := mesh.New()
	if _, err := GenerateGrid(m, sub, GridConfig{WidthSegments: 2, HeightSegments: 2}); err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}
	vs := m.Vertices()
	if vs[0].U != 0.5 || vs[8].U != 1 || vs[8].V != 0.5 {
		t.Fatalf("sub uv first=%v,%v last=%v,%v", vs[0].U, vs[0].V, vs[8].U, vs[8].V)
	}
}

func TestGridFacesCounterClockwise(t *testing.T) {
	m := mesh.New()
	GenerateGrid(m, testFrame(t, 10, 10), GridConfig{WidthSegments: 3, HeightSegments: 3})
	for i, f := range m.Faces() {
		if !f.IsCounterClockwise() {
			t.Fatalf("face %d clockwise", i)
		}
	}
}

func TestGridErrorsLeaveMeshUntouched(t *testing.T) {
	frame := testFrame(t, 10, 10)
	m := mesh.New()
	if _, err := GenerateGrid(m, frame, GridConfig{WidthSegments: 2, HeightSegments: 2}); err != nil {
		t.Fatalf("GenerateGrid: %v", err)
	}

	_, err := GenerateGrid(m, frame, GridConfig{WidthSegments: -1, HeightSegments: 2})
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("negative segments err=%v", err)
	}
	_, err = GenerateGrid(m, nil, GridConfig{WidthSegments: 4})
	if !errors.Is(err, core.ErrMissingResource) {
		t.Fatalf("nil frame err=%v", err)
	}
	for _, cfg := range []GridConfig{
		{WidthSegments: math.MaxInt / 2, HeightSegments: 4},
		{WidthSegments: 70000, HeightSegments: 70000},
		{WidthSegments: 30000, HeightSegments: 30000, Tile: true},
	} {
		_, err = GenerateGrid(m, frame, cfg)
		if !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("%dx%d tile=%v err=%v", cfg.WidthSegments, cfg.HeightSegments, cfg.Tile, err)
		}
	}
	if m.VertexCount() != 9 || m.FaceCount() != 8 {
		t.Fatalf("mesh changed on failure v=%d f=%d", m.VertexCount(), m.FaceCount())
	}
}
