package plane

import (
	"testing"

	"github.com/hubastard/planar/engine/mesh"
)

func uvs(p *Plane) [][2]float32 {
	out := make([][2]float32, 0, p.Mesh().VertexCount())
	for _, v := range p.Mesh().Vertices() {
		out = append(out, [2]float32{v.U, v.V})
	}
	return out
}

func TestScrollUVInverse(t *testing.T) {
	// power-of-two segment counts keep every UV exactly representable
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 4, HeightSegments: 8}})
	before := uvs(p)
	p.ScrollUV(1, 0)
	p.ScrollUV(-1, 0)
	for i, uv := range uvs(p) {
		if uv != before[i] {
			t.Fatalf("vertex %d uv=%v want %v", i, uv, before[i])
		}
	}
}

func TestScrollUVInverseNonDyadic(t *testing.T) {
	// thirds are not exact in float32; the pair may drift by an ulp
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 3, HeightSegments: 3}})
	before := uvs(p)
	p.ScrollUV(1, 0)
	p.ScrollUV(-1, 0)
	for i, uv := range uvs(p) {
		if !near(float64(uv[0]), float64(before[i][0]), 1e-6) || uv[1] != before[i][1] {
			t.Fatalf("vertex %d uv=%v want %v", i, uv, before[i])
		}
	}
}

func TestScrollUVMovesSharedVertexOnce(t *testing.T) {
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 2, HeightSegments: 2}})
	// the centre vertex is shared by six faces
	center := p.Mesh().Vertices()[4]
	p.ScrollUV(0.25, -0.5)
	got := p.Mesh().Vertices()[4]
	if got.U != center.U+0.25 || got.V != center.V-0.5 {
		t.Fatalf("centre uv=%v,%v from %v,%v", got.U, got.V, center.U, center.V)
	}
}

func TestScaleUVDoublesEveryVertex(t *testing.T) {
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 3, HeightSegments: 3}})
	before := uvs(p)
	p.ScaleUV(2, 2)
	after := uvs(p)
	for i := range after {
		if after[i][0] != 2*before[i][0] || after[i][1] != 2*before[i][1] {
			t.Fatalf("vertex %d uv=%v want 2*%v", i, after[i], before[i])
		}
	}
	p.ScaleUV(0.5, 0.5)
	for i, uv := range uvs(p) {
		if uv != before[i] {
			t.Fatalf("vertex %d uv=%v want %v", i, uv, before[i])
		}
	}
}

func TestScaleUVTiled(t *testing.T) {
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 2, HeightSegments: 2, Tile: true}})
	p.ScaleUV(3, 1)
	for i, v := range p.Mesh().Vertices() {
		if v.U != 0 && v.U != 3 {
			t.Fatalf("vertex %d u=%v", i, v.U)
		}
	}
}

func TestUVTransformMarksVerticesDirty(t *testing.T) {
	p := testPlane(t, Config{})
	p.Mesh().ConsumeVertexDirty()
	p.ScrollUV(0, 0.5)
	if !p.Mesh().ConsumeVertexDirty() {
		t.Fatalf("scroll did not mark vertices dirty")
	}
	p.ScaleUV(1, 1)
	if !p.Mesh().IsDirty(mesh.DirtyVertices) {
		t.Fatalf("scale did not mark vertices dirty")
	}
}

func TestFaceScrollIsFaceLocal(t *testing.T) {
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 1, HeightSegments: 1}})
	// both faces reference the b and d corners, so they move twice
	for _, f := range p.Mesh().Faces() {
		f.ScrollUV(0.25, 0)
	}
	vs := p.Mesh().Vertices()
	moved := 0
	for _, v := range vs {
		if v.U == 0.5 || v.U == 1.5 {
			moved++
		}
	}
	if moved != 2 {
		t.Fatalf("shared vertices moved twice: %d", moved)
	}
}
