package plane

import (
	"errors"
	"math"
	"testing"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/mesh"
)

func TestDepth(t *testing.T) {
	d, err := Depth(100, 100, 45)
	if err != nil {
		t.Fatalf("Depth: %v", err)
	}
	if !near(float64(d), 2.41421356, 1e-5) {
		t.Fatalf("depth=%v", d)
	}
	d, _ = Depth(100, 50, 45)
	if !near(float64(d), 4.82842712, 1e-5) {
		t.Fatalf("depth(50)=%v", d)
	}
	d, _ = Depth(100, 100, 90)
	if !near(float64(d), 1, 1e-6) {
		t.Fatalf("depth(fov 90)=%v", d)
	}
}

func TestDepthRejectsBadInput(t *testing.T) {
	cases := []struct {
		name              string
		cur, desired, fov float32
	}{
		{"fov0", 100, 100, 0},
		{"fov180", 100, 100, 180},
		{"fovNeg", 100, 100, -10},
		{"desired0", 100, 0, 45},
		{"desiredNeg", 100, -5, 45},
		{"current0", 0, 100, 45},
	}
	for _, c := range cases {
		if _, err := Depth(c.cur, c.desired, c.fov); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("%s: err=%v", c.name, err)
		}
	}
}

func TestNewComputesInitialDepth(t *testing.T) {
	p := testPlane(t, Config{})
	if p.FOV() != mesh.DefaultFOV {
		t.Fatalf("fov=%v", p.FOV())
	}
	if p.DesiredHeight() != 100 {
		t.Fatalf("desired=%v", p.DesiredHeight())
	}
	if !near(float64(p.Depth()), 2.41421356, 1e-5) {
		t.Fatalf("depth=%v", p.Depth())
	}
	r := p.Mesh().PerspectiveRatio()
	if r != [2]float32{1, 1} {
		t.Fatalf("ratio=%v", r)
	}
}

func TestSetHeightHalvingDoublesDepth(t *testing.T) {
	p := testPlane(t, Config{})
	d0 := p.Depth()
	if err := p.SetHeight(50); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}
	if !near(float64(p.Depth()), 4.82842712, 1e-5) || !near(float64(p.Depth()), 2*float64(d0), 1e-5) {
		t.Fatalf("depth=%v d0=%v", p.Depth(), d0)
	}
}

func TestSetHeightRoundTrip(t *testing.T) {
	p := testPlane(t, Config{})
	d0 := p.Depth()
	p.SetHeight(37)
	p.SetHeight(300)
	if err := p.ResetHeight(); err != nil {
		t.Fatalf("ResetHeight: %v", err)
	}
	if p.Depth() != d0 {
		t.Fatalf("depth=%v want %v", p.Depth(), d0)
	}
}

func TestDepthDecreasesAsHeightGrows(t *testing.T) {
	p := testPlane(t, Config{})
	prev := float32(0)
	for i, h := range []float32{10, 25, 50, 100, 200, 400} {
		if err := p.SetHeight(h); err != nil {
			t.Fatalf("SetHeight(%v): %v", h, err)
		}
		if i > 0 && p.Depth() >= prev {
			t.Fatalf("depth(%v)=%v not below %v", h, p.Depth(), prev)
		}
		prev = p.Depth()
	}
}

func TestSetHeightMarksViewDirty(t *testing.T) {
	p := testPlane(t, Config{})
	p.Mesh().Recompute()
	if p.Mesh().IsDirty(mesh.DirtyViewPosition) {
		t.Fatalf("view still dirty after recompute")
	}
	p.SetHeight(80)
	if !p.Mesh().IsDirty(mesh.DirtyViewPosition) {
		t.Fatalf("view not dirty after SetHeight")
	}
}

func TestSetHeightSingularFOVLeavesDepth(t *testing.T) {
	p := testPlane(t, Config{})
	d0, h0 := p.Depth(), p.DesiredHeight()
	for _, fov := range []float32{0, 180} {
		p.Mesh().SetFOV(fov)
		if err := p.SetHeight(50); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("fov %v: err=%v", fov, err)
		}
		if p.Depth() != d0 || p.DesiredHeight() != h0 {
			t.Fatalf("fov %v: state changed depth=%v desired=%v", fov, p.Depth(), p.DesiredHeight())
		}
	}
	if err := p.SetHeight(0); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("zero height err=%v", err)
	}
}

func TestSetFOV(t *testing.T) {
	p := testPlane(t, Config{})
	if err := p.SetFOV(90); err != nil {
		t.Fatalf("SetFOV: %v", err)
	}
	if p.FOV() != 90 || !near(float64(p.Depth()), 1, 1e-6) {
		t.Fatalf("fov=%v depth=%v", p.FOV(), p.Depth())
	}
	d := p.Depth()
	for _, fov := range []float32{0, 180, 200} {
		if err := p.SetFOV(fov); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("SetFOV(%v) err=%v", fov, err)
		}
	}
	if p.FOV() != 90 || p.Depth() != d {
		t.Fatalf("failed SetFOV changed state fov=%v depth=%v", p.FOV(), p.Depth())
	}
}

func TestSetPerspectiveRatioKeepsDepth(t *testing.T) {
	p := testPlane(t, Config{})
	d := p.Depth()
	p.SetPerspectiveRatio(3, 0.5)
	if p.Depth() != d {
		t.Fatalf("depth moved to %v", p.Depth())
	}
	if p.Mesh().PerspectiveRatio() != [2]float32{3, 0.5} || !p.Mesh().IsDirty(mesh.DirtyProjection) {
		t.Fatalf("ratio=%v", p.Mesh().PerspectiveRatio())
	}
}

func TestSetSize(t *testing.T) {
	p := testPlane(t, Config{})
	if err := p.SetSize(200, 200); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if p.Mesh().PerspectiveRatio() != [2]float32{2, 2} {
		t.Fatalf("ratio=%v", p.Mesh().PerspectiveRatio())
	}
	if !near(float64(p.Depth()), 4.82842712, 1e-5) {
		t.Fatalf("depth=%v", p.Depth())
	}
	if err := p.SetSize(-1, 10); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("negative width err=%v", err)
	}
	if w, h := p.Size(); w != 200 || h != 200 {
		t.Fatalf("size=%vx%v", w, h)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(nil, Config{}); !errors.Is(err, core.ErrMissingResource) {
		t.Fatalf("nil frame err=%v", err)
	}
	frame := testFrame(t, 10, 10)
	if _, err := New(frame, Config{FOV: 180}); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("fov 180 err=%v", err)
	}
	if _, err := New(frame, Config{Grid: GridConfig{WidthSegments: -2}}); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("negative segments err=%v", err)
	}
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5} {
		if _, err := New(frame, Config{Width: float32(w)}); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("width %v err=%v", w, err)
		}
	}
}

func TestRegenerate(t *testing.T) {
	p := testPlane(t, Config{Grid: GridConfig{WidthSegments: 2, HeightSegments: 2}})
	d := p.Depth()
	if err := p.Regenerate(GridConfig{WidthSegments: 4, HeightSegments: 3}); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if g := p.Grid(); g.Vertices != 20 || g.Faces != 24 {
		t.Fatalf("grid=%+v", g)
	}
	if err := p.Regenerate(GridConfig{HeightSegments: -1}); err == nil {
		t.Fatalf("expected error")
	}
	if p.GridConfig().WidthSegments != 4 || p.Mesh().VertexCount() != 20 || p.Depth() != d {
		t.Fatalf("failed regenerate changed plane")
	}
}
