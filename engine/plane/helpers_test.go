package plane

import (
	"testing"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/gfx/gfxtest"
	"github.com/hubastard/planar/engine/textures"
)

func testFrame(t *testing.T, w, h int) *textures.Frame {
	t.Helper()
	reg := textures.NewRegistry(gfxtest.NewBackend())
	tex, err := reg.AddPixels("test", w, h, make([]byte, w*h*4), core.TextureDesc{})
	if err != nil {
		t.Fatalf("AddPixels: %v", err)
	}
	return tex.Base()
}

func testPlane(t *testing.T, cfg Config) *Plane {
	t.Helper()
	p, err := New(testFrame(t, 100, 100), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
