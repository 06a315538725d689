package textures

import (
	"errors"
	"testing"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/gfx/gfxtest"
)

func pixels(w, h int) []byte { return make([]byte, w*h*4) }

func TestAddPixelsAndBaseFrame(t *testing.T) {
	be := gfxtest.NewBackend()
	reg := NewRegistry(be)
	tex, err := reg.AddPixels("water", 64, 32, pixels(64, 32), core.TextureDesc{MinFilter: "linear"})
	if err != nil {
		t.Fatalf("AddPixels: %v", err)
	}
	if !reg.Exists("water") || len(be.Live) != 1 {
		t.Fatalf("not registered")
	}
	f, ok := tex.Frame("")
	if !ok || f.Width != 64 || f.Height != 32 || f.U1 != 1 || f.V1 != 1 {
		t.Fatalf("base frame=%+v", f)
	}
}

func TestAddPixelsDuplicateKeepsBackendClean(t *testing.T) {
	be := gfxtest.NewBackend()
	reg := NewRegistry(be)
	if _, err := reg.AddPixels("k", 2, 2, pixels(2, 2), core.TextureDesc{}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := reg.AddPixels("k", 2, 2, pixels(2, 2), core.TextureDesc{})
	if !errors.Is(err, ErrKeyInUse) {
		t.Fatalf("err=%v", err)
	}
	if len(be.Live) != 1 {
		t.Fatalf("live=%d", len(be.Live))
	}
}

func TestAddPixelsWithoutBackend(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.AddPixels("k", 2, 2, pixels(2, 2), core.TextureDesc{})
	if !errors.Is(err, core.ErrBackendUnavailable) {
		t.Fatalf("err=%v", err)
	}
}

func TestRemoveReleasesHandle(t *testing.T) {
	be := gfxtest.NewBackend()
	reg := NewRegistry(be)
	tex, _ := reg.AddPixels("k", 2, 2, pixels(2, 2), core.TextureDesc{})
	if !reg.Remove("k") || reg.Remove("k") {
		t.Fatalf("Remove")
	}
	if len(be.Deleted) != 1 || be.Deleted[0] != tex.Handle.ID() {
		t.Fatalf("deleted=%v", be.Deleted)
	}
}

func TestAddFrameUVs(t *testing.T) {
	reg := NewRegistry(gfxtest.NewBackend())
	tex, _ := reg.AddPixels("atlas", 128, 64, pixels(128, 64), core.TextureDesc{})
	f, err := tex.AddFrame("player", 32, 16, 32, 32)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if f.U0 != 0.25 || f.V0 != 0.25 || f.U1 != 0.5 || f.V1 != 0.75 {
		t.Fatalf("uv=%v,%v %v,%v", f.U0, f.V0, f.U1, f.V1)
	}
	if _, err := tex.AddFrame("bad", 100, 0, 64, 8); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("out of bounds err=%v", err)
	}
}

func TestAddGrid(t *testing.T) {
	reg := NewRegistry(gfxtest.NewBackend())
	tex, _ := reg.AddPixels("sheet", 40, 20, pixels(40, 20), core.TextureDesc{})
	frames, err := tex.AddGrid("cell", 16, 16)
	if err != nil {
		t.Fatalf("AddGrid: %v", err)
	}
	if len(frames) != 2 || frames[1].Name != "cell1" || frames[1].X != 16 {
		t.Fatalf("frames=%+v", frames)
	}
}
