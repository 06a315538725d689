package plane

import (
	"errors"
	"testing"

	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/gfx/gfxtest"
	"github.com/hubastard/planar/engine/textures"
)

func TestCheckerImageQuadrants(t *testing.T) {
	img := CheckerImage(colors.White, colors.Blue)
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds=%v", b)
	}
	white := [4]uint8{255, 255, 255, 255}
	blue := [4]uint8{0, 0, 255, 255}
	at := func(x, y int) [4]uint8 {
		c := img.RGBAAt(x, y)
		return [4]uint8{c.R, c.G, c.B, c.A}
	}
	cases := []struct {
		x, y int
		want [4]uint8
	}{
		{0, 0, white}, {7, 7, white},
		{8, 8, white}, {15, 15, white},
		{8, 0, blue}, {15, 7, blue},
		{0, 8, blue}, {7, 15, blue},
	}
	for _, c := range cases {
		if got := at(c.x, c.y); got != c.want {
			t.Fatalf("pixel(%d,%d)=%v want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCheckRebindsPlane(t *testing.T) {
	be := gfxtest.NewBackend()
	reg := textures.NewRegistry(be)
	p := testPlane(t, Config{})

	tex := p.Check(be, reg)
	if tex == nil {
		t.Fatalf("Check returned nil")
	}
	if got, ok := reg.Get(CheckerKey); !ok || got != tex {
		t.Fatalf("checker not registered under %q", CheckerKey)
	}
	if p.Texture() != tex || p.Frame() != tex.Base() {
		t.Fatalf("plane not rebound")
	}
	if w, h := p.Size(); w != 16 || h != 16 {
		t.Fatalf("size=%vx%v", w, h)
	}
	if !near(float64(p.Depth()), 2.41421356, 1e-5) {
		t.Fatalf("depth=%v", p.Depth())
	}
	gt := be.Live[tex.Handle.ID()]
	if gt == nil || gt.Desc.MinFilter != "nearest" || gt.Pixels[0] != 255 || gt.Pixels[8*4+2] != 255 || gt.Pixels[8*4] != 0 {
		t.Fatalf("uploaded texture=%+v", gt)
	}
}

func TestCheckReusesRegisteredTexture(t *testing.T) {
	be := gfxtest.NewBackend()
	reg := textures.NewRegistry(be)
	p := testPlane(t, Config{})
	first := p.Check(be, reg)
	second := p.Check(be, reg)
	if first == nil || first != second || len(be.Live) != 1 {
		t.Fatalf("first=%p second=%p live=%d", first, second, len(be.Live))
	}
}

func TestCheckWithoutBackendIsNoop(t *testing.T) {
	p := testPlane(t, Config{})
	tex, d := p.Texture(), p.Depth()
	if got := p.Check(nil, textures.NewRegistry(nil)); got != nil {
		t.Fatalf("got %v", got)
	}
	be := gfxtest.NewBackend()
	be.FailCreate = core.ErrBackendUnavailable
	if got := p.Check(be, textures.NewRegistry(be)); got != nil {
		t.Fatalf("got %v", got)
	}
	if p.Texture() != tex || p.Depth() != d {
		t.Fatalf("plane changed")
	}
}

type failingRegistry struct{}

var errFull = errors.New("registry full")

func (failingRegistry) Get(string) (*textures.Texture, bool) { return nil, false }
func (failingRegistry) Add(string, core.Texture, int, int) (*textures.Texture, error) {
	return nil, errFull
}

func TestCreateCheckerReleasesHandleOnRegisterFailure(t *testing.T) {
	be := gfxtest.NewBackend()
	_, err := CreateChecker(be, failingRegistry{}, colors.White, colors.Blue)
	if !errors.Is(err, errFull) {
		t.Fatalf("err=%v", err)
	}
	if len(be.Live) != 0 || len(be.Deleted) != 1 {
		t.Fatalf("live=%d deleted=%v", len(be.Live), be.Deleted)
	}

	p := testPlane(t, Config{})
	tex := p.Texture()
	if p.Check(be, failingRegistry{}) != nil || p.Texture() != tex {
		t.Fatalf("plane changed after registry failure")
	}
}
