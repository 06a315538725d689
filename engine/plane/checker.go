package plane

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/textures"
	"golang.org/x/image/draw"
)

const (
	// CheckerKey is the registry key of the checker texture.
	CheckerKey  = "plane"
	CheckerSize = 16
	checkerCell = 8
)

// TextureRegistry is the part of textures.Registry the checker needs.
type TextureRegistry interface {
	Get(key string) (*textures.Texture, bool)
	Add(key string, handle core.Texture, w, h int) (*textures.Texture, error)
}

// CheckerImage draws a 16x16 board of 8x8 cells: top-left and bottom-right
// in c1, the other two in c2.
func CheckerImage(c1, c2 colors.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CheckerSize, CheckerSize))
	a, b := c1.RGBA8(), c2.RGBA8()
	fg := &image.Uniform{C: color.RGBA{R: a[0], G: a[1], B: a[2], A: a[3]}}
	bg := &image.Uniform{C: color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}}
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, checkerCell, checkerCell), fg, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(checkerCell, checkerCell, CheckerSize, CheckerSize), fg, image.Point{}, draw.Src)
	return img
}

// CreateChecker uploads the checker and registers it under CheckerKey. An
// already registered checker is reused. If registration fails the GPU
// texture is deleted before returning.
func CreateChecker(backend core.TextureCreator, reg TextureRegistry, c1, c2 colors.Color) (*textures.Texture, error) {
	if backend == nil || reg == nil {
		return nil, core.ErrBackendUnavailable
	}
	if t, ok := reg.Get(CheckerKey); ok {
		return t, nil
	}
	img := CheckerImage(c1, c2)
	handle, err := backend.CreateTexture(core.TextureDesc{
		Width: CheckerSize, Height: CheckerSize,
		Format:    core.TextureRGBA8,
		Pixels:    img.Pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "repeat", WrapV: "repeat",
	})
	if err != nil {
		return nil, fmt.Errorf("create checker texture: %w", err)
	}
	tex, err := reg.Add(CheckerKey, handle, CheckerSize, CheckerSize)
	if err != nil {
		backend.DeleteTexture(handle)
		return nil, fmt.Errorf("register checker texture: %w", err)
	}
	return tex, nil
}

// Check swaps the plane onto a white/blue checker. Without a usable backend
// it logs and returns nil, leaving the plane as it was.
func (p *Plane) Check(backend core.TextureCreator, reg TextureRegistry) *textures.Texture {
	return p.CheckColors(backend, reg, colors.White, colors.Blue)
}

// CheckColors is Check with custom colors.
func (p *Plane) CheckColors(backend core.TextureCreator, reg TextureRegistry, c1, c2 colors.Color) *textures.Texture {
	tex, err := CreateChecker(backend, reg, c1, c2)
	if err != nil {
		log.Printf("plane: checker skipped: %v", err)
		return nil
	}
	if err := p.SetTexture(tex, ""); err != nil {
		log.Printf("plane: checker skipped: %v", err)
		return nil
	}
	return tex
}
