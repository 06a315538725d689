package main

import (
	"log"

	"github.com/hubastard/planar/engine/assets"
	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/fx"
	"github.com/hubastard/planar/engine/gfx/meshrender"
	"github.com/hubastard/planar/engine/plane"
	"github.com/hubastard/planar/engine/profiler"
	"github.com/hubastard/planar/engine/textures"
)

var waterTint = colors.Hex(0xd8ecff)

// LayerPlane shows a scrolling water plane. W/S or Up/Down change its
// apparent height, Q/E the FOV, mouse wheel tilts it, R resets, C swaps in
// the checker and F toggles effects.
type LayerPlane struct {
	mr  *meshrender.Renderer
	reg *textures.Registry
	opt options

	plane    *plane.Plane
	shine    *fx.Shine
	vignette *fx.Vignette
	tilt     float32

	viewportW, viewportH int
}

func (l *LayerPlane) OnAttach(e *core.Engine) {
	l.viewportW, l.viewportH = e.Window.FramebufferSize()

	tex := l.loadTexture(e)
	p, err := plane.New(tex.Base(), plane.Config{
		Grid: plane.GridConfig{
			WidthSegments:  l.opt.segments,
			HeightSegments: l.opt.segments,
			Tile:           l.opt.tile,
			Color:          waterTint,
		},
		FOV: float32(l.opt.fov),
	})
	if err != nil {
		panic(err)
	}
	l.plane = p

	l.shine = fx.NewShine()
	l.vignette = fx.NewVignette()
	p.FX().Add(l.shine)
	p.FX().Add(l.vignette)
	p.FX().Disable(false)
}

func (l *LayerPlane) loadTexture(e *core.Engine) *textures.Texture {
	img, err := assets.LoadImage(l.opt.texture)
	if err == nil {
		tex, err := l.reg.AddPixels("water", img.Width, img.Height, img.Pixels, core.TextureDesc{
			MinFilter: "linear", MagFilter: "linear",
			WrapU: "repeat", WrapV: "repeat",
		})
		if err == nil {
			return tex
		}
		log.Printf("sandbox: upload %s: %v", l.opt.texture, err)
	} else {
		log.Printf("sandbox: %v", err)
	}
	tex, err := plane.CreateChecker(e.Renderer, l.reg, colors.White, colors.Blue)
	if err != nil {
		panic(err)
	}
	return tex
}

func (l *LayerPlane) OnDetach(e *core.Engine) {
	l.mr.Forget(l.plane.Mesh())
}

func (l *LayerPlane) OnUpdate(e *core.Engine, dt float64) {
	in := e.Input
	step := float32(dt)
	p := l.plane

	p.ScrollUV(float32(l.opt.scroll)*step, 0)
	l.shine.Update(step)

	if in.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}

	h := p.DesiredHeight()
	switch {
	case in.IsKeyDown(core.KeyW), in.IsKeyDown(core.KeyUp):
		h *= 1 + step
	case in.IsKeyDown(core.KeyS), in.IsKeyDown(core.KeyDown):
		h /= 1 + step
	}
	if h != p.DesiredHeight() {
		if err := p.SetHeight(h); err != nil {
			log.Printf("sandbox: %v", err)
		}
	}

	fov := p.FOV()
	if in.IsKeyDown(core.KeyQ) {
		fov -= 30 * step
	}
	if in.IsKeyDown(core.KeyE) {
		fov += 30 * step
	}
	if fov != p.FOV() {
		// out-of-range values are rejected and the FOV stays put
		_ = p.SetFOV(fov)
	}

	if s := in.TakeScroll(); s != 0 {
		l.tilt += float32(s) * 0.05
		p.Mesh().SetRotation(l.tilt, 0, 0)
	}

	if in.WasPressed(core.KeyR) {
		l.tilt = 0
		p.Mesh().SetRotation(0, 0, 0)
		if err := p.SetFOV(float32(l.opt.fov)); err != nil {
			log.Printf("sandbox: %v", err)
		}
		if err := p.ResetHeight(); err != nil {
			log.Printf("sandbox: %v", err)
		}
	}
	if in.WasPressed(core.KeyC) {
		if p.Check(e.Renderer, l.reg) != nil {
			_ = p.Regenerate(p.GridConfig())
		}
	}
	if in.WasPressed(core.KeyF) {
		if p.FX().Enabled() {
			p.FX().Disable(false)
		} else {
			p.FX().Enable()
		}
	}
}

func (l *LayerPlane) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerPlane.OnRender")()

	l.mr.Begin(l.viewportW, l.viewportH)
	if err := l.mr.Draw(l.plane); err != nil {
		log.Printf("sandbox: draw: %v", err)
	}
	l.mr.End()
}

func (l *LayerPlane) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.viewportW, l.viewportH = e.Window.FramebufferSize()
		if l.viewportW < 1 || l.viewportH < 1 {
			l.viewportW, l.viewportH = v.W, v.H
		}
	}
	return false
}
