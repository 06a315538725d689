package main

import (
	"log"
	"time"

	"github.com/hubastard/planar/engine/core"
	"github.com/hubastard/planar/engine/gfx/meshrender"
	"github.com/hubastard/planar/engine/profiler"
	"github.com/hubastard/planar/engine/scratch"
)

// LayerDebug reports frame time, renderer stats and plane state in the
// window title twice a second. Ctrl+P dumps the profiler.
type LayerDebug struct {
	mr    *meshrender.Renderer
	plane *LayerPlane
	title *scratch.Buffer
	name  string

	frames  int
	elapsed time.Duration
	last    time.Time
}

func NewLayerDebug(cfg core.Config, mr *meshrender.Renderer, pl *LayerPlane) *LayerDebug {
	return &LayerDebug{mr: mr, plane: pl, title: scratch.New(cfg.ScratchAllocCapacity), name: cfg.Title}
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.last = time.Now()
	log.Printf("sandbox: %s / %s / %s", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())
}

func (l *LayerDebug) OnDetach(e *core.Engine)             {}
func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	l.elapsed += now.Sub(l.last)
	l.last = now
	l.frames++
	if l.elapsed < 500*time.Millisecond {
		return
	}

	ms := float64(l.elapsed.Microseconds()) / 1000 / float64(l.frames)
	st := l.mr.Stats()
	p := l.plane.plane
	mem := profiler.ReadMemory()

	l.title.Reset()
	e.Window.SetTitle(l.title.Sprintf("%s | %.2f ms | %d faces %d culled | depth %.3f fov %.1f | fx %t | %.1f MB",
		l.name, ms, st.FaceCount, st.CulledFaces, p.Depth(), p.FOV(), p.FX().Active(), float64(mem.Alloc)/(1<<20)))

	l.frames, l.elapsed = 0, 0
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Key != core.KeyP || k.Mods&core.ModCtrl == 0 {
		return false
	}
	if !profiler.Enabled {
		log.Println("sandbox: built without -tags profile")
		return true
	}
	if path, err := profiler.OpenGraph(); err != nil {
		log.Printf("sandbox: profiler: %v", err)
	} else {
		log.Println("sandbox: speedscope dump:", path)
	}
	return true
}
