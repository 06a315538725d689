package main

import (
	"flag"
	"log"

	"github.com/hubastard/planar/engine/assets"
	"github.com/hubastard/planar/engine/colors"
	"github.com/hubastard/planar/engine/core"
	glbackend "github.com/hubastard/planar/engine/gfx/gl"
	"github.com/hubastard/planar/engine/gfx/meshrender"
	"github.com/hubastard/planar/engine/platform"
	"github.com/hubastard/planar/engine/profiler"
	"github.com/hubastard/planar/engine/textures"
)

type options struct {
	segments int
	fov      float64
	texture  string
	tile     bool
	scroll   float64
}

type App struct {
	cfg core.Config
	opt options

	mr    *meshrender.Renderer
	reg   *textures.Registry
	plane *LayerPlane
	debug *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(a.cfg.ProfilerCapacity)

	vs, fs := loadShaders()
	var err error
	a.mr, err = meshrender.New(e.Renderer, vs, fs)
	if err != nil {
		panic(err)
	}
	a.reg = textures.NewRegistry(e.Renderer)

	a.plane = &LayerPlane{mr: a.mr, reg: a.reg, opt: a.opt}
	e.Layers.Push(a.plane)

	a.debug = NewLayerDebug(a.cfg, a.mr, a.plane)
	e.Layers.Push(a.debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.mr != nil {
		a.mr.Destroy()
	}
	if a.reg != nil {
		a.reg.Destroy()
	}
}

// loadShaders returns the plane shader pair from assets, or two empty
// strings to select the built-in ones.
func loadShaders() (vs, fs string) {
	vs, fs, err := assets.LoadShaderPair("plane")
	if err != nil {
		log.Printf("sandbox: %v, using built-in shaders", err)
		return "", ""
	}
	return vs, fs
}

func main() {
	var opt options
	flag.IntVar(&opt.segments, "segments", 8, "grid segments per side")
	flag.Float64Var(&opt.fov, "fov", 45, "vertical field of view in degrees")
	flag.StringVar(&opt.texture, "texture", "water.png", "texture under assets/textures; the checker is used if it fails to load")
	flag.BoolVar(&opt.tile, "tile", false, "repeat the texture once per grid cell")
	flag.Float64Var(&opt.scroll, "scroll", 0.1, "horizontal UV scroll per second")
	vsync := flag.Bool("vsync", true, "wait for vertical sync")
	flag.Parse()

	cfg := core.Config{
		Title:                "planar",
		Width:                1280,
		Height:               720,
		VSync:                *vsync,
		Samples:              4,
		ClearColor:           colors.DarkGray,
		ScratchAllocCapacity: 512,
		ProfilerCapacity:     1 << 16,
	}
	app := &App{cfg: cfg, opt: opt}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		var err error
		win, err = platform.NewGLFWWindow(cfg, nil)
		return win, err
	}
	newRenderer := func(w core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(w, cfg)
	}

	err := core.Run(app, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
