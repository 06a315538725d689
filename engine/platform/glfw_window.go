package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/planar/engine/core"
)

// GLFWWindow implements core.Window on a GLFW window with a GL 3.3 core
// context and forwards its input as core events.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyEscape: core.KeyEscape,
	glfw.KeySpace:  core.KeySpace,
	glfw.KeyW:      core.KeyW,
	glfw.KeyA:      core.KeyA,
	glfw.KeyS:      core.KeyS,
	glfw.KeyD:      core.KeyD,
	glfw.KeyQ:      core.KeyQ,
	glfw.KeyE:      core.KeyE,
	glfw.KeyR:      core.KeyR,
	glfw.KeyC:      core.KeyC,
	glfw.KeyF:      core.KeyF,
	glfw.KeyP:      core.KeyP,
	glfw.KeyUp:     core.KeyUp,
	glfw.KeyDown:   core.KeyDown,
}

// NewGLFWWindow opens the window and makes its context current on the calling
// goroutine, which stays locked to the OS thread. Call it from main before any
// GL work.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw: %v", core.ErrBackendUnavailable, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True) // macOS
	glfw.WindowHint(glfw.Samples, max(cfg.Samples, 0))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %v", core.ErrBackendUnavailable, err)
	}
	win.MakeContextCurrent()
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl: %v", core.ErrBackendUnavailable, err)
	}
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	log.Printf("window: %dx%d samples=%d vsync=%v", cfg.Width, cfg.Height, cfg.Samples, cfg.VSync)

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.install()
	return gw, nil
}

func (g *GLFWWindow) install() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		// minimised windows report 0x0
		if w > 0 && h > 0 {
			g.emit(core.EventResize{W: w, H: h})
		}
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.emit(core.EventMouseMove{X: x, Y: y})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k, ok := keyTable[key]
		if !ok {
			return
		}
		g.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy closes the window and shuts GLFW down.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, p := range [...]struct {
		g glfw.ModifierKey
		c core.Mod
	}{
		{glfw.ModShift, core.ModShift},
		{glfw.ModControl, core.ModCtrl},
		{glfw.ModAlt, core.ModAlt},
		{glfw.ModSuper, core.ModSuper},
	} {
		if m&p.g != 0 {
			out |= p.c
		}
	}
	return out
}
