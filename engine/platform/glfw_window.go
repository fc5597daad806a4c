// Package platform creates the GLFW window and its OpenGL context and turns
// GLFW callbacks into core events.
package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/oneroom/engine/core"
)

// GLFWWindow implements core.Window and pushes events to a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
	keys keyTracker
}

// NewGLFWWindow opens a non-resizable window with a current OpenGL 3.3 core
// context whose default framebuffer has 24-bit depth and 8-bit stencil, and
// loads the GL entry points. Must be called on the main thread.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load gl: %w", err)
	}
	slog.Debug("window open", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", cfg.VSync)

	gw := &GLFWWindow{w: win}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		if ev, ok := gw.keys.update(key, action == glfw.Press); ok {
			gw.emit(ev)
		}
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var keyMap = map[glfw.Key]core.Key{
	glfw.KeyW:      core.KeyUp,
	glfw.KeyUp:     core.KeyUp,
	glfw.KeyA:      core.KeyLeft,
	glfw.KeyLeft:   core.KeyLeft,
	glfw.KeyS:      core.KeyDown,
	glfw.KeyDown:   core.KeyDown,
	glfw.KeyD:      core.KeyRight,
	glfw.KeyRight:  core.KeyRight,
	glfw.KeySpace:  core.KeyJump,
	glfw.KeyE:      core.KeyInteract,
	glfw.KeyF1:     core.KeyDebug,
	glfw.KeyEscape: core.KeyMenu,
}

func translateKey(k glfw.Key) (core.Key, bool) {
	ck, ok := keyMap[k]
	return ck, ok
}

// keyTracker folds physical keys onto logical ones. A logical key stays down
// while any of its physical keys is held.
type keyTracker struct {
	down map[glfw.Key]bool
	held [core.KeyCount]int
}

// update records a physical press or release and returns the logical event,
// if the logical key changed state.
func (kt *keyTracker) update(k glfw.Key, press bool) (core.EventKey, bool) {
	ck, ok := translateKey(k)
	if !ok || kt.down[k] == press {
		return core.EventKey{}, false
	}
	if kt.down == nil {
		kt.down = make(map[glfw.Key]bool)
	}
	kt.down[k] = press
	if press {
		kt.held[ck]++
		if kt.held[ck] > 1 {
			return core.EventKey{}, false
		}
	} else {
		kt.held[ck]--
		if kt.held[ck] > 0 {
			return core.EventKey{}, false
		}
	}
	return core.EventKey{Key: ck, Down: press}, true
}
