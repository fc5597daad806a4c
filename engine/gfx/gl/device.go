// Package glbackend implements gfx.Device on an OpenGL 3.3 core context.
//
// The context must already be current on the calling thread (the platform
// window creates it and loads the GL entry points). Every call must come from
// that thread.
package glbackend

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/core"
	"github.com/hubastard/oneroom/engine/gfx"
	"github.com/hubastard/oneroom/engine/linalg"
)

// Backbuffer is the offscreen colour + depth-stencil pair that stands in for
// the swap chain's back buffer. Present blits it to the window.
type Backbuffer struct {
	fbo   uint32
	color uint32 // RGBA8 renderbuffer
	depth uint32 // DEPTH24_STENCIL8 renderbuffer
	w, h  int
}

func (bb *Backbuffer) Size() (int, int) { return bb.w, bb.h }

type Device struct {
	win core.Window
	vao uint32
	bb  Backbuffer

	// current bindings
	target   *Backbuffer
	shader   *Shader
	layout   *InputLayout
	vb       *VertexBuffer
	ib       *IndexBuffer
	textures [maxTexSlots]*Texture
}

var _ gfx.Device = (*Device)(nil)

// New creates the device state for a window whose client area is w x h.
func New(win core.Window, w, h int) (*Device, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("glbackend: invalid backbuffer size %dx%d", w, h)
	}
	d := &Device{win: win}

	// Core profile refuses to draw without a bound VAO; one is enough since
	// the input layout is re-applied whenever the layout or vertex buffer
	// changes.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	if err := d.createBackbuffer(w, h); err != nil {
		d.Shutdown()
		return nil, err
	}

	slog.Info("gl device ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"width", w, "height", h)
	return d, nil
}

func (d *Device) createBackbuffer(w, h int) error {
	bb := &d.bb
	bb.w, bb.h = w, h

	gl.GenRenderbuffers(1, &bb.color)
	gl.BindRenderbuffer(gl.RENDERBUFFER, bb.color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(w), int32(h))

	gl.GenRenderbuffers(1, &bb.depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, bb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(w), int32(h))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &bb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, bb.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, bb.color)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, bb.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("glbackend: backbuffer incomplete (status 0x%x)", status)
	}
	return nil
}

func (d *Device) Backbuffer() gfx.Backbuffer { return &d.bb }

func (d *Device) SetRenderTarget(bb gfx.Backbuffer) {
	d.target = bb.(*Backbuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.target.fbo)
}

// Clear resets colour to c, depth to 1 and stencil to 0 on bb, whether or
// not bb is the bound target.
func (d *Device) Clear(bb gfx.Backbuffer, c linalg.Color4) {
	b := bb.(*Backbuffer)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, b.fbo)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.ClearDepth(1)
	gl.ClearStencil(0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	d.rebindTarget()
}

func (d *Device) SetViewport(w, h float32) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Present copies the backbuffer to the window and swaps. Vsync is whatever
// the window was configured with.
func (d *Device) Present() {
	fw, fh := d.win.FramebufferSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, d.bb.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, int32(d.bb.w), int32(d.bb.h),
		0, 0, int32(fw), int32(fh),
		gl.COLOR_BUFFER_BIT, gl.LINEAR)
	d.win.SwapBuffers()
	d.rebindTarget()
}

func (d *Device) rebindTarget() {
	var fbo uint32
	if d.target != nil {
		fbo = d.target.fbo
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
}

func (d *Device) Draw(ib gfx.IndexBuffer) {
	b := ib.(*IndexBuffer)
	gl.DrawElements(gl.TRIANGLES, int32(b.count), toGL(b.format).xtype, gl.PtrOffset(0))
}

// Shutdown releases the objects the device itself owns. Resources handed out
// by Create* must already have been freed by their owners.
func (d *Device) Shutdown() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if d.bb.fbo != 0 {
		gl.DeleteFramebuffers(1, &d.bb.fbo)
	}
	if d.bb.color != 0 {
		gl.DeleteRenderbuffers(1, &d.bb.color)
	}
	if d.bb.depth != 0 {
		gl.DeleteRenderbuffers(1, &d.bb.depth)
	}
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
	}
	d.bb = Backbuffer{}
	d.target = nil
	slog.Debug("gl device shut down")
}
