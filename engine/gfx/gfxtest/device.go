// Package gfxtest provides a GPU-free gfx.Device that records every call, for
// testing code that drives the device layer.
package gfxtest

import (
	"fmt"

	"github.com/hubastard/oneroom/engine/gfx"
	"github.com/hubastard/oneroom/engine/linalg"
)

// Call is one recorded device call.
type Call struct {
	Op   string
	Arg  any
	Slot int
}

type Texture struct {
	ID     int
	W, H   int
	Fmt    gfx.Format
	Stride int
	Pixels []byte
}

func (t *Texture) Size() (int, int)   { return t.W, t.H }
func (t *Texture) Format() gfx.Format { return t.Fmt }

type Shader struct {
	ID   int
	path string
}

func (s *Shader) Path() string { return s.path }

type InputLayout struct {
	ID     int
	layout *gfx.Layout
}

func (il *InputLayout) Layout() *gfx.Layout { return il.layout }

type VertexBuffer struct {
	ID     int
	Data   []byte
	stride int
}

func (vb *VertexBuffer) Stride() int { return vb.stride }

type IndexBuffer struct {
	ID    int
	Data  []byte
	fmt   gfx.Format
	count int
}

func (ib *IndexBuffer) IndexCount() int         { return ib.count }
func (ib *IndexBuffer) IndexFormat() gfx.Format { return ib.fmt }

type ConstantBuffer struct {
	ID   int
	Data []byte
	size int
}

func (cb *ConstantBuffer) ByteSize() int { return cb.size }

type Blend struct{ ID int }

func (*Blend) Desc() gfx.BlendDesc { return gfx.AlphaBlend }

type Depth struct{ ID int }

func (*Depth) Desc() gfx.DepthDesc { return gfx.DepthDisabled }

type Sampler struct{ ID int }

func (*Sampler) Desc() gfx.SamplerDesc { return gfx.LinearWrapSampler }

type Backbuffer struct{ W, H int }

func (bb *Backbuffer) Size() (int, int) { return bb.W, bb.H }

// Device records calls in order and tracks live resources so tests can
// check that everything created is freed exactly once.
type Device struct {
	Calls []Call

	// Fail makes the Create call with the matching op name return an error.
	Fail map[string]error

	bb     Backbuffer
	nextID int
	live   map[any]string
}

var _ gfx.Device = (*Device)(nil)

func New(w, h int) *Device {
	return &Device{bb: Backbuffer{W: w, H: h}, live: map[any]string{}}
}

// Live returns the op names of resources created and not yet freed.
func (d *Device) Live() []string {
	out := make([]string, 0, len(d.live))
	for _, op := range d.live {
		out = append(out, op)
	}
	return out
}

// Count returns how many recorded calls have the given op.
func (d *Device) Count(op string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the op names in call order.
func (d *Device) Ops() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Op
	}
	return out
}

func (d *Device) record(op string, arg any, slot int) {
	d.Calls = append(d.Calls, Call{Op: op, Arg: arg, Slot: slot})
}

func (d *Device) create(op string, h any) error {
	d.record(op, h, 0)
	if err := d.Fail[op]; err != nil {
		return err
	}
	d.live[h] = op
	return nil
}

func (d *Device) free(op string, h any) {
	d.record(op, h, 0)
	if _, ok := d.live[h]; !ok {
		panic(fmt.Sprintf("gfxtest: %s of a handle that is not live", op))
	}
	delete(d.live, h)
}

func (d *Device) id() int {
	d.nextID++
	return d.nextID
}

func (d *Device) Backbuffer() gfx.Backbuffer { d.record("Backbuffer", nil, 0); return &d.bb }
func (d *Device) SetRenderTarget(bb gfx.Backbuffer) {
	d.record("SetRenderTarget", bb, 0)
}
func (d *Device) Clear(bb gfx.Backbuffer, c linalg.Color4) { d.record("Clear", c, 0) }
func (d *Device) SetViewport(w, h float32)                 { d.record("SetViewport", [2]float32{w, h}, 0) }
func (d *Device) Present()                                 { d.record("Present", nil, 0) }

func (d *Device) CreateShader(path string) (gfx.Shader, error) {
	s := &Shader{ID: d.id(), path: path}
	if err := d.create("CreateShader", s); err != nil {
		return nil, err
	}
	return s, nil
}
func (d *Device) SetShader(s gfx.Shader)  { d.record("SetShader", s, 0) }
func (d *Device) FreeShader(s gfx.Shader) { d.free("FreeShader", s) }

func (d *Device) CreateInputLayout(l *gfx.Layout, s gfx.Shader) (gfx.InputLayout, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	il := &InputLayout{ID: d.id(), layout: l}
	if err := d.create("CreateInputLayout", il); err != nil {
		return nil, err
	}
	return il, nil
}
func (d *Device) SetInputLayout(il gfx.InputLayout)  { d.record("SetInputLayout", il, 0) }
func (d *Device) FreeInputLayout(il gfx.InputLayout) { d.free("FreeInputLayout", il) }

func (d *Device) CreateVertexBuffer(data []byte, stride int) (gfx.VertexBuffer, error) {
	vb := &VertexBuffer{ID: d.id(), Data: append([]byte(nil), data...), stride: stride}
	if err := d.create("CreateVertexBuffer", vb); err != nil {
		return nil, err
	}
	return vb, nil
}
func (d *Device) SetVertexBuffer(vb gfx.VertexBuffer)  { d.record("SetVertexBuffer", vb, 0) }
func (d *Device) FreeVertexBuffer(vb gfx.VertexBuffer) { d.free("FreeVertexBuffer", vb) }

func (d *Device) CreateIndexBuffer(data []byte, f gfx.Format, count int) (gfx.IndexBuffer, error) {
	ib := &IndexBuffer{ID: d.id(), Data: append([]byte(nil), data...), fmt: f, count: count}
	if err := d.create("CreateIndexBuffer", ib); err != nil {
		return nil, err
	}
	return ib, nil
}
func (d *Device) SetIndexBuffer(ib gfx.IndexBuffer)  { d.record("SetIndexBuffer", ib, 0) }
func (d *Device) FreeIndexBuffer(ib gfx.IndexBuffer) { d.free("FreeIndexBuffer", ib) }

func (d *Device) CreateConstantBuffer(size int) (gfx.ConstantBuffer, error) {
	cb := &ConstantBuffer{ID: d.id(), size: size}
	if err := d.create("CreateConstantBuffer", cb); err != nil {
		return nil, err
	}
	return cb, nil
}

// SetConstantBufferData records a copy of data, so each draw's uniforms can
// be inspected afterwards.
func (d *Device) SetConstantBufferData(cb gfx.ConstantBuffer, data []byte) {
	cp := append([]byte(nil), data...)
	cb.(*ConstantBuffer).Data = cp
	d.record("SetConstantBufferData", cp, 0)
}
func (d *Device) SetConstantBuffer(cb gfx.ConstantBuffer, slot int) {
	d.record("SetConstantBuffer", cb, slot)
}
func (d *Device) FreeConstantBuffer(cb gfx.ConstantBuffer) { d.free("FreeConstantBuffer", cb) }

func (d *Device) CreateTexture(pixels []byte, w, h int, f gfx.Format, stride int) (gfx.Texture, error) {
	t := &Texture{ID: d.id(), W: w, H: h, Fmt: f, Stride: stride, Pixels: append([]byte(nil), pixels...)}
	if err := d.create("CreateTexture", t); err != nil {
		return nil, err
	}
	return t, nil
}
func (d *Device) SetTexture(t gfx.Texture, slot int) { d.record("SetTexture", t, slot) }
func (d *Device) FreeTexture(t gfx.Texture)          { d.free("FreeTexture", t) }

func (d *Device) CreateBlend() (gfx.Blend, error) {
	b := &Blend{ID: d.id()}
	if err := d.create("CreateBlend", b); err != nil {
		return nil, err
	}
	return b, nil
}
func (d *Device) SetBlend(b gfx.Blend)  { d.record("SetBlend", b, 0) }
func (d *Device) FreeBlend(b gfx.Blend) { d.free("FreeBlend", b) }

func (d *Device) CreateDepth() (gfx.Depth, error) {
	ds := &Depth{ID: d.id()}
	if err := d.create("CreateDepth", ds); err != nil {
		return nil, err
	}
	return ds, nil
}
func (d *Device) SetDepth(ds gfx.Depth)  { d.record("SetDepth", ds, 0) }
func (d *Device) FreeDepth(ds gfx.Depth) { d.free("FreeDepth", ds) }

func (d *Device) CreateSampler() (gfx.Sampler, error) {
	s := &Sampler{ID: d.id()}
	if err := d.create("CreateSampler", s); err != nil {
		return nil, err
	}
	return s, nil
}
func (d *Device) SetSampler(s gfx.Sampler, slot int) { d.record("SetSampler", s, slot) }
func (d *Device) FreeSampler(s gfx.Sampler)          { d.free("FreeSampler", s) }

func (d *Device) Draw(ib gfx.IndexBuffer) { d.record("Draw", ib, 0) }

func (d *Device) Shutdown() { d.record("Shutdown", nil, 0) }
