package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/gfx"
)

// ---- input layout ----

type InputLayout struct {
	layout *gfx.Layout
	locs   []uint32 // attribute location per layout entry
}

func (il *InputLayout) Layout() *gfx.Layout { return il.layout }

func (d *Device) CreateInputLayout(layout *gfx.Layout, s gfx.Shader) (gfx.InputLayout, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	sh := s.(*Shader)
	il := &InputLayout{layout: layout, locs: make([]uint32, len(layout.Attribs))}
	for i, a := range layout.Attribs {
		loc := sh.attribLocation(a.Semantic)
		if loc < 0 {
			return nil, fmt.Errorf("glbackend: shader %s has no input %q", sh.path, a.Semantic)
		}
		if err := checkLocation(a.Semantic, loc); err != nil {
			return nil, fmt.Errorf("glbackend: shader %s: %w", sh.path, err)
		}
		il.locs[i] = uint32(loc)
	}
	return il, nil
}

func (d *Device) SetInputLayout(il gfx.InputLayout) {
	if d.layout != nil {
		for _, loc := range d.layout.locs {
			gl.DisableVertexAttribArray(loc)
		}
	}
	d.layout = il.(*InputLayout)
	d.applyVertexState()
}

func (d *Device) FreeInputLayout(il gfx.InputLayout) {
	if d.layout == il.(*InputLayout) {
		d.layout = nil
	}
}

// checkLocation rejects an input that a shader pinned somewhere other than
// its semantic's fixed location.
func checkLocation(semantic string, loc int32) error {
	want, ok := semanticLocations[semantic]
	if ok && uint32(loc) != want {
		return fmt.Errorf("input %q at location %d, want %d", semantic, loc, want)
	}
	return nil
}

// applyVertexState points the layout's attributes at the bound vertex
// buffer. GL captures the buffer at VertexAttribPointer time, so this runs
// whenever either side changes.
func (d *Device) applyVertexState() {
	if d.layout == nil || d.vb == nil {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vb.buf)
	for i, a := range d.layout.layout.Attribs {
		f := toGL(a.Format)
		loc := d.layout.locs[i]
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, f.components, f.xtype, f.normalized, int32(d.vb.stride), uintptr(a.Offset))
	}
}

// ---- buffers ----

// Uploads go through COPY_WRITE_BUFFER so creating or updating a buffer never
// disturbs the vertex, index or uniform bindings.
func newBuffer(data []byte, size int, usage uint32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, buf)
	if data != nil {
		gl.BufferData(gl.COPY_WRITE_BUFFER, size, gl.Ptr(data), usage)
	} else {
		gl.BufferData(gl.COPY_WRITE_BUFFER, size, nil, usage)
	}
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
	return buf
}

type VertexBuffer struct {
	buf    uint32
	stride int
}

func (vb *VertexBuffer) Stride() int { return vb.stride }

func (d *Device) CreateVertexBuffer(data []byte, stride int) (gfx.VertexBuffer, error) {
	if len(data) == 0 || stride <= 0 || len(data)%stride != 0 {
		return nil, fmt.Errorf("glbackend: vertex buffer of %d bytes with stride %d", len(data), stride)
	}
	return &VertexBuffer{buf: newBuffer(data, len(data), gl.STATIC_DRAW), stride: stride}, nil
}

func (d *Device) SetVertexBuffer(vb gfx.VertexBuffer) {
	d.vb = vb.(*VertexBuffer)
	d.applyVertexState()
}

func (d *Device) FreeVertexBuffer(vb gfx.VertexBuffer) {
	b := vb.(*VertexBuffer)
	if d.vb == b {
		d.vb = nil
	}
	gl.DeleteBuffers(1, &b.buf)
}

type IndexBuffer struct {
	buf    uint32
	count  int
	format gfx.Format
}

func (ib *IndexBuffer) IndexCount() int         { return ib.count }
func (ib *IndexBuffer) IndexFormat() gfx.Format { return ib.format }

func (d *Device) CreateIndexBuffer(data []byte, format gfx.Format, count int) (gfx.IndexBuffer, error) {
	if format != gfx.FormatR16Uint {
		return nil, fmt.Errorf("glbackend: %v is not an index format", format)
	}
	if count <= 0 || len(data) < count*format.Size() {
		return nil, fmt.Errorf("glbackend: index buffer of %d bytes cannot hold %d indices", len(data), count)
	}
	return &IndexBuffer{buf: newBuffer(data, len(data), gl.STATIC_DRAW), count: count, format: format}, nil
}

func (d *Device) SetIndexBuffer(ib gfx.IndexBuffer) {
	d.ib = ib.(*IndexBuffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ib.buf)
}

func (d *Device) FreeIndexBuffer(ib gfx.IndexBuffer) {
	b := ib.(*IndexBuffer)
	if d.ib == b {
		d.ib = nil
	}
	gl.DeleteBuffers(1, &b.buf)
}

type ConstantBuffer struct {
	buf  uint32
	size int
}

func (cb *ConstantBuffer) ByteSize() int { return cb.size }

func (d *Device) CreateConstantBuffer(size int) (gfx.ConstantBuffer, error) {
	if size <= 0 || size%16 != 0 {
		return nil, fmt.Errorf("glbackend: constant buffer size %d is not a positive multiple of 16", size)
	}
	return &ConstantBuffer{buf: newBuffer(nil, size, gl.DYNAMIC_DRAW), size: size}, nil
}

// SetConstantBufferData replaces the whole buffer; data must be exactly the
// size the buffer was created with.
func (d *Device) SetConstantBufferData(cb gfx.ConstantBuffer, data []byte) {
	b := cb.(*ConstantBuffer)
	if len(data) != b.size {
		panic(fmt.Sprintf("glbackend: constant buffer is %d bytes, got %d", b.size, len(data)))
	}
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.buf)
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

// SetConstantBuffer binds cb to uniform-block binding point slot, which every
// stage reads.
func (d *Device) SetConstantBuffer(cb gfx.ConstantBuffer, slot int) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(slot), cb.(*ConstantBuffer).buf)
}

func (d *Device) FreeConstantBuffer(cb gfx.ConstantBuffer) {
	b := cb.(*ConstantBuffer)
	gl.DeleteBuffers(1, &b.buf)
}

// ---- textures ----

type Texture struct {
	tex    uint32
	w, h   int
	format gfx.Format
}

func (t *Texture) Size() (int, int)   { return t.w, t.h }
func (t *Texture) Format() gfx.Format { return t.format }

// validateTexture checks the row/slice pitch against the pixel data.
func validateTexture(pixels []byte, w, h int, format gfx.Format, stride int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("glbackend: invalid texture size %dx%d", w, h)
	}
	px := format.Size()
	if stride < w*px || stride%px != 0 {
		return fmt.Errorf("glbackend: row stride %d invalid for %d %v texels", stride, w, format)
	}
	// slice pitch: every row, the last included, spans a full stride
	if need := stride * h; len(pixels) < need {
		return fmt.Errorf("glbackend: %d bytes of pixels, need %d", len(pixels), need)
	}
	return nil
}

func (d *Device) CreateTexture(pixels []byte, w, h int, format gfx.Format, stride int) (gfx.Texture, error) {
	if err := validateTexture(pixels, w, h, format, stride); err != nil {
		return nil, err
	}
	f := toGL(format)
	t := &Texture{w: w, h: h, format: format}

	gl.GenTextures(1, &t.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(stride/format.Size()))
	gl.TexImage2D(gl.TEXTURE_2D, 0, f.internal, int32(w), int32(h), 0, f.pixel, f.xtype, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)

	var prev uint32
	if d.textures[0] != nil {
		prev = d.textures[0].tex
	}
	gl.BindTexture(gl.TEXTURE_2D, prev)
	return t, nil
}

func (d *Device) SetTexture(t gfx.Texture, slot int) {
	tex := t.(*Texture)
	d.textures[slot] = tex
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, tex.tex)
}

func (d *Device) FreeTexture(t gfx.Texture) {
	tex := t.(*Texture)
	for i, bound := range d.textures {
		if bound == tex {
			d.textures[i] = nil
		}
	}
	gl.DeleteTextures(1, &tex.tex)
}
