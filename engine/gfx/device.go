package gfx

import "github.com/hubastard/oneroom/engine/linalg"

// Resource handles. Each is owned by whoever created it and released with
// the matching Free call on the same Device; handles are not reference
// counted and must not be used after Free.

type Texture interface {
	Size() (w, h int)
	Format() Format
}

type Shader interface {
	Path() string
}

type InputLayout interface {
	Layout() *Layout
}

type VertexBuffer interface {
	Stride() int
}

type IndexBuffer interface {
	IndexCount() int
	IndexFormat() Format
}

type ConstantBuffer interface {
	ByteSize() int
}

type Blend interface{ Desc() BlendDesc }
type Depth interface{ Desc() DepthDesc }
type Sampler interface{ Desc() SamplerDesc }

// Backbuffer pairs the colour target with its depth-stencil target.
type Backbuffer interface {
	Size() (w, h int)
}

// Device owns one GPU context bound to one window. Bindings made with the
// Set* calls are sticky until changed; nothing is saved or restored.
type Device interface {
	Backbuffer() Backbuffer
	SetRenderTarget(bb Backbuffer)
	Clear(bb Backbuffer, color linalg.Color4)
	SetViewport(w, h float32)
	Present()

	CreateShader(path string) (Shader, error)
	SetShader(s Shader)
	FreeShader(s Shader)

	CreateInputLayout(layout *Layout, s Shader) (InputLayout, error)
	SetInputLayout(il InputLayout)
	FreeInputLayout(il InputLayout)

	CreateVertexBuffer(data []byte, stride int) (VertexBuffer, error)
	SetVertexBuffer(vb VertexBuffer)
	FreeVertexBuffer(vb VertexBuffer)

	CreateIndexBuffer(data []byte, format Format, count int) (IndexBuffer, error)
	SetIndexBuffer(ib IndexBuffer)
	FreeIndexBuffer(ib IndexBuffer)

	CreateConstantBuffer(size int) (ConstantBuffer, error)
	SetConstantBufferData(cb ConstantBuffer, data []byte)
	SetConstantBuffer(cb ConstantBuffer, slot int)
	FreeConstantBuffer(cb ConstantBuffer)

	// CreateTexture uploads a 2D image whose rows are stride bytes apart;
	// pixels must hold stride*h bytes.
	CreateTexture(pixels []byte, w, h int, format Format, stride int) (Texture, error)
	SetTexture(t Texture, slot int)
	FreeTexture(t Texture)

	CreateBlend() (Blend, error)
	SetBlend(b Blend)
	FreeBlend(b Blend)

	CreateDepth() (Depth, error)
	SetDepth(d Depth)
	FreeDepth(d Depth)

	CreateSampler() (Sampler, error)
	SetSampler(s Sampler, slot int)
	FreeSampler(s Sampler)

	// Draw issues an indexed triangle-list draw of the whole index buffer
	// using whatever is currently bound.
	Draw(ib IndexBuffer)

	Shutdown()
}
